package controllers

import (
	"github.com/SaiSindhuSubbisetty/CatalogService/pkg/resp"
	"github.com/SaiSindhuSubbisetty/CatalogService/services"
	"github.com/gin-gonic/gin"
)

type ItemController struct {
	Service *services.ItemService
}

func NewItemController(s *services.ItemService) *ItemController {
	return &ItemController{Service: s}
}

// POST /restaurants/:restaurantId/items
func (ctl *ItemController) Create(c *gin.Context) {
	var req services.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Service.Add(c.Param("restaurantId"), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, services.MsgItemAdded, item)
}

// GET /restaurants/:restaurantId/items
func (ctl *ItemController) List(c *gin.Context) {
	items, err := ctl.Service.FetchAll(c.Param("restaurantId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, services.MsgFetched, items)
}

// GET /restaurants/:restaurantId/items/:itemId
// The lookup is by item id alone; the restaurant segment of the route does
// not filter it.
func (ctl *ItemController) Detail(c *gin.Context) {
	item, err := ctl.Service.FetchByID(c.Param("itemId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, services.MsgFetched, item)
}
