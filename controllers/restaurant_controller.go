package controllers

import (
	"github.com/SaiSindhuSubbisetty/CatalogService/pkg/resp"
	"github.com/SaiSindhuSubbisetty/CatalogService/services"
	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: s}
}

// POST /restaurants
func (ctl *RestaurantController) Create(c *gin.Context) {
	var req services.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Service.Create(req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, services.MsgRestaurantAdded, rest)
}

// GET /restaurants
func (ctl *RestaurantController) List(c *gin.Context) {
	rests, err := ctl.Service.FetchAll()
	if err != nil {
		resp.Error(c, err)
		return
	}
	if len(rests) == 0 {
		resp.NoContent(c)
		return
	}
	resp.OK(c, services.MsgFetched, rests)
}

// GET /restaurants/:restaurantId
func (ctl *RestaurantController) Detail(c *gin.Context) {
	rest, err := ctl.Service.FetchByID(c.Param("restaurantId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, services.MsgFetched, rest)
}
