package controllers

import (
	"github.com/SaiSindhuSubbisetty/CatalogService/configs"
	"github.com/SaiSindhuSubbisetty/CatalogService/pkg/resp"
	"github.com/SaiSindhuSubbisetty/CatalogService/services"
	"github.com/SaiSindhuSubbisetty/CatalogService/utils"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Service *services.AuthService
	Cfg     *configs.Config
}

func NewAuthController(s *services.AuthService, cfg *configs.Config) *AuthController {
	return &AuthController{Service: s, Cfg: cfg}
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Service.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.Error(c, err)
		return
	}

	resp.OK(c, "logged in", gin.H{"token": token, "email": user.Email, "role": user.Role})
}
