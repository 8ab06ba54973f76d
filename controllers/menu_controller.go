package controllers

import (
	"storefront/pkg/resp"
	"storefront/repository"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Repo *repository.MenuRepository
}

func NewMenuController(repo *repository.MenuRepository) *MenuController {
	return &MenuController{Repo: repo}
}

// GET /restaurants/:id/menu?category=
func (ctl *MenuController) ListByRestaurant(c *gin.Context) {
	items, err := ctl.Repo.ListByRestaurant(c.Param("id"), c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /restaurants/:id/categories
func (ctl *MenuController) Categories(c *gin.Context) {
	names, err := ctl.Repo.Categories(c.Param("id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, names)
}
