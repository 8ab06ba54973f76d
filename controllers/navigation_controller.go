package controllers

import (
	"storefront/pkg/resp"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type NavigationController struct {
	Nav *services.NavigationService
}

func NewNavigationController(nav *services.NavigationService) *NavigationController {
	return &NavigationController{Nav: nav}
}

// GET /navigation
func (ctl *NavigationController) Get(c *gin.Context) {
	resp.OK(c, ctl.Nav.State())
}

// POST /navigation
func (ctl *NavigationController) Navigate(c *gin.Context) {
	var body struct {
		View         string `json:"view" binding:"required"`
		RestaurantID string `json:"restaurantId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, ok := services.ParseView(body.View)
	if !ok {
		resp.BadRequest(c, "unknown view")
		return
	}

	ctl.Nav.Navigate(view, body.RestaurantID)
	resp.OK(c, ctl.Nav.State())
}

// PUT /navigation/search
func (ctl *NavigationController) SetSearch(c *gin.Context) {
	var body struct {
		Q string `json:"q"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ctl.Nav.SetSearch(body.Q)
	resp.OK(c, ctl.Nav.State())
}
