package controllers

import (
	"errors"

	"storefront/pkg/money"
	"storefront/pkg/resp"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Svc.Place(&req)
	if errors.Is(err, services.ErrEmptyCart) {
		resp.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"order":        order,
		"totalDisplay": money.Format(order.Total),
	})
}

// GET /orders/current
func (ctl *OrderController) Current(c *gin.Context) {
	order, tracking, err := ctl.Svc.Current()
	if errors.Is(err, services.ErrNoOrder) {
		resp.NotFound(c)
		return
	}

	resp.OK(c, gin.H{
		"order":    order,
		"tracking": tracking,
	})
}
