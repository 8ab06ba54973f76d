package controllers

import (
	"errors"
	"strconv"

	"storefront/entity"
	"storefront/pkg/money"
	"storefront/pkg/resp"
	"storefront/repository"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct {
	Cart *services.CartService
	Menu *repository.MenuRepository
	Rest *repository.RestaurantRepository
}

func NewCartController(cart *services.CartService, menu *repository.MenuRepository, rest *repository.RestaurantRepository) *CartController {
	return &CartController{Cart: cart, Menu: menu, Rest: rest}
}

type AddToCartIn struct {
	MenuItemID    string                    `json:"menuItemId" binding:"required"`
	Customization *entity.ItemCustomization `json:"customization"`
}

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	items := ctl.Cart.Items()
	sum := services.Aggregate(items)

	lines := make([]gin.H, 0, len(items))
	for _, it := range items {
		unit := services.UnitPrice(it)
		lines = append(lines, gin.H{
			"line":      it,
			"unitPrice": unit,
			"lineTotal": unit * int64(it.Qty),
		})
	}

	resp.OK(c, gin.H{
		"items":   lines,
		"count":   ctl.Cart.Count(),
		"summary": sum,
		"display": gin.H{
			"subtotal":    money.Format(sum.Subtotal),
			"deliveryFee": money.Format(sum.DeliveryFee),
			"tax":         money.Format(sum.Tax),
			"total":       money.Format(sum.Total),
		},
	})
}

// POST /cart/items
func (ctl *CartController) Add(c *gin.Context) {
	var req AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Menu.FindByID(req.MenuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c)
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	// a sized item needs a size picked; unknown names still price as zero
	if len(item.Sizes) > 0 && (req.Customization == nil || req.Customization.Size == "") {
		resp.BadRequest(c, "size is required for this item")
		return
	}

	rest, err := ctl.Rest.FindByID(item.RestaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c)
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	line := ctl.Cart.Add(*item, *rest, req.Customization)
	resp.Created(c, line)
}

// PATCH /cart/items/:id
func (ctl *CartController) UpdateQty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "bad line id")
		return
	}

	var body struct {
		Qty *int `json:"qty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Cart.UpdateQty(id, *body.Qty); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"count": ctl.Cart.Count()})
}

// DELETE /cart/items/:id
func (ctl *CartController) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "bad line id")
		return
	}

	// unknown ids are a silent no-op, never an error
	ctl.Cart.Remove(id)
	resp.OK(c, gin.H{"count": ctl.Cart.Count()})
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	ctl.Cart.Clear()
	resp.OK(c, gin.H{"count": 0})
}
