package controllers

import (
	"errors"

	"storefront/pkg/resp"
	"storefront/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RestaurantController struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantController(repo *repository.RestaurantRepository) *RestaurantController {
	return &RestaurantController{Repo: repo}
}

// GET /restaurants?q=&cuisine=
func (ctl *RestaurantController) List(c *gin.Context) {
	rests, err := ctl.Repo.List(c.Query("q"), c.Query("cuisine"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /restaurants/:id
func (ctl *RestaurantController) Detail(c *gin.Context) {
	rest, err := ctl.Repo.FindByID(c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c)
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /cuisines
func (ctl *RestaurantController) Cuisines(c *gin.Context) {
	names, err := ctl.Repo.Cuisines()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, names)
}
