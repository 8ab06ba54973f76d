package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront/entity"
	"storefront/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogRouter(t *testing.T, name string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Restaurant{}, &entity.Cuisine{},
		&entity.MenuItem{}, &entity.SizeOption{}, &entity.AddonOption{},
	))

	restaurants := []entity.Restaurant{
		{
			ID: "r1", Name: "Bella Italia", IsOpen: true,
			Cuisines: []entity.Cuisine{{Name: "Italian"}, {Name: "Pizza"}},
		},
		{
			ID: "r2", Name: "Tokyo Bites", IsOpen: true,
			Cuisines: []entity.Cuisine{{Name: "Japanese"}},
		},
	}
	require.NoError(t, db.Create(&restaurants).Error)
	items := []entity.MenuItem{
		{ID: "m1", RestaurantID: "r1", Name: "Margherita", Category: "Pizza", Price: 1000},
		{ID: "m2", RestaurantID: "r1", Name: "Tiramisu", Category: "Dessert", Price: 500},
	}
	require.NoError(t, db.Create(&items).Error)

	restCtrl := NewRestaurantController(repository.NewRestaurantRepository(db))
	menuCtrl := NewMenuController(repository.NewMenuRepository(db))

	r := gin.New()
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu", menuCtrl.ListByRestaurant)
	r.GET("/restaurants/:id/categories", menuCtrl.Categories)
	r.GET("/cuisines", restCtrl.Cuisines)
	return r
}

func TestListRestaurantsWithSearch(t *testing.T) {
	r := setupCatalogRouter(t, "ctl_search")

	w := doJSON(t, r, "GET", "/restaurants?q=pizza", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []entity.Restaurant `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Bella Italia", body.Data[0].Name)
}

func TestRestaurantDetailNotFound(t *testing.T) {
	r := setupCatalogRouter(t, "ctl_404")
	w := doJSON(t, r, "GET", "/restaurants/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRestaurantMenuAndCategories(t *testing.T) {
	r := setupCatalogRouter(t, "ctl_menu")

	w := doJSON(t, r, "GET", "/restaurants/r1/menu?category=Dessert", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var menu struct {
		Data []entity.MenuItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &menu))
	require.Len(t, menu.Data, 1)
	assert.Equal(t, "Tiramisu", menu.Data[0].Name)

	w = doJSON(t, r, "GET", "/restaurants/r1/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cats struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
	assert.Equal(t, []string{"Dessert", "Pizza"}, cats.Data)
}

func TestCuisineTags(t *testing.T) {
	r := setupCatalogRouter(t, "ctl_cuisines")
	w := doJSON(t, r, "GET", "/cuisines", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"Italian", "Japanese", "Pizza"}, body.Data)
}
