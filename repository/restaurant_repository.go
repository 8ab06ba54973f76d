package repository

import (
	"strings"

	"storefront/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// List returns restaurants filtered by an optional cuisine tag and an
// optional case-insensitive substring search over name and cuisine tags.
func (r *RestaurantRepository) List(search, cuisine string) ([]entity.Restaurant, error) {
	q := r.DB.Preload("Cuisines")

	if cuisine != "" && cuisine != "All" {
		q = q.Where(
			"EXISTS (SELECT 1 FROM cuisines c WHERE c.restaurant_id = restaurants.id AND c.name = ?)",
			cuisine,
		)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(restaurants.name) LIKE ? OR EXISTS (SELECT 1 FROM cuisines c WHERE c.restaurant_id = restaurants.id AND LOWER(c.name) LIKE ?)",
			like, like,
		)
	}

	var rests []entity.Restaurant
	err := q.Order("restaurants.id").Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.Preload("Cuisines").Where("id = ?", id).First(&rest).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// Cuisines returns the distinct cuisine tags for the home filter bar.
func (r *RestaurantRepository) Cuisines() ([]string, error) {
	var names []string
	err := r.DB.Model(&entity.Cuisine{}).
		Distinct("name").
		Order("name").
		Pluck("name", &names).Error
	return names, err
}
