package repository

import (
	"storefront/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func sortedOptions(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order")
}

// ListByRestaurant returns the restaurant's menu, optionally narrowed to one
// category, with size/addon options in their seeded order.
func (r *MenuRepository) ListByRestaurant(restaurantID, category string) ([]entity.MenuItem, error) {
	q := r.DB.
		Preload("Sizes", sortedOptions).
		Preload("Addons", sortedOptions).
		Where("restaurant_id = ?", restaurantID)
	if category != "" && category != "All" {
		q = q.Where("category = ?", category)
	}

	var items []entity.MenuItem
	err := q.Order("id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Preload("Sizes", sortedOptions).
		Preload("Addons", sortedOptions).
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Categories returns the distinct menu categories of one restaurant, for the
// category tabs on the restaurant view.
func (r *MenuRepository) Categories(restaurantID string) ([]string, error) {
	var names []string
	err := r.DB.Model(&entity.MenuItem{}).
		Where("restaurant_id = ?", restaurantID).
		Distinct("category").
		Order("category").
		Pluck("category", &names).Error
	return names, err
}
