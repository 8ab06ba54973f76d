package entity

type MenuItem struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	RestaurantID string     `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // base price in cents
	Image       string `json:"image"`
	Category    string `json:"category"`

	IsVegetarian bool `json:"isVegetarian"`
	IsPopular    bool `json:"isPopular"`

	// preload ordered by sort_order
	Sizes  []SizeOption  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sizes"`
	Addons []AddonOption `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"addons"`
}

type SizeOption struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	MenuItemID string `gorm:"index" json:"-"`
	Name       string `json:"name"`
	PriceDelta int64  `json:"priceDelta"` // cents, added to base price
	SortOrder  int    `json:"-"`
}

type AddonOption struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	MenuItemID string `gorm:"index" json:"-"`
	Name       string `json:"name"`
	PriceDelta int64  `json:"priceDelta"`
	SortOrder  int    `json:"-"`
}
