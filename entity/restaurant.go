package entity

// Restaurant is catalog data: seeded at boot, read-only afterwards.
type Restaurant struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"`
	DeliveryFee  int64   `json:"deliveryFee"` // cents
	MinOrder     int64   `json:"minOrder"`    // cents
	Description  string  `json:"description"`
	IsOpen       bool    `json:"isOpen"`

	Cuisines []Cuisine `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cuisines"`

	MenuItems []MenuItem `json:"-"`
}

type Cuisine struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	RestaurantID string `gorm:"index" json:"-"`
	Name         string `json:"name"`
}
