package models

import "time"

// StoreProduct is a catalog entry of the storefront. The catalog ships with the
// binary and is written to the products table on start.
type StoreProduct struct {
	ID          uint      `gorm:"primaryKey;autoIncrement:false" json:"id,string" yaml:"id"`
	Name        string    `gorm:"type:VARCHAR(255);not null" json:"name" yaml:"name"`
	Price       float64   `gorm:"not null" json:"price" yaml:"price"`
	Category    string    `gorm:"type:VARCHAR(100);index" json:"category" yaml:"category"`
	Image       string    `gorm:"type:VARCHAR(500)" json:"image" yaml:"image"`
	HoverImage  string    `gorm:"type:VARCHAR(500)" json:"hoverImage" yaml:"hover_image"`
	Description string    `gorm:"type:text" json:"description" yaml:"description"`
	IsNew       bool      `gorm:"not null" json:"isNew" yaml:"is_new"`
	CreatedAt   time.Time `json:"-" yaml:"-"`
}

func (StoreProduct) TableName() string { return "products" }

// Sizes lists the sizes every garment is offered in.
var Sizes = []string{"XS", "S", "M", "L", "XL"}

// ValidSize reports whether size is one of Sizes.
func ValidSize(size string) bool {
	for _, s := range Sizes {
		if s == size {
			return true
		}
	}
	return false
}
