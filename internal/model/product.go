package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Seller is stored as a JSON column on products and sold products.
type Seller struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	UserCode string `json:"user_code"`
}

// CategoryRef is the code/name pair copied onto a product.
type CategoryRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Product struct {
	BaseModel
	WarehouseCode   string                          `gorm:"type:varchar(50);not null" json:"warehouse_code" validate:"required,max=50"`
	ProductCode     string                          `gorm:"type:varchar(50);uniqueIndex;not null" json:"product_code" validate:"required,max=50"`
	ProductName     string                          `gorm:"type:varchar(255);not null" json:"product_name" validate:"required,max=255"`
	ProductCategory datatypes.JSONType[CategoryRef] `json:"product_category"`
	ProductUnit     string                          `gorm:"type:varchar(50)" json:"product_unit" validate:"max=50"`
	PriceUnit       string                          `gorm:"type:varchar(50)" json:"price_unit" validate:"max=50"`
	MinCount        int                             `gorm:"not null;default:0" json:"min_count" validate:"gte=0"`
	Count           int                             `gorm:"not null;default:0" json:"count" validate:"gte=0"`
	RentalCosts     decimal.Decimal                 `gorm:"type:numeric(15,2);not null;default:0" json:"rental_costs" validate:"decimal_gte0"`
	BuyPrice        decimal.Decimal                 `gorm:"type:numeric(15,2);not null;default:0" json:"buy_price" validate:"decimal_gte0"`
	SellPrice       decimal.Decimal                 `gorm:"type:numeric(15,2);not null;default:0" json:"sell_price" validate:"decimal_gte0"`
	Seller          datatypes.JSONType[Seller]      `json:"seller"`
}

// TableName specifies the table name for GORM
func (Product) TableName() string {
	return "product"
}

// IsLowStock reports whether the count has reached the configured minimum.
func (p *Product) IsLowStock() bool {
	return p.MinCount > 0 && p.Count <= p.MinCount
}
