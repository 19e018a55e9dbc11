package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// BuyerInfo is the buyer snapshot stored on a sale.
type BuyerInfo struct {
	Name    string `json:"name"`
	Number  string `json:"number"`
	Address string `json:"address"`
	Type    string `json:"type"`
}

// PaymentDetails is stored as JSON. Desc and Settlement are the only
// fields amended after the sale is recorded.
type PaymentDetails struct {
	Method        string          `json:"method"`
	ConfirmerCode string          `json:"confirmer_code"`
	Settlement    decimal.Decimal `json:"settlement"`
	Desc          string          `json:"desc"`
	DiscountPrice decimal.Decimal `json:"discount_price"`
}

// SoldProduct is an append-only sale record. Product attributes are copied
// at the time of sale; product_code is not a foreign key.
type SoldProduct struct {
	BaseModel
	WarehouseCode   string                             `gorm:"type:varchar(50);not null" json:"warehouse_code"`
	ProductCode     string                             `gorm:"type:varchar(50);not null;index" json:"product_code"`
	ProductName     string                             `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductCategory datatypes.JSONType[CategoryRef]    `json:"product_category"`
	ProductUnit     string                             `gorm:"type:varchar(50)" json:"product_unit"`
	PriceUnit       string                             `gorm:"type:varchar(50)" json:"price_unit"`
	BuyPrice        decimal.Decimal                    `gorm:"type:numeric(15,2);not null;default:0" json:"buy_price"`
	SellPrice       decimal.Decimal                    `gorm:"type:numeric(15,2);not null;default:0" json:"sell_price"`
	SoldPrice       decimal.Decimal                    `gorm:"type:numeric(15,2);not null;default:0" json:"sold_price"`
	Seller          datatypes.JSONType[Seller]         `json:"seller"`
	Buyer           datatypes.JSONType[BuyerInfo]      `json:"buyer"`
	PaymentDetails  datatypes.JSONType[PaymentDetails] `json:"paymentDetails"`
	Count           int                                `gorm:"not null" json:"count"`
	MinCount        int                                `gorm:"not null;default:0" json:"min_count"`
	SoldAt          time.Time                          `gorm:"not null;index" json:"sold_at"`
}

func (SoldProduct) TableName() string {
	return "sold_product"
}
