package model

// Buyer types accepted by the API; other values are stored as given.
const (
	BuyerIndividual = "individual"
	BuyerCompany    = "company"
)

type Buyer struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Number  string `gorm:"type:varchar(50);index" json:"number" validate:"max=50"`
	Address string `gorm:"type:text" json:"address"`
	Type    string `gorm:"type:varchar(50)" json:"type" validate:"max=50"`
}

func (Buyer) TableName() string {
	return "buyer"
}
