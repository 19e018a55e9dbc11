package model

type Category struct {
	BaseModel
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" validate:"required,max=50"`
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
}

func (Category) TableName() string {
	return "category"
}

// Ref returns the code/name pair embedded in products.
func (c *Category) Ref() CategoryRef {
	return CategoryRef{Code: c.Code, Name: c.Name}
}
