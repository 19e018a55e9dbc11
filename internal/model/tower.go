package model

type Tower struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required,max=255"`
	Size string `gorm:"type:varchar(50)" json:"size" validate:"max=50"`
}

func (Tower) TableName() string {
	return "tower"
}
