package model

type Equipment struct {
	BaseModel
	Name            string `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Model           string `gorm:"type:varchar(255)" json:"model" validate:"max=255"`
	SerialNumber    string `gorm:"type:varchar(100);uniqueIndex;not null" json:"serialNumber" validate:"required,max=100"`
	StorageLocation string `gorm:"type:varchar(255)" json:"storageLocation" validate:"max=255"`
	Qty             int    `gorm:"not null;default:0" json:"qty" validate:"gte=0"`
}

func (Equipment) TableName() string {
	return "equipment"
}
