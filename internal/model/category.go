package model

type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Status      Status `gorm:"type:varchar(10);not null;default:'active';index" json:"status"`
}
