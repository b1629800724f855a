package model

type Supplier struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null;index" json:"name"`
	Email   string `gorm:"type:varchar(255)" json:"email"`
	Phone   string `gorm:"type:varchar(50)" json:"phone"`
	Address string `gorm:"type:text" json:"address"`
	Status  Status `gorm:"type:varchar(10);not null;default:'active';index" json:"status"`
}
