package model

// Product is a stocked item. Category and Supplier are linked by name
// string, not by foreign key; the linkage is a weak back-reference and
// referential integrity is never assumed.
type Product struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	SKU         string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku"`
	Category    string  `gorm:"type:varchar(255);not null;index" json:"category"`
	Supplier    string  `gorm:"type:varchar(255);not null;index" json:"supplier"`
	Quantity    int     `gorm:"not null;default:0" json:"quantity"`
	MinQuantity int     `gorm:"not null;default:5" json:"minQuantity"`
	Price       float64 `gorm:"not null;default:0" json:"price"`
	Cost        float64 `gorm:"not null;default:0" json:"cost"`
	ImageURL    string  `gorm:"type:text" json:"imageUrl"`
	Status      Status  `gorm:"type:varchar(10);not null;default:'active';index" json:"status"`
}

// IsLowStock reports whether the product is at or below its reorder
// threshold while still having stock on hand. Out-of-stock is counted
// separately.
func (p *Product) IsLowStock() bool {
	return p.Quantity > 0 && p.Quantity <= p.MinQuantity
}
