package models

import "time"

// Produto represents a single inventory item.
// Validade carries only the calendar date; handlers serialize it as YYYY-MM-DD.
type Produto struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Nome       string    `json:"nome" gorm:"type:varchar(100);not null" validate:"required"`
	Quantidade int       `json:"quantidade" gorm:"not null" validate:"required,gt=0"`
	Preco      float64   `json:"preco" gorm:"not null" validate:"gte=0"`
	Validade   time.Time `json:"validade" gorm:"not null" validate:"required"`
}

// TableName keeps the original schema's table name.
func (Produto) TableName() string {
	return "produto"
}
