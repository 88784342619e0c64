package models

// Usuario represents an account that can authenticate against the API.
type Usuario struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;type:varchar(50);not null" validate:"required,min=3,max=50"`
	PasswordHash string `json:"-" gorm:"type:varchar(128);not null" validate:"required"` // bcrypt hash, never the plaintext
}

// TableName keeps the original schema's table name.
func (Usuario) TableName() string {
	return "usuario"
}
