package models

// Transaction represents a single recorded income or expense. The type
// column is a free discriminator; the store does not constrain its values
// and neither does the API.
type Transaction struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	UserID   uint    `gorm:"not null" json:"user_id"`
	Amount   float64 `gorm:"not null" json:"amount"`
	Category string  `json:"category"`
	Type     string  `json:"type"`
}
