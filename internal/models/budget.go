package models

// Budget represents a monthly spending limit for a category. There is no
// uniqueness constraint on (user_id, category, month, year); setting the
// same budget twice creates a second row.
type Budget struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	UserID   uint    `gorm:"not null" json:"user_id"`
	Category string  `json:"category"`
	Amount   float64 `gorm:"not null" json:"amount"`
	Month    int     `json:"month"`
	Year     int     `json:"year"`
}
