package models

// User represents a registered user. The password column holds a bcrypt
// hash, never plaintext, and is excluded from every JSON response.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}
