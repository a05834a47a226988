package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"fintrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext behind every fixture user's stored hash.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email. The password
// hash uses bcrypt.MinCost to keep tests fast.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a transaction row for the given user.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, amount float64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		Amount:   amount,
		Category: fmt.Sprintf("category%d", nextID()),
		Type:     "expense",
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates a budget row for the given user and period.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, category string, amount float64, month, year int) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Amount:   amount,
		Month:    month,
		Year:     year,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
