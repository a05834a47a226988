// Package store is the persistence gateway: the only component allowed to
// issue queries against the relational store. Every operation is
// parameterized through GORM; caller-supplied values never reach query
// text.
package store

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// Store defines the gateway operations consumed by handlers.
type Store interface {
	InsertUser(email, passwordHash string) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	InsertTransaction(userID uint, amount float64, category, txType string) (*models.Transaction, error)
	InsertBudget(userID uint, category string, amount float64, month, year int) (*models.Budget, error)
	ListUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
}

// Gateway is the GORM-backed Store implementation. It may be constructed
// over a nil DB when the startup connection failed; the process stays up
// and every operation fails with the persistence sentinel instead.
type Gateway struct {
	db *gorm.DB
}

// New creates a Gateway over the given database handle. db may be nil.
func New(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// queryable returns the persistence sentinel when no database connection
// was ever established.
func (g *Gateway) queryable() error {
	if g.db == nil {
		return apperrors.Wrap(apperrors.ErrQueryFailed, errors.New("database connection not established"))
	}
	return nil
}

// InsertUser creates a user row and returns it with its generated id. A
// duplicate email surfaces the store's uniqueness violation as the
// uninterpreted persistence sentinel; classifying it is the handler's job.
func (g *Gateway) InsertUser(email, passwordHash string) (*models.User, error) {
	if err := g.queryable(); err != nil {
		return nil, err
	}

	user := &models.User{Email: email, Password: passwordHash}
	if err := g.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQueryFailed, err)
	}
	return user, nil
}

// FindUserByEmail retrieves a user by exact email match. No case
// normalization is applied.
func (g *Gateway) FindUserByEmail(email string) (*models.User, error) {
	if err := g.queryable(); err != nil {
		return nil, err
	}

	var user models.User
	if err := g.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrQueryFailed, err)
	}
	return &user, nil
}

// InsertTransaction creates a transaction row. Amount sign, type values,
// and user existence are left to the store's own constraints.
func (g *Gateway) InsertTransaction(userID uint, amount float64, category, txType string) (*models.Transaction, error) {
	if err := g.queryable(); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		UserID:   userID,
		Amount:   amount,
		Category: category,
		Type:     txType,
	}
	if err := g.db.Create(tx).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQueryFailed, err)
	}
	return tx, nil
}

// InsertBudget creates a budget row. Repeated calls for the same
// (user, category, month, year) insert additional rows; there is no upsert.
func (g *Gateway) InsertBudget(userID uint, category string, amount float64, month, year int) (*models.Budget, error) {
	if err := g.queryable(); err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Amount:   amount,
		Month:    month,
		Year:     year,
	}
	if err := g.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQueryFailed, err)
	}
	return budget, nil
}

// ListUsers returns a page of users ordered by id. Password hashes stay out
// of responses through the model's json tag.
func (g *Gateway) ListUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error) {
	if err := g.queryable(); err != nil {
		return nil, err
	}

	page.Normalize()

	var total int64
	if err := g.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQueryFailed, err)
	}

	var users []models.User
	if err := g.db.Order("id").Offset(page.Offset()).Limit(page.PageSize).Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQueryFailed, err)
	}

	resp := pagination.NewPageResponse(users, page, total)
	return &resp, nil
}
