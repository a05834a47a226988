package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fintrack/internal/auth"
	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/store"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
	Tokens *auth.TokenIssuer
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

// setupIsolatedDB creates an isolated in-memory SQLite database.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Transaction{}, &models.Budget{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp wires the full stack the way cmd/api does, over an isolated
// in-memory database. An optional tokenTTL override lets expiry tests issue
// already-dead tokens.
func setupApp(t *testing.T) *testApp {
	t.Helper()
	return setupAppWithTTL(t, time.Hour)
}

func setupAppWithTTL(t *testing.T, ttl time.Duration) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	gateway := store.New(db)
	hasher := auth.NewHasherWithCost(bcrypt.MinCost)
	tokens := auth.NewTokenIssuer("integration-secret", ttl)

	authHandler := handlers.NewAuthHandler(gateway, hasher, tokens)
	transactionHandler := handlers.NewTransactionHandler(gateway)
	budgetHandler := handlers.NewBudgetHandler(gateway)
	userHandler := handlers.NewUserHandler(gateway)

	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Personal Finance Tracker API")
	})
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.POST("/refresh", authHandler.Refresh)
	router.POST("/transactions", transactionHandler.AddTransaction)
	router.POST("/budgets", budgetHandler.SetBudget)
	router.GET("/users", userHandler.ListUsers)

	return &testApp{DB: db, Router: router, Tokens: tokens}
}

func (app *testApp) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
