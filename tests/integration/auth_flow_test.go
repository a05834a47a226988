package integration

import (
	"net/http"
	"testing"
	"time"

	"fintrack/internal/models"
)

func TestRegisterLoginFlow(t *testing.T) {
	app := setupApp(t)

	rec := app.do(http.MethodPost, "/register", `{"email":"alice@example.com","password":"hunter22"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "User created" {
		t.Errorf("register: expected non-committal body, got %q", rec.Body.String())
	}

	rec = app.do(http.MethodPost, "/login", `{"email":"alice@example.com","password":"hunter22"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	token, _ := decodeJSON(t, rec)["token"].(string)
	if token == "" {
		t.Fatal("login: expected a token")
	}

	// The token must verify to the id the store generated for this user.
	var user models.User
	if err := app.DB.Where("email = ?", "alice@example.com").First(&user).Error; err != nil {
		t.Fatalf("failed to load created user: %v", err)
	}
	userID, err := app.Tokens.Verify(token)
	if err != nil {
		t.Fatalf("token failed verification: %v", err)
	}
	if userID != user.ID {
		t.Errorf("expected token to encode user %d, got %d", user.ID, userID)
	}
}

func TestDuplicateEmailRegistration(t *testing.T) {
	app := setupApp(t)

	rec := app.do(http.MethodPost, "/register", `{"email":"dup@example.com","password":"first"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", rec.Code)
	}

	rec = app.do(http.MethodPost, "/register", `{"email":"dup@example.com","password":"second"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", rec.Code)
	}
	if rec.Body.String() != "Error creating user" {
		t.Errorf("duplicate register: expected generic body, got %q", rec.Body.String())
	}
}

func TestLoginFailureIndistinguishability(t *testing.T) {
	app := setupApp(t)

	rec := app.do(http.MethodPost, "/register", `{"email":"real@example.com","password":"the-real-one"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}

	wrongPassword := app.do(http.MethodPost, "/login", `{"email":"real@example.com","password":"not-it"}`)
	unknownEmail := app.do(http.MethodPost, "/login", `{"email":"ghost@example.com","password":"anything"}`)

	if wrongPassword.Code != http.StatusBadRequest || unknownEmail.Code != http.StatusBadRequest {
		t.Fatalf("expected 400/400, got %d/%d", wrongPassword.Code, unknownEmail.Code)
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Errorf("failure bodies must be identical: %q vs %q",
			wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

func TestSaltedHashes(t *testing.T) {
	app := setupApp(t)

	app.do(http.MethodPost, "/register", `{"email":"one@example.com","password":"shared-password"}`)
	app.do(http.MethodPost, "/register", `{"email":"two@example.com","password":"shared-password"}`)

	var users []models.User
	if err := app.DB.Order("id").Find(&users).Error; err != nil {
		t.Fatalf("failed to load users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Password == users[1].Password {
		t.Error("expected distinct stored hashes for the same password")
	}

	// Both must still log in with the shared plaintext.
	for _, email := range []string{"one@example.com", "two@example.com"} {
		rec := app.do(http.MethodPost, "/login", `{"email":"`+email+`","password":"shared-password"}`)
		if rec.Code != http.StatusOK {
			t.Errorf("login %s: expected 200, got %d", email, rec.Code)
		}
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	app := setupAppWithTTL(t, -time.Minute)

	app.do(http.MethodPost, "/register", `{"email":"late@example.com","password":"hunter22"}`)
	rec := app.do(http.MethodPost, "/login", `{"email":"late@example.com","password":"hunter22"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", rec.Code)
	}

	token, _ := decodeJSON(t, rec)["token"].(string)
	if _, err := app.Tokens.Verify(token); err == nil {
		t.Error("expected verification of an expired token to fail")
	}

	rec = app.do(http.MethodPost, "/refresh", `{"token":"`+token+`"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("refresh with expired token: expected 400, got %d", rec.Code)
	}
}

func TestRefreshFlow(t *testing.T) {
	app := setupApp(t)

	app.do(http.MethodPost, "/register", `{"email":"fresh@example.com","password":"hunter22"}`)
	rec := app.do(http.MethodPost, "/login", `{"email":"fresh@example.com","password":"hunter22"}`)
	token, _ := decodeJSON(t, rec)["token"].(string)

	rec = app.do(http.MethodPost, "/refresh", `{"token":"`+token+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	fresh, _ := decodeJSON(t, rec)["token"].(string)
	original, err := app.Tokens.Verify(token)
	if err != nil {
		t.Fatalf("original token invalid: %v", err)
	}
	refreshed, err := app.Tokens.Verify(fresh)
	if err != nil {
		t.Fatalf("refreshed token invalid: %v", err)
	}
	if original != refreshed {
		t.Errorf("refresh changed the user id: %d vs %d", original, refreshed)
	}
}

func TestBanner(t *testing.T) {
	app := setupApp(t)

	rec := app.do(http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "Personal Finance Tracker API" {
		t.Errorf("unexpected banner: %q", rec.Body.String())
	}
}
