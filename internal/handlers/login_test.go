package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"diplomabuilder/models"
)

func TestLoginRendersForm(t *testing.T) {
	sm, cleanupSession := withTestSessionManager(t)
	t.Cleanup(cleanupSession)

	req := loadSession(t, sm, httptest.NewRequest(http.MethodGet, "/login", nil))
	rr := httptest.NewRecorder()
	Login(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `action="/login"`) {
		t.Fatal("expected login form markup")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db, cleanupDB := withTestDatabase(t)
	t.Cleanup(cleanupDB)
	sm, cleanupSession := withTestSessionManager(t)
	t.Cleanup(cleanupSession)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.Create(&models.User{Email: "grad@example.com", PasswordHash: string(hash)}).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	form := url.Values{}
	form.Set("email", "grad@example.com")
	form.Set("password", "wrong")
	req := postForm(t, "/login", form)
	ctx, err := sm.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session: %v", err)
	}
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	Login(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected re-rendered form, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Invalid email or password.") {
		t.Fatal("expected credential failure message")
	}
	if ActiveSession(req) {
		t.Fatal("expected no session after failed login")
	}
}

func TestSignupCreatesAccountAndRedirects(t *testing.T) {
	db, cleanupDB := withTestDatabase(t)
	t.Cleanup(cleanupDB)
	sm, cleanupSession := withTestSessionManager(t)
	t.Cleanup(cleanupSession)

	form := url.Values{}
	form.Set("name", "Jordan Hale")
	form.Set("email", "jordan@example.com")
	form.Set("password", "longenough1")
	form.Set("confirm_password", "longenough1")
	req := postForm(t, "/signup", form)
	ctx, err := sm.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session: %v", err)
	}
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	Signup(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after signup, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/builder" {
		t.Fatalf("expected redirect to /builder, got %q", loc)
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", "jordan@example.com").Count(&count)
	if count != 1 {
		t.Fatalf("expected account persisted, count=%d", count)
	}
	if !ActiveSession(req) {
		t.Fatal("expected session established after signup")
	}
}

func TestSignupRejectsShortPassword(t *testing.T) {
	_, cleanupDB := withTestDatabase(t)
	t.Cleanup(cleanupDB)
	_, cleanupSession := withTestSessionManager(t)
	t.Cleanup(cleanupSession)

	form := url.Values{}
	form.Set("email", "short@example.com")
	form.Set("password", "short")
	form.Set("confirm_password", "short")

	rr := httptest.NewRecorder()
	Signup(rr, postForm(t, "/signup", form))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected re-rendered form, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Password must be at least 8 characters long.") {
		t.Fatal("expected password length message")
	}
}
