package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MateusDuran/FinancasDX/internal/models"
)

func loginBody(password string) string {
	return fmt.Sprintf(`{"email":%q,"password":%q}`, testEmail, password)
}

func TestLogin_Success(t *testing.T) {
	r, db := newTestRouter(t)
	seedTestUser(t, db)

	w := doRequest(r, http.MethodPost, "/api/auth/login", loginBody(testPassword), "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "token") {
		t.Error("login response carries no token")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	r, db := newTestRouter(t)
	seedTestUser(t, db)

	w := doRequest(r, http.MethodPost, "/api/auth/login", loginBody("wrong"), "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("login status = %d, want 401", w.Code)
	}
}

func TestLogin_LockoutAfterFiveFailures(t *testing.T) {
	r, db := newTestRouter(t)
	seedTestUser(t, db)

	// five consecutive failures trip the lock
	for i := 0; i < 5; i++ {
		w := doRequest(r, http.MethodPost, "/api/auth/login", loginBody("wrong"), "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("failure %d: status = %d, want 401", i+1, w.Code)
		}
	}

	// even the correct password is refused while locked
	w := doRequest(r, http.MethodPost, "/api/auth/login", loginBody(testPassword), "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("locked login status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "locked") {
		t.Errorf("locked login message = %s, want a lock notice", w.Body.String())
	}

	var user models.User
	if err := db.Where("email = ?", testEmail).First(&user).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if user.LockedUntil == nil {
		t.Fatal("LockedUntil not set after five failures")
	}
	remaining := time.Until(*user.LockedUntil)
	if remaining <= 0 || remaining > 10*time.Minute {
		t.Errorf("lock duration = %v, want within (0, 10m]", remaining)
	}

	// once the lock expires the correct password works again
	past := time.Now().Add(-time.Minute)
	if err := db.Model(&user).Update("locked_until", past).Error; err != nil {
		t.Fatalf("expire lock: %v", err)
	}

	w = doRequest(r, http.MethodPost, "/api/auth/login", loginBody(testPassword), "")
	if w.Code != http.StatusOK {
		t.Errorf("login after lock expiry status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/auth/login",
		`{"email":"ghost@email.com","password":"1234"}`, "")
	// invalid credentials, not a 404: login must not reveal which
	// accounts exist
	if w.Code != http.StatusUnauthorized {
		t.Errorf("login status = %d, want 401", w.Code)
	}
}

func TestRegister_ThenLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/auth/register",
		`{"national_id":"87040351005","name":"Nova Conta","email":"nova@email.com","password":"abcd"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("register status = %d, want 200: %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodPost, "/api/auth/login",
		`{"email":"nova@email.com","password":"abcd"}`, "")
	if w.Code != http.StatusOK {
		t.Errorf("login after register status = %d, want 200: %s", w.Code, w.Body.String())
	}
}
