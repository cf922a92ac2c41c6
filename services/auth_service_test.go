package services

import (
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ecotrack/wastenexus/mailingservices"
	"github.com/ecotrack/wastenexus/models"
)

func newTestAuthService(users ...*models.User) (AuthService, *fakeAuthRepo) {
	authRepo := newFakeAuthRepo(users...)
	return NewAuthService(authRepo, &mailingservices.Mailgun{}, testConfig()), authRepo
}

func TestSignupDefaultsToClientRole(t *testing.T) {
	svc, authRepo := newTestAuthService()

	user, err := svc.SignupUser(&models.User{
		Fullname: "Ada Obi",
		Username: "adaobi",
		Email:    "ada@example.com",
		Password: "s3cret-pass",
	}, "")
	if err != nil {
		t.Fatalf("SignupUser: %v", err)
	}

	clientRole, _ := authRepo.GetRoleByName(models.RoleClient)
	if user.RoleID != clientRole.ID {
		t.Error("expected signup without a role to default to client")
	}
	if user.HashedPassword == "" {
		t.Error("expected password to be hashed")
	}
	if user.Password != "" {
		t.Error("plaintext password must be cleared after signup")
	}
	if user.TotalPoints != 0 {
		t.Errorf("expected zero starting balance, got %d", user.TotalPoints)
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	existing := testUser(1, 0)
	svc, _ := newTestAuthService(existing)

	_, err := svc.SignupUser(&models.User{
		Fullname: "Other Ada",
		Username: "otherada",
		Email:    existing.Email,
		Password: "s3cret-pass",
	}, "")
	assertStatus(t, err, http.StatusConflict)
}

func TestSignupRejectsShortPassword(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.SignupUser(&models.User{
		Fullname: "Ada Obi",
		Username: "adaobi",
		Email:    "ada@example.com",
		Password: "abc",
	}, "")
	assertStatus(t, err, http.StatusBadRequest)
}

func TestSignupUnknownRole(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.SignupUser(&models.User{
		Fullname: "Ada Obi",
		Username: "adaobi",
		Email:    "ada@example.com",
		Password: "s3cret-pass",
	}, "overlord")
	assertStatus(t, err, http.StatusBadRequest)
}

func TestLoginUser(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}
	user := testUser(1, 120)
	user.HashedPassword = string(hashed)
	svc, _ := newTestAuthService(user)

	loginResponse, apiErr := svc.LoginUser(&models.LoginRequest{
		Email:    user.Email,
		Password: "s3cret-pass",
	})
	if apiErr != nil {
		t.Fatalf("LoginUser: %v", apiErr)
	}
	if loginResponse.AccessToken == "" || loginResponse.RefreshToken == "" {
		t.Error("expected both tokens on successful login")
	}
	if loginResponse.TotalPoints != 120 {
		t.Errorf("expected balance 120 in login response, got %d", loginResponse.TotalPoints)
	}

	_, apiErr = svc.LoginUser(&models.LoginRequest{Email: user.Email, Password: "wrong"})
	if apiErr == nil {
		t.Fatal("expected error for wrong password")
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong password, got %d", apiErr.Status)
	}

	_, apiErr = svc.LoginUser(&models.LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"})
	if apiErr == nil {
		t.Fatal("expected error for unknown email")
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for unknown email, got %d", apiErr.Status)
	}
}

func TestLoginBlockedUser(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	user := testUser(1, 0)
	user.HashedPassword = string(hashed)
	user.IsBlocked = true
	svc, _ := newTestAuthService(user)

	_, apiErr := svc.LoginUser(&models.LoginRequest{Email: user.Email, Password: "s3cret-pass"})
	if apiErr == nil {
		t.Fatal("expected error for blocked user")
	}
	if apiErr.Status != http.StatusForbidden {
		t.Errorf("expected 403 for blocked user, got %d", apiErr.Status)
	}
}
