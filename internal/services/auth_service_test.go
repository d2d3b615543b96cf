package services

import (
	"errors"
	"testing"

	"github.com/marisolvale/weekling/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type userRepoStub struct {
	users     map[string]models.User
	nextID    uint
	createErr error
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: make(map[string]models.User), nextID: 1}
}

func (stub *userRepoStub) ExistsByNormalizedEmail(email string) (bool, error) {
	_, ok := stub.users[email]
	return ok, nil
}

func (stub *userRepoStub) FindByNormalizedEmail(email string) (models.User, error) {
	user, ok := stub.users[email]
	if !ok {
		return models.User{}, errors.New("not found")
	}
	return user, nil
}

func (stub *userRepoStub) FindByID(userID uint) (models.User, error) {
	for _, user := range stub.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, errors.New("not found")
}

func (stub *userRepoStub) Create(user *models.User) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	user.ID = stub.nextID
	stub.nextID++
	stub.users[user.Email] = *user
	return nil
}

func TestRegisterNormalizesEmailAndHashesPassword(t *testing.T) {
	t.Parallel()

	service := NewAuthService(newUserRepoStub())

	user, err := service.Register("  New.User@Example.COM ", "StrongPass1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "new.user@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.PasswordHash == "StrongPass1" || user.PasswordHash == "" {
		t.Fatal("expected hashed password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("StrongPass1")); err != nil {
		t.Fatalf("expected verifiable password hash: %v", err)
	}
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	t.Parallel()

	service := NewAuthService(newUserRepoStub())

	for _, email := range []string{"", "   ", "not-an-email", "missing@"} {
		if _, err := service.Register(email, "StrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
			t.Fatalf("register %q: expected ErrAuthCredentialsInvalid, got %v", email, err)
		}
	}
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	t.Parallel()

	service := NewAuthService(newUserRepoStub())
	if _, err := service.Register("taken@example.com", "StrongPass1"); err != nil {
		t.Fatalf("seed register: %v", err)
	}

	if _, err := service.Register("Taken@example.com", "OtherPass1"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "strong", password: "StrongPass1", valid: true},
		{name: "minimum length", password: "Abcdefg1", valid: true},
		{name: "too short", password: "Abc1", valid: false},
		{name: "no upper", password: "strongpass1", valid: false},
		{name: "no lower", password: "STRONGPASS1", valid: false},
		{name: "no digit", password: "StrongPassword", valid: false},
	}

	for _, testCase := range cases {
		err := ValidatePasswordStrength(testCase.password)
		if testCase.valid && err != nil {
			t.Fatalf("%s: expected valid password, got %v", testCase.name, err)
		}
		if !testCase.valid && !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("%s: expected ErrWeakPassword, got %v", testCase.name, err)
		}
	}
}

func TestAuthenticateVerifiesPassword(t *testing.T) {
	t.Parallel()

	service := NewAuthService(newUserRepoStub())
	registered, err := service.Register("login@example.com", "StrongPass1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := service.Authenticate("Login@Example.com", "StrongPass1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected registered user %d, got %d", registered.ID, user.ID)
	}

	if _, err := service.Authenticate("login@example.com", "WrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for wrong password, got %v", err)
	}
	if _, err := service.Authenticate("unknown@example.com", "StrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for unknown user, got %v", err)
	}
}
