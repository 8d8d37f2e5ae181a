package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/monochrome-todo/core/internal/application/services"
	"github.com/monochrome-todo/core/internal/domain/entities"
	"github.com/monochrome-todo/core/internal/infrastructure/config"
	"github.com/monochrome-todo/core/internal/infrastructure/logger"
	"github.com/monochrome-todo/core/internal/ports"
)

func newAuthService(repo *memUserRepo) *services.AuthService {
	cfg := config.JWTConfig{
		Secret:    "test-secret",
		ExpiresIn: time.Hour,
		Issuer:    "monochrome-test",
	}
	return services.NewAuthService(repo, cfg, logger.NewNop())
}

func TestSignupSigninRoundTrip(t *testing.T) {
	svc := newAuthService(newMemUserRepo())
	ctx := context.Background()

	signup, err := svc.Signup(ctx, ports.SignupRequest{Email: "gym@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if signup.Token == "" {
		t.Fatal("signup returned empty token")
	}
	if signup.User.Email != "gym@example.com" {
		t.Errorf("unexpected email: %s", signup.User.Email)
	}

	signin, err := svc.Signin(ctx, ports.SigninRequest{Email: "gym@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Signin: %v", err)
	}

	claims, err := svc.ValidateToken(signin.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != signup.User.ID {
		t.Errorf("token subject %s does not match account id %s", claims.UserID, signup.User.ID)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, ports.SignupRequest{Email: "dup@example.com", Password: "password123"}); err != nil {
		t.Fatalf("first Signup: %v", err)
	}

	_, err := svc.Signup(ctx, ports.SignupRequest{Email: "dup@example.com", Password: "otherpassword"})
	if !errors.Is(err, entities.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	if len(repo.users) != 1 {
		t.Errorf("expected a single account, got %d", len(repo.users))
	}
}

func TestSigninRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(newMemUserRepo())
	ctx := context.Background()

	if _, err := svc.Signup(ctx, ports.SignupRequest{Email: "a@example.com", Password: "password123"}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if _, err := svc.Signin(ctx, ports.SigninRequest{Email: "a@example.com", Password: "wrong-password"}); !errors.Is(err, entities.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := svc.Signin(ctx, ports.SigninRequest{Email: "nobody@example.com", Password: "password123"}); !errors.Is(err, entities.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	signup, err := svc.Signup(ctx, ports.SignupRequest{Email: "gone@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	deleted, err := svc.DeleteUser(ctx, "gone@example.com")
	if err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if deleted.ID != signup.User.ID {
		t.Errorf("deleted id %s does not match account id %s", deleted.ID, signup.User.ID)
	}

	if _, err := svc.DeleteUser(ctx, "gone@example.com"); !errors.Is(err, entities.ErrUserNotFound) {
		t.Errorf("second delete: expected ErrUserNotFound, got %v", err)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	repo := newMemUserRepo()
	expired := services.NewAuthService(repo, config.JWTConfig{
		Secret:    "test-secret",
		ExpiresIn: -time.Minute,
		Issuer:    "monochrome-test",
	}, logger.NewNop())

	resp, err := expired.Signup(context.Background(), ports.SignupRequest{Email: "e@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if _, err := expired.ValidateToken(resp.Token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newAuthService(newMemUserRepo())

	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("expected malformed token to be rejected")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthService(repo)

	resp, err := svc.Signup(context.Background(), ports.SignupRequest{Email: "s@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	other := services.NewAuthService(repo, config.JWTConfig{
		Secret:    "a-different-secret",
		ExpiresIn: time.Hour,
		Issuer:    "monochrome-test",
	}, logger.NewNop())

	if _, err := other.ValidateToken(resp.Token); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}
