package util

import (
	"testing"
	"time"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Email: "a@b.com", Role: model.RoleCounselor}
	user.ID = 42

	token, err := GenerateJWT(user, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 42 || claims.Role != model.RoleCounselor || claims.Email != "a@b.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	user := &model.User{Email: "a@b.com", Role: model.RoleUser}
	user.ID = 1

	token, err := GenerateJWT(user, "secret-one", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(token, "secret-two"); err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}
