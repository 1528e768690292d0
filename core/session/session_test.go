package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dgrijalva/jwt-go"

	"github.com/medhistory/medhistory/core/user"
)

func signToken(t *testing.T, claims user.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing token failed: %v", err)
	}
	return token
}

func TestStoreLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medhistory", "session.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if s.IsAuthenticated() {
		t.Error("fresh store should not be authenticated")
	}
	if s.Identity() != nil {
		t.Error("fresh store should have no identity")
	}

	usr := user.User{ID: 7, Name: "Doc", Email: "doc@test.cd", Role: user.RoleDoctor}
	token := signToken(t, user.Claims{ID: usr.ID, Email: usr.Email, Role: usr.Role})
	if err := s.SetLogin(token, usr); err != nil {
		t.Fatalf("SetLogin() failed: %v", err)
	}
	if err := s.SetProfileImage("data:image/png;base64,aGk="); err != nil {
		t.Fatalf("SetProfileImage() failed: %v", err)
	}

	// a reopened store sees the persisted state
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("Open() after login failed: %v", err)
	}
	if s2.Token() != token {
		t.Errorf("Token() = %q, want persisted token", s2.Token())
	}
	if got := s2.User(); got == nil || got.Email != usr.Email {
		t.Errorf("User() = %+v, want %+v", got, usr)
	}
	if got := s2.ProfileImage(); got != "data:image/png;base64,aGk=" {
		t.Errorf("ProfileImage() = %q", got)
	}
	id := s2.Identity()
	if id == nil || id.ID != usr.ID || !id.IsDoctor() {
		t.Errorf("Identity() = %+v, want doctor id=7", id)
	}

	if err := s2.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if s2.IsAuthenticated() {
		t.Error("cleared store should not be authenticated")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("session file should be removed, got err=%v", err)
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if s.IsAuthenticated() {
		t.Error("corrupt session should be treated as logged out")
	}
}
