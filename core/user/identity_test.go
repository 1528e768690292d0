package user

import (
	"testing"

	"github.com/dgrijalva/jwt-go"
)

func buildToken(payload string) string {
	header := jwt.EncodeSegment([]byte(`{"alg":"HS256","typ":"JWT"}`))
	return header + "." + jwt.EncodeSegment([]byte(payload)) + ".sig"
}

func TestDecodeIdentity(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  *Identity
	}{
		{name: "empty token", token: ""},
		{name: "not a token", token: "not-a-token"},
		{name: "two segments only", token: "abc.def"},
		{name: "garbage payload", token: buildToken("lol-not-json")},
		{
			name:  "doctor claims",
			token: buildToken(`{"id":7,"role":"doctor"}`),
			want:  &Identity{ID: 7, Role: RoleDoctor},
		},
		{
			name:  "full claims",
			token: buildToken(`{"id":3,"name":"Ada","email":"ada@test.cd","role":"student"}`),
			want:  &Identity{ID: 3, Name: "Ada", Email: "ada@test.cd", Role: RoleStudent},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeIdentity(tt.token)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("DecodeIdentity() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("DecodeIdentity() = nil, want identity")
			}
			if *got != *tt.want {
				t.Errorf("DecodeIdentity() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeIdentityRoundTrip(t *testing.T) {
	usr := User{ID: 42, Name: "Mireille", Email: "mireille@test.cd", Role: RoleAdmin}
	claims := Claims{ID: usr.ID, Name: usr.Name, Email: usr.Email, Role: usr.Role}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing token failed: %v", err)
	}

	id := DecodeIdentity(token)
	if id == nil {
		t.Fatal("DecodeIdentity() = nil, want identity")
	}
	if id.ID != usr.ID || id.Name != usr.Name || id.Email != usr.Email || id.Role != usr.Role {
		t.Errorf("DecodeIdentity() = %+v, want claims from %+v", id, usr)
	}
	if !id.IsAdmin() {
		t.Error("IsAdmin() = false, want true")
	}
}
