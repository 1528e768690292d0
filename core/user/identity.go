package user

import (
	"github.com/dgrijalva/jwt-go"
)

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	ID    int    `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Identity is who the bearer token says the caller is. It is a plain claims
// read: nothing here is signature-checked, so authorization decisions stay
// server-side and these fields are display hints only.
type Identity struct {
	ID    int
	Name  string
	Email string
	Role  string
}

func (id *Identity) IsStudent() bool { return id.Role == RoleStudent }
func (id *Identity) IsDoctor() bool  { return id.Role == RoleDoctor }
func (id *Identity) IsAdmin() bool   { return id.Role == RoleAdmin }

// DecodeIdentity decodes the payload segment of a compact JWT into an
// Identity without verifying the signature or expiry. A malformed token
// yields nil, never an error; callers treat nil as "not authenticated".
func DecodeIdentity(token string) *Identity {
	claims := new(Claims)
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}
	return &Identity{
		ID:    claims.ID,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}
}
