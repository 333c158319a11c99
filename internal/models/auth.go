package models

import "github.com/golang-jwt/jwt/v4"

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// IssueTokenRequest defines the identity payload posted to /jwt
type IssueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty"`
}

// FirebaseLoginRequest defines the body for exchanging a Firebase ID
// token for the cookie session token
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}
