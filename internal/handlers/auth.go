package handlers

import (
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/volunize-hub/backend/internal/middleware"
	"github.com/volunize-hub/backend/internal/models"
)

const tokenLifetime = 30 * 24 * time.Hour

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	firebaseAuth *auth.Client
	jwtSecret    string
	production   bool
}

// NewAuthHandler creates a new AuthHandler. firebaseAuthClient may be
// nil when Firebase credentials are not configured.
func NewAuthHandler(firebaseAuthClient *auth.Client, jwtSecret string, production bool) *AuthHandler {
	return &AuthHandler{
		firebaseAuth: firebaseAuthClient,
		jwtSecret:    jwtSecret,
		production:   production,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.POST("/jwt", h.IssueToken)
	e.POST("/logout", h.Logout)
	if h.firebaseAuth != nil {
		e.POST("/firebase-login", h.FirebaseLogin)
	}
}

// IssueToken signs a JWT for the submitted identity payload and sets
// it as the HTTP-only session cookie.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req models.IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.generateJWT(req.Email, req.Name)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	c.SetCookie(h.tokenCookie(token))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie := h.tokenCookie("")
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	c.SetCookie(cookie)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// FirebaseLogin verifies a Firebase ID token and issues the same
// session cookie for the verified identity. The web client signs
// volunteers in with Firebase Authentication and exchanges the ID
// token here.
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	var req models.FirebaseLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	decoded, err := h.firebaseAuth.VerifyIDToken(c.Request().Context(), req.IDToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired ID token")
	}

	email, _ := decoded.Claims["email"].(string)
	if email == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "ID token has no email claim")
	}
	name, _ := decoded.Claims["name"].(string)

	token, err := h.generateJWT(email, name)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	c.SetCookie(h.tokenCookie(token))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// generateJWT creates a signed token with the identity claims
func (h *AuthHandler) generateJWT(email, name string) (string, error) {
	claims := &models.JwtCustomClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}

// tokenCookie builds the session cookie. In production the frontend is
// served from another origin, so the cookie must be Secure with
// SameSite=None; locally Strict is enough.
func (h *AuthHandler) tokenCookie(value string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
	}
	if h.production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteStrictMode
	}
	return cookie
}
