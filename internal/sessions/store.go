// Package sessions implements cookie-backed login sessions. The session state
// lives entirely in an HMAC-signed token carried by an HTTP-only cookie, so
// nothing survives a process restart and no server-side session table exists.
package sessions

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "sessao"

const userIDClaim = "usuario_id"

// Store issues and verifies signed session tokens tied to the app secret.
type Store struct {
	secret []byte
	ttl    time.Duration
}

// NewStore creates a session store. Every session expires after ttl.
func NewStore(secret string, ttl time.Duration) *Store {
	return &Store{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token holding the authenticated user's ID.
func (s *Store) Issue(userID uint) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		userIDClaim: userID,
		"jti":       uuid.New().String(),
		"iat":       now.Unix(),
		"exp":       now.Add(s.ttl).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies a token and extracts the user ID it was issued for.
func (s *Store) Parse(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid session token")
	}

	// MapClaims stores numbers as float64.
	id, ok := claims[userIDClaim].(float64)
	if !ok || id <= 0 {
		return 0, fmt.Errorf("session token missing user ID")
	}
	return uint(id), nil
}

// Login establishes a session for userID on the current response.
func (s *Store) Login(c *fiber.Ctx, userID uint) error {
	token, err := s.Issue(userID)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  time.Now().Add(s.ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// Logout clears the session cookie unconditionally.
func (s *Store) Logout(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// CurrentUserID returns the authenticated user's ID for the current request,
// or false when there is no valid session.
func (s *Store) CurrentUserID(c *fiber.Ctx) (uint, bool) {
	token := c.Cookies(CookieName)
	if token == "" {
		return 0, false
	}
	id, err := s.Parse(token)
	if err != nil {
		return 0, false
	}
	return id, true
}
