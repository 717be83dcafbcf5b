package jwtPkg

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	SessionSecretEnv = "CONSOLE_SESSION_SECRET"
	SessionCookie    = "agentdock_session"
	SessionHeader    = "X-Console-Session"
)

// SignSession wraps a console session ID in a signed token. The console does
// not issue upstream auth tokens; those come from the backend and are only
// stored per session.
func SignSession(sessionID string, expiresIn time.Duration) (string, int64, error) {
	expiredAt := time.Now().Add(expiresIn).Unix()

	secret := os.Getenv(SessionSecretEnv)
	if secret == "" {
		return "", 0, fmt.Errorf("%s not set", SessionSecretEnv)
	}

	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": expiredAt,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		logrus.WithError(err).Error("Failed to sign session token")
		return "", 0, err
	}

	return signed, expiredAt, nil
}

// SessionIDFromRequest extracts and verifies the console session token from
// the session cookie or the X-Console-Session header.
func SessionIDFromRequest(c *fiber.Ctx) (string, error) {
	raw := c.Cookies(SessionCookie)
	if raw == "" {
		raw = strings.TrimSpace(c.Get(SessionHeader))
	}
	if raw == "" {
		return "", errors.New("no session token")
	}

	secret := os.Getenv(SessionSecretEnv)
	if secret == "" {
		return "", errors.New("session secret not configured")
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid session claims")
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errors.New("session claims missing sid")
	}

	return sid, nil
}

// ExpiresWithin reports whether a bearer token issued by the backend expires
// within the given window. The signature is the backend's business, so the
// claims are read without verification. Opaque tokens that do not parse
// report false; only a readable exp claim justifies refreshing early.
func ExpiresWithin(raw string, window time.Duration) bool {
	if raw == "" {
		return true
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return time.Until(exp.Time) < window
}
