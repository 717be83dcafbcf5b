package middleware

import (
	"AgentDock/internal/session"
	contextPkg "AgentDock/pkg/context"
	jwtPkg "AgentDock/pkg/jwt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const SessionKey = "console_session"

// NewSessionMiddleware verifies the console session token and hydrates the
// session from storage before any handler runs. A browser with no valid
// token is told to log in; no backend request happens on its behalf.
func (m *middleware) NewSessionMiddleware(ctx *fiber.Ctx) error {
	sessionID, err := jwtPkg.SessionIDFromRequest(ctx)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": err.Error(),
		}).Debug("Session token rejected")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":    "session required",
			"redirect": "/login",
		})
	}

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	sess, err := m.sessions.Resolve(c, sessionID)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": err.Error(),
		}).Error("Session state unavailable")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "session state unavailable",
		})
	}

	ctx.Locals(SessionKey, sess)
	return ctx.Next()
}

// NewTenantMiddleware runs after the session middleware on every tenant-
// scoped route. Sessions that never finished signup get redirected before
// anything touches the backend.
func (m *middleware) NewTenantMiddleware(ctx *fiber.Ctx) error {
	sess := m.GetSession(ctx)
	if sess == nil || !sess.Loaded() || sess.TenantID() == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":    "tenant required",
			"redirect": "/login",
		})
	}

	return ctx.Next()
}

func (m *middleware) GetSession(ctx *fiber.Ctx) *session.Session {
	sess, ok := ctx.Locals(SessionKey).(*session.Session)
	if !ok {
		return nil
	}
	return sess
}
