package middleware

import (
	"time"

	"interview-assessment/fiberlog"
	assessmentstore "interview-assessment/lib/assessment-store"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const (
	SessionCookieName = "ASSESSMENT_SESSION"
	sessionLocalsKey  = fiberlog.TagSession
)

// AssessmentSession привязывает браузер к форме оценки через cookie.
// Если форма не найдена (истекла или сервис перезапущен) - создаётся новая.
func AssessmentSession(secure bool, ttl time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		cookieID := ctx.Cookies(SessionCookieName)
		id, _, created := assessmentstore.Instance.Ensure(cookieID)
		if created {
			if cookieID != "" {
				log.WithField("session_id", cookieID).Info("форма оценки не найдена, создана новая")
			}
			cookie := &fiber.Cookie{
				Name:     SessionCookieName,
				Value:    id,
				Path:     "/",
				HTTPOnly: true,
				Secure:   secure,
				SameSite: fiber.CookieSameSiteLaxMode,
			}
			if ttl > 0 {
				cookie.Expires = time.Now().Add(ttl)
			}
			ctx.Cookie(cookie)
		}
		ctx.Locals(sessionLocalsKey, id)
		return ctx.Next()
	}
}

func GetSessionID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals(sessionLocalsKey).(string); ok {
		return id
	}
	return ""
}
