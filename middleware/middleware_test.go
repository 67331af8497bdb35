package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	assessmentstore "interview-assessment/lib/assessment-store"
	"interview-assessment/lib/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestAssessmentSession(t *testing.T) {
	assessmentstore.Instance = assessmentstore.NewInstance(catalog.Default(), time.Hour, time.Now)
	app := fiber.New()
	app.Use(AssessmentSession(false, time.Hour))
	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString(GetSessionID(ctx))
	})

	var sessionID string
	t.Run(`new browser gets cookie`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		cookies := resp.Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, SessionCookieName, cookies[0].Name)
		require.True(t, cookies[0].HttpOnly)
		sessionID = cookies[0].Value
		require.Equal(t, 1, assessmentstore.Instance.Count())
	})

	t.Run(`known cookie is reused`, func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set("Cookie", SessionCookieName+"="+sessionID)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Empty(t, resp.Cookies())
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, sessionID, string(body))
		require.Equal(t, 1, assessmentstore.Instance.Count())
	})

	t.Run(`unknown cookie is replaced`, func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set("Cookie", SessionCookieName+"=stale")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Len(t, resp.Cookies(), 1)
		require.NotEqual(t, "stale", resp.Cookies()[0].Value)
	})
}

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(10))
	app.Post("/", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusNoContent)
	})

	t.Run(`small body passes`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader("short")))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run(`large body rejected`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader("this body is too long")))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	})
}
