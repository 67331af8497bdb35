package fiberlog

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestFiberLog(t *testing.T) {
	logger, hook := test.NewNullLogger()
	app := fiber.New()
	app.Use(New(Config{
		Logger: logger,
		Tags:   []string{TagStatus, TagMethod, TagPath, TagResBody, TagSession, "unknown"},
	}))
	app.Get("/api/v1/ok", func(c *fiber.Ctx) error {
		c.Locals(TagSession, "session-1")
		return c.SendString("ok")
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("nope")
	})
	app.Get("/download", func(c *fiber.Ctx) error {
		c.Attachment("report.json")
		return c.SendString("{}")
	})

	t.Run(`api request logged as info`, func(t *testing.T) {
		hook.Reset()
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/ok", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.InfoLevel, entry.Level)
		require.Equal(t, "запрос api", entry.Message)
		require.Equal(t, fiber.StatusOK, entry.Data[TagStatus])
		require.Equal(t, "/api/v1/ok", entry.Data[TagPath])
		require.Equal(t, "ok", entry.Data[TagResBody])
		require.Equal(t, "session-1", entry.Data[TagSession])
		_, exists := entry.Data["unknown"]
		require.False(t, exists)
	})

	t.Run(`client error logged as warning`, func(t *testing.T) {
		hook.Reset()
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil))
		require.NoError(t, err)
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.WarnLevel, entry.Level)
		require.Equal(t, "запрос страницы", entry.Message)
	})

	t.Run(`downloads are not logged in full`, func(t *testing.T) {
		hook.Reset()
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/download", nil))
		require.NoError(t, err)
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		_, exists := entry.Data[TagResBody]
		require.False(t, exists)
	})
}
