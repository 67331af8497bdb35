package initializers

import (
	"testing"

	"interview-assessment/fiberlog"

	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	cfg := InitLogger()

	t.Run(`access log has no bodies`, func(t *testing.T) {
		require.NotContains(t, cfg.Tags, fiberlog.TagBody)
		require.NotContains(t, cfg.Tags, fiberlog.TagResBody)
	})

	t.Run(`access log keeps request identity`, func(t *testing.T) {
		require.Contains(t, cfg.Tags, fiberlog.TagStatus)
		require.Contains(t, cfg.Tags, fiberlog.TagSession)
		require.Contains(t, cfg.Tags, fiberlog.RequestID)
	})
}
