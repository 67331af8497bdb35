package cleanupworker

import (
	"context"
	"testing"
	"time"

	assessmentstore "interview-assessment/lib/assessment-store"
	"interview-assessment/lib/catalog"
	baseworker "interview-assessment/lib/utils/base-worker"

	"github.com/stretchr/testify/require"
)

func TestCleanup(t *testing.T) {
	t.Run(`evicts idle forms`, func(t *testing.T) {
		store := assessmentstore.NewInstance(catalog.Default(), time.Minute, time.Now)
		store.Create()
		store.Create()
		base := baseworker.NewInstance(workerName, time.Second, time.Second)

		require.Equal(t, 0, Cleanup(store, time.Now(), base))
		require.Equal(t, 2, Cleanup(store, time.Now().Add(2*time.Minute), base))
		require.Equal(t, 0, store.Count())
	})

	t.Run(`worker stops with context`, func(t *testing.T) {
		store := assessmentstore.NewInstance(catalog.Default(), time.Nanosecond, time.Now)
		store.Create()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		StartWorker(ctx, store, 5*time.Millisecond)
		require.Eventually(t, func() bool { return store.Count() == 0 }, 5*time.Second, 10*time.Millisecond)
	})
}
