package cleanupworker

import (
	"context"
	"time"

	assessmentstore "interview-assessment/lib/assessment-store"
	baseworker "interview-assessment/lib/utils/base-worker"
)

const workerName = "assessment_session_cleanup"

// StartWorker - удаление форм, по которым давно не было действий
func StartWorker(ctx context.Context, store assessmentstore.Provider, interval time.Duration) {
	base := baseworker.NewInstance(workerName, interval, interval)
	go base.Run(ctx, func(ctx context.Context) {
		Cleanup(store, time.Now(), base)
	})
}

func Cleanup(store assessmentstore.Provider, now time.Time, base *baseworker.BaseImpl) int {
	evicted := store.EvictIdle(now)
	if evicted > 0 {
		base.GetLogger().
			WithField("evicted", evicted).
			WithField("active", store.Count()).
			Info("удалены неактивные формы оценки")
	}
	return evicted
}
