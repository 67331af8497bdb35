package initializers

import (
	"context"
	"time"

	"interview-assessment/config"
	"interview-assessment/fiberlog"
	assessmentstore "interview-assessment/lib/assessment-store"
	cleanupworker "interview-assessment/lib/assessment-store/cleanup-worker"
	"interview-assessment/lib/catalog"
	xlsexport "interview-assessment/lib/export/xls"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitCatalog()
	assessmentstore.NewHandler(catalog.Instance, time.Duration(config.Conf.Session.TTLMinutes)*time.Minute)
	xlsexport.NewHandler()
	go initWorkers(ctx)
}

func InitCatalog() {
	if err := catalog.NewHandler(config.Conf.Assessment.CatalogFile); err != nil {
		panic(err.Error())
	}
	log.WithField("sections", catalog.Instance.Len()).Info("каталог оценки загружен")
}

func initWorkers(ctx context.Context) {
	// Задача удаления неактивных форм оценки
	interval := time.Duration(config.Conf.Session.CleanupIntervalMinutes) * time.Minute
	if interval <= 0 {
		log.Warn("удаление неактивных форм отключено")
		return
	}
	cleanupworker.StartWorker(ctx, assessmentstore.Instance, interval)
}
