package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"interview-assessment/config"
	formpage "interview-assessment/controllers/form"
	apiv1 "interview-assessment/controllers/v1"
	"interview-assessment/fiberlog"
	"interview-assessment/initializers"
	"interview-assessment/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: int(config.Conf.App.BodyLimit),
		Immutable: true, // значения запроса сохраняются в формах оценки
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())

	if *config.Conf.Swagger.Enabled {
		if _, err := os.Stat(config.Conf.Swagger.FilePath); err == nil {
			app.Use(swagger.New(swagger.Config{
				Path:     "/swagger",
				FilePath: config.Conf.Swagger.FilePath,
			}))
		} else {
			log.WithError(err).Warn("swagger отключен: файл описания не найден")
		}
	}

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	//api
	apiV1 := fiber.New(fiber.Config{Immutable: true})
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, PUT",
	}))
	apiV1.Use(middleware.WithBodyLimit(config.Conf.App.BodyLimit))
	app.Mount("/api/v1", apiV1)
	apiv1.InitCatalogApiRouters(apiV1)
	apiv1.InitAssessmentApiRouters(apiV1, config.Conf.Assessment.Title)

	//html форма
	ttl := time.Duration(config.Conf.Session.TTLMinutes) * time.Minute
	formpage.InitFormPageRouters(app, config.Conf.Assessment.Title,
		fiberlog.New(*initializers.LoggerConfig),
		middleware.AssessmentSession(*config.Conf.Session.SecureCookie, ttl),
	)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
