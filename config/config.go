package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		BodyLimit  int64  `default:"1048576" env:"APP_BODY_LIMIT"` // байт
	}
	Assessment struct {
		Title       string `default:"Digital Marketing Interview Assessment" env:"ASSESSMENT_TITLE"`
		CatalogFile string `default:"" env:"ASSESSMENT_CATALOG_FILE"` // пусто - встроенный каталог
	}
	Session struct {
		TTLMinutes             int   `default:"720" env:"SESSION_TTL_MINUTES"`
		CleanupIntervalMinutes int   `default:"10" env:"SESSION_CLEANUP_INTERVAL_MINUTES"`
		SecureCookie           *bool `default:"false" env:"SESSION_SECURE_COOKIE"`
	}
	Swagger struct {
		Enabled  *bool  `default:"true" env:"SWAGGER_ENABLED"`
		FilePath string `default:"./docs/swagger.json" env:"SWAGGER_FILE"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
