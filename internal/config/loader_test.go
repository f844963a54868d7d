package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gigflow/internal/config"

	"github.com/smartystreets/goconvey/convey"
)

var configEnvVars = []string{
	"GIGFLOW_CONFIG",
	"GIGFLOW_ADDR",
	"GIGFLOW_LOG_LEVEL",
	"GIGFLOW_SHUTDOWN_TIMEOUT",
	"GIGFLOW_STORAGE__DRIVER",
	"GIGFLOW_POSTGRES__URL",
	"GIGFLOW_NOTIFIER__DRIVER",
	"GIGFLOW_REDIS__ADDR",
	"GIGFLOW_REDIS__INBOX_SIZE",
	"GIGFLOW_RATE_LIMIT__BURST",
}

func clearConfigEnvVars() {
	for _, name := range configEnvVars {
		_ = os.Unsetenv(name)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should use the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.Storage.Driver, convey.ShouldEqual, config.StorageMemory)
				convey.So(cfg.Notifier.Driver, convey.ShouldEqual, config.NotifierMemory)
				convey.So(cfg.ShutdownTimeout, convey.ShouldEqual, 30*time.Second)
				convey.So(cfg.Redis.InboxSize, convey.ShouldEqual, 100)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("GIGFLOW_ADDR", ":9090")
			_ = os.Setenv("GIGFLOW_SHUTDOWN_TIMEOUT", "5s")
			_ = os.Setenv("GIGFLOW_NOTIFIER__DRIVER", "redis")
			_ = os.Setenv("GIGFLOW_REDIS__ADDR", "cache:6379")
			_ = os.Setenv("GIGFLOW_REDIS__INBOX_SIZE", "25")
			_ = os.Setenv("GIGFLOW_RATE_LIMIT__BURST", "3")

			cfg, err := config.Load(ctx)

			convey.Convey("Then env vars override defaults, nested keys included", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.ShutdownTimeout, convey.ShouldEqual, 5*time.Second)
				convey.So(cfg.Notifier.Driver, convey.ShouldEqual, config.NotifierRedis)
				convey.So(cfg.Redis.Addr, convey.ShouldEqual, "cache:6379")
				convey.So(cfg.Redis.InboxSize, convey.ShouldEqual, 25)
				convey.So(cfg.Redis.KeyPrefix, convey.ShouldEqual, "gigflow")
				convey.So(cfg.RateLimit.Burst, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			path := filepath.Join(t.TempDir(), "gigflow.yaml")
			content := []byte("addr: \":7070\"\nlog_level: debug\nstorage:\n  driver: postgres\npostgres:\n  url: postgres://u:p@db:5432/gigflow?sslmode=disable\n")
			convey.So(os.WriteFile(path, content, 0o600), convey.ShouldBeNil)
			_ = os.Setenv("GIGFLOW_CONFIG", path)

			convey.Convey("Then file values are applied", func() {
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.Storage.Driver, convey.ShouldEqual, config.StoragePostgres)
				convey.So(cfg.Postgres.URL, convey.ShouldStartWith, "postgres://")
				convey.So(cfg.Postgres.MaxOpenConns, convey.ShouldEqual, 10)
			})

			convey.Convey("Then env vars still win over the file", func() {
				_ = os.Setenv("GIGFLOW_ADDR", ":6060")
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("GIGFLOW_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			_, err := config.Load(ctx)

			convey.Convey("Then a load error is returned", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When postgres is selected without a url", func() {
			_ = os.Setenv("GIGFLOW_STORAGE__DRIVER", "postgres")

			_, err := config.Load(ctx)

			convey.Convey("Then validation fails", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}
