package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flavorverse/cmd"
	"flavorverse/internal/adapters/out/postgres/orderrepo"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	slogecho "github.com/samber/slog-echo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	setupLogger(configs)
	slog.InfoContext(ctx, "launching", slog.String("app", configs.App.Name), slog.String("env", configs.App.Env))

	gormDB := mustOpenDatabase(configs.Database)

	app := cmd.NewCompositionRoot(*configs, gormDB)
	startWebServer(ctx, app, configs.HTTP)
}

func setupLogger(configs *cmd.Config) {
	opts := &slog.HandlerOptions{Level: configs.Log.SlogLevel()}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if configs.IsDevelopment() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler).With(slog.String("app", configs.App.Name)))
}

func mustOpenDatabase(settings cmd.DatabaseSettings) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(settings.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(settings.MaxOpenConns)

	if settings.AutoMigrate {
		if err = orderrepo.Migrate(gormDB); err != nil {
			log.Fatalf("failed to migrate orders table: %v", err)
		}
	}
	return gormDB
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, settings cmd.HTTPSettings) {
	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(slogecho.New(slog.Default()))
	e.Use(middleware.Recover())

	if err := app.MountRoutes(e); err != nil {
		log.Fatalf("failed to mount routes: %v", err)
	}

	errChan := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "listening for requests", slog.String("ip", settings.IP), slog.String("port", settings.Port))
		errChan <- e.Start(fmt.Sprintf("%s:%s", settings.IP, settings.Port))
	}()

	select {
	case err := <-errChan:
		slog.ErrorContext(ctx, "error when running server", slog.Any("err", err))
		os.Exit(1)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "failed to shutdown gracefully the server", slog.Any("err", err))
	}
}
