package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Yashanki/krux-support/internal/api/http"
	"github.com/Yashanki/krux-support/internal/api/http/handlers"
	"github.com/Yashanki/krux-support/internal/chat"
	"github.com/Yashanki/krux-support/internal/config"
	"github.com/Yashanki/krux-support/internal/dashboard"
	"github.com/Yashanki/krux-support/internal/domain"
	"github.com/Yashanki/krux-support/internal/events"
	"github.com/Yashanki/krux-support/internal/kvstore"
	"github.com/Yashanki/krux-support/internal/observability"
	"github.com/Yashanki/krux-support/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	kv, pinger := openStorage(cfg, logger)

	bus := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	metrics.ObserveEvents(bus)

	sessionStore := store.New(kv, bus, logger)
	sessionStore.Initialize()

	directory := domain.DefaultDirectory()
	if cfg.App.SeedDemoData {
		seedDemoConversation(sessionStore, directory, logger)
	}

	engine := chat.NewEngine(sessionStore, logger, chat.Options{
		ReplyDelay: cfg.Chat.ReplyDelay(),
	})
	controller := dashboard.NewController(sessionStore)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pinger),
		Session: handlers.NewSessionHandler(sessionStore, directory),
		Chat:    handlers.NewChatHandler(sessionStore, engine),
		Tickets: handlers.NewTicketsHandler(sessionStore, controller),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// openStorage selects the durable backend. Only redis supports a readiness
// probe; the others return a nil pinger.
func openStorage(cfg *config.Config, logger *zap.Logger) (kvstore.Store, handlers.Pinger) {
	switch cfg.Storage.Backend {
	case config.BackendRedis:
		r := kvstore.NewRedis(kvstore.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		return r, r
	case config.BackendMemory:
		return kvstore.NewMemory(), nil
	default:
		return kvstore.OpenFile(cfg.Storage.File, logger), nil
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
