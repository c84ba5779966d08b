package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	httpctx "github.com/autmail/maillist-server/internal/api/http/context"
	"github.com/autmail/maillist-server/internal/api/http/handler"
	"github.com/autmail/maillist-server/internal/api/http/middleware"
	"github.com/autmail/maillist-server/internal/api/http/router"
	httpServer "github.com/autmail/maillist-server/internal/api/http/server"
	"github.com/autmail/maillist-server/internal/cache"
	"github.com/autmail/maillist-server/internal/config"
	"github.com/autmail/maillist-server/internal/dispatcher"
	"github.com/autmail/maillist-server/internal/logger"
	"github.com/autmail/maillist-server/internal/model"
	"github.com/autmail/maillist-server/internal/repository/postgres"
	"github.com/autmail/maillist-server/internal/server"
	"github.com/autmail/maillist-server/internal/service"
	"github.com/autmail/maillist-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	var users model.UserStore = postgres.NewUserRepository(db)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		users = cache.NewUserStore(users, rdb, logger.With("component", "cache"))
		logger.Info("email cache enabled", "addr", cfg.Redis.Addr)
	}
	listRepo := postgres.NewListRepository(db)

	registry := service.NewRegistry(users, service.NewAddressValidator(), logger)
	lists := service.NewLists(listRepo, registry, logger)
	d := dispatcher.New(registry, lists)

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	ctxMgr := httpctx.NewManager()

	h := handler.New(d, ctxMgr, db, logger)
	auth := middleware.NewAuthenticate(tokenManager, ctxMgr, logger)
	logging := middleware.NewLogging(logger.With("component", "http"))

	mux := router.New(h, auth, logging, cfg.HTTP.CORSAllowedOrigins)
	srv := registerHTTPServer(mux, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerHTTPServer(mux http.Handler, addr string) *httpServer.HTTPServer {
	return httpServer.NewHTTPServer(mux, addr)
}
