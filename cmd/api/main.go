package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/syncailabs/mitra-backend/internal/config"
	"github.com/syncailabs/mitra-backend/internal/content"
	"github.com/syncailabs/mitra-backend/internal/handler"
	chatHandler "github.com/syncailabs/mitra-backend/internal/handler/chat"
	dialogueservice "github.com/syncailabs/mitra-backend/internal/service/dialogue"
	"github.com/syncailabs/mitra-backend/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	catalog := content.Default()
	engine := dialogueservice.NewEngine(catalog)

	store := newSessionStore(ctx, cfg.Session)

	chat := chatHandler.New(engine, store, cfg.Session.CookieName, cfg.Session.TTL)
	chatWS := chatHandler.NewWebSocketHandler(engine, store, cfg.Session.CookieName)

	router := handler.NewRouter(chat, chatWS)

	startServer(ctx, cfg.Server, router)
}

// newSessionStore picks Redis when configured, otherwise falls back to the
// in-process store. Memory sessions do not survive a restart.
func newSessionStore(ctx context.Context, cfg config.SessionConfig) session.Store {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, keeping sessions in memory")
		return session.NewMemoryStore()
	}

	store := session.NewRedisStore(
		cfg.RedisAddr,
		cfg.RedisPassword,
		cfg.RedisDB,
		session.WithTTL(cfg.TTL),
	)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		log.Fatalf("failed to reach redis at %s: %v", cfg.RedisAddr, err)
	}

	log.Printf("session store backed by redis at %s", cfg.RedisAddr)
	return store
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Mitra backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
