package main

import (
	"context"
	"eld-trip-planner/internal/adapters/repositories"
	"eld-trip-planner/internal/adapters/sessions"
	"eld-trip-planner/internal/adapters/tripapi"
	"eld-trip-planner/internal/api"
	"eld-trip-planner/internal/config"
	"eld-trip-planner/internal/platform/db"
	"eld-trip-planner/internal/ports"
	"eld-trip-planner/internal/services"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (backend client, session store, history DB) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store, closeStore, err := openSessionStore(cfg.Sessions)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	var history ports.TripHistory
	if cfg.History.Driver != "" {
		historyDB, err := db.Open(cfg.History.Driver, cfg.History.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer historyDB.Close()

		if err := repositories.InitSchema(historyDB, cfg.History.Driver); err != nil {
			log.Fatal(err)
		}
		history = repositories.NewSQLTripHistory(historyDB, cfg.History.Driver)
	}

	// No client timeout: a submitted calculation always settles on its own.
	client := tripapi.NewClient(cfg.BackendBase(), nil)
	planner := services.NewTripPlanner(client, store, cfg, history)
	limiter := api.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)

	router, err := api.NewRouter(api.Deps{
		Config:  cfg,
		Planner: planner,
		History: history,
		Limiter: limiter,
	})
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go housekeeping(ctx, store, limiter)

	// Timeouts leave room for slow route calculations on the backend.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening addr=:%s mode=%s backend=%s sessions=%s history=%s",
			cfg.Port, cfg.Mode, cfg.BackendBase(), cfg.Sessions.Store, orNone(cfg.History.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

func openSessionStore(cfg config.SessionConfig) (ports.SessionStore, func(), error) {
	switch cfg.Store {
	case "memory":
		return sessions.NewMemoryStore(cfg.TTL), func() {}, nil

	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("open session store: ping redis %q: %w", cfg.RedisAddr, err)
		}
		return sessions.NewRedisStore(rdb, cfg.TTL), func() { rdb.Close() }, nil

	case "badger":
		bdb, err := sessions.OpenBadger(cfg.BadgerPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open session store: %w", err)
		}
		return sessions.NewBadgerStore(bdb, cfg.TTL), func() { bdb.Close() }, nil
	}

	return nil, nil, fmt.Errorf("open session store: unknown store %q", cfg.Store)
}

// housekeeping drops expired in-memory sessions and idle rate limiters.
// Redis and Badger expire entries themselves.
func housekeeping(ctx context.Context, store ports.SessionStore, limiter *api.RateLimiter) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if mem, ok := store.(*sessions.MemoryStore); ok {
				if n := mem.Sweep(); n > 0 {
					log.Printf("sessions swept count=%d", n)
				}
			}
			limiter.Sweep(30 * time.Minute)
		}
	}
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
