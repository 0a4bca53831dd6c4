package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fruit-order/api/internal/catalog"
	"github.com/fruit-order/api/internal/config"
	"github.com/fruit-order/api/internal/metrics"
	"github.com/fruit-order/api/internal/router"
	"github.com/fruit-order/api/internal/session"
	"github.com/fruit-order/api/internal/ws"
	"golang.org/x/sync/errgroup"
)

const janitorInterval = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		cat, err = catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			log.Fatalf("Unable to load catalog: %v", err)
		}
		log.Printf("Loaded %d catalog items from %s", cat.Len(), cfg.CatalogFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions := session.NewRegistry(cat, cfg.SessionIdleTimeout)
	hub := ws.NewHub()
	m := metrics.New(sessions.Len)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router.New(cfg, cat, sessions, hub, m),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return hub.Run(ctx) })
	g.Go(func() error { return sessions.RunJanitor(ctx, janitorInterval) })
	g.Go(func() error {
		log.Printf("Starting server on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	log.Println("Server stopped")
}
