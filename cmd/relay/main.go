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

	"cloud.google.com/go/spanner"

	"github.com/ristorante/customization-service/internal/app/customization/repo"
	"github.com/ristorante/customization-service/internal/pkg/clock"
	committer "github.com/ristorante/customization-service/internal/pkg/committer"
	"github.com/ristorante/customization-service/internal/pkg/config"
	"github.com/ristorante/customization-service/internal/pkg/metrics"
	"github.com/ristorante/customization-service/internal/pkg/outbox"
)

// The relay publishes pending outbox_events rows to Kafka and marks them published.
// Metrics are served on HTTP_ADDR.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Println("shutdown signal received")
		cancel()
	}()

	client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		log.Fatalf("spanner.NewClient: %v", err)
	}
	defer client.Close()

	reg := metrics.NewRegistry()
	src := outbox.NewSpannerSource(client, repo.NewOutboxRepo(), committer.NewAdapter(client), clock.RealClock{})
	pub := outbox.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer func() {
		if err := pub.Close(); err != nil {
			log.Printf("kafka writer close: %v", err)
		}
	}()

	metricsSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: reg.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics serve: %v", err)
		}
	}()

	relay := outbox.NewRelay(src, pub, cfg.RelayInterval, cfg.RelayBatchSize, reg)
	log.Printf("outbox relay publishing to %s every %s", outbox.Describe(cfg.KafkaBrokers, cfg.KafkaTopic), cfg.RelayInterval)
	if err := relay.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("relay: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = metricsSrv.Shutdown(shutdownCtx)

	log.Println("relay stopped")
}
