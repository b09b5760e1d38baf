package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"

	"github.com/ristorante/customization-service/internal/app/customization/queries"
	"github.com/ristorante/customization-service/internal/app/customization/queries/get_schema"
	"github.com/ristorante/customization-service/internal/app/customization/queries/list_item_schemas"
	"github.com/ristorante/customization-service/internal/app/customization/repo"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/activate_schema"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/deactivate_schema"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/define_schema"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/open_session"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/price_item"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/update_schema"
	"github.com/ristorante/customization-service/internal/pkg/clock"
	committer "github.com/ristorante/customization-service/internal/pkg/committer"
	"github.com/ristorante/customization-service/internal/pkg/config"
	"github.com/ristorante/customization-service/internal/pkg/metrics"
	grpccustomization "github.com/ristorante/customization-service/internal/transport/grpc/customization"
	"github.com/ristorante/customization-service/internal/transport/http/storefront"
)

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

	clk := clock.RealClock{}
	schemaRepo := repo.NewSchemaRepo()
	outboxRepo := repo.NewOutboxRepo()
	cm := committer.NewAdapter(client)
	readModel := queries.NewSpannerReadModel(client)
	reg := metrics.NewRegistry()

	priceUC := price_item.NewInteractor(readModel, clk)
	listQ := list_item_schemas.NewHandler(readModel)

	// CQRS wiring
	cmds := grpccustomization.Commands{
		Define:     define_schema.NewInteractor(readModel, schemaRepo, outboxRepo, cm, clk),
		Update:     update_schema.NewInteractor(schemaRepo, outboxRepo, cm, readModel, clk),
		Activate:   activate_schema.NewInteractor(schemaRepo, outboxRepo, cm, readModel, clk),
		Deactivate: deactivate_schema.NewInteractor(schemaRepo, outboxRepo, cm, readModel, clk),
		Price:      priceUC,
	}
	qrys := grpccustomization.Queries{
		Get:  get_schema.NewHandler(readModel),
		List: listQ,
	}
	h := grpccustomization.NewHandler(cmds, qrys, reg)

	// gRPC server
	srv := grpc.NewServer()
	grpccustomization.RegisterCustomizationServiceServer(srv, h)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen %s: %v", cfg.GRPCAddr, err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
		if err := srv.Serve(lis); err != nil {
			log.Printf("grpc serve: %v", err)
			cancel()
		}
	}()

	// Storefront HTTP server
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	httpSrv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: storefront.NewRouter(storefront.Deps{
			OpenSession: open_session.NewInteractor(readModel),
			Price:       priceUC,
			Metrics:     reg,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http serve: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		srv.Stop()
	}

	log.Println("server stopped")
}
