package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/spanner"
	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"

	"github.com/ristorante/customization-service/internal/pkg/config"
)

// A tiny migration helper that applies the DDL in migrations/001_initial_schema.sql
// to a Cloud Spanner database (typically the emulator for local dev). With -seed it
// also loads a demo menu with its customization schemas.
//
// Usage (emulator):
//
//	set SPANNER_EMULATOR_HOST=localhost:9010
//	set SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate -seed
func main() {
	seed := flag.Bool("seed", false, "load the demo menu after applying the DDL")
	skipDDL := flag.Bool("skip-ddl", false, "do not apply migrations (useful with -seed)")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if cfg.SpannerDatabase == "" {
		log.Fatal("SPANNER_DATABASE is required (e.g. projects/test-project/instances/emulator-instance/databases/test-db)")
	}

	if !*skipDDL {
		if err := applyDDL(ctx, cfg.SpannerDatabase); err != nil {
			log.Fatal(err)
		}
	}

	if *seed {
		client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
		if err != nil {
			log.Fatalf("spanner.NewClient: %v", err)
		}
		defer client.Close()

		n, err := seedMenu(ctx, client)
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		fmt.Printf("Seeded %d catalog items into %s\n", n, cfg.SpannerDatabase)
	}
}

func applyDDL(ctx context.Context, db string) error {
	ddlPath := filepath.Join("migrations", "001_initial_schema.sql")
	stmts, err := readDDLStatements(ddlPath)
	if err != nil {
		return fmt.Errorf("read DDL: %w", err)
	}
	if len(stmts) == 0 {
		return fmt.Errorf("no DDL statements found in %s", ddlPath)
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("database admin client: %w", err)
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		return fmt.Errorf("UpdateDatabaseDdl: %w", err)
	}

	if err := op.Wait(ctx); err != nil {
		return fmt.Errorf("UpdateDatabaseDdl wait: %w", err)
	}

	fmt.Printf("Applied %d DDL statements to %s\n", len(stmts), db)
	return nil
}

func readDDLStatements(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Normalize line endings for Windows-authored files.
	sql := strings.ReplaceAll(string(b), "\r\n", "\n")

	parts := strings.Split(sql, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out, nil
}
