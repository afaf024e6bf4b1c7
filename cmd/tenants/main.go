package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/config"
	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/storage/postgres"
)

// tenants seeds credentials and aliases that the install flow would
// otherwise provide.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Usage = printUsage
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, postgres.NewTenantStore(db), flag.Args()); err != nil {
		logger.Error("command failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, store *postgres.TenantStore, args []string) error {
	switch args[0] {
	case "set-token":
		if len(args) < 3 {
			return fmt.Errorf("usage: set-token <shop> <token> [scopes]")
		}
		scopes := ""
		if len(args) > 3 {
			scopes = args[3]
		}
		return store.SaveCredential(ctx, args[1], args[2], scopes)

	case "alias":
		if len(args) < 3 {
			return fmt.Errorf("usage: alias <alias> <shop>")
		}
		return store.AddAlias(ctx, args[1], args[2])

	case "list":
		tenants, err := store.List(ctx)
		if err != nil {
			return err
		}
		for _, t := range tenants {
			installed := "no"
			if t.AccessToken != "" {
				installed = "yes"
			}
			fmt.Printf("%s\tinstalled=%s\tscopes=%s\tupdated=%s\n",
				t.ShopDomain, installed, t.Scopes, t.UpdatedAt.Format(time.RFC3339))
		}
		return nil

	default:
		printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printUsage() {
	fmt.Println("usage: tenants [-config config.yaml] <command>")
	fmt.Println("commands:")
	fmt.Println("  set-token <shop> <token> [scopes] - store or replace a tenant's access token")
	fmt.Println("  alias <alias> <shop>               - map an alias to a tenant")
	fmt.Println("  list                               - list known tenants")
}
