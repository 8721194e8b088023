/*
main.go - Application entry point

PURPOSE:
  Starts an interactive Payroll Pro session on stdin/stdout.
  Handles configuration, store selection, demo seeding and shutdown.

STARTUP SEQUENCE:
  1. Load .env and resolve the config path
  2. Load and validate the YAML config
  3. Open the session store (memory or in-memory SQLite)
  4. Build Registry, Ledger and Calculator over the rate regime
  5. Optionally seed a demo roster
  6. Run the menu until X or end of input

FLAGS:
  -c, --config   YAML config path (default: $PAYROLL_CONFIG)
  -s, --store    memory | sqlite (overrides session.store)
      --seed     demo employees to generate (overrides session.seed_employees)
  -v, --verbose  log session events to stderr

EXAMPLES:
  # Default regime, empty session
  ./payroll

  # Five fake employees with three payments each, on SQLite
  ./payroll --seed 5 --store sqlite

NOTHING IS PERSISTED:
  Both stores live in process memory. Quitting, or Ctrl-C, discards the
  session.

SEE ALSO:
  - config/config.go: YAML schema
  - console/session.go: the menu
*/
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/warp/payroll-engine/config"
	"github.com/warp/payroll-engine/console"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
	memstore "github.com/warp/payroll-engine/payroll/store"
	"github.com/warp/payroll-engine/store/sqlite"
)

// defaultSeedPayments is used for --seed when the config names no count.
const defaultSeedPayments = 3

type rootOptions struct {
	ConfigPath string
	Store      string
	Seed       int
	Verbose    bool
}

var ropts rootOptions

var rootCmd = &cobra.Command{
	Use:   "payroll [flags]",
	Short: "Interactive payroll calculator: employees, payments and payroll reports.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cmd)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&ropts.ConfigPath, "config", "c", "", "YAML config path (default $"+config.EnvConfigPath+")")
	rootCmd.Flags().StringVarP(&ropts.Store, "store", "s", "", "Session store: memory or sqlite")
	rootCmd.Flags().IntVar(&ropts.Seed, "seed", 0, "Number of demo employees to generate")
	rootCmd.Flags().BoolVarP(&ropts.Verbose, "verbose", "v", false, "Log session events to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Error executing command: %s", err)
	}
}

func run(ctx context.Context, cmd *cobra.Command) error {
	if !ropts.Verbose {
		log.SetOutput(io.Discard)
	}

	path := config.LoadEnv()
	if ropts.ConfigPath != "" {
		path = ropts.ConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	log.Printf("config loaded (path=%q store=%s)", path, cfg.Session.Store)

	store, closeStore, err := openStore(cfg.Session.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	rates := cfg.PayRates
	registry := payroll.NewRegistry(store, rates)
	ledger := payroll.NewLedger(store, rates)
	calc := payroll.NewCalculator(rates)

	if n := cfg.Session.SeedEmployees; n > 0 {
		employees, payments, err := factory.NewRoster(registry, ledger, rates).
			Seed(ctx, n, cfg.Session.SeedPayments)
		if err != nil {
			return fmt.Errorf("seed roster: %w", err)
		}
		log.Printf("seeded %d employees and %d payments", len(employees), len(payments))
	}

	session := console.NewSession(os.Stdin, os.Stdout, registry, ledger, calc,
		console.WithCurrency(cfg.Session.CurrencySymbol),
		console.WithFoldChunkSize(cfg.Session.FoldChunkSize),
	)
	return session.Run(ctx)
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("store") {
		cfg.Session.Store = strings.ToLower(strings.TrimSpace(ropts.Store))
	}
	if cmd.Flags().Changed("seed") {
		cfg.Session.SeedEmployees = ropts.Seed
		if cfg.Session.SeedPayments == 0 {
			cfg.Session.SeedPayments = defaultSeedPayments
		}
	}
}

func openStore(kind string) (payroll.Store, func(), error) {
	switch kind {
	case config.StoreSQLite:
		db, err := sqlite.New("")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		log.Printf("using in-memory sqlite store")
		return db, func() { db.Close() }, nil
	case config.StoreMemory, "":
		log.Printf("using memory store")
		return memstore.NewMemory(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q (want %s or %s)", kind, config.StoreMemory, config.StoreSQLite)
}
