package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/TFMV/surrealhcc"
	"github.com/TFMV/surrealhcc/db"
	"github.com/docopt/docopt-go"
)

const usage = `hcc - handler cyclomatic complexity for Java classes.

Usage:
  hcc analyze <dir> [options]
  hcc version
  hcc -h | --help

Options:
  -h --help             Show this screen.
  --db=<url>            SurrealDB connection URL [default: ws://localhost:8000/rpc].
  --namespace=<ns>      SurrealDB namespace [default: hcc].
  --database=<name>     SurrealDB database [default: hcc].
  --db-user=<user>      SurrealDB username [default: root].
  --db-pass=<pass>      SurrealDB password [default: root].
  --no-store            Compute measures without writing them to SurrealDB.
  --workers=<n>         Files parsed in parallel, 0 for one per CPU [default: 0].
  --top=<n>             Number of hotspot classes in the summary [default: 10].
  --include-tests       Measure test classes too.
  --fail-fast           Abort on the first class whose tree is malformed.
  --log-level=<level>   debug, info, warn or error [default: warn].
`

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], surrealhcc.Version)
	if err != nil {
		log.Fatalf("Failed to parse arguments: %v", err)
	}

	if v, _ := opts.Bool("version"); v {
		fmt.Println(surrealhcc.Version)
		return
	}

	cfg, dir, noStore, err := configFromOpts(opts)
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var store db.Store
	if noStore {
		store = db.NewMemoryStore()
	} else {
		sdb, err := db.NewSurrealDB(cfg.DB)
		if err != nil {
			log.Fatalf("Failed to create store: %v", err)
		}
		store = sdb
	}
	defer store.Close()

	report, err := surrealhcc.Analyze(ctx, dir, store, cfg)
	if err != nil {
		log.Fatalf("Failed to analyze directory: %v", err)
	}

	fmt.Println(report.PrettyPrint())
	if len(report.Failures) > 0 {
		store.Close()
		os.Exit(2)
	}
}

func configFromOpts(opts docopt.Opts) (surrealhcc.Config, string, bool, error) {
	cfg := surrealhcc.DefaultConfig()

	dir, err := opts.String("<dir>")
	if err != nil {
		return cfg, "", false, err
	}

	strs := map[string]*string{
		"--db":        &cfg.DB.URL,
		"--namespace": &cfg.DB.Namespace,
		"--database":  &cfg.DB.Database,
		"--db-user":   &cfg.DB.Username,
		"--db-pass":   &cfg.DB.Password,
	}
	for key, dst := range strs {
		if *dst, err = opts.String(key); err != nil {
			return cfg, "", false, err
		}
	}

	if workers, err := opts.Int("--workers"); err != nil {
		return cfg, "", false, fmt.Errorf("--workers: %w", err)
	} else if workers > 0 {
		cfg.Options.Workers = workers
	}
	if cfg.Options.Hotspots, err = opts.Int("--top"); err != nil {
		return cfg, "", false, fmt.Errorf("--top: %w", err)
	}

	cfg.IncludeTests, _ = opts.Bool("--include-tests")
	cfg.Options.FailFast, _ = opts.Bool("--fail-fast")
	noStore, _ := opts.Bool("--no-store")

	levelName, _ := opts.String("--log-level")
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(levelName))); err != nil {
		return cfg, "", false, fmt.Errorf("--log-level: %w", err)
	}
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return cfg, dir, noStore, nil
}
