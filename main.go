package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/andareed/siftly-bikes/charts"
	"github.com/andareed/siftly-bikes/config"
	"github.com/andareed/siftly-bikes/dataset"
	"github.com/andareed/siftly-bikes/engine"
	"github.com/andareed/siftly-bikes/logging"
	"github.com/andareed/siftly-bikes/server"
	tea "github.com/charmbracelet/bubbletea"
)

var logFile = flag.String("debug", "", "Write Debug Logs to file")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	serveFlag := flag.Bool("serve", false, "serve the dashboard over HTTP instead of the terminal UI")
	addrFlag := flag.String("addr", "", "HTTP listen address (overrides HTTP_ADDR)")

	flag.Parse()

	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cfg := config.Load()
	if *logFile == "" {
		*logFile = cfg.DebugLog
	}
	if args := flag.Args(); len(args) > 0 {
		cfg.DataSource = "csv"
		cfg.DataPath = args[0]
	}
	if *addrFlag != "" {
		cfg.HTTPAddr = *addrFlag
	}

	if *serveFlag && *logFile == "" {
		logging.SetupConsole()
	} else {
		cleanup, err := logging.SetupLogging(*logFile)
		if err != nil {
			log.Fatalf("Failed to setup logging %v", err)
		}
		defer cleanup()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, label, closeSrc, err := openSource(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer closeSrc()

	logging.Infof("siftly-bikes: started, source %s", src.Key())

	opts := engine.Options{TopN: cfg.TopN, TopFromFiltered: cfg.TopFromFiltered}
	size := charts.Size{Width: cfg.ChartWidth, Height: cfg.ChartHeight}
	cache := dataset.NewCache()

	if *serveFlag {
		h := server.NewHandler(src, cache, server.Options{
			CORSOrigins: cfg.CORSOrigins,
			View:        opts,
			ChartSize:   size,
		})
		logging.Infof("server: listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(ctx, cfg.HTTPAddr, h.Router()); err != nil {
			log.Fatalf("server: %v", err)
		}
		return
	}

	m := newModel(ctx, src, cache, opts, size, label)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		logging.Errorf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

// openSource picks the data source named by the configuration. The returned
// func releases it.
func openSource(ctx context.Context, cfg *config.Config) (dataset.Source, string, func(), error) {
	switch cfg.DataSource {
	case "csv", "":
		if _, err := os.Stat(cfg.DataPath); err != nil {
			return nil, "", nil, fmt.Errorf("usage: sfbikes [--debug debug.log] [--serve] <day.csv>: %w", err)
		}
		return dataset.CSVSource{Path: cfg.DataPath}, cfg.DataPath, func() {}, nil
	case "postgres":
		db, err := dataset.OpenPostgres(ctx, cfg.DSN())
		if err != nil {
			return nil, "", nil, err
		}
		src := dataset.PostgresSource{DB: db, Database: cfg.PostgresDB, Table: cfg.PostgresTable}
		return src, cfg.PostgresDB + "." + cfg.PostgresTable, func() { db.Close() }, nil
	default:
		return nil, "", nil, fmt.Errorf("unknown DATA_SOURCE %q (want csv or postgres)", cfg.DataSource)
	}
}
