// CozinhaMestre serves the recipe site, or talks to the chef from a
// terminal.
//
// Usage:
//
//	cozinhamestre [-verbose] [-quiet] [-log-file path] [serve|chat|export [-o file]]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hammamikhairi/cozinhamestre/internal/chat"
	"github.com/hammamikhairi/cozinhamestre/internal/config"
	"github.com/hammamikhairi/cozinhamestre/internal/display"
	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/export"
	"github.com/hammamikhairi/cozinhamestre/internal/gpt"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
	"github.com/hammamikhairi/cozinhamestre/internal/recipe"
	"github.com/hammamikhairi/cozinhamestre/internal/storage"
	"github.com/hammamikhairi/cozinhamestre/internal/web"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", "", "file to write logs to (default stderr; chat defaults to .cozinhamestre/chat.log)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [serve|chat|export [-o file]]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	cmd := "serve"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	cfg, cfgErr := config.Load()

	level := cfg.LogLevel
	if *verbose {
		level = logger.LevelVerbose
	}
	if *quiet {
		level = logger.LevelOff
	}

	// The terminal chat owns the screen, so its logs go to a file.
	path := *logFile
	if path == "" && cmd == "chat" {
		path = ".cozinhamestre/chat.log"
	}
	logOut, closeLog := openLog(path)
	defer closeLog()

	// Third-party code that logs through the stdlib logger lands in the
	// same place.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(level, logOut)
	if cfgErr != nil {
		log.Warn("%v (using defaults for the bad values)", cfgErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch cmd {
	case "serve":
		err = serve(ctx, cfg, log)
	case "chat":
		err = chatREPL(ctx, cfg, log)
	case "export":
		err = exportCatalog(ctx, cfg, log, flag.Args()[1:])
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Error("%s: %v", cmd, err)
		fmt.Fprintf(os.Stderr, "cozinhamestre %s: %v\n", cmd, err)
		os.Exit(1)
	}
}

func openLog(path string) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return os.Stderr, func() {}
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() }
}

// ── Wiring ───────────────────────────────────────────────────────

func newCatalog(cfg config.Config, log *logger.Logger) *recipe.Catalog {
	c := recipe.Generate(cfg.RecipeCount, recipe.NewRand(cfg.RecipeSeed), log)
	log.Info("catalog ready: %d recipes", c.Len())
	return c
}

// newAssistant builds the chef. Without a key it stays offline and
// answers with the fixed notice.
func newAssistant(cfg config.Config, log *logger.Logger) *gpt.Assistant {
	if cfg.LLMAPIKey == "" {
		log.Info("chef offline: set LLM_API_KEY to enable")
		return gpt.NewAssistant(nil, log)
	}
	client := gpt.NewClient(cfg.LLMAPIKey, log,
		gpt.WithEndpoint(cfg.LLMEndpoint),
		gpt.WithModel(cfg.LLMModel),
		gpt.WithHTTPTimeout(cfg.LLMTimeout),
	)
	log.Info("chef online (model=%s)", cfg.LLMModel)
	return gpt.NewAssistant(client, log)
}

// ── Commands ─────────────────────────────────────────────────────

func serve(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	deps := web.Deps{Catalog: newCatalog(cfg, log)}

	if cfg.DBPath != "" {
		db, err := storage.OpenSQLite(cfg.DBPath, log)
		if err != nil {
			return err
		}
		defer db.Close()
		deps.Store = db
		deps.Pinger = db
		log.Info("state in %s", cfg.DBPath)
	} else {
		deps.Store = storage.NewMemoryStore(log)
		log.Info("state in memory")
	}

	deps.Assistant = newAssistant(cfg, log)
	deps.Chats = chat.NewHub(deps.Assistant, log)

	sweeper := chat.NewSweeper(deps.Chats, log)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	srv, err := web.New(deps, log)
	if err != nil {
		return err
	}
	return srv.Start(ctx, cfg.Addr)
}

func chatREPL(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	t := chat.NewTranscript(newAssistant(cfg, log), log)
	return display.New(t, log).Run(ctx)
}

func exportCatalog(ctx context.Context, cfg config.Config, log *logger.Logger, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("o", "cozinhamestre-receitas.xlsx", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	notifier := display.NewNotifier(log, os.Stdout)
	if err := writeWorkbook(*out, newCatalog(cfg, log)); err != nil {
		notifier.NotifyUrgent(ctx, "Não foi possível exportar o catálogo")
		return err
	}
	return notifier.Notify(ctx, "Catálogo exportado para "+*out)
}

func writeWorkbook(path string, src domain.RecipeSource) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := export.WriteCatalog(f, src); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
