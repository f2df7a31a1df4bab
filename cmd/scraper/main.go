package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"design-vacancy-parser/internal/browser"
	"design-vacancy-parser/internal/config"
	"design-vacancy-parser/internal/dedup"
	"design-vacancy-parser/internal/filter"
	"design-vacancy-parser/internal/logger"
	"design-vacancy-parser/internal/pipeline"
	"design-vacancy-parser/internal/scraper/sources"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

type cliFlags struct {
	ConfigPath string
	Query      string
	Pages      int
	Source     string
	Renderer   string
	NoDedup    bool
	LogLevel   string
	LogJSON    bool
}

func parseFlags(args []string) (cliFlags, *pflag.FlagSet, error) {
	var f cliFlags
	fs := pflag.NewFlagSet("scraper", pflag.ContinueOnError)
	fs.StringVarP(&f.ConfigPath, "config", "c", config.DefaultPath, "Path to YAML config")
	fs.StringVarP(&f.Query, "query", "q", "", "Search query (default from config: дизайнер)")
	fs.IntVarP(&f.Pages, "pages", "p", 0, "Number of listing pages to parse")
	fs.StringVarP(&f.Source, "source", "s", "", "Source: siteA|siteB|siteC or geekjob|hh|habr")
	fs.StringVar(&f.Renderer, "renderer", "", "Renderer backend: playwright or rod")
	fs.BoolVar(&f.NoDedup, "no-dedup", false, "Emit and hand off every vacancy, skipping run and cross-run dedup")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Log as JSON (--log-json=false overrides the config)")
	err := fs.Parse(args)
	return f, fs, err
}

// apply copies flags that were set on the command line over the config
func (f cliFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("query") {
		cfg.Query = f.Query
	}
	if fs.Changed("pages") {
		cfg.Pages = f.Pages
	}
	if fs.Changed("source") {
		cfg.Source = f.Source
	}
	if fs.Changed("renderer") {
		cfg.Renderer.Backend = f.Renderer
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.LogLevel
	}
	if fs.Changed("log-json") {
		cfg.LogJSON = f.LogJSON
	}
}

func main() {
	flags, fs, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fail("Invalid arguments", err)
	}

	cfg, err := config.LoadFrom(flags.ConfigPath)
	if err != nil {
		fail("Invalid configuration", err)
	}
	flags.apply(fs, cfg)
	if err := cfg.Validate(); err != nil {
		fail("Invalid configuration", err)
	}

	log := logger.Init(cfg.LogLevel, cfg.LogJSON)
	log.Infof("🔧 Config loaded. Source: %s, query: %s, pages: %d", cfg.Source, cfg.Query, cfg.Pages)

	src, err := sources.Lookup(cfg.Source)
	if err != nil {
		fail("Invalid source", err)
	}

	keywords, err := filter.LoadKeywords(cfg.KeywordsPath)
	if err != nil {
		log.WithError(err).Warn("⚠️ Using built-in design keywords")
		keywords = filter.DefaultKeywords()
	}

	//setup context with run timeout, cancelled on Ctrl+C too
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.RunTimeout)
	defer cancel()

	cookies := browser.LoadSourceCookies(cfg.CookiesPath, src.Name, log)
	counter := pipeline.NewCounter()
	opts := []pipeline.Option{
		pipeline.WithLogger(log),
		pipeline.WithRecorder(pipeline.MultiRecorder(counter, pipeline.NewLogRecorder(log))),
		pipeline.WithPageInterval(cfg.PageInterval),
	}
	if !flags.NoDedup {
		opts = append(opts, pipeline.WithRunDedup())
	}
	driver := pipeline.New(newRendererFactory(cfg, cookies, log), filter.NewClassifier(keywords), opts...)

	result, err := driver.Run(ctx, pipeline.Request{Query: cfg.Query, Pages: cfg.Pages, Source: src})
	if errors.Is(err, pipeline.ErrRendererUnavailable) {
		fail("Parsing failed", err)
	}
	if err != nil {
		log.WithError(err).Warn("⚠️ Run stopped early, keeping partial results")
	}

	var cache *dedup.VacancyCache
	if !flags.NoDedup {
		cache = dedup.NewVacancyCache(cfg.CachePath, log)
	}
	handOff(result, cache, newSinks(cfg, log), log)

	logSummary(log, counter)
	if err := writeJSON(os.Stdout, result); err != nil {
		log.WithError(err).Error("❌ Failed to write result")
		os.Exit(1)
	}
	log.Info("🏁 Execution finished.")
}

func logSummary(log logrus.FieldLogger, counter *pipeline.Counter) {
	fields := logrus.Fields{}
	for kind, n := range counter.Snapshot() {
		fields[string(kind)] = n
	}
	log.WithFields(fields).Info("📊 Run diagnostics")
}

// fail prints the error payload and exits
func fail(message string, err error) {
	writeJSON(os.Stdout, errorPayload(message, err))
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", message, err)
	os.Exit(1)
}
