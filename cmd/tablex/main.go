// Command tablex extracts the tables of journal-article HTML files into
// BioC-shaped JSON, one output file per article.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/corpustools/tablex"
	"github.com/corpustools/tablex/bioc"
	"github.com/corpustools/tablex/format"
	"github.com/corpustools/tablex/profile"
)

const version = "1.0.0"

// multiFlag collects repeated flag values.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

type config struct {
	inputs  []string
	linked  []string
	profile *profile.Profile
	outDir  string
	workers int
	date    time.Time
}

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inPatterns  multiFlag
		linkedFiles multiFlag
		profilePath string
		outDir      string
		workers     int
		dateStr     string
		verbose     bool
		showVersion bool
	)

	flag.Var(&inPatterns, "in", "Article HTML path or glob (repeatable)")
	flag.Var(&linkedFiles, "linked", "Linked table file for a single article (repeatable)")
	flag.StringVar(&profilePath, "profile", "", "Path to a YAML selector profile (default: PMC selectors)")
	flag.StringVar(&outDir, "out", "", "Output directory (default: next to each input)")
	flag.IntVar(&workers, "workers", 0, "Concurrent articles (default: number of CPUs)")
	flag.StringVar(&dateStr, "date", "", "Pin the collection date, YYYYMMDD (default: today)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("tablex " + version)
		return
	}

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := buildConfig(inPatterns, linkedFiles, profilePath, outDir, workers, dateStr)
	if err != nil {
		log.Error().Err(err).Msg("invalid invocation")
		os.Exit(2)
	}

	if failed := run(cfg); failed > 0 {
		log.Error().Int("failed", failed).Msg("some articles failed")
		os.Exit(1)
	}
}

// buildConfig validates flags, expands input globs, and filters out files
// that are linked tables rather than articles. Linked files are folded into
// their article, not processed on their own.
func buildConfig(inPatterns, linkedFiles multiFlag, profilePath, outDir string, workers int, dateStr string) (config, error) {
	cfg := config{
		linked:  linkedFiles,
		outDir:  outDir,
		workers: workers,
	}

	if cfg.workers < 1 {
		cfg.workers = runtime.NumCPU()
	}

	if profilePath != "" {
		p, err := profile.Load(profilePath)
		if err != nil {
			return cfg, err
		}
		cfg.profile = p
	}

	if dateStr != "" {
		d, err := time.Parse(bioc.DateFormat, dateStr)
		if err != nil {
			return cfg, fmt.Errorf("parse -date %q: %w", dateStr, err)
		}
		cfg.date = d
	}

	prof := cfg.profile
	if prof == nil {
		prof = profile.Default()
	}

	seen := make(map[string]bool)
	for _, pattern := range inPatterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return cfg, fmt.Errorf("bad -in pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			// Not a glob match; keep the literal path so a missing file
			// fails loudly instead of vanishing.
			matches = []string{pattern}
		}
		for _, m := range matches {
			key := filepath.Clean(m)
			if seen[key] {
				continue
			}
			seen[key] = true
			if format.Classify(m, prof.LinkedFileGlobs) == format.LinkedHTML {
				log.Debug().Str("file", m).Msg("skipping linked table file; it folds into its article")
				continue
			}
			cfg.inputs = append(cfg.inputs, m)
		}
	}

	if len(cfg.inputs) == 0 {
		return cfg, fmt.Errorf("no input files (use -in)")
	}
	if len(cfg.linked) > 0 && len(cfg.inputs) != 1 {
		return cfg, fmt.Errorf("-linked needs exactly one input article, got %d", len(cfg.inputs))
	}

	if cfg.outDir != "" {
		if err := os.MkdirAll(cfg.outDir, 0o755); err != nil {
			return cfg, fmt.Errorf("create output directory: %w", err)
		}
	}

	return cfg, nil
}

// run processes every article. A failed article is logged and counted, not
// fatal: the rest of the batch still runs. Returns the failure count.
func run(cfg config) int {
	var failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for _, in := range cfg.inputs {
		g.Go(func() error {
			if err := processArticle(cfg, in); err != nil {
				log.Error().Err(err).Str("article", in).Msg("extraction failed")
				failed.Add(1)
			}
			return nil
		})
	}
	g.Wait()

	return int(failed.Load())
}

// processArticle extracts one article and writes its interchange JSON.
func processArticle(cfg config, path string) error {
	ext := tablex.Open(path).AutoLink()
	if cfg.profile != nil {
		ext = ext.WithProfile(cfg.profile)
	}
	if len(cfg.linked) > 0 {
		ext = ext.Linked(cfg.linked...)
	}

	var opts []bioc.Option
	if !cfg.date.IsZero() {
		opts = append(opts, bioc.WithDate(cfg.date))
	}

	coll, warnings, err := ext.BioC(opts...)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Warn().Str("article", path).Msg(w.String())
	}

	out := outputPath(cfg.outDir, path)
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := coll.WriteJSON(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out, err)
	}

	log.Info().
		Str("article", path).
		Str("output", out).
		Int("tables", len(coll.Documents)).
		Msg("extracted")
	return nil
}

// outputPath names the per-article output file: "{stem}_tables.json" in the
// output directory, or next to the input when none was given.
func outputPath(outDir, input string) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, stem+"_tables.json")
}
