package main

import (
	"fmt"
	"strings"

	wcli "github.com/bastiangx/wordgrid/internal/cli"
	"github.com/bastiangx/wordgrid/pkg/board"
	"github.com/bastiangx/wordgrid/pkg/config"
	"github.com/bastiangx/wordgrid/pkg/dictionary"
	"github.com/bastiangx/wordgrid/pkg/language"
	"github.com/bastiangx/wordgrid/pkg/server"
	"github.com/bastiangx/wordgrid/pkg/solver"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

func languagesCommand(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "Supported languages: %s\n", strings.Join(language.Codes(), ", "))
	return nil
}

func solveCommand(c *cli.Context) error {
	cfg := appConfig(c)
	settings, err := resolveSettings(c, cfg)
	if err != nil {
		return err
	}
	grid, err := board.ReadFile(c.String("board"), settings.lang)
	if err != nil {
		return err
	}
	return solveAndReport(c, grid, settings)
}

func demoCommand(c *cli.Context) error {
	cfg := appConfig(c)
	settings, err := resolveSettings(c, cfg)
	if err != nil {
		return err
	}
	grid, err := board.Read(strings.NewReader(settings.lang.Demo), settings.lang)
	if err != nil {
		return fmt.Errorf("demo board for %q: %w", settings.lang.Code, err)
	}
	return solveAndReport(c, grid, settings)
}

func solveAndReport(c *cli.Context, grid *board.Grid, settings solveSettings) error {
	cfg := appConfig(c)
	if err := checkBounds(grid.Rows(), grid.Cols(), cfg); err != nil {
		return err
	}
	dict, err := loadDictionary(c, cfg, settings.lang)
	if err != nil {
		return err
	}
	s, err := solver.New(grid, dict, solver.WithWorkers(settings.workers))
	if err != nil {
		return err
	}
	words, stats, err := s.Solve(settings.mode, settings.reverse)
	if err != nil {
		return err
	}
	wcli.NewReporter(c.App.Writer, settings.quiet, cfg.CLI.ShowMultipliers).Report(grid, words, stats)
	return nil
}

func generateCommand(c *cli.Context) error {
	cfg := appConfig(c)
	lang, err := resolveLanguage(c, cfg)
	if err != nil {
		return err
	}
	rows, cols := cfg.Board.Rows, cfg.Board.Cols
	if c.IsSet("rows") {
		rows = c.Int("rows")
	}
	if c.IsSet("cols") {
		cols = c.Int("cols")
	}
	if err := checkBounds(rows, cols, cfg); err != nil {
		return err
	}

	grid, err := board.Generate(lang, rows, cols, newRand(c.Uint64("seed")))
	if err != nil {
		return err
	}
	wcli.NewReporter(c.App.Writer, false, true).Board(grid)

	if out := c.String("output"); out != "" {
		if err := grid.SaveFile(out); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "\nFile '%s' saved\n", out)
	}
	return nil
}

func catCommand(c *cli.Context) error {
	dict, err := dictionary.LoadFile(c.String("dictionary"), dictionary.Options{})
	if err != nil {
		return err
	}
	if prefix := c.String("prefix"); prefix != "" {
		dict = dictionary.NewTrie(dict.KeysWithPrefix(prefix)...)
	}
	if out := c.String("output"); out != "" {
		if err := dict.SaveFile(out, dictionary.FormatText); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "File '%s' saved\n", out)
		return nil
	}
	for _, word := range dict.Keys() {
		fmt.Fprintln(c.App.Writer, word)
	}
	return nil
}

func compileCommand(c *cli.Context) error {
	out := c.String("output")
	if ext := dictionary.FormatCompiled.Extension(); !strings.HasSuffix(out, ext) {
		out += ext
	}
	dict, err := dictionary.LoadFile(c.String("dictionary"), dictionary.Options{Normalize: true, IgnoreCase: true})
	if err != nil {
		return err
	}
	if err := dict.SaveFile(out, dictionary.FormatCompiled); err != nil {
		return err
	}
	log.Debugf("Compiled %d words", dict.Len())
	fmt.Fprintf(c.App.Writer, "File '%s' saved\n", out)
	return nil
}

func configCommand(c *cli.Context) error {
	if c.Bool("reset") {
		path, err := config.RebuildConfigFile()
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "File '%s' saved\n", path)
		return nil
	}
	path, _ := c.App.Metadata[configPathKey].(string)
	if path == "" {
		fmt.Fprintln(c.App.Writer, "Using built-in defaults")
		return nil
	}
	fmt.Fprintf(c.App.Writer, "Config file: %s\n", config.GetActiveConfigPath(path))
	return nil
}

func serveCommand(c *cli.Context) error {
	cfg := appConfig(c)
	lang, err := resolveLanguage(c, cfg)
	if err != nil {
		return err
	}
	dict, err := loadDictionary(c, cfg, lang)
	if err != nil {
		return err
	}
	workers := cfg.Solver.Workers
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}

	log.Debug("spawning IPC", "language", lang.Code, "words", dict.Len(), "workers", workers)
	srv := server.NewServer(lang, dict, cfg.Server,
		server.WithIO(c.App.Reader, c.App.Writer),
		server.WithWorkers(workers))
	return srv.Start(c.Context)
}

func interactiveCommand(c *cli.Context) error {
	cfg := appConfig(c)
	settings, err := resolveSettings(c, cfg)
	if err != nil {
		return err
	}
	dict, err := loadDictionary(c, cfg, settings.lang)
	if err != nil {
		return err
	}
	reporter := wcli.NewReporter(c.App.Writer, settings.quiet, cfg.CLI.ShowMultipliers)
	h := wcli.NewInputHandler(settings.lang, dict, reporter, settings.mode, settings.reverse, settings.workers)
	return h.Start(c.App.Reader)
}
