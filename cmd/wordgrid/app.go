package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/bastiangx/wordgrid/internal/logger"
	"github.com/bastiangx/wordgrid/internal/utils"
	"github.com/bastiangx/wordgrid/pkg/board"
	"github.com/bastiangx/wordgrid/pkg/config"
	"github.com/bastiangx/wordgrid/pkg/dictionary"
	"github.com/bastiangx/wordgrid/pkg/language"
	"github.com/bastiangx/wordgrid/pkg/solver"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

const (
	configKey     = "config"
	configPathKey = "config_path"
)

func newApp() *cli.App {
	cli.VersionPrinter = printVersion

	return &cli.App{
		Name:    AppName,
		Usage:   "Find and rank every word on a letter grid",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Path to a config.toml"},
			&cli.BoolFlag{Name: "no-config", Usage: "Ignore config files and use built-in defaults"},
			&cli.StringFlag{Name: "data", Usage: "Directory holding <lang>.bin dictionaries", Value: "data/"},
			&cli.BoolFlag{Name: "debug", Usage: "Toggle debug logging"},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "languages",
				Usage:  "List the supported languages",
				Action: languagesCommand,
			},
			{
				Name:   "solve",
				Usage:  "Solve a board file",
				Action: solveCommand,
				Flags: append(solveFlags(),
					&cli.StringFlag{Name: "board", Aliases: []string{"b"}, Usage: "Board file to solve", Required: true},
				),
			},
			{
				Name:   "demo",
				Usage:  "Solve the demo board bundled with a language",
				Action: demoCommand,
				Flags:  solveFlags(),
			},
			{
				Name:   "generate",
				Usage:  "Generate a random board",
				Action: generateCommand,
				Flags: []cli.Flag{
					languageFlag(),
					&cli.IntFlag{Name: "rows", Aliases: []string{"r"}, Usage: "Number of rows"},
					&cli.IntFlag{Name: "cols", Aliases: []string{"c"}, Usage: "Number of columns"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Save the board to this file"},
					&cli.Uint64Flag{Name: "seed", Usage: "Seed for a reproducible board (0: random)"},
				},
			},
			{
				Name:   "cat",
				Usage:  "Print the keys of a dictionary, without normalization",
				Action: catCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dictionary", Aliases: []string{"d"}, Usage: "Dictionary file", Required: true},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Write the keys to this text file"},
					&cli.StringFlag{Name: "prefix", Aliases: []string{"p"}, Usage: "Only keys starting with this prefix"},
				},
			},
			{
				Name:   "compile",
				Usage:  "Normalize a dictionary and save it in the compiled format",
				Action: compileCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dictionary", Aliases: []string{"d"}, Usage: "Input dictionary file", Required: true},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file (.bin is appended)", Required: true},
				},
			},
			{
				Name:   "config",
				Usage:  "Show the config file in use, or rewrite the default one",
				Action: configCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "reset", Usage: "Overwrite the default config.toml with built-in defaults"},
				},
			},
			{
				Name:   "serve",
				Usage:  "Answer msgpack solve requests on stdin/stdout",
				Action: serveCommand,
				Flags:  []cli.Flag{languageFlag(), dictionaryFlag(), workersFlag()},
			},
			{
				Name:   "interactive",
				Usage:  "Read boards from stdin, separated by empty lines, and solve each",
				Action: interactiveCommand,
				Flags:  solveFlags(),
			},
		},
	}
}

func languageFlag() cli.Flag {
	return &cli.StringFlag{Name: "language", Aliases: []string{"l"}, Usage: "Board language code (see 'languages')"}
}

func dictionaryFlag() cli.Flag {
	return &cli.StringFlag{Name: "dictionary", Aliases: []string{"d"}, Usage: "Dictionary file (.bin, .txt or .dic)"}
}

func workersFlag() cli.Flag {
	return &cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "Starting cells searched in parallel (0 or 1: sequential)"}
}

// solveFlags returns fresh flags for every command that solves boards.
func solveFlags() []cli.Flag {
	return []cli.Flag{
		languageFlag(),
		dictionaryFlag(),
		&cli.StringFlag{Name: "sort", Aliases: []string{"s"}, Usage: "Ranking: score, length, start or end"},
		&cli.BoolFlag{Name: "reverse", Aliases: []string{"R"}, Usage: "Invert the ranking direction"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Print the word list only"},
		workersFlag(),
	}
}

// setup loads the config and sets the global log level before any command runs.
func setup(c *cli.Context) error {
	cfg, path := config.DefaultConfig(), ""
	if !c.Bool("no-config") {
		loaded, used, err := config.LoadConfigWithPriority(c.String("config"))
		if err != nil {
			return err
		}
		cfg, path = loaded, used
		log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(path))
	}
	logger.SetupGlobal(cfg.CLI.LogLevel, c.Bool("debug"))
	c.App.Metadata = map[string]any{configKey: cfg, configPathKey: path}
	return nil
}

func appConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

// printVersion shows the styled version banner on stderr.
func printVersion(c *cli.Context) {
	l := log.NewWithOptions(c.App.ErrWriter, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})
	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ WordGrid ] Finds every word on the board!")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// solveSettings merges command flags over the config file.
type solveSettings struct {
	lang    *language.Language
	mode    solver.SortMode
	reverse bool
	quiet   bool
	workers int
}

func resolveLanguage(c *cli.Context, cfg *config.Config) (*language.Language, error) {
	code := cfg.Solver.Language
	if c.IsSet("language") {
		code = c.String("language")
	}
	if code == "" {
		return nil, errors.New("you must specify the language of the board")
	}
	return language.Get(strings.ToLower(code))
}

func resolveSettings(c *cli.Context, cfg *config.Config) (solveSettings, error) {
	lang, err := resolveLanguage(c, cfg)
	if err != nil {
		return solveSettings{}, err
	}
	s := solveSettings{
		lang:    lang,
		reverse: cfg.Solver.Reverse,
		quiet:   cfg.CLI.Quiet,
		workers: cfg.Solver.Workers,
	}
	sortName := cfg.Solver.Sort
	if c.IsSet("sort") {
		sortName = c.String("sort")
	}
	if s.mode, err = solver.ParseSortMode(sortName); err != nil {
		return solveSettings{}, err
	}
	if c.IsSet("reverse") {
		s.reverse = c.Bool("reverse")
	}
	if c.IsSet("quiet") {
		s.quiet = c.Bool("quiet")
	}
	if c.IsSet("workers") {
		s.workers = c.Int("workers")
	}
	return s, nil
}

// loadDictionary opens -d, else [dict] path, else <data>/<lang>.{bin,txt,dic}.
func loadDictionary(c *cli.Context, cfg *config.Config, lang *language.Language) (*dictionary.Trie, error) {
	path := cfg.Dict.Path
	if c.IsSet("dictionary") {
		path = c.String("dictionary")
	}
	if path == "" {
		pr, err := utils.NewPathResolver(AppName)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize path resolver: %w", err)
		}
		path, err = pr.DictionaryPath(c.String("data"), lang.Code)
		if err != nil {
			log.Debug("Dictionary lookup failed", "runtime", pr.GetRuntimeInfo())
			return nil, fmt.Errorf("no dictionary for %q in %s, use -d to pick one", lang.Code, pr.GetDataDir(c.String("data")))
		}
	}
	dict, err := dictionary.LoadFile(path, dictionary.Options{
		Normalize:  cfg.Dict.Normalize,
		IgnoreCase: cfg.Dict.IgnoreCase,
	})
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded %d words from %s", dict.Len(), path)
	return dict, nil
}

// checkBounds rejects boards larger than [board] max_rows x max_cols.
func checkBounds(rows, cols int, cfg *config.Config) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: board must have at least one row and one column", board.ErrValidation)
	}
	if (cfg.Board.MaxRows > 0 && rows > cfg.Board.MaxRows) || (cfg.Board.MaxCols > 0 && cols > cfg.Board.MaxCols) {
		return fmt.Errorf("%w: %dx%d board exceeds the %dx%d limit",
			board.ErrValidation, rows, cols, cfg.Board.MaxRows, cfg.Board.MaxCols)
	}
	return nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}
