package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/atinylittleshell/treecomp/internal/config"
	"github.com/atinylittleshell/treecomp/internal/core"
	"github.com/atinylittleshell/treecomp/internal/environment"
	"github.com/atinylittleshell/treecomp/internal/tui"
	"github.com/atinylittleshell/treecomp/pkg/fscomplete"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

var BUILD_VERSION = "dev"

var configPath = flag.String("config", "", "path to the config file (default ~/.treecomp/config.yaml)")
var baseDir = flag.String("base", "", "directory to resolve relative paths against (default cwd)")
var interactive = flag.Bool("i", false, "start the interactive completion prompt")
var quote = flag.Bool("q", false, "quote completions containing spaces")

var helpFlag = flag.Bool("h", false, "display help information")
var versionFlag = flag.Bool("ver", false, "display build version")

const helpText = `treecomp - hierarchical path completion

USAGE:
  treecomp [options] [word]

MODES:
  treecomp WORD           Print the completions of WORD, one per line
  treecomp -i             Start an interactive completion prompt

An empty result is normal: it means WORD has no completions.

OPTIONS:
`

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	if *helpFlag {
		fmt.Print(helpText)
		flag.PrintDefaults()
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "treecomp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := initializeLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	cwd := *baseDir
	if cwd == "" {
		cwd, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
	}

	fsCfg := cfg.FilesystemConfig()
	fsCfg.Logger = logger
	completer := fscomplete.New(fsCfg)

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		accepted, err := tui.Run(completer, cwd, logger)
		if err != nil {
			return err
		}
		if accepted != "" {
			fmt.Println(accepted)
		}
		return nil
	}

	word := flag.Arg(0)
	completions := completer.Complete(word, cwd)
	if *quote {
		completions = fscomplete.QuoteSpaces(completions)
	}
	for _, completion := range completions {
		fmt.Println(completion)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	loader := config.NewLoader(zap.NewNop())
	if *configPath != "" {
		return loader.LoadFromFile(*configPath)
	}
	return loader.LoadDefaultConfigPath()
}

func initializeLogger(cfg *config.Config) (*zap.Logger, error) {
	logLevel := environment.GetLogLevel()
	if os.Getenv(environment.LogLevelVar) == "" {
		if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
			logLevel = zap.NewAtomicLevelAt(level)
		}
	}
	if BUILD_VERSION == "dev" {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}

	// Logs only go to file to avoid interfering with the Bubble Tea UI
	// and with completion output on stdout.

	return loggerConfig.Build()
}
