package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/morozRed/codetool/internal/catalog"
	"github.com/morozRed/codetool/internal/config"
	"github.com/morozRed/codetool/internal/dispatch"
	"github.com/morozRed/codetool/internal/logging"
	"github.com/morozRed/codetool/internal/templates"
	"github.com/morozRed/codetool/internal/tools"
)

// lookPath resolves external tools; tests replace it.
var lookPath = exec.LookPath

// Environment is everything a command needs, built once before it runs.
type Environment struct {
	Config     *config.Config
	Log        *logrus.Logger
	Dispatcher *dispatch.Dispatcher
}

func (e *Environment) Setup(cmd *cobra.Command) error {
	configPath, err := OptionalStringFlag(cmd, "config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level, err := OptionalStringFlag(cmd, "log-level")
	if err != nil {
		return err
	}
	if level != "" {
		cfg.LogLevel = level
	}
	log, err := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	if cfg.Source != "" {
		log.WithField("file", cfg.Source).Debug("loaded config")
	}

	c := catalog.New(catalog.WithCustomSnippets(cfg.Snippets))
	for lang := range cfg.Snippets {
		if !c.IsSupported(lang) {
			log.WithField("language", lang).Warn("ignoring custom snippets for unsupported language")
		}
	}

	backend := tools.Select(cfg.Python.ToolsConfig(), lookPath)
	log.WithField("backend", backend.Name()).Debug("selected python tool backend")

	asJSON, err := OptionalBoolFlag(cmd, "json")
	if err != nil {
		return err
	}

	e.Config = cfg
	e.Log = log
	e.Dispatcher = &dispatch.Dispatcher{
		Catalog:   c,
		Templates: templates.NewGenerator(c),
		Adapter: tools.NewAdapter(backend,
			tools.WithIndent(cfg.Indent),
			tools.WithLinterName(cfg.Python.Linter),
			tools.WithLogger(log),
		),
		Log:       log,
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Terminal:  isTerminal(cmd),
		JSON:      asJSON,
		OutputDir: cfg.OutputDir,
	}
	return nil
}

func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (e *Environment) requireSetup() error {
	if e.Dispatcher == nil {
		return fmt.Errorf("command environment not initialized")
	}
	return nil
}
