package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/morozRed/codetool/internal/templates"
	"github.com/morozRed/codetool/internal/tools"
)

const (
	FileName  = "codetool"
	EnvPrefix = "CODETOOL"
)

type Config struct {
	OutputDir string                       `mapstructure:"output_dir" yaml:"output_dir"`
	Indent    string                       `mapstructure:"indent" yaml:"indent"`
	LogLevel  string                       `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string                       `mapstructure:"log_format" yaml:"log_format"`
	Python    PythonTools                  `mapstructure:"python" yaml:"python"`
	Snippets  map[string]map[string]string `mapstructure:"snippets" yaml:"snippets,omitempty"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-" yaml:"-"`
}

type PythonTools struct {
	Formatter     string   `mapstructure:"formatter" yaml:"formatter"`
	FormatterArgs []string `mapstructure:"formatter_args" yaml:"formatter_args"`
	Linter        string   `mapstructure:"linter" yaml:"linter"`
	LinterArgs    []string `mapstructure:"linter_args" yaml:"linter_args"`
}

func (p PythonTools) ToolsConfig() tools.Config {
	return tools.Config{
		Formatter:     p.Formatter,
		FormatterArgs: p.FormatterArgs,
		Linter:        p.Linter,
		LinterArgs:    p.LinterArgs,
	}
}

func setDefaults(v *viper.Viper) {
	defaults := tools.DefaultConfig()
	v.SetDefault("output_dir", templates.DefaultOutputDir)
	v.SetDefault("indent", tools.DefaultIndent)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetDefault("python.formatter", defaults.Formatter)
	v.SetDefault("python.formatter_args", defaults.FormatterArgs)
	v.SetDefault("python.linter", defaults.Linter)
	v.SetDefault("python.linter_args", []string{})
}

// Load reads codetool.yaml. path may name a config file directly or a
// directory to search before $HOME/.codetool and the working directory.
// A missing config file is not an error unless path names a file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		if path != "" {
			v.AddConfigPath(path)
		}
		v.AddConfigPath("$HOME/.codetool")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()
	if cfg.Source != "" {
		snippets, err := readSnippets(cfg.Source)
		if err != nil {
			return nil, err
		}
		cfg.Snippets = snippets
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// readSnippets decodes the snippets section straight from the config file.
// Viper folds keys to lower case, which would lose topics such as "forLoop".
func readSnippets(path string) (map[string]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var doc struct {
		Snippets map[string]map[string]string `yaml:"snippets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode snippets in %s: %w", path, err)
	}
	return doc.Snippets, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output_dir must not be empty")
	}
	if strings.Trim(c.Indent, " \t") != "" {
		return fmt.Errorf("indent must contain only spaces or tabs, got %q", c.Indent)
	}
	return nil
}
