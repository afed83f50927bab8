// Package config resolves kgdemo settings from flags, the environment and an
// optional dotenv file. Precedence, highest first: flags, process
// environment, dotenv file, built-in defaults.
package config

import (
	"flag"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variable names.
const (
	EnvTriples    = "KG_TRIPLES"
	EnvEmbeddings = "KG_EMBEDDINGS"
	EnvEmbedLimit = "KG_EMBED_LIMIT"
	EnvLogLevel   = "KG_LOG_LEVEL"
	EnvLogFormat  = "KG_LOG_FORMAT"
	EnvEnvFile    = "KG_ENV_FILE"
)

// DefaultEnvFile is read when KG_ENV_FILE is unset. A missing file is not an error.
const DefaultEnvFile = ".env"

// ErrInvalid marks a setting outside its allowed values.
var ErrInvalid = errors.New("config: invalid value")

// Config controls the demo run.
type Config struct {
	TriplesPath    string // HCL triple file; empty = built-in fixture
	EmbeddingsPath string // word2vec text file; empty = no feature matrices
	EmbedLimit     int    // max vectors to read; 0 = all
	LogLevel       string // debug|info|warn|error
	LogFormat      string // console|json
}

// Load reads the dotenv file, then parses args on top of the environment.
// flag.ErrHelp is returned unwrapped for -h/-help.
func Load(args []string, output io.Writer) (*Config, error) {
	envFile := envOrDefault(EnvEnvFile, DefaultEnvFile)
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "load env file %s", envFile)
	}

	limit, err := strconv.Atoi(envOrDefault(EnvEmbedLimit, "0"))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalid, "%s=%q", EnvEmbedLimit, os.Getenv(EnvEmbedLimit))
	}

	cfg := &Config{}
	flagSet := flag.NewFlagSet("kgdemo", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.StringVar(&cfg.TriplesPath, "triples", envOrDefault(EnvTriples, ""), "HCL triple file (default: built-in fixture)")
	flagSet.StringVar(&cfg.EmbeddingsPath, "embeddings", envOrDefault(EnvEmbeddings, ""), "word2vec/fastText text vectors for feature matrices")
	flagSet.IntVar(&cfg.EmbedLimit, "embed-limit", limit, "read at most this many vectors (0 = all)")
	flagSet.StringVar(&cfg.LogLevel, "log-level", envOrDefault(EnvLogLevel, "info"), "log level: debug, info, warn, error")
	flagSet.StringVar(&cfg.LogFormat, "log-format", envOrDefault(EnvLogFormat, "console"), "log format: console or json")
	if err = flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, flag.ErrHelp
		}
		return nil, errors.Wrap(err, "parse flags")
	}
	if cfg.TriplesPath == "" && flagSet.NArg() > 0 {
		cfg.TriplesPath = flagSet.Arg(0)
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalid, "log-level %q: want debug, info, warn or error", c.LogLevel)
	}
	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return errors.Wrapf(ErrInvalid, "log-format %q: want console or json", c.LogFormat)
	}
	if c.EmbedLimit < 0 {
		return errors.Wrapf(ErrInvalid, "embed-limit %d: must be >= 0", c.EmbedLimit)
	}

	return nil
}

func envOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return def
}
