package config

import (
	"flag"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/domino14/boundsearch/search"
)

const (
	ConfigDebug                  = "debug"
	ConfigSearchGoodEnough       = "search-good-enough"
	ConfigSearchMaxDepth         = "search-max-depth"
	ConfigSearchRootSuccessors   = "search-root-successors"
	ConfigSearchStrictExhaustion = "search-strict-exhaustion"
	ConfigSearchExplicitStack    = "search-explicit-stack"
	ConfigGuessTarget            = "guess-target"
	ConfigGuessStart             = "guess-start"
	ConfigGuessAlphabet          = "guess-alphabet"
	ConfigGuessRandomLength      = "guess-random-length"
	ConfigGuessTrials            = "guess-trials"
	ConfigFile                   = "config-file"
)

// Config holds every setting of the binary. Keys are the Config* constants.
type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config holding only defaults and whatever the
// environment sets.
func DefaultConfig() Config {
	c := Config{}
	c.Viper = viper.New()
	c.setDefaults()
	c.bindEnv()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigSearchGoodEnough, search.DefaultGoodEnough)
	c.SetDefault(ConfigSearchMaxDepth, 0)
	c.SetDefault(ConfigSearchRootSuccessors, false)
	c.SetDefault(ConfigSearchStrictExhaustion, false)
	c.SetDefault(ConfigSearchExplicitStack, false)
	c.SetDefault(ConfigGuessTarget, "AAABBBCCC")
	c.SetDefault(ConfigGuessStart, "D")
	c.SetDefault(ConfigGuessAlphabet, "ABCD")
	c.SetDefault(ConfigGuessRandomLength, 0)
	c.SetDefault(ConfigGuessTrials, 1)
}

func (c *Config) bindEnv() {
	c.SetEnvPrefix("boundsearch")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
}

// Load reads flags from args, then an optional config file. Precedence is
// flags, then environment (BOUNDSEARCH_SEARCH_MAX_DEPTH and so on), then
// the file, then defaults.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()
	c.bindEnv()

	fs := flag.NewFlagSet("boundsearch", flag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "log every lower-bound improvement")
	fs.Float64(ConfigSearchGoodEnough, search.DefaultGoodEnough, "stop once the lower bound exceeds this")
	fs.Int(ConfigSearchMaxDepth, 0, "give up after this depth; 0 searches forever")
	fs.Bool(ConfigSearchRootSuccessors, false, "search each top-level move from the state it leads to")
	fs.Bool(ConfigSearchStrictExhaustion, false, "count pruned branches as unexplored")
	fs.Bool(ConfigSearchExplicitStack, false, "walk the tree with an explicit work stack")
	fs.String(ConfigGuessTarget, "AAABBBCCC", "target string of the guess puzzle")
	fs.String(ConfigGuessStart, "D", "starting guess")
	fs.String(ConfigGuessAlphabet, "ABCD", "letters that can be appended")
	fs.Int(ConfigGuessRandomLength, 0, "if set, draw a random target of this length instead")
	fs.Int(ConfigGuessTrials, 1, "solve this many random puzzles and summarize the runs")
	fs.String(ConfigFile, "", "optional YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Only flags given explicitly override the lower layers.
	fs.Visit(func(f *flag.Flag) {
		c.Set(f.Name, f.Value.(flag.Getter).Get())
	})

	if path := c.GetString(ConfigFile); path != "" {
		c.SetConfigFile(path)
		c.SetConfigType("yaml")
		if err := c.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}

// SearchOptions converts the search keys into solver options.
func (c *Config) SearchOptions() []search.Option {
	return []search.Option{
		search.WithGoodEnough(c.GetFloat64(ConfigSearchGoodEnough)),
		search.WithMaxDepth(c.GetInt(ConfigSearchMaxDepth)),
		search.WithRootSuccessors(c.GetBool(ConfigSearchRootSuccessors)),
		search.WithStrictExhaustion(c.GetBool(ConfigSearchStrictExhaustion)),
		search.WithExplicitStack(c.GetBool(ConfigSearchExplicitStack)),
	}
}

// Dump renders the effective settings as YAML.
func (c *Config) Dump() (string, error) {
	out, err := yaml.Marshal(c.AllSettings())
	if err != nil {
		return "", err
	}
	return string(out), nil
}
