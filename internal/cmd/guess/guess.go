// Package guess parses guess command configuration and plays one session.
package guess

import (
	"context"
	"errors"
	"flag"
	"io"
	"strings"

	entrypoint "github.com/louisbranch/guess/internal/platform/cmd"
	"github.com/louisbranch/guess/internal/platform/random"
	game "github.com/louisbranch/guess/internal/services/guess"
	"github.com/louisbranch/guess/internal/services/guess/i18n"
)

// Config holds guess command configuration.
type Config struct {
	Seed   int64  `env:"SEED" envDefault:"0"`
	Locale string `env:"LOCALE" envDefault:"en"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for a reproducible secret (0 = random)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "message language ("+supportedLocales()+")")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func supportedLocales() string {
	tags := i18n.Supported()
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.String())
	}
	return strings.Join(names, ", ")
}

// Run plays one session reading guesses from in and writing to out.
// A nil source draws the secret from a source seeded by cfg.Seed.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, source random.Source) error {
	if in == nil {
		return errors.New("input is required")
	}
	if out == nil {
		return errors.New("output is required")
	}
	if source == nil {
		seeded, err := random.NewSource(cfg.Seed)
		if err != nil {
			return err
		}
		source = seeded
	}
	tag, _ := i18n.ParseTag(cfg.Locale)

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGuess, func(ctx context.Context) error {
		session, err := game.NewSession(game.SessionConfig{
			Range:     game.DefaultRange(),
			Source:    source,
			In:        in,
			Out:       out,
			Localizer: i18n.Printer(tag),
		})
		if err != nil {
			return err
		}
		return session.Run(ctx)
	})
}
