package main

import (
	"strings"

	"github.com/govalues/bignum"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// envPrefix is the prefix of environment variables, as in BIGNUM_BASE.
const envPrefix = "BIGNUM"

const (
	keyBase     = "base"
	keyLogLevel = "log-level"
)

// config holds the settings shared by all commands.
// Flags take precedence over environment variables.
type config struct {
	v      *viper.Viper
	Base   int
	Level  zapcore.Level
	Logger *zap.Logger
}

func newConfig() *config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyBase, 10)
	v.SetDefault(keyLogLevel, "warn")
	return &config{v: v, Logger: zap.NewNop()}
}

// bindFlags registers the persistent flags and binds them to their keys.
func (c *config) bindFlags(flags *pflag.FlagSet) {
	flags.Int(keyBase, 10, "radix of numerals, from 2 to 36")
	flags.String(keyLogLevel, "warn", "logging level: debug, info, warn or error")
	c.v.BindPFlag(keyBase, flags.Lookup(keyBase))
	c.v.BindPFlag(keyLogLevel, flags.Lookup(keyLogLevel))
}

// load reads the settings and builds a logger that writes to w.
func (c *config) load(w zapcore.WriteSyncer) error {
	c.Base = c.v.GetInt(keyBase)
	if c.Base < bignum.MinBase || c.Base > bignum.MaxBase {
		return errors.Wrapf(bignum.ErrBaseRange, "--%v %v", keyBase, c.Base)
	}
	lvl, err := zapcore.ParseLevel(c.v.GetString(keyLogLevel))
	if err != nil {
		return errors.Wrapf(err, "--%v", keyLogLevel)
	}
	c.Level = lvl
	c.Logger = newLogger(w, lvl)
	c.Logger.Debug("configuration loaded", zap.Int(keyBase, c.Base), zap.Stringer(keyLogLevel, lvl))
	return nil
}

// newLogger creates a console logger at the given level.
func newLogger(w zapcore.WriteSyncer, lvl zapcore.Level) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), w, zap.NewAtomicLevelAt(lvl))
	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)).Named("bignum")
}
