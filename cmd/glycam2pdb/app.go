package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/privateer-tools/glycam2pdb/internal/codes"
	"github.com/privateer-tools/glycam2pdb/internal/convert"
	"github.com/privateer-tools/glycam2pdb/internal/engine"
	"github.com/privateer-tools/glycam2pdb/internal/store"
)

// app carries state shared by the subcommands.
type app struct {
	logger *zap.Logger
}

// newLogger builds a console logger writing to w.
func newLogger(w io.Writer, verbose bool) (*zap.Logger, error) {
	level := zapcore.DebugLevel
	if !verbose {
		var err error
		level, err = zapcore.ParseLevel(viper.GetString(keyLogLevel))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", keyLogLevel, err)
		}
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core), nil
}

func (a *app) converter() *convert.Converter {
	c := convert.NewConverter(codes.Default())
	c.SetLogger(a.logger)
	c.SetCapMarker(viper.GetString(keyCapMarker))
	c.SetModelMarker(viper.GetString(keyModelMarker))
	c.SetStrict(viper.GetBool(keyStrict))
	c.SetAtomAliases(viper.GetBool(keyAtomAliases))
	return c
}

// engineConfigured reports whether a validation engine bridge is set up.
func engineConfigured() bool {
	return viper.GetString(keyEngineURL) != "" || len(viper.GetStringSlice(keyEngineCommand)) > 0
}

// engineClient connects to the configured bridge; the URL wins over the
// command when both are set.
func (a *app) engineClient() (*engine.Client, error) {
	timeout := viper.GetDuration(keyEngineTimeout)
	if url := viper.GetString(keyEngineURL); url != "" {
		a.logger.Debug("using engine service", zap.String("url", url))
		return engine.NewHTTPClient(url, timeout), nil
	}
	if argv := viper.GetStringSlice(keyEngineCommand); len(argv) > 0 {
		a.logger.Debug("using engine command", zap.String("command", strings.Join(argv, " ")))
		return engine.NewExecClient(argv, timeout)
	}
	return nil, usagef("no validation engine configured: set %s or %s", keyEngineCommand, keyEngineURL)
}

// openStore opens the result store, or returns nil when none is configured.
func (a *app) openStore() (*store.Store, error) {
	path := viper.GetString(keyStorePath)
	if path == "" {
		return nil, nil
	}
	a.logger.Debug("opening result store", zap.String("path", path))
	return store.Open(path)
}
