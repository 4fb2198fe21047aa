package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/fs/billy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmgilman/dappreg/errors"
	"github.com/jmgilman/dappreg/registry"
)

const envPrefix = "DAPPREG"

const (
	keyConfig       = "config"
	keyRepository   = "repository"
	keyAssetBaseURL = "asset-base-url"
	keyLogLevel     = "log-level"
	keyLogFormat    = "log-format"
	keyOutput       = "output"
)

// app carries the state shared by every subcommand.
type app struct {
	v      *viper.Viper
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		in:     in,
		out:    out,
		errOut: errOut,
		logger: slog.New(slog.DiscardHandler),
	}

	cmd := &cobra.Command{
		Use:   "dappreg",
		Short: "Resolve contract failures into readable messages",
		Long: `dappreg reads a repository of dapp projects and their error matcher tables
and uses it to turn raw contract failure traces into messages a user can act on.

Configuration is read from flags, from DAPPREG_* environment variables and from
an optional dappreg.yaml in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(keyConfig, "", "path to a config file")
	flags.StringP(keyRepository, "r", ".", "path to the project repository")
	flags.String(keyAssetBaseURL, "", "prefix for icon and cover URLs")
	flags.String(keyLogLevel, "warn", "log level (debug, info, warn, error)")
	flags.String(keyLogFormat, "text", "log format (text, json)")
	flags.StringP(keyOutput, "o", "text", "output format (text, json, yaml)")

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.AddCommand(
		newFormatCmd(a),
		newValidateCmd(a),
		newListCmd(a),
		newGetCmd(a),
		newLookupCmd(a),
	)

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfiguration, "failed to bind flags")
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.readConfig(); err != nil {
		return err
	}

	logger, err := newLogger(a.errOut, a.v.GetString(keyLogLevel), a.v.GetString(keyLogFormat))
	if err != nil {
		return err
	}
	a.logger = logger

	if _, err := newRenderer(a.out, a.v.GetString(keyOutput)); err != nil {
		return err
	}

	return nil
}

func (a *app) readConfig() error {
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.WrapWithContext(err, errors.CodeInvalidConfiguration,
				"failed to read config file", map[string]interface{}{"path": path})
		}
		return nil
	}

	a.v.SetConfigName("dappreg")
	a.v.AddConfigPath(".")
	err := a.v.ReadInConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfiguration, "failed to read config file")
	}

	a.logger.Debug("using config file", "path", a.v.ConfigFileUsed())
	return nil
}

func (a *app) renderer() *renderer {
	// The format was checked in init.
	r, _ := newRenderer(a.out, a.v.GetString(keyOutput))
	return r
}

// loadRegistry loads the configured repository from the local disk.
func (a *app) loadRegistry(ctx context.Context) (*registry.Registry, error) {
	root, err := filepath.Abs(a.v.GetString(keyRepository))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfiguration, "invalid repository path")
	}

	fsys, err := billy.NewLocal().Chroot(root)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeLoadFailed,
			"failed to open repository", map[string]interface{}{"path": root})
	}

	return registry.Load(ctx, fsys,
		registry.WithLogger(a.logger),
		registry.WithAssetBaseURL(a.v.GetString(keyAssetBaseURL)),
	)
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.WithContext(
			errors.Newf(errors.CodeInvalidConfiguration, "unknown log level %q", level),
			keyLogLevel, level,
		)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, errors.WithContext(
			errors.Newf(errors.CodeInvalidConfiguration, "unknown log format %q", format),
			keyLogFormat, format,
		)
	}
}
