package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/uspsship/internal/cliconfig"
	"github.com/bft-labs/uspsship/pkg/log"
	"github.com/bft-labs/uspsship/pkg/usps"
)

const longHelp = `Query the USPS Web Tools API from the command line.

Validate addresses, track packages and create eVS shipping labels. Responses
are printed as JSON with element order preserved.

Configuration is read from $HOME/.usps/config.toml, then USPS_* environment
variables, then flags; later sources win.`

var exampleUsage = strings.TrimSpace(`
  usps track 9400111699000367046792 --user-id 123EXAMPLE
  usps validate --street "1600 Pennsylvania Ave NW" --zip5 20500
  usps label --shipment shipment.toml --test
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries state shared by the subcommands. setup fills in logger and
// client before any subcommand runs.
type app struct {
	cfg     cliconfig.Config
	cfgPath string

	logger *log.ZerologAdapter
	client *usps.Client
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: cliconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:               "usps",
		Short:             "Query the USPS Web Tools API",
		Long:              longHelp,
		Example:           exampleUsage,
		Version:           fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.usps/config.toml)")
	flags.StringVar(&a.cfg.UserID, "user-id", a.cfg.UserID, "USPS Web Tools user id")
	flags.BoolVar(&a.cfg.Test, "test", a.cfg.Test, "use the Certify (sandbox) APIs")
	flags.StringVar(&a.cfg.ServiceURL, "service-url", a.cfg.ServiceURL, "Web Tools endpoint (override only for testing)")
	_ = flags.MarkHidden("service-url")
	flags.DurationVar(&a.cfg.HTTPTimeout, "timeout", a.cfg.HTTPTimeout, "HTTP timeout")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		newTrackCmd(a),
		newValidateCmd(a),
		newLabelCmd(a),
	)
	return root
}

// setup resolves configuration (file, then env, then flags) and builds the
// client.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" {
		return nil
	}

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	} else if a.cfgPath != "" {
		return fmt.Errorf("config file %s not found", a.cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = cliconfig.NewLogger(cmd.ErrOrStderr(), a.cfg.LogLevel)

	logCfg := a.cfg
	if logCfg.UserID != "" {
		logCfg.UserID = "*****"
	}
	a.logger.Debug("configuration", log.Any("config", logCfg))

	client, err := usps.New(a.cfg.ClientConfig(),
		usps.WithHTTPClient(&http.Client{Timeout: a.cfg.HTTPTimeout}),
		usps.WithLogger(a.logger),
	)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	a.client = client
	return nil
}

// printJSON writes v as indented JSON followed by a newline.
func printJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
