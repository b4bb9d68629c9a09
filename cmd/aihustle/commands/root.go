package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"aihustle/internal/app"
)

var (
	configPath string
	verbose    bool
	appCtx     *app.App
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return execute(newRootCmd())
}

// execute runs root and then closes the app it built, whether or not the
// command succeeded.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if appCtx != nil {
		if cerr := appCtx.Close(); err == nil {
			err = cerr
		}
		appCtx = nil
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "aihustle",
		Short:        "Dashboard, product templates and outreach helpers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if verbose || cfg.Server.Debug {
				cfg.Log.Level = "debug"
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			appCtx, err = app.New(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "YAML config file (missing file means defaults)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(serveCmd(), productCmd(), templatesCmd(), dmsCmd(), statsCmd(), researchCmd(), analyzeCmd())
	return root
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
