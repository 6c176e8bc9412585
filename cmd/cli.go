package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ratectl/internal/config"
	"ratectl/internal/hal"
	"ratectl/pkg/build"
)

// Options holds the parsed command-line surface.
type Options struct {
	List       bool
	Current    bool
	SetRate    string
	Devices    bool
	Verbose    bool
	ConfigPath string
}

// ServiceFactory builds the platform device service once the
// configuration has been loaded.
type ServiceFactory func(cfg *config.Config) hal.Service

// Run parses args, loads configuration, and dispatches the requested
// operation. The returned value is the process exit code: 0 for success
// or help, 1 for any validation, query, or mutation failure. Running
// with no arguments prints the same usage text as --help but exits 1,
// since usage was needed rather than requested.
func Run(args []string, newService ServiceFactory, stdout, stderr io.Writer) int {
	buildInfo := build.GetInfo()
	opts := &Options{}
	code := 0

	rootCmd := &cobra.Command{
		Use:           buildInfo.Name,
		Short:         "Query and set the sample rate of the default audio output device",
		Version:       buildInfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
			HiddenDefaultCmd:    true,
		},
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			if len(posArgs) > 0 {
				fmt.Fprintf(stderr, "Error: unknown argument %q\n", posArgs[0])
				_ = cmd.Usage()
				code = 1
				return nil
			}
			code = dispatch(cmd, opts, newService, stdout, stderr)
			return nil
		},
	}

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.List, "list", "l", false,
		"list available sample rates for the current default output device")
	flags.BoolVarP(&opts.Current, "current", "c", false,
		"show current sample rate")
	flags.StringVarP(&opts.SetRate, "set", "s", "",
		"set sample rate to <rate> Hz (integer or decimal)")
	flags.BoolVar(&opts.Devices, "devices", false,
		"list all output-capable audio devices")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false,
		"show verbose output")
	flags.StringVar(&opts.ConfigPath, "config", "",
		"path to YAML configuration file")

	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		_ = rootCmd.Usage()
		return 1
	}

	return code
}
