// Package cli implements the colorcat command line.
package cli

import (
	"fmt"
	"os"

	"github.com/charliek/colorcat/internal/constants"
	"github.com/charliek/colorcat/internal/domain"
	"github.com/spf13/cobra"
)

// Version is set during build
var Version = "dev"

// NewRootCmd builds the colorcat command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "colorcat [keyword]",
		Short: "Colorize Android logcat output",
		Long: `colorcat reads "logcat -v threadtime" output and prints it with each
process, tag and severity in its own color.

Input comes from stdin when it is piped, otherwise colorcat runs
"` + constants.DefaultCommand + `" itself. An optional keyword is highlighted
wherever it appears in a message.

Flags go before the keyword. Use -- for a keyword that starts with a dash.`,
		Example: `  adb logcat -v threadtime | colorcat
  colorcat ActivityManager
  colorcat --wrap --command "adb -d logcat -v threadtime"
  colorcat -- -v`,
		Args:          cobra.MaximumNArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.keyword = args[0]
			}
			flags := cmd.Flags()
			opts.commandSet = flags.Changed("command")
			opts.wrapSet = flags.Changed("wrap")
			opts.tagColorsSet = flags.Changed("tag-colors")
			return opts.run(cmd.Context(), os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (optional)")
	flags.StringVar(&opts.command, "command", constants.DefaultCommand, "Command to run when stdin is a terminal")
	flags.StringVar(&opts.envFile, "env-file", "", "Env file for the command")
	flags.BoolVar(&opts.wrap, "wrap", false, "Wrap long messages under the message column")
	flags.BoolVar(&opts.tagColors, "tag-colors", false, "Color each tag on its own instead of by process")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	cmd.SetVersionTemplate(styleBrand.Render("colorcat") + " version " + styleVersion.Render("{{.Version}}") + "\n")

	return cmd
}

// Execute runs the root command and exits
func Execute() {
	err := NewRootCmd().Execute()
	code := domain.ExitCode(err)
	if code != domain.ExitOK {
		fmt.Fprintf(os.Stderr, "%s %v\n", styleError.Render("Error:"), err)
		fmt.Fprintln(os.Stderr, styleHint.Render("Run 'colorcat --help' for usage."))
	}
	os.Exit(code)
}
