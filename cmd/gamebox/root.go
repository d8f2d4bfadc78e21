package main

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/gamebox/internal/version"
	"github.com/arthur-debert/gamebox/pkg/errors"
	"github.com/arthur-debert/gamebox/pkg/gamebox"
	"github.com/arthur-debert/gamebox/pkg/logging"
	"github.com/arthur-debert/gamebox/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "gamebox",
		Short: MsgRootShort,
		Long: `gamebox inspects and edits DOS gamebox packages: self-contained
directories bundling a game's program files, drive volumes, launch
configuration and documentation.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// Add all commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newIDCmd())
	rootCmd.AddCommand(newTargetCmd())
	rootCmd.AddCommand(newLaunchersCmd())
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newScanCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gamebox version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

// openBox opens the gamebox at path with the process defaults: the real
// filesystem, layered settings and the home trash. A corrupt manifest is
// reported as a warning and the box is returned with default metadata, so
// read commands still work against a damaged box.
func openBox(cmd *cobra.Command, path string) (*gamebox.Gamebox, error) {
	box, err := gamebox.Open(path)
	if err != nil {
		if box != nil && errors.IsErrorCode(err, errors.ErrManifestCorrupt) {
			fmt.Fprintln(cmd.ErrOrStderr(), style.WarningStyle.Render("warning:"), err.Error())
			return box, nil
		}
		return nil, err
	}
	return box, nil
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Newf(errors.ErrInvalidInput, "%q is not a launcher index", arg)
	}
	return index, nil
}
