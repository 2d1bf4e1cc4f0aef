package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/filesort/internal/version"
	"github.com/arthur-debert/filesort/pkg/logging"
)

var (
	verbosity int
	dryRun    bool
	overwrite bool
	cfgFile   string
)

// NewRootCmd builds the filesort command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filesort",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", FlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, FlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&overwrite, "overwrite", false, FlagOverwrite)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", FlagConfig)

	initTemplateFormatting()

	rootCmd.AddCommand(newOrganizeCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newGenconfigCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: MsgVersionShort,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("filesort version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
