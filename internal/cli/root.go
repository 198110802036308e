package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talkbuild/talkbuild/internal/branding"
	"github.com/talkbuild/talkbuild/internal/config"
	"github.com/talkbuild/talkbuild/internal/logger"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logLevel string
	log      = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` merges target declarations with the platform, mode and
environment settings of a build and records the resulting build plan.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.New(cmd.ErrOrStderr(), logLevel)
		if err != nil {
			return err
		}
		log = l
		config.Load()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
