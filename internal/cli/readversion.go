package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talkbuild/talkbuild/internal/version"
)

var readVersionCmd = &cobra.Command{
	Use:   "read-version <file>",
	Short: "Print the product version declared in a version file",
	Long: `Print the version binding of a version file as a dotted string. The last
field is replaced by $GOOGLE_VERSION_BUILDNUMBER when set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := version.Read(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readVersionCmd)
}
