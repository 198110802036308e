package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talkbuild/talkbuild/internal/component"
	"github.com/talkbuild/talkbuild/internal/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|dir>...",
	Short: "Check declaration files against the schema and known options",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	files := component.Components(args...)

	invalid := 0
	for _, path := range files {
		result, err := manifest.ValidateFile(path)
		if err != nil {
			return err
		}
		if result.Valid {
			fmt.Fprintf(out, "ok    %s\n", path)
			continue
		}
		invalid++
		fmt.Fprintf(out, "FAIL  %s\n", path)
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "      %s: %s (%s)\n", issue.Path, issue.Message, issue.Keyword)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d declaration files invalid", invalid, len(files))
	}
	return nil
}
