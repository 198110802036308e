package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/talkbuild/talkbuild/internal/component"
	"github.com/talkbuild/talkbuild/internal/engine"
	"github.com/talkbuild/talkbuild/internal/manifest"
)

var (
	mergeBuild  buildFlags
	mergeFormat string
)

var mergeCmd = &cobra.Command{
	Use:   "merge <file> <target>",
	Short: "Print the merged parameters of one target",
	Args:  cobra.ExactArgs(2),
	RunE:  runMerge,
}

func init() {
	addBuildFlags(mergeCmd, &mergeBuild)
	mergeCmd.Flags().StringVar(&mergeFormat, "format", engine.FormatYAML, "Output format (yaml, json)")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	env, err := mergeBuild.environment()
	if err != nil {
		return err
	}

	f, err := manifest.Parse(args[0])
	if err != nil {
		return err
	}
	t, ok := f.Find(args[1])
	if !ok {
		return fmt.Errorf("target %q not declared in %s", args[1], args[0])
	}

	res, err := component.NewBuilder(env, engine.NewRecorder(), log).Build(t.Kind, t.Params)
	if err != nil {
		return err
	}
	n, ok := res.Node()
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "target %q skipped: %s\n", t.Name(), res.Reason())
		return nil
	}

	switch mergeFormat {
	case engine.FormatJSON:
		out, err := json.MarshalIndent(n, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling merged target: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case engine.FormatYAML:
		out, err := yaml.Marshal(n)
		if err != nil {
			return fmt.Errorf("marshaling merged target: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", mergeFormat)
	}
	return nil
}
