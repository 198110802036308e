package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talkbuild/talkbuild/internal/component"
	"github.com/talkbuild/talkbuild/internal/engine"
	"github.com/talkbuild/talkbuild/internal/environment"
)

var (
	planBuild        buildFlags
	planFormat       string
	planExpand       bool
	planRepositories []string
)

var planCmd = &cobra.Command{
	Use:   "plan <file|dir>...",
	Short: "Merge declarations and print the build plan",
	Long: `Load declaration files, merge every target against the build environment
and print the recorded nodes in dependency order. A directory argument names
the file dir/<base>.talk.yaml.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlan,
}

func init() {
	addBuildFlags(planCmd, &planBuild)
	planCmd.Flags().StringVar(&planFormat, "format", engine.FormatText, "Output format (text, json, yaml)")
	planCmd.Flags().BoolVar(&planExpand, "expand", false, "Expand $MAIN_DIR and $GOOGLE3 in text output")
	planCmd.Flags().StringArrayVar(&planRepositories, "repository", nil, "Mount a source directory as at=path (repeatable)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	env, err := planBuild.environment()
	if err != nil {
		return err
	}

	plan, err := buildPlan(env, planRepositories, args)
	if err != nil {
		return err
	}

	var expand engine.Expander
	if planExpand {
		expand = env.Expand
	}
	return engine.Render(cmd.OutOrStdout(), plan, planFormat, expand)
}

// buildPlan records every target declared in paths on a fresh recorder and
// returns its plan.
func buildPlan(env *environment.Environment, repositories []string, paths []string) (*engine.Plan, error) {
	rec := engine.NewRecorder()
	b := component.NewBuilder(env, rec, log)

	for _, arg := range repositories {
		repo, err := parseRepository(arg)
		if err != nil {
			return nil, err
		}
		if err := b.Repository(repo.At, repo.Path); err != nil {
			return nil, err
		}
	}

	files, err := loadDeclarations(paths)
	if err != nil {
		return nil, err
	}
	if err := buildTargets(b, files, log); err != nil {
		return nil, err
	}

	plan, err := rec.Plan()
	if err != nil {
		return nil, fmt.Errorf("ordering build plan: %w", err)
	}
	return plan, nil
}
