package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talkbuild/talkbuild/internal/branding"
	"github.com/talkbuild/talkbuild/internal/component"
	"github.com/talkbuild/talkbuild/internal/config"
	"github.com/talkbuild/talkbuild/internal/engine"
	"github.com/talkbuild/talkbuild/internal/environment"
	"github.com/talkbuild/talkbuild/internal/logger"
	"github.com/talkbuild/talkbuild/internal/manifest"
	"github.com/talkbuild/talkbuild/internal/platform"
	"github.com/talkbuild/talkbuild/internal/version"
)

const profileKey = "profile"

// buildFlags select the environment declarations are merged against.
type buildFlags struct {
	platform string
	debug    bool
	coverage bool
	profile  string
}

func addBuildFlags(cmd *cobra.Command, f *buildFlags) {
	cmd.Flags().StringVar(&f.platform, "platform", "", "Target platform (linux, mac, posix, win); defaults to the host")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "Merge debug mode settings")
	cmd.Flags().BoolVar(&f.coverage, "coverage", false, "Merge coverage mode settings")
	cmd.Flags().StringVar(&f.profile, "profile", "",
		fmt.Sprintf("Environment profile from the config file (default $%s)", branding.EnvVar(profileKey)))
}

func (f buildFlags) bits() (platform.Bits, error) {
	b := platform.Host()
	if f.platform != "" {
		var err error
		if b, err = platform.For(f.platform); err != nil {
			return platform.Bits{}, err
		}
	}
	b.Debug = f.debug
	b.Coverage = f.coverage
	return b, nil
}

func (f buildFlags) environment() (*environment.Environment, error) {
	bits, err := f.bits()
	if err != nil {
		return nil, err
	}

	name := f.profile
	if name == "" {
		name = config.Get(profileKey)
	}
	overlay, err := config.Profile(name)
	if err != nil {
		return nil, err
	}

	env, err := environment.Load(bits, overlay)
	if err != nil {
		return nil, fmt.Errorf("loading build environment: %w", err)
	}
	log.Debug().Str("bits", bits.String()).Str("profile", name).Msg("environment loaded")
	return env, nil
}

// parseRepository splits an at=path mount argument.
func parseRepository(arg string) (engine.Repository, error) {
	at, path, ok := strings.Cut(arg, "=")
	if !ok || at == "" || path == "" {
		return engine.Repository{}, fmt.Errorf("invalid repository %q (want at=path)", arg)
	}
	return engine.Repository{At: at, Path: path}, nil
}

// loadDeclarations parses every declaration file named by paths, expanding
// directories, and checks their tool version requirement.
func loadDeclarations(paths []string) ([]*manifest.File, error) {
	var files []*manifest.File
	for _, path := range component.Components(paths...) {
		f, err := manifest.Parse(path)
		if err != nil {
			return nil, err
		}
		if err := version.CheckRequirement(buildVersion, f.Requires); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		log.Debug().Str("file", path).Int("targets", len(f.Targets)).Msg("declaration loaded")
		files = append(files, f)
	}
	return files, nil
}

// buildTargets runs every target of files through b. Skipped targets are
// logged, not reported as errors.
func buildTargets(b *component.Builder, files []*manifest.File, l *logger.Logger) error {
	for _, f := range files {
		for _, t := range f.Targets {
			res, err := b.Build(t.Kind, t.Params)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Path, err)
			}
			if res.IsSkipped() {
				l.Target(t.Name()).Info().Str("kind", string(t.Kind)).Str("reason", res.Reason()).Msg("target skipped")
			}
		}
	}
	return nil
}
