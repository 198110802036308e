package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"

	"github.com/talkbuild/talkbuild/internal/branding"
	"github.com/talkbuild/talkbuild/internal/environment"
)

const (
	fileName = "config"
	fileType = "yaml"

	profilesKey = "profiles"
)

// ErrUnknownProfile is returned by Profile for names missing from the config.
var ErrUnknownProfile = errors.New("unknown profile")

// Dir returns the path to the config directory (~/.talkbuild/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.talkbuild/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Profile returns the environment settings stored under profiles.<name>.
// An empty name yields empty settings.
func Profile(name string) (environment.Settings, error) {
	var s environment.Settings
	if name == "" {
		return s, nil
	}

	key := profilesKey + "." + name
	if !viper.IsSet(key) {
		return s, fmt.Errorf("%w %q", ErrUnknownProfile, name)
	}
	if err := viper.UnmarshalKey(key, &s); err != nil {
		return s, fmt.Errorf("decoding profile %q: %w", name, err)
	}
	return s, nil
}

// Profiles returns the configured profile names, sorted.
func Profiles() []string {
	names := make([]string, 0)
	for name := range viper.GetStringMap(profilesKey) {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
