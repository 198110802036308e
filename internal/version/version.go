package version

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/subosito/gotenv"
)

// Default is returned for version files without a version binding.
const Default = "0.0.0.0"

const versionKey = "version"

type buildEnv struct {
	BuildNumber string `env:"GOOGLE_VERSION_BUILDNUMBER"`
}

// Read returns the dotted version declared in the file at path.
func Read(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("reading version file %s: %w", path, err)
	}
	defer f.Close()

	v, err := Parse(f)
	if err != nil {
		return "", fmt.Errorf("reading version file %s: %w", path, err)
	}
	return v, nil
}

// Parse reads version bindings from r and applies the build number found in
// the process environment. Lines that are not `key = value` bindings, such as
// imports or function bodies, are skipped.
func Parse(r io.Reader) (string, error) {
	bindings, err := readBindings(r)
	if err != nil {
		return "", err
	}

	be, err := env.ParseAs[buildEnv]()
	if err != nil {
		return "", fmt.Errorf("reading build number: %w", err)
	}

	raw, ok := bindings[versionKey]
	if !ok {
		return Default, nil
	}
	return Format(raw, be.BuildNumber), nil
}

// readBindings parses r one line at a time so a line gotenv rejects does not
// hide the bindings after it.
func readBindings(r io.Reader) (gotenv.Env, error) {
	bindings := gotenv.Env{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		env, err := gotenv.StrictParse(strings.NewReader(sc.Text()))
		if err != nil {
			continue
		}
		maps.Copy(bindings, env)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning version bindings: %w", err)
	}
	return bindings, nil
}

// Format turns a comma separated version tuple into a dotted version. A
// non-empty build replaces the last field.
func Format(raw, build string) string {
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if build != "" {
		parts[len(parts)-1] = build
	}
	return strings.Join(parts, ".")
}
