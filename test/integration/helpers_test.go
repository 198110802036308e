//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME, holds .talkbuild/config.yaml
	MainDir string // MAIN_DIR, root of the source tree
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so config and path lookups are sandboxed. The env vars are restored after
// the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		MainDir: t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("MAIN_DIR", env.MainDir)
	t.Setenv("GOOGLE3", "")
	t.Setenv("GOOGLE_VERSION_BUILDNUMBER", "")

	viper.Reset()
	t.Cleanup(viper.Reset)

	return env
}

// setupTree writes a small client source tree: a base library with its
// unittest, a media-linked app and a version file.
func setupTree(t *testing.T, mainDir string) {
	t.Helper()

	writeDeclaration(t, mainDir, "talk/base", `requires: ">= 0.1.0"
targets:
  - kind: library
    name: base
    srcs: [common.cc, stringutils.cc]
    win_srcs: [win32.cc]
    posix_srcs: [unixfilesystem.cc]
    includedirs: [$MAIN_DIR/third_party/expat]
    prepend_includedirs: true
  - kind: unittest
    name: base
    srcs: [stringutils_unittest.cc]
    libs: [base]
    depends: [base]
`)

	writeDeclaration(t, mainDir, "talk/call", `targets:
  - kind: app
    name: call
    srcs: [call_main.cc]
    libs: [base]
    depends: [base]
    include_talk_media_libs: true
  - kind: object
    name: mac_glue
    mac_srcs: [glue.mm]
`)

	writeFile(t, filepath.Join(mainDir, "talk/version.py"), "# product version\nversion = '1,2,0,0'\n")
}

// writeConfig writes ~/.talkbuild/config.yaml.
func writeConfig(t *testing.T, homeDir, content string) {
	t.Helper()
	writeFile(t, filepath.Join(homeDir, ".talkbuild", "config.yaml"), content)
}

// writeDeclaration creates <dir>/<base>.talk.yaml under root.
func writeDeclaration(t *testing.T, root, dir, content string) {
	t.Helper()
	path := filepath.Join(root, dir, filepath.Base(dir)+".talk.yaml")
	writeFile(t, path, content)
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertContains fails if s doesn't contain substr.
func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("output does not contain %q.\nOutput:\n%s", substr, s)
	}
}

// assertNotContains fails if s contains substr.
func assertNotContains(t *testing.T, s, substr string) {
	t.Helper()
	if strings.Contains(s, substr) {
		t.Errorf("output unexpectedly contains %q.\nOutput:\n%s", substr, s)
	}
}
