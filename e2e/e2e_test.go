//go:build e2e

package e2e_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"gopkg.in/yaml.v3"
)

var pkgmodBinary string

// releases is the fake index served to every script. Empty file lists mark yanked releases.
var releases = map[string]map[string][]map[string]any{
	"netCDF4": {
		"1.0.4":  {{"filename": "netCDF4-1.0.4.tar.gz", "yanked": false}},
		"1.2.0":  {{"filename": "netCDF4-1.2.0.tar.gz", "yanked": false}},
		"1.10.0": {{"filename": "netCDF4-1.10.0.tar.gz", "yanked": false}},
		"2.0.0":  {{"filename": "netCDF4-2.0.0.tar.gz", "yanked": true}},
	},
	"six": {
		"1.16.0": {{"filename": "six-1.16.0-py2.py3-none-any.whl", "yanked": false}},
	},
	"broken": {
		"1.0": {{"filename": "broken-1.0.tar.gz", "yanked": false}},
	},
}

// fakeInstaller stands in for pip: it lays out a prefix install or fails for "broken".
const fakeInstaller = `#!/bin/sh
name="$1"; version="$2"; target="$3"
if [ "$name" = broken ]; then
	echo "ERROR: could not build wheel for $name" >&2
	exit 1
fi
mkdir -p "$target/bin" "$target/lib/python3.12/site-packages/$name"
printf '#!/bin/sh\necho %s %s\n' "$name" "$version" > "$target/bin/$name-tool"
chmod +x "$target/bin/$name-tool"
echo "Successfully installed $name-$version"
`

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "pkgmod-e2e-*")
	if err != nil {
		panic(err)
	}

	pkgmodBinary = filepath.Join(tmpDir, "pkgmod")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", pkgmodBinary, "./cmd/pkgmod")
	cmd.Dir = filepath.Join("..")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build pkgmod binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	binDir := filepath.Dir(pkgmodBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	server := httptest.NewServer(http.HandlerFunc(serveIndex))
	env.Defer(server.Close)

	installer := filepath.Join(homeDir, "fake-pip")
	//nolint:gosec // Test requires executable file
	if err := os.WriteFile(installer, []byte(fakeInstaller), 0o700); err != nil {
		return err
	}

	config, err := yaml.Marshal(map[string]any{
		"version": "1",
		"root":    "packages",
		"index": map[string]any{
			"url":       server.URL + "/pypi",
			"kind":      "json",
			"cache_ttl": "0",
		},
		"installer": map[string]any{
			"command": []string{installer, "{name}", "{version}", "{target}"},
		},
	})
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(env.WorkDir, "pkgmod.yaml"), config, 0o600)
}

func serveIndex(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutSuffix(strings.TrimPrefix(r.URL.Path, "/pypi/"), "/json")
	project, found := releases[name]
	if !ok || !found {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"releases": project})
}
