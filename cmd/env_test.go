// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> fileop -> codec -> filesystem rename.
//
// Tests run the compiled binary in a temp directory with HOME pointed at
// another temp directory, so the audit log and global config never touch
// the real user environment. The nametag codec itself has its own unit
// suite under nametag/; these tests cover the shell around it.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the nametag binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "nametag-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "nametag"
		if os.PathSeparator == '\\' {
			binaryName = "nametag.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string // working directory for the command
	home   string // isolated HOME (config + audit log)
	binary string
}

// newTestEnv creates a temporary working directory and an isolated HOME.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

// file creates a file with the given name in the test directory and
// returns its name (not the full path - commands run with dir as cwd).
func (e *testEnv) file(name string) string {
	e.t.Helper()
	require.NoError(e.t, os.WriteFile(filepath.Join(e.dir, name), []byte("content"), 0644))
	return name
}

// exists asserts a file with the given name exists in the test directory.
func (e *testEnv) exists(name string) {
	e.t.Helper()
	assert.FileExists(e.t, filepath.Join(e.dir, name))
}

// absent asserts no file with the given name exists in the test directory.
func (e *testEnv) absent(name string) {
	e.t.Helper()
	assert.NoFileExists(e.t, filepath.Join(e.dir, name))
}

// run executes nametag with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("nametag %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes nametag and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
