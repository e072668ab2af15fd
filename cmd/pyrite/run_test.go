// ==============================================================================================
// FILE: cmd/pyrite/run_test.go
// ==============================================================================================
// Golden tests for the `run` subcommand, exercised in-process (no built binary,
// no subprocess) by redirecting os.Stdout around rootCmd.Execute. Grounded on
// go-dws's fixture_test.go use of go-snaps for output comparison.
// ==============================================================================================

package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/pyrite-lang/pyrite/runner"
)

// captureStdout runs fn with os.Stdout redirected into a pipe and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd.SetArgs(args)

	var runErr error
	out := captureStdout(t, func() {
		runErr = rootCmd.Execute()
	})
	return out, runErr
}

func TestMain(m *testing.M) {
	code := m.Run()
	snaps.Clean(m)
	os.Exit(code)
}

func TestRunCommandEvaluatesInlineSource(t *testing.T) {
	defer runner.SetOutput(os.Stdout)
	out, err := runCLI(t, "run", "--eval", "print 1 + 2", "--no-color")
	require.NoError(t, err)
	snaps.MatchSnapshot(t, out)
}

func TestRunCommandClassExample(t *testing.T) {
	defer runner.SetOutput(os.Stdout)
	source := "class Point:\n" +
		"  def __init__(self, x, y):\n" +
		"    self.x = x\n" +
		"    self.y = y\n" +
		"  def __str__(self):\n" +
		"    return str(self.x) + \",\" + str(self.y)\n" +
		"p = Point(3, 4)\n" +
		"print p\n"
	out, err := runCLI(t, "run", "--eval", source, "--no-color")
	require.NoError(t, err)
	snaps.MatchSnapshot(t, out)
}

func TestRunCommandMissingSourceFails(t *testing.T) {
	defer runner.SetOutput(os.Stdout)
	// Flag values persist across rootCmd.Execute calls, so clear the
	// --eval source an earlier test may have left behind.
	evalSource = ""
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	_, err := runCLI(t, "run")
	require.Error(t, err)
}

func TestLexCommandPrintsTokenKinds(t *testing.T) {
	out, err := runCLI(t, "lex", "--eval", "x = 1", "--no-color")
	require.NoError(t, err)
	snaps.MatchSnapshot(t, out)
}
