// ==============================================================================================
// FILE: runner/runner_test.go
// ==============================================================================================
// PURPOSE: End-to-end scenarios run through the real lex-parse-execute pipeline against
//          captured stdout, one source-to-expected-stdout test function per scenario, using
//          testify/require.
// ==============================================================================================

package runner

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func runAndCapture(t *testing.T, source string) string {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	err := Run(source)
	require.NoError(t, err)
	return buf.String()
}

func TestAdditionOfNumbers(t *testing.T) {
	require.Equal(t, "3\n", runAndCapture(t, "print 1 + 2\n"))
}

func TestConcatenationOfStrings(t *testing.T) {
	require.Equal(t, "abcd\n", runAndCapture(t, `print "ab" + "cd"`+"\n"))
}

func TestIfElseBranching(t *testing.T) {
	src := "" +
		"x = 10\n" +
		"if x > 5:\n" +
		"  print \"big\"\n" +
		"else:\n" +
		"  print \"small\"\n"
	require.Equal(t, "big\n", runAndCapture(t, src))
}

func TestClassWithUnderscoreUnderscoreStr(t *testing.T) {
	src := "" +
		"class P:\n" +
		"  def __init__(self, n):\n" +
		"    self.n = n\n" +
		"  def __str__(self):\n" +
		"    return str(self.n)\n" +
		"p = P(7)\n" +
		"print p\n"
	require.Equal(t, "7\n", runAndCapture(t, src))
}

func TestInheritanceAndMethodResolution(t *testing.T) {
	src := "" +
		"class A:\n" +
		"  def hi(self):\n" +
		"    return \"A\"\n" +
		"class B(A):\n" +
		"  def hi(self):\n" +
		"    return \"B\"\n" +
		"print B().hi()\n" +
		"print A().hi()\n"
	require.Equal(t, "B\nA\n", runAndCapture(t, src))
}

func TestReturnThroughNestedIfElseInsideMethodSurfacesToCallSite(t *testing.T) {
	src := "" +
		"class C:\n" +
		"  def m(self):\n" +
		"    if True:\n" +
		"      return \"early\"\n" +
		"    print \"unreachable\"\n" +
		"c = C()\n" +
		"print c.m()\n"
	require.Equal(t, "early\n", runAndCapture(t, src))
}

func TestFieldAssignmentAndArithmeticOnFields(t *testing.T) {
	src := "" +
		"class Counter:\n" +
		"  def __init__(self, start):\n" +
		"    self.n = start\n" +
		"  def bump(self, by):\n" +
		"    self.n = self.n + by\n" +
		"    return self.n\n" +
		"c = Counter(5)\n" +
		"print c.bump(3)\n" +
		"print c.bump(1)\n"
	require.Equal(t, "8\n9\n", runAndCapture(t, src))
}

func TestOperatorOverloadDunderAdd(t *testing.T) {
	src := "" +
		"class Box:\n" +
		"  def __init__(self, n):\n" +
		"    self.n = n\n" +
		"  def __add__(self, other):\n" +
		"    return self.n + other\n" +
		"b = Box(4)\n" +
		"print b + 3\n"
	require.Equal(t, "7\n", runAndCapture(t, src))
}

func TestUndefinedVariableIsARuntimeError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	err := Run("print missing\n")
	require.Error(t, err)
}

func TestDivisionTruncatesTowardZero(t *testing.T) {
	require.Equal(t, "2\n", runAndCapture(t, "print 7 / 3\n"))
}
