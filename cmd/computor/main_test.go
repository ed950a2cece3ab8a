// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	return executeWith(t, zap.NewNop(), args...)
}

// executeWith is execute with l installed as the package logger.
func executeWith(t *testing.T, l *zap.Logger, args ...string) (string, error) {
	t.Helper()
	logger = l
	t.Cleanup(func() { logger = zap.NewNop() })

	cmd := newRootCmd()
	// Skip the production logger; tests keep the Nop one.
	cmd.PersistentPreRunE = nil
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRun_Linear(t *testing.T) {
	out, err := execute(t, "5 * X^0 + 4 * X^1 = 4 * X^0")
	require.NoError(t, err)
	assert.Equal(t, "Reduced form: 1 * X^0 + 4 * X^1 = 0\n"+
		"Polynomial degree: 1\n"+
		"The solution is:\n"+
		"-0.250000\n", out)
}

func TestRun_NoSolutionExitsZero(t *testing.T) {
	out, err := execute(t, "5 * X^0 = 4 * X^0")
	require.NoError(t, err)
	assert.Contains(t, out, "No solution")
}

func TestRun_UnsupportedDegreeFails(t *testing.T) {
	out, err := execute(t, "X^3 + 2 = 0", "X = 1")
	require.ErrorIs(t, err, ErrEquationsFailed)
	assert.Contains(t, err.Error(), "(1 of 2)")
	assert.Contains(t, out, "Polynomial degree: 3\n")
	assert.Contains(t, out, "I can't solve.")
	assert.Contains(t, out, "The solution is:\n1.000000\n", "later equations are still solved")
}

func TestRun_ParseErrorFails(t *testing.T) {
	out, err := execute(t, "X^2 + = 3")
	require.ErrorIs(t, err, ErrEquationsFailed)
	assert.Contains(t, out, "Syntax error: expected a term")
}

func TestRun_LeadingMinusAfterDashDash(t *testing.T) {
	out, err := execute(t, "--", "-X^2 = -4")
	require.NoError(t, err)
	assert.Contains(t, out, "Reduced form: 4 * X^0 - 1 * X^2 = 0\n")
}

func TestRun_JSONFormat(t *testing.T) {
	out, err := execute(t, "-f", "json", "X^2 = -1")
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "two-complex"`)
	assert.Contains(t, out, `"reduced_form": "1 * X^0 + 1 * X^2 = 0"`)
}

func TestRun_YAMLFormat(t *testing.T) {
	out, err := execute(t, "--format", "yaml", "X = 2")
	require.NoError(t, err)
	assert.Contains(t, out, "kind: one-real")
	assert.Contains(t, out, "re: 2")
}

func TestRun_Flags(t *testing.T) {
	out, err := execute(t, "-i", "--variable", "y", "-p", "2", "3 * Y = 1")
	require.NoError(t, err)
	assert.Contains(t, out, "Reduced form: -1 * y^0 + 3 * y^1 = 0\n")
	assert.Contains(t, out, "\n0.33\n")
}

func TestRun_InvalidFlags(t *testing.T) {
	_, err := execute(t, "-f", "xml", "X = 1")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "--variable", "XY", "X = 1")
	assert.ErrorContains(t, err, "invalid --variable")

	_, err = execute(t, "--epsilon", "-1", "X = 1")
	assert.ErrorContains(t, err, "invalid --epsilon")

	_, err = execute(t, "-p", "-1", "X = 1")
	assert.Error(t, err)

	_, err = execute(t)
	assert.Error(t, err, "at least one equation is required")
}

func TestRun_RejectedEquationLoggedAtError(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	_, err := executeWith(t, zap.New(core), "X^3 = 1", "X = 1")
	require.ErrorIs(t, err, ErrEquationsFailed)

	entries := logs.FilterMessage("Equation rejected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "X^3 = 1", entries[0].ContextMap()["equation"])
}

func TestNewLogger_Levels(t *testing.T) {
	l, err := newLogger(false)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))

	l, err = newLogger(true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestRootCmd_VerboseInstallsLogger(t *testing.T) {
	t.Cleanup(func() { logger = zap.NewNop() })

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-v", "X = 1"})
	require.NoError(t, cmd.Execute())
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.Contains(t, out.String(), "The solution is:\n1.000000\n")

	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"X = 1"})
	require.NoError(t, cmd.Execute())
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
