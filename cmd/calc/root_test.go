// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikecarlton/calc/internal/store"
	"github.com/mikecarlton/calc/pkg/units"
)

// isolate points the config and unit database at a fresh temp directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("CALC_DATABASE", filepath.Join(dir, "units.sqlite3"))
	return dir
}

func runCalc(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	err := execute(context.Background(), cmd, args)
	return strings.TrimSpace(out.String()), err
}

func TestEvaluate(t *testing.T) {
	isolate(t)

	testCases := []struct {
		args     []string
		expected string
	}{
		{[]string{"1", "3", "/"}, "0.3333"},
		{[]string{"6", "3", "/"}, "2"},
		{[]string{"-p", "2", "1", "3", "/"}, "0.33"},
		{[]string{"--precision", "6", "1", "3", "/"}, "0.333333"},
		{[]string{"1", "m", "1", "ft", "+"}, "1.3048 m"},
		{[]string{"100", "°C", "°F"}, "212 °F"},
		{[]string{"60", "mi", "1", "h", "/"}, "26.8224 m*s^-1"},
		{[]string{"1", "2"}, "2\n1"},
		{[]string{"--oneline", "1", "2"}, "1 2"},
		{[]string{"-5", "3", "+"}, "-2"},
		{[]string{"-p", "2", "-1", "3", "/"}, "-0.33"},
		{[]string{"--precision=2", "-1.5", "m", "ft"}, "-4.92 ft"},
		{[]string{"3", "-5", "-"}, "8"},
		{[]string{"2.2", "lb", "kg"}, "0.9979 kg"},
	}

	for _, tc := range testCases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			output, err := runCalc(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, output)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	isolate(t)

	_, err := runCalc(t, "1", "m", "1", "s", "+")
	assert.ErrorIs(t, err, units.ErrDimensionMismatch)

	_, err = runCalc(t, "1", "0", "/")
	assert.ErrorIs(t, err, units.ErrDivisionByZero)

	_, err = runCalc(t, "1", "furlong")
	assert.ErrorContains(t, err, "unrecognized argument")

	_, err = runCalc(t, "3", "-", "1")
	assert.ErrorContains(t, err, "not enough arguments")
}

func TestProtectNumbers(t *testing.T) {
	cmd := newRootCmd()

	testCases := []struct {
		args     []string
		expected []string
	}{
		{[]string{"-5", "3", "+"}, []string{"--", "-5", "3", "+"}},
		{[]string{"-p", "2", "-5"}, []string{"-p", "2", "--", "-5"}},
		{[]string{"-o", "-1/2"}, []string{"-o", "--", "-1/2"}},
		{[]string{"1", "-5", "+"}, []string{"1", "-5", "+"}},
		{[]string{"--", "-5"}, []string{"--", "-5"}},
		{[]string{"-v"}, []string{"-v"}},
		{[]string{"define", "x", "-2", "m"}, []string{"define", "x", "-2", "m"}},
	}

	for _, tc := range testCases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			assert.Equal(t, tc.expected, protectNumbers(cmd, tc.args))
		})
	}
}

func TestHelpWithoutArguments(t *testing.T) {
	isolate(t)

	output, err := runCalc(t)
	require.NoError(t, err)
	assert.Contains(t, output, "RPN calculator that tracks physical dimensions")
}

func TestConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: 2\n"), 0o644))

	output, err := runCalc(t, "--config", path, "2", "3", "/")
	require.NoError(t, err)
	assert.Equal(t, "0.67", output)

	_, err = runCalc(t, "--config", filepath.Join(dir, "missing.yaml"), "1")
	assert.Error(t, err)
}

func TestDefineAndUndefine(t *testing.T) {
	isolate(t)

	output, err := runCalc(t, "define", "furlong", "660", "ft")
	require.NoError(t, err)
	assert.Equal(t, "furlong = 660 ft", output)

	output, err = runCalc(t, "8", "furlong", "mi")
	require.NoError(t, err)
	assert.Equal(t, "1 mi", output)

	output, err = runCalc(t, "units", "--dim", "ft")
	require.NoError(t, err)
	assert.Contains(t, output, "foot (ft)")
	assert.Contains(t, output, "furlong (furlong) *")
	assert.NotContains(t, output, "second")

	_, err = runCalc(t, "undefine", "furlong")
	require.NoError(t, err)

	_, err = runCalc(t, "1", "furlong")
	assert.Error(t, err)

	_, err = runCalc(t, "undefine", "furlong")
	assert.ErrorContains(t, err, "no user-defined unit")
}

func TestDefineErrors(t *testing.T) {
	isolate(t)

	_, err := runCalc(t, "define", "m", "2", "ft")
	assert.ErrorContains(t, err, "built-in")

	_, err = runCalc(t, "define", "widget", "2", "nonesuch")
	assert.ErrorContains(t, err, "unknown unit")

	_, err = runCalc(t, "define", "widget", "0", "ft")
	assert.Error(t, err)

	_, err = runCalc(t, "define", "widget", "2")
	assert.Error(t, err)
}

func TestImport(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
units:
  - name: furlong
    of: ft
    factor: "660"
  - name: league
    label: lea
    of: furlong
    factor: "24"
`), 0o644))

	output, err := runCalc(t, "import", path)
	require.NoError(t, err)
	assert.Equal(t, "imported 2 units", output)

	output, err = runCalc(t, "1", "league", "mi")
	require.NoError(t, err)
	assert.Equal(t, "3 mi", output)

	output, err = runCalc(t, "3", "mi", "league")
	require.NoError(t, err)
	assert.Equal(t, "1 lea", output)
}

func TestUnitsListing(t *testing.T) {
	isolate(t)

	output, err := runCalc(t, "units")
	require.NoError(t, err)
	assert.Contains(t, output, "meter (m)")
	assert.Contains(t, output, "m*s^-2*kg")

	output, err = runCalc(t, "units", "--dim", "s")
	require.NoError(t, err)
	assert.Contains(t, output, "minute (min)")
	assert.NotContains(t, output, "meter")

	_, err = runCalc(t, "units", "--dim", "cd*mol")
	assert.Error(t, err)

	output, err = runCalc(t, "units", "--dim", "K", "--yaml")
	require.NoError(t, err)
	f, err := store.ReadFile(strings.NewReader(output))
	require.NoError(t, err)
	names := make([]string, 0, len(f.Units))
	for _, e := range f.Units {
		names = append(names, e.Name)
	}
	assert.ElementsMatch(t, []string{"kelvin", "celsius", "fahrenheit"}, names)
}
