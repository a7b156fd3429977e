package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typeforge/typeforge/internal/gen"
)

// executeCLI runs the root command in-process. Flag variables persist
// across Execute calls, so they are reset to their defaults first.
func executeCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootFlags.logLevel = ""
	rootFlags.logFile = ""
	genFlags.rootName = ""
	genFlags.selectExpr = ""
	genFlags.refsPath = ""
	genFlags.format = "go"
	genFlags.goPackage = ""
	genFlags.outPath = ""
	genFlags.check = false
	schemaFlags.rootName = ""
	schemaFlags.selectExpr = ""
	schemaFlags.refsPath = ""
	schemaFlags.outPath = ""
	searchFlags.rootName = ""
	searchFlags.selectExpr = ""
	searchFlags.refsPath = ""
	docsFlags.rootName = ""
	docsFlags.selectExpr = ""
	docsFlags.refsPath = ""
	docsFlags.title = ""
	docsFlags.outPath = "typeforge-docs.html"

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGen_GoToStdout(t *testing.T) {
	path := writeSample(t, "user.json", `{"id": 1, "name": "Ann"}`)

	out, err := executeCLI(t, "gen", path)
	require.NoError(t, err)
	assert.Contains(t, out, "type User struct {")
	assert.Contains(t, out, "ID float64 `json:\"id\"`")
}

func TestGen_TypeScriptToFile(t *testing.T) {
	path := writeSample(t, "user.json", `{"id": 1}`)
	outPath := filepath.Join(t.TempDir(), "user.ts")

	_, err := executeCLI(t, "gen", path, "--format", "ts", "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "export interface User {")
}

func TestGen_MultipleSamplesToDir(t *testing.T) {
	a := writeSample(t, "user.json", `{"id": 1}`)
	b := writeSample(t, "order.json", `{"total": 9.5}`)
	outDir := filepath.Join(t.TempDir(), "gen")

	_, err := executeCLI(t, "gen", a, b, "-o", outDir)
	require.NoError(t, err)

	for _, name := range []string{"user.go", "order.go"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

func TestGen_MultipleSamplesRequireOut(t *testing.T) {
	a := writeSample(t, "a.json", `{}`)
	b := writeSample(t, "b.json", `{}`)

	_, err := executeCLI(t, "gen", a, b)
	assert.ErrorContains(t, err, "--out directory is required")
}

func TestGen_Check(t *testing.T) {
	path := writeSample(t, "user.json", `{"id": 1, "tags": ["a"]}`)

	_, err := executeCLI(t, "gen", path, "--check")
	require.NoError(t, err)
}

func TestGen_Refs(t *testing.T) {
	samplePath := writeSample(t, "invoice.json", `{"total": {"amount": 9.5, "currency": "EUR"}}`)
	refsPath := writeSample(t, "refs.json", `{"Money": {"amount": "number", "currency": "string"}}`)

	out, err := executeCLI(t, "gen", samplePath, "--refs", refsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Total Money")
	assert.NotContains(t, out, "type Money struct")
}

func TestSchema_Stdout(t *testing.T) {
	path := writeSample(t, "user.json", `{"id": 1}`)

	out, err := executeCLI(t, "schema", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"$schema"`)
	assert.Contains(t, out, `"$defs"`)
	assert.Contains(t, out, `"#/$defs/User"`)
}

func TestSearch_MatchesCamelCase(t *testing.T) {
	path := writeSample(t, "repo.json", `{"owner": {"fullName": "Ann"}}`)

	out, err := executeCLI(t, "search", path, "full", "name")
	require.NoError(t, err)
	assert.Contains(t, out, "Owner")
}

func TestDocs_WritesFile(t *testing.T) {
	path := writeSample(t, "user.json", `{"id": 1}`)
	outPath := filepath.Join(t.TempDir(), "docs.html")

	_, err := executeCLI(t, "docs", path, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "user.go", outputName("testdata/user.json", gen.FormatGo))
	assert.Equal(t, "user.ts", outputName("testdata/user.json", gen.FormatTypeScript))
}
