package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleYAML = `template: business-card
brand_color: "#1e40af"
title: Acme Corp
contact:
  name: Jo Smith
  email: jo@acme.example
`

func writeSampleConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "card.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "pagepress")
}

func TestPaletteCommand(t *testing.T) {
	out, err := runCommand(t, "palette", "#1e40af")
	require.NoError(t, err)
	require.Contains(t, out, "text-on-primary")
	require.Contains(t, out, "#ffffff")

	_, err = runCommand(t, "palette", "mauve")
	require.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	cfg := writeSampleConfig(t)
	out := filepath.Join(t.TempDir(), "card.png")

	_, err := runCommand(t, "render", "-c", cfg, "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}))
}

func TestExportCommand(t *testing.T) {
	cfg := writeSampleConfig(t)
	dir := t.TempDir()

	_, err := runCommand(t, "export", "-c", cfg, "-p", "web-standard", "-o", dir)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "card-web-standard.png"))
	require.NoError(t, statErr)
}

func TestExportRejectsUnknownPreset(t *testing.T) {
	cfg := writeSampleConfig(t)
	_, err := runCommand(t, "export", "-c", cfg, "-p", "print-mega", "-o", t.TempDir())
	require.Error(t, err)
}
