package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `<?xml version="1.0" encoding="UTF-8"?>
<vokabeldatei>
  <header><titel>Colours</titel><spreins>English</spreins><sprzwei>German</sprzwei></header>
  <vokabelsatz><lektion>1</lektion><spreins>red</spreins><sprzwei>rot</sprzwei><synonym/><bemerkung/></vokabelsatz>
  <vokabelsatz><lektion>1</lektion><spreins>blue; azure</spreins><sprzwei>blau</sprzwei><synonym/><bemerkung/></vokabelsatz>
</vokabeldatei>
`

func setupDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "colours.vok2"), []byte(fixture), 0o600))
	return dir
}

func TestRunDefaultsToVok5(t *testing.T) {
	dir := setupDir(t)

	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Processing 1 vok2 (and kk) files...")
	assert.Contains(t, stdout.String(), "Converted 1 / 1 vok2 files to vok5.")
	assert.FileExists(t, filepath.Join(dir, "colours.vok5"))

	stdout.Reset()
	code = run(nil, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "colours.vok5 already exists, skipping (use -f to override).")
	assert.Contains(t, stdout.String(), "Converted 0 / 1 vok2 files to vok5.")

	stdout.Reset()
	code = run([]string{"-f"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Converted 1 / 1 vok2 files to vok5.")
}

func TestRunCSV(t *testing.T) {
	dir := setupDir(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"--csv", "colours.vok2", "missing.vok2"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "missing.vok2 not found, skipping.")
	assert.Contains(t, stdout.String(), "Converted 1 / 2 vok2 files to csv.")

	data, err := os.ReadFile(filepath.Join(dir, "colours.csv"))
	require.NoError(t, err)
	assert.Equal(t, "1;red;rot;;\n1;\"blue; azure\";blau;;\n", string(data))
}

func TestRunWithoutFilesPrintsHelp(t *testing.T) {
	chdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "Usage:")
	assert.Empty(t, stdout.String())
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"--nope"}, &stdout, &stderr))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
