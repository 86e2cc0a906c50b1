package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every setting at a temp dir so runs never touch ~/.malla.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("MALLA_CONFIG", filepath.Join(dir, "missing.yaml"))
	t.Setenv("MALLA_DB", filepath.Join(dir, "malla.db"))
	for _, k := range []string{"MALLA_CATALOG", "PORT", "MALLA_SERVER_MODE", "MALLA_LOG_LEVEL", "MALLA_LOG_FORMAT", "MALLA_LOG_USE_CASES"} {
		t.Setenv(k, "")
	}
	return dir
}

func runMalla(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = run(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestRun_CheckReportsBrokenConfiguredCatalog(t *testing.T) {
	dir := isolate(t)
	bad := filepath.Join(dir, "dup.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[
		{"id": "A", "name": "A", "semester": 1, "prerequisites": []},
		{"id": "A", "name": "A bis", "semester": 1, "prerequisites": ["Z"]}
	]`), 0o644))
	t.Setenv("MALLA_CATALOG", bad)

	out, _, err := runMalla(t, "check")
	require.Error(t, err)
	assert.Contains(t, out, "Duplicate ids")
	assert.NoFileExists(t, filepath.Join(dir, "malla.db"))

	_, _, err = runMalla(t, "courses")
	assert.ErrorContains(t, err, "duplicate course id")
}

func TestRun_MutationsAreQuietUnlessUseCaseLoggingIsOn(t *testing.T) {
	dir := isolate(t)

	out, errOut, err := runMalla(t, "approve", "MAT101")
	require.NoError(t, err)
	assert.Contains(t, out, "MAT101 aprobado")
	assert.NotContains(t, errOut, "service_use_case")
	assert.FileExists(t, filepath.Join(dir, "malla.db"))

	t.Setenv("MALLA_LOG_USE_CASES", "true")
	_, errOut, err = runMalla(t, "approve", "LEN101")
	require.NoError(t, err)
	assert.Contains(t, errOut, "service_use_case")
}
