package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/nbprint"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		stdin string
		args  []string
		want  string
	}{
		"yaml matrix": {
			stdin: "[[1, 2], [a, true]]",
			want:  `$\begin{bmatrix}{} 1 & 2 \\ {\tt'a'} & \text{True} \\ \end{bmatrix}$` + "\n",
		},
		"json vector": {
			stdin: `[1, 2.5, "x"]`,
			args:  []string{"-quote=false"},
			want:  `$\begin{bmatrix}{} 1 & 2.5 & {\tt x} \end{bmatrix}$` + "\n",
		},
		"no typefont": {
			stdin: `["x"]`,
			args:  []string{"-tt=false"},
			want:  `$\begin{bmatrix}{} \text{''x''} \end{bmatrix}$` + "\n",
		},
		"scalar": {
			stdin: "hello",
			want:  "hello\n",
		},
		"scalar bool": {
			stdin: "true",
			want:  "True\n",
		},
		"bare tex": {
			stdin: "[[1], [2]]",
			args:  []string{"-tex"},
			want:  `\begin{bmatrix}{} 1 \\ 2 \\ \end{bmatrix}` + "\n",
		},
		"html": {
			stdin: "[1, 2]",
			args:  []string{"-format", "html"},
			want:  `<span class="math">\(\begin{bmatrix}{} 1 &amp; 2 \end{bmatrix}\)</span>` + "\n",
		},
		"version": {
			args: []string{"-version"},
			want: "nbprint " + version + "\n",
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, _, err := runCLI(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		stdin  string
		args   []string
		target error
	}{
		"bad format":    {stdin: "[1]", args: []string{"-format", "latex"}, target: nbprint.ErrUnsupportedFormat},
		"ragged input":  {stdin: "[[1, 2], [3]]", target: nbprint.ErrShape},
		"rank 3 input":  {stdin: "[[[1]]]", target: nbprint.ErrShape},
		"tex of scalar": {stdin: "5", args: []string{"-tex"}, target: nbprint.ErrShape},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, _, err := runCLI(t, tt.stdin, tt.args...)
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestRunInvalidInput(t *testing.T) {
	t.Parallel()
	_, _, err := runCLI(t, "[1, 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing input")
}

func TestRunUnknownFlag(t *testing.T) {
	t.Parallel()
	_, stderr, err := runCLI(t, "", "-nope")
	require.Error(t, err)
	assert.Contains(t, stderr, "Usage:")
}

func TestRunConfigAndFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("quote_strings: false\nstrings_in_typefont: false\n"), 0o600))
	inPath := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(inPath, []byte(`["A", "B"]`), 0o600))
	outPath := filepath.Join(dir, "out.md")

	_, stderr, err := runCLI(t, "", "-config", cfgPath, "-file", inPath, "-out", outPath, "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "loaded config")

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, `$\begin{bmatrix}{} \text{A} & \text{B} \end{bmatrix}$`+"\n", string(out))

	// An explicit flag wins over the config file.
	got, _, err := runCLI(t, "", "-config", cfgPath, "-file", inPath, "-quote")
	require.NoError(t, err)
	assert.Equal(t, `$\begin{bmatrix}{} \text{''A''} & \text{''B''} \end{bmatrix}$`+"\n", got)
}

func TestRunOutputErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, _, err := runCLI(t, "[1]", "-out", filepath.Join(dir, "missing", "out.md"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "creating output")

	// A render failure is reported ahead of the close.
	outPath := filepath.Join(dir, "out.md")
	_, _, err = runCLI(t, "[[1, 2], [3]]", "-out", outPath)
	require.ErrorIs(t, err, nbprint.ErrShape)
	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunConfigErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("colour: red\n"), 0o600))

	_, _, err := runCLI(t, "[1]", "-config", cfgPath)
	require.ErrorIs(t, err, nbprint.ErrInvalidConfig)

	_, _, err = runCLI(t, "[1]", "-config", filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = runCLI(t, "", "-file", filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
