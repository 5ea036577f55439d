package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/hupe1980/fxkmeans"
	"github.com/hupe1980/fxkmeans/blobstore"
	"github.com/hupe1980/fxkmeans/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// requireFinished accepts a converged run or one stopped by --max-iterations.
func requireFinished(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		require.ErrorIs(t, err, fxkmeans.ErrNotConverged)
	}
}

var reportLine = regexp.MustCompile(`^\d+, \d+$`)

func assertReport(t *testing.T, out string, m int) {
	t.Helper()

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, m+2, out)
	assert.Regexp(t, `^K-Means algorithm finished after \d+ iterations\.$`, lines[0])
	assert.Equal(t, "The "+strconv.Itoa(m)+" centers are:", lines[1])
	for _, l := range lines[2:] {
		assert.Regexp(t, reportLine, l)
	}
}

func TestRun_Default(t *testing.T) {
	out, _, err := execute(t, "run", "--max-iterations", "1000")
	requireFinished(t, err)
	assertReport(t, out, 3)

	again, _, err := execute(t, "run", "--max-iterations", "1000")
	requireFinished(t, err)
	assert.Equal(t, out, again, "same seed must give the same report")
}

func TestRun_Workers(t *testing.T) {
	args := []string{"run", "--n", "2000", "--m", "5", "--max-coord", "1000", "--seed", "3", "--max-iterations", "200"}

	seq, _, seqErr := execute(t, args...)
	requireFinished(t, seqErr)
	par, _, parErr := execute(t, append(args, "--workers", "4")...)
	requireFinished(t, parErr)

	assert.Equal(t, seq, par)
	assert.Equal(t, seqErr == nil, parErr == nil)
}

func TestRun_Dumps(t *testing.T) {
	dir := t.TempDir()

	out, _, err := execute(t, "run", "--dir", dir, "--compression", "zstd", "--max-iterations", "1000")
	requireFinished(t, err)
	assertReport(t, out, 3)

	ctx := context.Background()
	store := blobstore.NewLocalStore(dir)

	run, err := sink.LoadCurrent(ctx, store, 100)
	require.NoError(t, err)
	assert.Len(t, run.Points, 50)
	assert.Len(t, run.InitialCenters, 3)
	assert.Len(t, run.FinalCenters, 3)
	assert.Len(t, run.Assignment, 50)

	names, err := store.List(ctx, run.Prefix+"/")
	require.NoError(t, err)
	for _, n := range names {
		assert.True(t, strings.HasSuffix(n, ".zst"), n)
	}

	for _, p := range run.FinalCenters {
		assert.Contains(t, out, strconv.Itoa(int(p.X))+", "+strconv.Itoa(int(p.Y))+"\n")
	}
}

func TestGenerateThenRunFromCurrent(t *testing.T) {
	dir := t.TempDir()

	out, _, err := execute(t, "generate", "--dir", dir, "--n", "40", "--m", "4", "--seed", "11")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 40 points and 4 centers to runs/")

	ctx := context.Background()
	store := blobstore.NewLocalStore(dir)
	generated, err := sink.LoadCurrent(ctx, store, 100)
	require.NoError(t, err)
	assert.Nil(t, generated.FinalCenters)

	// N and M come from the stored run, not from the defaults.
	out, _, err = execute(t, "run", "--dir", dir, "--from-current", "--max-iterations", "1000")
	requireFinished(t, err)
	assertReport(t, out, 4)

	clustered, err := sink.LoadCurrent(ctx, store, 100)
	require.NoError(t, err)
	assert.NotEqual(t, generated.Prefix, clustered.Prefix)
	assert.Equal(t, generated.Points, clustered.Points)
	assert.Len(t, clustered.Assignment, 40)
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fxkmeans.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
seed = 7
workers = 2
max_iterations = 1000

[clustering]
n = 30
m = 2
max_coord = 50
metric = "chebyshev"

[log]
level = "error"
`), 0o600))

	out, _, err := execute(t, "run", "--config", path)
	requireFinished(t, err)
	assertReport(t, out, 2)

	// Explicit flags override the file.
	out, _, err = execute(t, "run", "--config", path, "--m", "4")
	requireFinished(t, err)
	assertReport(t, out, 4)
}

func TestRun_ConfigFileErrors(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("clusters = 3\n"), 0o600))
	_, _, err := execute(t, "run", "--config", unknown)
	assert.ErrorContains(t, err, "unknown keys: clusters")

	_, _, err = execute(t, "run", "--config", filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_MetricsTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fxkmeans.prom")

	_, _, err := execute(t, "run", "--metrics-textfile", path, "--max-iterations", "1000")
	requireFinished(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fxkmeans_runs_total{status=")
	assert.Contains(t, string(data), "fxkmeans_steps_total")
	assert.Contains(t, string(data), "fxkmeans_run_iterations")
}

func TestRun_Logging(t *testing.T) {
	_, stderr, err := execute(t, "run", "--log-level", "debug", "--log-format", "json", "--max-iterations", "1")
	assert.ErrorIs(t, err, fxkmeans.ErrNotConverged)
	assert.Contains(t, stderr, `"msg":"step completed"`)
	assert.Contains(t, stderr, `"msg":"run stopped before convergence"`)
	assert.Contains(t, stderr, `"n":50`)
}

func TestRun_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Metric", []string{"run", "--metric", "cosine"}, "unknown metric"},
		{"ClusterCount", []string{"run", "--m", "0"}, "cluster count must be positive"},
		{"Bound", []string{"run", "--max-coord", "70000"}, "coordinate bound out of range"},
		{"WidthOverflow", []string{"run", "--n", "70000", "--max-coord", "65535"}, "coordinate sum needs 33 bits"},
		{"Compression", []string{"run", "--dir", "x", "--compression", "gzip"}, "unknown compression"},
		{"LogLevel", []string{"run", "--log-level", "loud"}, "invalid log level"},
		{"LogFormat", []string{"run", "--log-format", "xml"}, "invalid log format"},
		{"AmbiguousStore", []string{"run", "--dir", "x", "--minio-endpoint", "localhost:9000"}, errAmbiguousStore.Error()},
		{"MinIOBucket", []string{"run", "--minio-endpoint", "localhost:9000"}, "--minio-bucket is required"},
		{"FromCurrentWithoutStore", []string{"run", "--from-current"}, errNoStore.Error()},
		{"GenerateWithoutStore", []string{"generate"}, errNoStore.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestRun_MaxIterations(t *testing.T) {
	out, _, err := execute(t, "run", "--max-iterations", "1")
	assert.ErrorIs(t, err, fxkmeans.ErrNotConverged)
	assert.Contains(t, out, "K-Means algorithm finished after 1 iterations.")
}
