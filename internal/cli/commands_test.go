package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/shiftreport/pkg/errors"
	reportio "github.com/matzehuels/shiftreport/pkg/io"
	"github.com/matzehuels/shiftreport/pkg/report"
)

// execute runs the root command with args and returns what it wrote to its
// output stream. The cache lives in a per-test directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	root := New(io.Discard, LogDebug).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeSample(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, reportio.ExportFile(report.Sample(), path))
	return path
}

func TestRenderCommandMultipleFormats(t *testing.T) {
	input := writeSample(t, "daily.json")
	base := filepath.Join(t.TempDir(), "out", "daily")

	_, err := execute(t, "render", input, "-f", "png,xlsx,json", "-o", base, "--pixel-ratio", "1", "--compute-footer")
	require.NoError(t, err)

	for _, ext := range []string{".png", ".xlsx", ".json"} {
		info, err := os.Stat(base + ext)
		if assert.NoError(t, err, "missing %s", ext) {
			assert.Positive(t, info.Size())
		}
	}
}

func TestRenderCommandSingleOutput(t *testing.T) {
	input := writeSample(t, "daily.yaml")
	output := filepath.Join(t.TempDir(), "report.jpg")

	_, err := execute(t, "render", input, "-f", "jpg", "-o", output, "--pixel-ratio", "1", "--quality", "60")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xFF, 0xD8}), "output is not a JPEG")
}

func TestRenderCommandDefaultsNextToInput(t *testing.T) {
	input := writeSample(t, "daily.json")

	_, err := execute(t, "render", input, "--pixel-ratio", "1", "--no-cache")
	require.NoError(t, err)

	_, err = os.Stat(strings.TrimSuffix(input, ".json") + ".png")
	assert.NoError(t, err)
}

func TestRenderCommandErrors(t *testing.T) {
	input := writeSample(t, "daily.json")

	_, err := execute(t, "render", input, "-f", "svg")
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupported), "format: %v", err)

	_, err = execute(t, "render", filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "missing input: %v", err)

	_, err = execute(t, "render", input, "--pixel-ratio", "9", "--no-cache")
	assert.True(t, errors.Is(err, errors.ErrCodeConfiguration), "pixel ratio: %v", err)

	style := filepath.Join(t.TempDir(), "style.toml")
	require.NoError(t, os.WriteFile(style, []byte("row_height = -1\n"), 0o644))
	_, err = execute(t, "render", input, "--style", style, "--no-cache")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidStyle), "style: %v", err)
}

func TestPlanCommandJSON(t *testing.T) {
	input := writeSample(t, "daily.json")

	out, err := execute(t, "plan", input, "--json")
	require.NoError(t, err)

	var doc struct {
		Title string `json:"title"`
		Plan  struct {
			Sections []struct {
				Kind string `json:"kind"`
			} `json:"sections"`
		} `json:"plan"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, report.Sample().Title, doc.Title)
	require.Len(t, doc.Plan.Sections, 5)
	assert.Equal(t, "banner", doc.Plan.Sections[0].Kind)
	assert.Equal(t, "downtime", doc.Plan.Sections[4].Kind)
}

func TestSampleCommand(t *testing.T) {
	out, err := execute(t, "sample")
	require.NoError(t, err)
	m, err := reportio.ReadJSON(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, report.Sample().Title, m.Title)

	out, err = execute(t, "sample", "--yaml")
	require.NoError(t, err)
	m, err = reportio.ReadYAML(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, report.Sample().ParameterCount(), m.ParameterCount())

	path := filepath.Join(t.TempDir(), "sample.yml")
	_, err = execute(t, "sample", "-o", path)
	require.NoError(t, err)
	_, err = reportio.ImportFile(path)
	assert.NoError(t, err)
}

func TestCachePathCommand(t *testing.T) {
	custom := t.TempDir()
	root := New(io.Discard, LogInfo).RootCommand()
	t.Setenv("XDG_CACHE_HOME", custom)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"cache", "path"})
	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Equal(t, filepath.Join(custom, appName), strings.TrimSpace(out.String()))
}

func TestCacheClearCommand(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", custom)
	input := writeSample(t, "daily.json")

	run := func(args ...string) {
		t.Helper()
		root := New(io.Discard, LogDebug).RootCommand()
		root.SetOut(io.Discard)
		root.SetArgs(args)
		require.NoError(t, root.ExecuteContext(context.Background()))
	}

	run("render", input, "-f", "json")
	assert.NotEmpty(t, cachedFiles(t, filepath.Join(custom, appName)))

	run("cache", "clear")
	assert.Empty(t, cachedFiles(t, filepath.Join(custom, appName)))
}

func cachedFiles(t *testing.T, dir string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, appName)

	_, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}
