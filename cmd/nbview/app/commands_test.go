package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const salesCSV = "name,qty\nfoo,1\nbar,\n"

// isolate keeps user and working-directory config files out of a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	for _, key := range []string{"NBVIEW_LOCALE", "NBVIEW_THEME", "NBVIEW_DEBUG", "NO_COLOR"} {
		t.Setenv(key, "")
	}
	return dir
}

func writeCSV(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestTable_TextWhenNotATerminal(t *testing.T) {
	path := writeCSV(t, isolate(t), salesCSV)

	code, stdout, stderr := run(t, "", "table", path)

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "name  qty\n----  ---\nfoo   1\nbar\n", stdout)
}

func TestTable_ReadsStdin(t *testing.T) {
	isolate(t)

	code, stdout, stderr := run(t, salesCSV, "table", "-", "--format", "text")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "foo   1")
}

func TestTable_SniffsDelimiter(t *testing.T) {
	path := writeCSV(t, isolate(t), "name;price\nfoo;1,5\n")

	code, stdout, stderr := run(t, "", "table", path, "--format", "text")

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "name  price\n----  -----\nfoo   1,5\n", stdout)
}

func TestTable_HTML(t *testing.T) {
	path := writeCSV(t, isolate(t), salesCSV)

	code, stdout, _ := run(t, "", "table", path, "--format", "html")

	require.Equal(t, 0, code)
	assert.Contains(t, stdout, `class="nbview-grid"`)
	assert.Contains(t, stdout, `class="null"`)
}

func TestTable_JSON(t *testing.T) {
	path := writeCSV(t, isolate(t), salesCSV)

	code, stdout, _ := run(t, "", "table", path, "--format", "json")
	require.Equal(t, 0, code)

	var got struct {
		RowCount int         `json:"rowCount"`
		Columns  []string    `json:"columns"`
		Values   [][]*string `json:"values"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, 2, got.RowCount)
	assert.Equal(t, []string{"name", "qty"}, got.Columns)
	assert.Nil(t, got.Values[1][1])
}

func TestTable_MaxRowsFlag(t *testing.T) {
	path := writeCSV(t, isolate(t), salesCSV)

	code, stdout, _ := run(t, "", "table", path, "--format", "text", "--max-rows", "1")

	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "… 1 more rows")
	assert.NotContains(t, stdout, "bar")
}

func TestTable_LocaleFlag(t *testing.T) {
	path := writeCSV(t, isolate(t), "n\n1234567\n")

	code, stdout, _ := run(t, "", "--locale", "de", "table", path, "--format", "text")

	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "1.234.567")
}

func TestTable_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{name: "bad format", args: []string{"table", "data.csv", "--format", "xml"}, wantCode: 2, wantErr: "invalid --format"},
		{name: "missing file", args: []string{"table", "nope.csv"}, wantCode: 1, wantErr: "reading nope.csv"},
		{name: "no args", args: []string{"table"}, wantCode: 2, wantErr: "accepts 1 arg"},
		{name: "extra args", args: []string{"table", "data.csv", "more.csv"}, wantCode: 2, wantErr: "accepts 1 arg"},
		{name: "unknown flag", args: []string{"table", "data.csv", "--bogus"}, wantCode: 2, wantErr: "unknown flag"},
		{name: "json input", args: []string{"table", "data.json"}, wantCode: 1, wantErr: "looks like JSON"},
		{name: "bad theme", args: []string{"--theme", "neon", "table", "data.csv"}, wantCode: 2, wantErr: "invalid theme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			writeCSV(t, dir, salesCSV)
			require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte(`{"a":1}`), 0o600))

			code, _, stderr := run(t, "", tt.args...)

			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stderr, "nbview: ")
			assert.Contains(t, stderr, tt.wantErr)
		})
	}
}

func TestChart_XYWithOwnIDAndSize(t *testing.T) {
	path := writeCSV(t, isolate(t), "x,y\n1,2\n2,4\n3,8\n")

	code, stdout, stderr := run(t, "", "chart", path,
		"--kind", "xy", "--x", "x", "--y", "y", "--id", "myplot", "--width", "400", "--height", "300")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `<script type="text/javascript">`)
	assert.Contains(t, stdout, `id="chart_`)
	assert.Contains(t, stdout, "width:400px;height:300px;")
	assert.Contains(t, stdout, `"myplot"`)
	assert.NotContains(t, stdout, "google.charts.load")
	assert.Contains(t, stderr, "chart div id differs")
}

func TestChart_SizeFlagsOverrideConfigFile(t *testing.T) {
	dir := isolate(t)
	path := writeCSV(t, dir, "x,y\n1,2\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".nbview.yaml"), []byte("chart:\n  width: 500\n  height: 400\n"), 0o600))

	code, stdout, stderr := run(t, "", "chart", path, "--kind", "xy", "--x", "x", "--y", "y")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "width:500px;height:400px;")

	code, stdout, stderr = run(t, "", "chart", path, "--kind", "xy", "--x", "x", "--y", "y", "--width", "640", "--height", "480")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "width:640px;height:480px;")
}

func TestChart_SVGDrawWaitsForDocument(t *testing.T) {
	path := writeCSV(t, isolate(t), "x,y\n1,2\n")

	code, stdout, _ := run(t, "", "chart", path, "--kind", "category", "--x", "x", "--y", "y")

	require.Equal(t, 0, code)
	assert.Contains(t, stdout, `document.addEventListener("DOMContentLoaded", draw);`)
}

func TestChart_GoogleUsesLoader(t *testing.T) {
	path := writeCSV(t, isolate(t), "month,sales\njan,10\nfeb,12\n")

	code, stdout, _ := run(t, "", "chart", path, "--kind", "google", "--x", "month", "--y", "sales")

	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "google.charts.load('current', {'packages':['corechart']});")
	assert.Contains(t, stdout, "width:800px;height:600px;")
}

func TestChart_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{name: "unknown kind", args: []string{"--kind", "radar", "--x", "x", "--y", "y"}, wantCode: 2, wantErr: "unknown chart kind"},
		{name: "missing y", args: []string{"--kind", "xy", "--x", "x"}, wantCode: 2, wantErr: "--x and --y are required"},
		{name: "missing kind", args: []string{"--x", "x", "--y", "y"}, wantCode: 2, wantErr: "--kind is required"},
		{name: "negative size", args: []string{"--kind", "xy", "--x", "x", "--y", "y", "--width=-5", "--height=3"}, wantCode: 2, wantErr: "positive values"},
		{name: "width only", args: []string{"--kind", "xy", "--x", "x", "--y", "y", "--width", "10"}, wantCode: 2, wantErr: "given together"},
		{name: "unknown column", args: []string{"--kind", "pie", "--x", "x", "--y", "z"}, wantCode: 1, wantErr: "z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, isolate(t), "x,y\n1,2\n")

			code, _, stderr := run(t, "", append([]string{"chart", path}, tt.args...)...)

			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stderr, tt.wantErr)
		})
	}
}

func TestVersion(t *testing.T) {
	isolate(t)

	code, stdout, _ := run(t, "", "version")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "nbview dev"))

	code, _, stderr := run(t, "", "version", "extra")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown command")

	code, stdout, _ = run(t, "", "version", "--format", "json")
	require.Equal(t, 0, code)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, "dev", info["version"])
}
