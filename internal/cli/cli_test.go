// SPDX-License-Identifier: MIT
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/linkedlist"
)

// run executes the root command in an empty working directory and returns
// stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestMerge_Text(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "interleaved",
			args: []string{"merge", "--a", "1,3,5,7", "--b", "2,4,6,8"},
			want: "1, 2, 3, 4, 5, 6, 7, 8",
		},
		{
			name: "uneven",
			args: []string{"merge", "--a", "11,33,44,88,89,90,100", "--b", "1,22,30,45"},
			want: "1, 11, 22, 30, 33, 44, 45, 88, 89, 90, 100",
		},
		{
			name: "both empty",
			args: []string{"merge"},
			want: "",
		},
		{
			name: "strings",
			args: []string{"merge", "--kind", "string", "--a", "ant, cat", "--b", "bee"},
			want: "ant, bee, cat",
		},
		{
			name: "floats",
			args: []string{"merge", "--kind", "float", "--a", "0.5,2.5", "--b", "1.25"},
			want: "0.5, 1.25, 2.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimRight(out, "\n"))
		})
	}
}

func TestMerge_JSON(t *testing.T) {
	out, _, err := run(t, "merge", "-o", "json", "--a", "1,4", "--b", "2,3")
	require.NoError(t, err)

	var got struct {
		Merged linkedlist.List[int] `json:"merged"`
		Length int                  `json:"length"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []int{1, 2, 3, 4}, got.Merged.Values())
	assert.Equal(t, 4, got.Length)
}

func TestMerge_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: [1, 3]\nb: [2]\n"), 0o600))

	out, _, err := run(t, "merge", "--input", path)
	require.NoError(t, err)
	assert.Equal(t, "1, 2, 3\n", out)

	// Flags override the file per list.
	out, _, err = run(t, "merge", "--input", path, "--b", "0")
	require.NoError(t, err)
	assert.Equal(t, "0, 1, 3\n", out)
}

func TestMerge_Validate(t *testing.T) {
	_, _, err := run(t, "merge", "--validate", "--a", "3,1", "--b", "2")
	require.ErrorIs(t, err, linkedlist.ErrUnsorted)

	out, stderr, err := run(t, "merge", "--a", "3,1", "--b", "2")
	require.NoError(t, err)
	assert.Equal(t, "2, 3, 1\n", out)
	assert.Contains(t, stderr, "not sorted")
}

func TestMerge_Errors(t *testing.T) {
	_, _, err := run(t, "merge", "--a", "1,x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list a: element 1")

	_, _, err = run(t, "merge", "--input", filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input")

	_, _, err = run(t, "merge", "--kind", "bool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestMerge_VerboseLogs(t *testing.T) {
	_, stderr, err := run(t, "-v", "merge", "--a", "1", "--b", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=merging")
	assert.Contains(t, stderr, "len_a=1")
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "listmerge v1.2.3")
}

func TestMerge_BlankElements(t *testing.T) {
	// Blank tokens are dropped for numeric kinds.
	out, _, err := run(t, "merge", "--a", "1,,3", "--b", ",2,")
	require.NoError(t, err)
	assert.Equal(t, "1, 2, 3\n", out)

	// For strings an empty token is a real element and sorts first.
	out, _, err = run(t, "merge", "--kind", "string", "-o", "json", "--a", ",b", "--b", "a")
	require.NoError(t, err)
	var got struct {
		Merged linkedlist.List[string] `json:"merged"`
		Length int                     `json:"length"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"", "a", "b"}, got.Merged.Values())
	assert.Equal(t, 3, got.Length)
}

func TestMerge_ConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listmerge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\nvalidate: true\nverbose: true\n"), 0o600))

	t.Run("config file", func(t *testing.T) {
		out, stderr, err := run(t, "--config", path, "merge", "--a", "1,4", "--b", "2")
		require.NoError(t, err)
		assert.JSONEq(t, `{"merged":[1,2,4],"length":3}`, out)
		assert.Contains(t, stderr, "using config file")
		assert.Contains(t, stderr, "validate=true")

		_, _, err = run(t, "--config", path, "merge", "--a", "4,1")
		require.ErrorIs(t, err, linkedlist.ErrUnsorted)
	})

	t.Run("env over config file", func(t *testing.T) {
		t.Setenv("LISTMERGE_OUTPUT", "text")
		t.Setenv("LISTMERGE_KIND", "string")
		out, _, err := run(t, "--config", path, "merge", "--a", "ant", "--b", "bee")
		require.NoError(t, err)
		assert.Equal(t, "ant, bee\n", out)
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("LISTMERGE_OUTPUT", "text")
		out, _, err := run(t, "--config", path, "-o", "json", "merge", "--a", "1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"merged":[1],"length":1}`, out)
	})
}
