// FILE: argconf/loader_test.go
package argconf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseReader tests rc-file line parsing
func TestParseReader(t *testing.T) {
	t.Run("OneTokenPerLine", func(t *testing.T) {
		content := "--testparam\nfromfile\n--testswitch\n"
		tokens, lineErrs, err := parseReader(strings.NewReader(content), "test.rc")
		require.NoError(t, err)
		assert.Empty(t, lineErrs)
		assert.Equal(t, []string{"--testparam", "fromfile", "--testswitch"}, tokens)
	})

	t.Run("CommentsAndBlanksSkipped", func(t *testing.T) {
		content := `
# leading comment
--testparam

   # indented comment
value with spaces

`
		tokens, lineErrs, err := parseReader(strings.NewReader(content), "test.rc")
		require.NoError(t, err)
		assert.Empty(t, lineErrs)
		assert.Equal(t, []string{"--testparam", "value with spaces"}, tokens)
	})

	t.Run("OnlyCommentsAndBlanksYieldNoTokens", func(t *testing.T) {
		content := "# one\n\n  \n# two\n"
		tokens, lineErrs, err := parseReader(strings.NewReader(content), "test.rc")
		require.NoError(t, err)
		assert.Empty(t, lineErrs)
		assert.Empty(t, tokens)
	})

	t.Run("LinesAreNotSplitIntoWords", func(t *testing.T) {
		tokens, _, err := parseReader(strings.NewReader("--glob *.rs\n"), "test.rc")
		require.NoError(t, err)
		assert.Equal(t, []string{"--glob *.rs"}, tokens)
	})

	t.Run("WhitespaceTrimmedAtLineBoundaries", func(t *testing.T) {
		tokens, _, err := parseReader(strings.NewReader("  --testparam  \r\n\tvalue\t\n"), "test.rc")
		require.NoError(t, err)
		assert.Equal(t, []string{"--testparam", "value"}, tokens)
	})

	t.Run("OversizedLineIsOneToken", func(t *testing.T) {
		long := strings.Repeat("a", 1<<17)
		tokens, lineErrs, err := parseReader(strings.NewReader("--testparam\n"+long+"\n"), "test.rc")
		require.NoError(t, err)
		assert.Empty(t, lineErrs)
		require.Len(t, tokens, 2)
		assert.Equal(t, long, tokens[1])
	})

	t.Run("InvalidLineReportedAndRestProcessed", func(t *testing.T) {
		content := "--testparam\n\xff\xfe\nfromfile\n"
		tokens, lineErrs, err := parseReader(strings.NewReader(content), "test.rc")
		require.NoError(t, err)

		assert.Equal(t, []string{"--testparam", "fromfile"}, tokens)
		require.Len(t, lineErrs, 1)
		assert.Equal(t, 2, lineErrs[0].Line)
		assert.Equal(t, "test.rc", lineErrs[0].Path)
		assert.Contains(t, lineErrs[0].Error(), "test.rc:2")
	})
}

// TestParseFile tests whole-file loading failure modes
func TestParseFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("ValidFile", func(t *testing.T) {
		path := filepath.Join(tmpDir, "valid.rc")
		require.NoError(t, os.WriteFile(path, []byte("--testparam\nfromfile\n"), 0644))

		tokens, lineErrs, err := parseFile(path)
		require.NoError(t, err)
		assert.Empty(t, lineErrs)
		assert.Equal(t, []string{"--testparam", "fromfile"}, tokens)
	})

	t.Run("MissingFile", func(t *testing.T) {
		tokens, _, err := parseFile(filepath.Join(tmpDir, "does-not-exist.rc"))
		assert.Nil(t, tokens)
		assert.ErrorIs(t, err, ErrFileAccess)
	})

	t.Run("Directory", func(t *testing.T) {
		_, _, err := parseFile(tmpDir)
		assert.ErrorIs(t, err, ErrFileAccess)
	})
}

// TestFileTokens tests env-var path resolution and error recovery
func TestFileTokens(t *testing.T) {
	tmpDir := t.TempDir()
	nop := zerolog.Nop()

	t.Run("UnsetVariableIsSilent", func(t *testing.T) {
		tokens, warnings := fileTokens(MapEnv{}, "ARGCONF_TEST_CONFIG", nop)
		assert.Nil(t, tokens)
		assert.Nil(t, warnings)
	})

	t.Run("EmptyVariableIsSilent", func(t *testing.T) {
		tokens, warnings := fileTokens(MapEnv{"ARGCONF_TEST_CONFIG": ""}, "ARGCONF_TEST_CONFIG", nop)
		assert.Nil(t, tokens)
		assert.Nil(t, warnings)
	})

	t.Run("EmptyVariableNameIsSilent", func(t *testing.T) {
		tokens, warnings := fileTokens(MapEnv{"": "/nonsense"}, "", nop)
		assert.Nil(t, tokens)
		assert.Nil(t, warnings)
	})

	t.Run("UnreadableFileRecoveredToWarning", func(t *testing.T) {
		env := MapEnv{"ARGCONF_TEST_CONFIG": filepath.Join(tmpDir, "missing.rc")}
		tokens, warnings := fileTokens(env, "ARGCONF_TEST_CONFIG", nop)
		assert.Nil(t, tokens)
		require.Len(t, warnings, 1)
		assert.ErrorIs(t, warnings[0], ErrFileAccess)
	})

	t.Run("PartialFileYieldsTokensAndWarnings", func(t *testing.T) {
		path := filepath.Join(tmpDir, "partial.rc")
		require.NoError(t, os.WriteFile(path, []byte("--testparam\n\xff\xfe\nfromfile\n"), 0644))

		env := MapEnv{"ARGCONF_TEST_CONFIG": path}
		tokens, warnings := fileTokens(env, "ARGCONF_TEST_CONFIG", nop)
		assert.Equal(t, []string{"--testparam", "fromfile"}, tokens)
		require.Len(t, warnings, 1)

		var lineErr *LineError
		require.ErrorAs(t, warnings[0], &lineErr)
		assert.Equal(t, 2, lineErr.Line)
	})
}
