package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		enhanceSection = "summary"
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEnhanceCommandPrintsResult(t *testing.T) {
	out, err := runRoot(t, "enhance", "--section", "skills", "Go,", "SQL")
	require.NoError(t, err)
	assert.Equal(t, "Go, SQL [AI Enhanced: This content has been optimized for better impact and clarity.]\n", out)
}

func TestEnhanceCommandRejectsBlankContent(t *testing.T) {
	_, err := runRoot(t, "enhance", "--section", "summary", "   ")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "content cannot be empty"))
}
