package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTheme(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, SetTheme(name))
	t.Cleanup(func() { _ = SetTheme(DefaultTheme) })
}

func TestSetTheme(t *testing.T) {
	withTheme(t, "MONO")
	assert.Equal(t, "mono", Current().Name)
	assert.Error(t, SetTheme("disco"))
	assert.Equal(t, "mono", Current().Name)
}

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"classic", "lunar", "mono"}, ThemeNames())
	assert.True(t, KnownTheme(" Lunar "))
	assert.False(t, KnownTheme("neon"))
}

func TestProgressBar(t *testing.T) {
	withTheme(t, "mono")
	assert.Equal(t, "#####-----  50%", ProgressBar(50, 100, 10))
	assert.Equal(t, "########## 100%", ProgressBar(150, 100, 10))
	assert.Equal(t, "-----   0%", ProgressBar(0, 0, 1))
}

func TestOKFail(t *testing.T) {
	withTheme(t, "mono")
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() { SetOutput(os.Stdout, os.Stderr) })

	OK("done")
	Fail("broken")
	Hint("try again")
	assert.Equal(t, "ok done\n", out.String())
	assert.Equal(t, "x broken\ntry again\n", errOut.String())
}

func TestPanelString(t *testing.T) {
	withTheme(t, "mono")
	p := PanelString("a", "bb")
	lines := strings.Split(p, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "+----+", lines[0])
	assert.Equal(t, "| a  |", lines[1])
	assert.Equal(t, "| bb |", lines[2])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hel…", Truncate("hello", 4))
	assert.Equal(t, "", Truncate("hello", 0))
}

func TestMarkdown(t *testing.T) {
	withTheme(t, "mono")
	out, err := Markdown("# Title\n\nSome *text*.", 40)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
}
