package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sitescore/sitescore/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCommand_JSON(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"suggest", "#777777", "#ffffff", "--json"})
	require.NoError(t, cmd.Execute())

	var result []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result), "output should be valid JSON array")
	require.NotEmpty(t, result)
	assert.Contains(t, result[0], "strategy")
	assert.Contains(t, result[0], "ratio")
	assert.Contains(t, result[0], "wcag_level")
	assert.Contains(t, result[0], "preview")
}

func TestSuggestCommand_DefaultTUI(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"suggest", "#777777", "#ffffff"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Fixes for #777777 on #ffffff")
	assert.Contains(t, out, "darken-fg")
}

func TestSuggestCommand_NamedColors(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"suggest", "gray", "white"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Fixes for #808080 on #ffffff")
}

func TestSuggestCommand_LargeText(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"suggest", "#777777", "#ffffff", "--large", "--target", "4.5"})
	require.NoError(t, cmd.Execute())

	// The pair sits just under 4.5, so the smallest nudges clear it.
	assert.Contains(t, buf.String(), ":1")
}

func TestSuggestCommand_BadForeground(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"suggest", "notacolor", "#ffffff"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized foreground color")
}

func TestSuggestCommand_BadBackground(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"suggest", "#777777", "notacolor"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized background color")
}
