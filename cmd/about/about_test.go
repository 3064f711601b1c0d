package about

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudposse/ticktock/pkg/ui"
)

func TestAboutCmd(t *testing.T) {
	var status bytes.Buffer
	ui.InitFormatter(ui.Options{Out: &status})
	t.Cleanup(func() { ui.InitFormatter(ui.Options{}) })

	var out bytes.Buffer
	aboutCmd.SetOut(&out)
	t.Cleanup(func() { aboutCmd.SetOut(nil) })

	require.NoError(t, aboutCmd.RunE(aboutCmd, []string{}))

	assert.Contains(t, out.String(), "ticktock")
	assert.Contains(t, out.String(), "Stopwatch")
	assert.Empty(t, status.String(), "the overview goes to stdout, not the status stream")
}

func TestAboutCommandProvider(t *testing.T) {
	provider := &AboutCommandProvider{}

	assert.Equal(t, "about", provider.GetName())
	assert.Equal(t, "Other Commands", provider.GetGroup())
	assert.Equal(t, "about", provider.GetCommand().Use)
}
