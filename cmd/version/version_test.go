package version

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/cloudposse/ticktock/pkg/version"
)

func TestVersionCommandProvider(t *testing.T) {
	provider := &VersionCommandProvider{}

	assert.Equal(t, "version", provider.GetName())
	assert.Equal(t, "Other Commands", provider.GetGroup())
	assert.NotNil(t, provider.GetCommand())
}

func TestVersionCommand_BasicProperties(t *testing.T) {
	cmd := versionCmd

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("format"))
}

func TestWriteVersion(t *testing.T) {
	info := version.Info{Version: "v1.0.0", GoVersion: "go1.26", OS: "linux", Arch: "amd64"}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeVersion(&buf, info, formatText))
		assert.Contains(t, buf.String(), "v1.0.0")
		assert.Contains(t, buf.String(), "linux/amd64")
		assert.Contains(t, buf.String(), "unknown")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeVersion(&buf, info, formatJSON))
		var got version.Info
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, info, got)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeVersion(&buf, info, formatYAML))
		var got version.Info
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, info, got)
	})
}
