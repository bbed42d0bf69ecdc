package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTOMLToYAML(t *testing.T) {
	tomlInput := []byte(`openapi = "3.1.0"

[info]
title = "Pets"
version = "1.0.0"

[[servers]]
url = "https://api.example.com"
`)
	yamlOutput, err := TOMLToYAML(tomlInput)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(yamlOutput, &decoded))

	assert.Equal(t, "3.1.0", decoded["openapi"])
	info, ok := decoded["info"].(map[string]any)
	require.True(t, ok, "info should decode as a mapping")
	assert.Equal(t, "Pets", info["title"])
	servers, ok := decoded["servers"].([]any)
	require.True(t, ok, "servers should decode as a sequence")
	assert.Len(t, servers, 1)
}

func TestTOMLToYAML_Invalid(t *testing.T) {
	_, err := TOMLToYAML([]byte("title = \n"))
	assert.Error(t, err)
}
