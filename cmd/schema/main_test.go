package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, writeSchema(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	defs, ok := schema["$defs"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, defs, "Config")
	assert.Contains(t, defs, "LLMConfig")
}
