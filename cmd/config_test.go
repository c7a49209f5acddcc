package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateConfigSchema(t *testing.T) {
	schema, err := generateConfigSchema()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(schema, &decoded))
	properties, ok := decoded["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"Common", "Log", "L1Bridge", "L2Bridge", "StateCommitment", "Relayer", "Finalizer", "RPC"} {
		require.Contains(t, properties, key)
	}
}

func TestIsNeeded(t *testing.T) {
	require.True(t, isNeeded([]string{"rpc", "relayer"}, []string{"finalizer", "relayer"}))
	require.False(t, isNeeded([]string{"rpc"}, []string{"finalizer"}))
	require.False(t, isNeeded([]string{"rpc"}, nil))
}
