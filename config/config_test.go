package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/0xPolygon/obridge/l1bridge"
	"github.com/0xPolygon/obridge/proofverifier"
	"github.com/0xPolygon/obridge/registry"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	cfg, err := LoadFile(nil, "")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, uint32(0), cfg.Common.L1NetworkID)
	require.Equal(t, uint32(1), cfg.Common.L2NetworkID)
	require.Equal(t, "/tmp/obridge/l1bridge.sqlite", cfg.L1Bridge.DBPath)
	require.Equal(t, common.HexToAddress("0x1"), cfg.L1Bridge.Address)
	require.Equal(t, common.HexToAddress("0x2"), cfg.L2Bridge.Address)
	require.Equal(t, 168*time.Hour, cfg.L1Bridge.ChallengeDelay.Duration)
	require.Equal(t, l1bridge.PolicyOverwrite, cfg.L1Bridge.RegistrationPolicy)
	require.Equal(t, 168*time.Hour, cfg.StateCommitment.FinalizationDelay.Duration)
	require.Equal(t, proofverifier.ModeAcceptAll, cfg.StateCommitment.ProofVerifier.FraudProofMode)
	require.False(t, cfg.Relayer.Enabled)
	require.Equal(t, uint64(100), cfg.Relayer.MaxEventsPerPass)
	require.Equal(t, 5*time.Second, cfg.Relayer.WaitPeriodNextEvents.Duration)
	require.True(t, cfg.Finalizer.Enabled)
	require.Equal(t, 5576, cfg.RPC.Port)
	require.Equal(t, 9091, cfg.Metrics.Port)
	require.Equal(t, []string{"stderr"}, cfg.Log.Outputs)
	native := []registry.TokenPair{{L1Asset: common.Address{}, L2Asset: common.Address{}}}
	require.Equal(t, native, cfg.L1Bridge.TokenPairs)
	require.Equal(t, native, cfg.L2Bridge.TokenPairs)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	admin := common.HexToAddress("0xad")
	userFile := FileData{Name: "user", Content: `
AdminAddr = "` + admin.Hex() + `"
ChallengeDelay = "10m"

[L1Bridge]
  RegistrationPolicy = "reject-pending"

[Relayer]
  Enabled = true
`}
	cfg, err := LoadFile([]FileData{userFile}, "")
	require.NoError(t, err)

	require.Equal(t, admin, cfg.L1Bridge.Authority.Admin)
	require.Equal(t, admin, cfg.L2Bridge.Authority.Admin)
	require.Equal(t, admin, cfg.StateCommitment.Authority.Admin)
	require.Equal(t, 10*time.Minute, cfg.L1Bridge.ChallengeDelay.Duration)
	require.Equal(t, 10*time.Minute, cfg.StateCommitment.FinalizationDelay.Duration)
	require.Equal(t, l1bridge.PolicyRejectPending, cfg.L1Bridge.RegistrationPolicy)
	require.True(t, cfg.Relayer.Enabled)
}

func TestLoadFileEnvVars(t *testing.T) {
	sequencer := common.HexToAddress("0x5e")
	t.Setenv("OBRIDGE_SequencerAddr", sequencer.Hex())
	t.Setenv("OBRIDGE_RPC_PORT", "6000")

	cfg, err := LoadFile(nil, "")
	require.NoError(t, err)
	require.Equal(t, sequencer, cfg.L1Bridge.Authority.Sequencer)
	require.Equal(t, sequencer, cfg.Relayer.Sequencer)
	require.Equal(t, sequencer, cfg.Finalizer.Caller)
	require.Equal(t, 6000, cfg.RPC.Port)
}

func TestLoadFileSavesRenderedConfig(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadFile(nil, dir)
	require.NoError(t, err)

	saved, err := os.ReadFile(filepath.Join(dir, SaveConfigFileName))
	require.NoError(t, err)
	require.Contains(t, string(saved), "/tmp/obridge/relayer.sqlite")
	require.NotContains(t, string(saved), "{{")
}

func TestLoadFileRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown registration policy",
			content: "[L1Bridge]\nRegistrationPolicy = \"first-wins\"\n",
		},
		{
			name:    "unknown fraud proof mode",
			content: "[StateCommitment.ProofVerifier]\nFraudProofMode = \"zk\"\n",
		},
		{
			name:    "same network ids",
			content: "[Common]\nL1NetworkID = 1\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFile([]FileData{{Name: "user", Content: tc.content}}, "")
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestReadFilesConvertsJSON(t *testing.T) {
	dir := t.TempDir()
	jsonFile := filepath.Join(dir, "network.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"Common": {"L2NetworkID": 7}}`), 0600))

	files, err := readFiles([]string{jsonFile})
	require.NoError(t, err)
	cfg, err := LoadFile(files, "")
	require.NoError(t, err)
	require.Equal(t, uint32(7), cfg.Common.L2NetworkID)

	_, err = readFiles([]string{filepath.Join(dir, "missing.toml")})
	require.Error(t, err)
}
