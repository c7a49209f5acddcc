package log

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogNotInitialized(t *testing.T) {
	Info("Test log.Info value is ", 10)
	Infof("Test log.Infof %d", 10)
	Debug("Test log.Debug value is ", 10)
	Debugf("Test log.Debugf %d", 10)
	Warnf("Test log.Warnf %d", 10)
	Errorf("Test log.Errorf %d", 10)
}

func TestLog(t *testing.T) {
	cfg := Config{
		Environment: EnvironmentDevelopment,
		Level:       "debug",
		Outputs:     []string{"stderr"},
	}
	Init(cfg)

	Info("Test log.Info value is ", 10)
	Infof("Test log.Infof %d", 10)
	Infow("Test log.Infow", "value", 10)
	Debugf("Test log.Debugf %d", 10)
	Error("Test log.Error value is ", 10)
	Errorf("Test log.Errorf %d", 10)
	Errorw("Test log.Errorw", "value", 10)
	Warnf("Test log.Warnf %d", 10)
	Warnw("Test log.Warnw", "value", 10)

	logger := WithFields("module", "test")
	logger.Infof("module logger %d", 1)
	require.True(t, logger.IsEnabledLogLevel(zapcore.DebugLevel))
	require.NotNil(t, logger.GetSugaredLogger())
}

func TestInvalidLevel(t *testing.T) {
	_, _, err := NewLogger(Config{Level: "verbose", Outputs: []string{"stderr"}})
	require.Error(t, err)
}

func TestProductionLevelFiltering(t *testing.T) {
	l, lvl, err := NewLogger(Config{
		Environment: EnvironmentProduction,
		Level:       "warn",
		Outputs:     []string{"stderr"},
	})
	require.NoError(t, err)
	require.NotNil(t, l)
	require.False(t, lvl.Enabled(zapcore.InfoLevel))
	require.True(t, lvl.Enabled(zapcore.ErrorLevel))
}
