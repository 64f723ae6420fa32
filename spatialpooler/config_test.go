package spatialpooler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnectionsAcceptsValidConfig(t *testing.T) {
	cfg := DefaultConfig()
	c, err := NewConnections(cfg)
	require.NoError(t, err)
	assert.Equal(t, product(cfg.InputDimensions), c.NumInputs())
	assert.Equal(t, product(cfg.ColumnDimensions), c.NumColumns())
}

func TestNewConnectionsRejectsNilConfig(t *testing.T) {
	_, err := NewConnections(nil)
	require.Error(t, err)
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestNewConnectionsRejectsMissingDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDimensions = nil
	_, err := NewConnections(cfg)
	require.Error(t, err)
}

func TestNewConnectionsRejectsBadPermanenceOrdering(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SynPermTrimThreshold = 0.5
	cfg.SynPermConnected = 0.1 // trim > connected, invalid
	_, err := NewConnections(cfg)
	require.Error(t, err)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "syn_perm_trim_threshold", cfgErr.Field)
}

func TestNewConnectionsRejectsBothDensityKnobsSet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LocalAreaDensity = 0.1
	cfg.NumActiveColumnsPerInhArea = 10 // both set, invalid
	_, err := NewConnections(cfg)
	require.Error(t, err)
}

func TestNewConnectionsRejectsNeitherDensityKnobSet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumActiveColumnsPerInhArea = 0
	cfg.LocalAreaDensity = 0
	_, err := NewConnections(cfg)
	require.Error(t, err)
}
