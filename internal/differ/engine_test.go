package differ

import (
	"testing"

	"github.com/aleister1102/docdiff/internal/common/errorwrapper"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineRegistry_Build(t *testing.T) {
	registry, err := NewEngineRegistryBuilder().
		WithDiffConfig(DefaultDiffConfig()).
		WithLogger(zerolog.Nop()).
		Build()

	require.NoError(t, err)
	require.NotNil(t, registry)

	engines := registry.Engines()
	require.Len(t, engines, 2)
	assert.Equal(t, LcsDiffEngineName, engines[0].Name())
	assert.Equal(t, BitDiffEngineName, engines[1].Name())
}

func TestEngineRegistry_Engine_Dispatch(t *testing.T) {
	registry, err := NewEngineRegistryBuilder().Build()
	require.NoError(t, err)

	lcs, err := registry.Engine(EngineLCS)
	require.NoError(t, err)
	assert.IsType(t, &LcsDiffEngine{}, lcs)

	bit, err := registry.Engine(EngineBit)
	require.NoError(t, err)
	assert.IsType(t, &BitDiffEngine{}, bit)
}

func TestEngineRegistry_Engine_Unknown(t *testing.T) {
	registry, err := NewEngineRegistryBuilder().Build()
	require.NoError(t, err)

	_, err = registry.Engine(EngineKind("myers"))
	assert.Error(t, err)
}

func TestEngineRegistryBuilder_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultDiffConfig()
	cfg.MinDiffLength = 0

	_, err := NewEngineRegistryBuilder().WithDiffConfig(cfg).Build()
	assert.ErrorIs(t, err, errorwrapper.ErrInvalidConfiguration)

	cfg = DefaultDiffConfig()
	cfg.MaxTextLength = -1

	_, err = NewEngineRegistryBuilder().WithDiffConfig(cfg).Build()
	assert.ErrorIs(t, err, errorwrapper.ErrInvalidConfiguration)
}
