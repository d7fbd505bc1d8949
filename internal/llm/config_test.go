package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, DefaultTimeout, config.Timeout)
}

func TestGetModel_FallbackChain(t *testing.T) {
	config := &Config{Models: map[ModelTier]string{TierStandard: "standard-model"}}
	assert.Equal(t, "standard-model", config.GetModel(TierLite))

	config = &Config{Models: map[ModelTier]string{TierLite: "lite-model"}}
	assert.Equal(t, "lite-model", config.GetModel(TierStandard))

	config = &Config{Models: map[ModelTier]string{}}
	assert.Equal(t, "", config.GetModel(TierStandard))
}

func TestWithModel(t *testing.T) {
	base := DefaultConfig()
	custom := base.WithModel(TierStandard, "gemini-exp")

	assert.Equal(t, "gemini-exp", custom.GetModel(TierStandard))
	assert.Equal(t, base.GetModel(TierLite), custom.GetModel(TierLite))
	// Original is untouched
	assert.Equal(t, "gemini-2.5-flash", base.GetModel(TierStandard))
}
