package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceName(t *testing.T) {
	assert.Equal(t, "Ekstra Havlu", ServiceName("tr", "towel"))
	assert.Equal(t, "Extra Towel", ServiceName("en", "towel"))
}

func TestServiceNameUnknownKeyFallsBackToKey(t *testing.T) {
	assert.Equal(t, "xyz", ServiceName("tr", "xyz"))
}

func TestUnknownLanguageFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "Ekstra Havlu", ServiceName("de", "towel"))
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("tr"))
	assert.True(t, IsSupported("en"))
	assert.False(t, IsSupported("fr"))
}
