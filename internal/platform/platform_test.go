package platform

import (
	"runtime"
	"testing"

	"github.com/CristiGvl/picoSysMon/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported(Linux))
	assert.True(t, IsSupported(Android))
	assert.False(t, IsSupported("windows"))
	assert.False(t, IsSupported("darwin"))
}

func TestValidateSupport(t *testing.T) {
	err := ValidateSupport()
	if IsSupported(SupportedOS(runtime.GOOS)) {
		assert.NoError(t, err)
		return
	}
	assert.True(t, errors.HasCode(err, errors.ErrUnsupportedPlatform))
}
