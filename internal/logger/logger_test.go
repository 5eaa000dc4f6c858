package logger

import (
	"bytes"
	"testing"

	"github.com/CristiGvl/picoSysMon/internal/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	InitWithWriter(&buf, "warn", true)

	Info().Msg("hidden")
	Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestErrorWithCode(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	InitWithWriter(&buf, "debug", true)

	ErrorWithCode(errors.New().New(errors.ErrSourceUnreadable)).Msg("read failed")

	out := buf.String()
	assert.Contains(t, out, "read failed")
	assert.Contains(t, out, "source_unreadable")
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("debug"))
	assert.True(t, ValidLevel("WARN"))
	assert.False(t, ValidLevel("loud"))
	assert.False(t, ValidLevel(""))
}

func TestSetLogLevelFallsBack(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	SetLogLevel("nonsense")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	SetLogLevel("error")
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
}
