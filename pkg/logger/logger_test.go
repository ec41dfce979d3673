package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_LevelFiltersBelow(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Out: &buf})

	log.Info().Msg("quiet")
	log.Warn().Msg("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet", "info events are filtered at warn level")
	assert.Contains(t, out, "loud")
	assert.Contains(t, out, `"service":"behavioral"`, "every event carries the service field")
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "shouty", Out: &buf})

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestComponent_TagsChildLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Out: &buf})

	child := Component(log, "enhancer")
	child.Debug().Msg("tagged")

	assert.Contains(t, buf.String(), `"component":"enhancer"`)
}
