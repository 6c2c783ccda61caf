package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, false)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	log = newLogger(&buf, true)
	log.Debug().Msg("detail")
	assert.Contains(t, buf.String(), "detail")
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	timer := NewTimer("scf", newLogger(&buf, true))
	d := timer.Stop()
	assert.GreaterOrEqual(t, int64(d), int64(0))
	assert.Contains(t, buf.String(), "stage finished")
	assert.Contains(t, buf.String(), "scf")
}
