package wwv

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func Test_NewLogger_verboseSetsDebugLevel(t *testing.T) {
	l := NewLogger(true)
	assert.Equal(t, log.DebugLevel, l.GetLevel())
}

func Test_NewLogger_quietSetsInfoLevel(t *testing.T) {
	l := NewLogger(false)
	assert.Equal(t, log.InfoLevel, l.GetLevel())
}
