package wwv

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func Test_CommandSynthesizer_parsesRawPCMFromStdout(t *testing.T) {
	// printf emits the raw bytes of three little-endian int16 samples:
	// 1, -1, 256.
	c := CommandSynthesizer{
		SampleRate: testSampleRate,
		Command:    "printf",
		Args:       []string{`\x01\x00\xff\xff\x00\x01`},
	}

	samples, err := c.Synthesize("unused for this fake engine", false)
	assert.NoError(t, err)
	assert.Equal(t, []int16{1, -1, 256}, samples)
}

func Test_CommandSynthesizer_substitutesTextfileAndVoice(t *testing.T) {
	c := CommandSynthesizer{
		SampleRate:  testSampleRate,
		Command:     "sh",
		Args:        []string{"-c", "cat %TEXTFILE%; printf %VOICE% >/dev/null"},
		MaleVoice:   "Alex",
		FemaleVoice: "Samantha",
	}

	// cat dumps the text file's bytes, which aren't valid PCM length-wise
	// necessarily, but for this text ("hi") we just check no error and
	// that *something* came back with an even length after truncation.
	samples, err := c.Synthesize("hi", true)
	assert.NoError(t, err)
	assert.NotNil(t, samples)
}

func Test_CommandSynthesizer_logsCommandWhenLoggerSet(t *testing.T) {
	var buf bytes.Buffer
	c := CommandSynthesizer{
		SampleRate: testSampleRate,
		Command:    "printf",
		Args:       []string{`\x01\x00`},
		Logger:     log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}),
	}

	_, err := c.Synthesize("time check", false)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "executing TTS command")
	assert.Contains(t, buf.String(), "time check")
}

func Test_CommandSynthesizer_commandFailureReturnsError(t *testing.T) {
	c := CommandSynthesizer{SampleRate: testSampleRate, Command: "false"}
	_, err := c.Synthesize("text", false)
	assert.Error(t, err)
}

func Test_LoadRawPCM_roundTripsThroughFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "1.raw")

	want := []int16{100, -100, 32000, -32000}
	raw := make([]byte, len(want)*2)
	for i, v := range want {
		raw[i*2] = byte(uint16(v))
		raw[i*2+1] = byte(uint16(v) >> 8)
	}
	assert.NoError(t, os.WriteFile(path, raw, 0o644))

	got, err := LoadRawPCM(path)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_LoadRawPCM_missingFileErrors(t *testing.T) {
	_, err := LoadRawPCM(filepath.Join(t.TempDir(), "missing.raw"))
	assert.Error(t, err)
}
