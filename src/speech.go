package wwv

/*
Speech bridge (C10).

Abstracted as a Synthesizer capability per spec.md §9 ("synthesize(text)
-> PCM stream at Fs") so multiple TTS back ends can coexist, rather than
hard-coding one engine's command line the way wwvsim.c does (it picks
between macOS `say`, Piper, or espeak with #ifdef/#elif at compile time).

The default implementation shells out to an external command, the way the
teacher's xmit.go (xmit_speak_it) invokes its own external scripts with
os/exec and treats failure as logged-and-degraded rather than fatal —
exactly the posture spec.md §7 calls for here ("fall back to scheduled
tone" on TTS/file failure).

wwvsim.c:500's "if(Verbose){ fprintf(stderr,\"Executing \\\"%s\\\" to
speak:\\n\",command); ...}" trace is reproduced via an optional Logger,
at Debug level, so -v/--verbose's level selection (NewLogger) is what
gates it.
*/

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Synthesizer turns text into raw signed 16-bit mono PCM at sampleRate.
type Synthesizer interface {
	Synthesize(text string, female bool) ([]int16, error)
}

// CommandSynthesizer invokes an external TTS pipeline as a subprocess. The
// command is expected to write raw 16-bit mono PCM at SampleRate to
// standard output; each occurrence of %TEXTFILE% in Args is replaced by the
// input text file path and each %VOICE% by the selected voice name.
type CommandSynthesizer struct {
	SampleRate int
	// Command and Args name the external pipeline, e.g.
	// Command: "sh", Args: []string{"-c", "piper --model %VOICE% --output_file - < %TEXTFILE% | sox -t wav - -t raw -r 48000 -c 1 -b 16 -e signed-integer -"}
	Command     string
	Args        []string
	MaleVoice   string
	FemaleVoice string

	// Logger, if set, receives the command line and spoken text at Debug
	// level before each invocation (spec.md §6 -v/--verbose: "Dump
	// timecode and TTS commands to stderr").
	Logger *log.Logger
}

// Synthesize writes text to a temp file, invokes the configured command,
// and parses its raw PCM stdout. Temp files are removed before returning,
// regardless of outcome, per spec.md §5 resource discipline.
func (c CommandSynthesizer) Synthesize(text string, female bool) ([]int16, error) {
	tmp, err := os.CreateTemp("", "wwvsim-speech-*.txt")
	if err != nil {
		return nil, fmt.Errorf("wwv: speech temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("wwv: speech temp file write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("wwv: speech temp file close: %w", err)
	}

	voice := c.MaleVoice
	if female {
		voice = c.FemaleVoice
	}

	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		a = strings.ReplaceAll(a, "%TEXTFILE%", tmp.Name())
		a = strings.ReplaceAll(a, "%VOICE%", voice)
		args[i] = a
	}

	if c.Logger != nil {
		c.Logger.Debug("executing TTS command", "command", c.Command, "args", args, "text", text)
	}

	cmd := exec.Command(c.Command, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("wwv: speech command %q failed: %w (stderr: %s)", c.Command, err, stderr.String())
	}

	return pcmFromBytes(stdout.Bytes())
}

func pcmFromBytes(raw []byte) ([]int16, error) {
	if len(raw)%2 != 0 {
		raw = raw[:len(raw)-1]
	}
	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
	}
	return samples, nil
}

// LoadRawPCM reads a raw signed-16-bit little-endian mono file from disk,
// for the "<libdir>/<station>/<minute>.raw" splice path (spec.md §4.5
// step 2, §6).
func LoadRawPCM(path string) ([]int16, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return pcmFromBytes(raw)
}
