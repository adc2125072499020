package wwv

/*
Output stage (C9).

Drains the FIFO and writes each entry's trailing region (buf[start_offset:])
to a Sink, then subsequent entries in full, preserving the FIFO's strict
order (spec.md §5's ordering rule: only the first entry carries a nonzero
start_offset).

Two sinks are provided: a host audio device via gordonklaus/portaudio
(preferred when stdout is a terminal, detected with golang.org/x/term, so
running wwvsim interactively doesn't dump raw PCM into the shell) and a
raw byte stream to stdout (for `wwvsim > out.raw` or a shell pipeline into
e.g. sox/aplay). The teacher's go.mod already names both dependencies;
neither is imported anywhere in the teacher's own cgo-routed audio path
(it calls into OSS/ALSA directly), so this is their first real use.
*/

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gordonklaus/portaudio"
	"golang.org/x/term"
)

// Sink accepts contiguous signed 16-bit mono samples for playback/output
// and can be torn down once.
type Sink interface {
	Write(samples []int16) error
	Close() error
}

// StdoutSink writes raw little-endian s16 PCM to an io.Writer, buffered
// to absorb per-minute write bursts without a syscall per sample.
type StdoutSink struct {
	w   *bufio.Writer
	buf []byte
}

// NewStdoutSink wraps w (typically os.Stdout).
func NewStdoutSink(w io.Writer) *StdoutSink {
	return &StdoutSink{w: bufio.NewWriterSize(w, 1<<16)}
}

func (s *StdoutSink) Write(samples []int16) error {
	if cap(s.buf) < len(samples)*2 {
		s.buf = make([]byte, len(samples)*2)
	}
	b := s.buf[:len(samples)*2]
	for i, v := range samples {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(v))
	}
	_, err := s.w.Write(b)
	return err
}

func (s *StdoutSink) Close() error {
	return s.w.Flush()
}

// PortAudioSink plays samples through a host audio device.
type PortAudioSink struct {
	stream *portaudio.Stream
	out    []int16
}

// OpenPortAudioSink initializes PortAudio and opens a mono output stream
// at sampleRate on the given device index, or the system default if
// deviceIndex < 0 (spec.md §6's -n/--device).
func OpenPortAudioSink(sampleRate, deviceIndex int) (*PortAudioSink, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("wwv: portaudio init: %w", err)
	}

	s := &PortAudioSink{out: make([]int16, sampleRate/10)} // 100ms write granularity

	var stream *portaudio.Stream
	var err error
	if deviceIndex < 0 {
		stream, err = portaudio.OpenDefaultStream(0, 1, float64(sampleRate), len(s.out), &s.out)
	} else {
		devices, derr := portaudio.Devices()
		if derr != nil {
			portaudio.Terminate()
			return nil, fmt.Errorf("wwv: portaudio device enumeration: %w", derr)
		}
		if deviceIndex >= len(devices) {
			portaudio.Terminate()
			return nil, fmt.Errorf("wwv: device index %d out of range (%d devices)", deviceIndex, len(devices))
		}
		dev := devices[deviceIndex]
		params := portaudio.StreamParameters{
			Output: portaudio.StreamDeviceParameters{
				Device:   dev,
				Channels: 1,
				Latency:  dev.DefaultLowOutputLatency,
			},
			SampleRate:      float64(sampleRate),
			FramesPerBuffer: len(s.out),
		}
		stream, err = portaudio.OpenStream(params, &s.out)
	}
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("wwv: portaudio open stream: %w", err)
	}
	s.stream = stream

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("wwv: portaudio start: %w", err)
	}

	return s, nil
}

func (s *PortAudioSink) Write(samples []int16) error {
	for len(samples) > 0 {
		n := copy(s.out, samples)
		for i := n; i < len(s.out); i++ {
			s.out[i] = 0
		}
		if err := s.stream.Write(); err != nil {
			return fmt.Errorf("wwv: portaudio write: %w", err)
		}
		samples = samples[n:]
	}
	return nil
}

func (s *PortAudioSink) Close() error {
	if err := s.stream.Stop(); err != nil {
		return err
	}
	if err := s.stream.Close(); err != nil {
		return err
	}
	return portaudio.Terminate()
}

// SelectSink picks PortAudio when stdout is a terminal (nothing useful
// can be piped there), else falls back to a raw byte stream on stdout,
// per spec.md §5's "Audio output" rule.
func SelectSink(sampleRate, deviceIndex int) (Sink, error) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return OpenPortAudioSink(sampleRate, deviceIndex)
	}
	return NewStdoutSink(os.Stdout), nil
}

// Output drains a Queue and writes each entry to a Sink in order.
type Output struct {
	Queue  *Queue
	Sink   Sink
	Logger *log.Logger
}

// Run blocks until the queue is closed, writing each dequeued entry's
// trailing region (beyond StartOffset) to the sink.
func (o Output) Run() error {
	for {
		entry, ok := o.Queue.Pop()
		if !ok {
			return o.Sink.Close()
		}
		samples := entry.Samples
		if entry.StartOffset > 0 && entry.StartOffset < len(samples) {
			samples = samples[entry.StartOffset:]
		}
		if err := o.Sink.Write(samples); err != nil {
			if o.Logger != nil {
				o.Logger.Error("sink write failed", "err", err)
			}
			return fmt.Errorf("wwv: sink write: %w", err)
		}
	}
}
