package main

/*
wwvsim synthesizes a bit-accurate WWV/WWVH time-signal broadcast and
emits it to a host audio device or to stdout as raw PCM, phased to the
wall clock at startup.
*/

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	wwv "github.com/wwvsim/wwvsim/src"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		verbose    = pflag.BoolP("verbose", "v", false, "Dump timecode and TTS commands to stderr.")
		sampleRate = pflag.IntP("samprate", "r", 48000, "Audio sample rate, Hz. Must divide 1000 evenly.")
		wwvh       = pflag.BoolP("wwvh", "H", false, "Emit the WWVH variant (female voice, Kauai schedule). Default is WWV.")
		ut1        = pflag.IntP("ut1", "u", 0, "DUT1 in tenths of a second, [-7, 7].")
		year       = pflag.IntP("year", "Y", 0, "Override civil start year. Sets manual mode.")
		month      = pflag.IntP("month", "M", 0, "Override civil start month (1-12).")
		day        = pflag.IntP("day", "D", 0, "Override civil start day.")
		hour       = pflag.IntP("hour", "h", 0, "Override civil start hour.")
		minute     = pflag.IntP("minute", "m", 0, "Override civil start minute.")
		second     = pflag.IntP("second", "s", 0, "Override civil start second.")
		positive   = pflag.BoolP("positive", "P", false, "Arm a positive leap second at the next 23:59 UTC minute in June or December.")
		negative   = pflag.BoolP("negative", "N", false, "Arm a negative leap second at the next 23:59 UTC minute in June or December.")
		noTone     = pflag.BoolP("no-tone", "t", false, "Suppress the 440/500/600 Hz scheduled tones.")
		noVoice    = pflag.BoolP("no-voice", "d", false, "Suppress spoken announcements.")
		noCode     = pflag.BoolP("no-code", "c", false, "Suppress the 100 Hz BCD subcarrier.")
		device     = pflag.IntP("device", "n", -1, "Audio device index. Default is the system default device.")
		libDir     = pflag.StringP("libdir", "L", wwv.DefaultLibDir, "Library directory for per-minute announcement files.")
		help       = pflag.BoolP("help", "?", false, "Display help text.")
	)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wwvsim: synthesize a WWV/WWVH time-signal broadcast\n\n")
		fmt.Fprintf(os.Stderr, "Usage: wwvsim [options]\n\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		return 0
	}

	cfg := wwv.Config{
		Verbose:    *verbose,
		SampleRate: *sampleRate,
		Station:    wwv.WWV,
		Dut1:       wwv.Dut1Tenths(*ut1),
		Manual:     *year != 0,
		Year:       *year,
		Month:      *month,
		Day:        *day,
		Hour:       *hour,
		Minute:     *minute,
		Second:     *second,
		Positive:   *positive,
		Negative:   *negative,
		NoTone:     *noTone,
		NoVoice:    *noVoice,
		NoCode:     *noCode,
		Device:     *device,
		LibDir:     *libDir,
	}
	if *wwvh {
		cfg.Station = wwv.WWVH
	}

	logger := wwv.NewLogger(cfg.Verbose)

	warnings, err := cfg.Validate()
	for _, w := range warnings {
		logger.Warn(w)
	}
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return 1
	}

	clock := startClock(cfg)

	sink, err := wwv.SelectSink(cfg.SampleRate, cfg.Device)
	if err != nil {
		logger.Error("failed to open audio sink", "err", err)
		return 1
	}

	queue := wwv.NewQueue()

	var synth wwv.Synthesizer
	if !cfg.NoVoice {
		synth = defaultSynthesizer(cfg.SampleRate, logger)
	}

	producer := &wwv.Producer{
		Station:    cfg.Station,
		SampleRate: cfg.SampleRate,
		Clock:      clock,
		Dut1:       cfg.Dut1,
		Leap:       cfg.LeapState(),
		Manual:     cfg.Manual,
		NoTone:     cfg.NoTone,
		Verbose:    cfg.Verbose,
		Assembler: wwv.Assembler{
			SampleRate: cfg.SampleRate,
			LibDir:     cfg.LibDir,
			Synth:      synth,
			NoVoice:    cfg.NoVoice,
			NoCode:     cfg.NoCode,
		},
		Queue:  queue,
		Logger: logger,
		Now:    time.Now,
	}

	output := wwv.Output{Queue: queue, Sink: sink, Logger: logger}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logger.Info("shutting down")
		queue.Close()
	}()

	go func() {
		if err := producer.Run(); err != nil {
			logger.Error("producer exited", "err", err)
			queue.Close()
		}
	}()

	logger.Info("wwvsim started", "station", cfg.Station, "sample_rate", cfg.SampleRate)
	if err := output.Run(); err != nil {
		logger.Error("output exited", "err", err)
		return 1
	}
	return 0
}

func startClock(cfg wwv.Config) wwv.CivilTime {
	if !cfg.Manual {
		return wwv.CivilTimeFromWall(time.Now())
	}
	return wwv.CivilTime{
		Year:   cfg.Year,
		Month:  cfg.Month,
		Day:    cfg.Day,
		Hour:   cfg.Hour,
		Minute: cfg.Minute,
		Second: cfg.Second,
	}
}

// defaultSynthesizer wires an external `say`-style TTS command, the
// engine selection spec.md §6 calls "a build-time choice." A missing
// binary degrades to no voice at synth time (spec.md §7), not at startup.
// logger receives each invocation's command line under -v/--verbose.
func defaultSynthesizer(sampleRate int, logger *log.Logger) wwv.Synthesizer {
	return wwv.CommandSynthesizer{
		SampleRate: sampleRate,
		Command:    "sh",
		Args: []string{
			"-c",
			fmt.Sprintf("say -v %%VOICE%% -f %%TEXTFILE%% --data-format=LEI16@%d -o -", sampleRate),
		},
		MaleVoice:   "Alex",
		FemaleVoice: "Samantha",
		Logger:      logger,
	}
}
