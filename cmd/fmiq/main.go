// SPDX-License-Identifier: EPL-2.0

// Command fmiq converts an audio file into FM modulated I/Q samples for an
// SDR transmitter.
//
//	fmiq [flags] input.{wav,aiff,mp3,ogg}
//
// The result is written as raw interleaved int8 (hackrf_transfer -t input)
// or as a stereo WAV holding I on the left and Q on the right.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/fmiq"
	"github.com/ik5/fmiq/cmd/fmiq/config"
	"github.com/ik5/fmiq/formats/iq"
	"github.com/ik5/fmiq/formats/wav"
	"github.com/ik5/fmiq/internal/logging"
	"github.com/ik5/fmiq/modem"
	"github.com/ik5/fmiq/spectrum"
	"github.com/spf13/pflag"
)

const (
	formatIQ  = "iq"
	formatWAV = "wav"

	stdoutPath = "-"
)

var errUsage = errors.New("usage: fmiq [flags] input")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}

		fmt.Fprintln(os.Stderr, "fmiq:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("fmiq", pflag.ContinueOnError)
	configFilePath := fs.StringP("config", "c", "", "config file (default ./fmiq.* or $HOME/.config/fmiq/fmiq.*)")
	output := fs.StringP("output", "o", "", `output file, "-" for stdout (default input name with the format extension)`)
	format := fs.String("format", "", "output format: iq or wav (default from the output extension)")
	peak := fs.Bool("peak", false, "log the strongest frequency of the output")

	v := config.New()
	if err := config.RegisterFlags(fs, v); err != nil {
		return err
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}
	input := fs.Arg(0)

	if err := config.Load(v, *configFilePath); err != nil {
		return err
	}

	logFilePointer, err := logging.ConfigureDefaultLogger(
		v.GetString(config.KeyLogLevel),
		v.GetString(config.KeyLogFile),
		slog.HandlerOptions{},
	)
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	if logFilePointer != nil {
		defer logFilePointer.Close()
	}

	cfg, err := config.ModemConfig(v)
	if err != nil {
		return err
	}

	outFormat, outPath, err := resolveOutput(input, *output, *format)
	if err != nil {
		return err
	}

	buf, err := fmiq.LoadFile(input, nil)
	if err != nil {
		return err
	}
	slog.Info("loaded", "input", input, "samples", len(buf.Samples), "sampleRate", buf.SampleRate, "duration", buf.Duration())

	p, err := modem.NewPipeline(cfg)
	if err != nil {
		return err
	}

	out, err := p.Run(buf)
	if err != nil {
		return err
	}

	if *peak {
		logPeak(out, cfg)
	}

	if err := writeOutput(stdout, outPath, outFormat, cfg, out); err != nil {
		return err
	}

	slog.Info("wrote", "output", outPath, "format", outFormat, "frames", out.Len())
	slog.Info("transmit with", "command", hackRFCommand(outPath, cfg))

	return nil
}

// resolveOutput picks the output format and path from the flags, falling
// back to the output extension and then to raw I/Q next to the input.
func resolveOutput(input, output, format string) (string, string, error) {
	if format == "" {
		format = formatIQ
		if strings.EqualFold(filepath.Ext(output), "."+formatWAV) {
			format = formatWAV
		}
	}

	format = strings.ToLower(format)
	if format != formatIQ && format != formatWAV {
		return "", "", fmt.Errorf("unknown output format %q", format)
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}
	if output == input {
		return "", "", fmt.Errorf("output would overwrite input %s", input)
	}

	return format, output, nil
}

func writeOutput(stdout io.Writer, path, format string, cfg modem.Config, out modem.IQ8) (err error) {
	frames := out.Frames()
	rate := int(cfg.QuadratureRate)

	if path == stdoutPath {
		if format == formatWAV {
			return wav.StreamIQ16(stdout, rate, frames)
		}

		return iq.Write(stdout, frames)
	}

	if format == formatIQ {
		return iq.WriteFile(path, frames)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	return wav.WriteIQ16(f, rate, frames)
}

func logPeak(out modem.IQ8, cfg modem.Config) {
	f, err := spectrum.PeakFrequency(spectrum.FromIQ8(out), cfg.QuadratureRate)
	if err != nil {
		slog.Warn("spectrum peak unavailable", "err", err)
		return
	}

	slog.Info("spectrum peak", "offset", f, "deviation", cfg.Deviation)
}

// hackRFCommand renders the hackrf_transfer invocation for a raw I/Q file.
func hackRFCommand(path string, cfg modem.Config) string {
	amp := 0
	if cfg.AmpEnable {
		amp = 1
	}

	return fmt.Sprintf("hackrf_transfer -t %s -s %.0f -f %.0f -x %d -a %d",
		path, cfg.TransmitRate(), float64(cfg.CenterFrequency), cfg.TxGain, amp)
}
