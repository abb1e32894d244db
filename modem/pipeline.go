// SPDX-License-Identifier: EPL-2.0

package modem

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ik5/fmiq/audio"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger runs are reported to. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Pipeline runs the resample, normalize, accumulate, modulate and quantize
// stages in order over a complete recording. It holds no per-run state and
// is safe for concurrent use.
type Pipeline struct {
	cfg       Config
	modulator Modulator
	logger    *slog.Logger
}

// NewPipeline validates cfg and builds a pipeline for it.
func NewPipeline(cfg Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{
		cfg:       cfg,
		modulator: NewModulator(cfg.Deviation, cfg.QuadratureRate, cfg.Amplitude),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	return p, nil
}

// Config returns the configuration the pipeline was built with.
func (p *Pipeline) Config() Config { return p.cfg }

// Modulator returns the quadrature modulator used by the pipeline.
func (p *Pipeline) Modulator() Modulator { return p.modulator }

// Stages holds the output of every stage of a run.
type Stages struct {
	Resampled  []float64
	Normalized []float64
	Phase      []float64
	Frames     []IQ
	Output     IQ8
}

// Run converts buf into transmitter samples.
func (p *Pipeline) Run(buf audio.Buffer) (IQ8, error) {
	st, err := p.RunStages(buf)
	if err != nil {
		return nil, err
	}

	return st.Output, nil
}

// RunStages is Run but keeps every intermediate buffer. Any stage failure
// aborts the run and no partial result is returned.
func (p *Pipeline) RunStages(buf audio.Buffer) (Stages, error) {
	logger := p.logger.With("run", uuid.NewString())
	start := time.Now()

	var (
		st  Stages
		err error
	)

	st.Resampled, err = Resample(buf.Samples, buf.SampleRate, p.cfg.QuadratureRate, WithQuality(p.cfg.ResampleQuality))
	if err != nil {
		logger.Error("resample failed", "err", err, "sourceRate", buf.SampleRate)
		return Stages{}, fmt.Errorf("resampling %d samples: %w", len(buf.Samples), err)
	}
	logger.Debug("resampled",
		"in", len(buf.Samples),
		"out", len(st.Resampled),
		"sourceRate", buf.SampleRate,
		"quadratureRate", p.cfg.QuadratureRate,
	)

	st.Normalized, err = Normalize(st.Resampled)
	if err != nil {
		logger.Error("normalize failed", "err", err)
		return Stages{}, fmt.Errorf("normalizing: %w", err)
	}
	logger.Debug("normalized", "samples", len(st.Normalized))

	st.Phase = Accumulate(st.Normalized)
	st.Frames = p.modulator.Modulate(st.Phase)
	logger.Debug("modulated", "frames", len(st.Frames), "k", p.modulator.K())

	st.Output = Quantize(st.Frames, p.cfg.Rounding)

	logger.Info("modulation complete",
		"frames", st.Output.Len(),
		"bytes", len(st.Output),
		"transmitRate", p.cfg.TransmitRate(),
		"rounding", p.cfg.Rounding.String(),
		"elapsed", time.Since(start),
	)

	return st, nil
}
