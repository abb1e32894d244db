// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/fmiq/modem"
	"github.com/spf13/pflag"
	"hz.tools/rf"
)

func TestModemConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := ModemConfig(New())
	if err != nil {
		t.Fatalf("ModemConfig error: %v", err)
	}
	if cfg != modem.DefaultConfig() {
		t.Errorf("ModemConfig = %+v, want %+v", cfg, modem.DefaultConfig())
	}
}

func TestModemConfig_Flags(t *testing.T) {
	t.Parallel()

	v := New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := RegisterFlags(fs, v); err != nil {
		t.Fatalf("RegisterFlags error: %v", err)
	}

	args := []string{
		"-s", "240000",
		"--deviation=75000",
		"--rounding", "round",
		"--ampenable=false",
		"--txgain", "20",
		"--centerfrequency", "144800000",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	cfg, err := ModemConfig(v)
	if err != nil {
		t.Fatalf("ModemConfig error: %v", err)
	}

	if cfg.QuadratureRate != 240000 {
		t.Errorf("QuadratureRate = %v, want 240000", cfg.QuadratureRate)
	}
	if cfg.Deviation != 75*rf.KHz {
		t.Errorf("Deviation = %v, want 75 kHz", cfg.Deviation)
	}
	if cfg.Rounding != modem.RoundHalfAwayFromZero {
		t.Errorf("Rounding = %v, want round", cfg.Rounding)
	}
	if cfg.AmpEnable {
		t.Error("AmpEnable = true, want false")
	}
	if cfg.TxGain != 20 {
		t.Errorf("TxGain = %d, want 20", cfg.TxGain)
	}
	if cfg.CenterFrequency != 144_800*rf.KHz {
		t.Errorf("CenterFrequency = %v, want 144.8 MHz", cfg.CenterFrequency)
	}
	if cfg.Amplitude != modem.DefaultAmplitude {
		t.Errorf("Amplitude = %v, want default %v", cfg.Amplitude, modem.DefaultAmplitude)
	}
}

func TestModemConfig_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"rounding", KeyRounding, "banker"},
		{"rate", KeyRate, 0},
		{"deviation", KeyDeviation, -1},
		{"amplitude", KeyAmplitude, 0},
		{"quality", KeyQuality, modem.MaxQuality + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := New()
			v.Set(tt.key, tt.value)

			if _, err := ModemConfig(v); !errors.Is(err, modem.ErrInvalidConfig) {
				t.Errorf("ModemConfig error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fmiq.yaml")
	data := "loglevel: debug\nrate: 960000\namplitude: 0.8\nrounding: round\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	v := New()
	if err := Load(v, path); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got := v.GetString(KeyLogLevel); got != "debug" {
		t.Errorf("loglevel = %q, want debug", got)
	}

	cfg, err := ModemConfig(v)
	if err != nil {
		t.Fatalf("ModemConfig error: %v", err)
	}
	if cfg.QuadratureRate != 960000 || cfg.Amplitude != 0.8 || cfg.Rounding != modem.RoundHalfAwayFromZero {
		t.Errorf("ModemConfig = %+v", cfg)
	}
	if cfg.Deviation != modem.DefaultDeviation {
		t.Errorf("Deviation = %v, want default", cfg.Deviation)
	}
}

func TestLoad_FlagOverridesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fmiq.toml")
	if err := os.WriteFile(path, []byte("rate = 960000\n"), 0o600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	v := New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := RegisterFlags(fs, v); err != nil {
		t.Fatalf("RegisterFlags error: %v", err)
	}
	if err := fs.Parse([]string{"--rate", "192000"}); err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if err := Load(v, path); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got := v.GetFloat64(KeyRate); got != 192000 {
		t.Errorf("rate = %v, want flag value 192000", got)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.yaml")
	if err := Load(New(), path); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoad_NoFileSearched(t *testing.T) {
	t.Parallel()

	// The package directory holds no fmiq.* file.
	v := New()
	if err := Load(v, ""); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if _, err := ModemConfig(v); err != nil {
		t.Errorf("ModemConfig error: %v", err)
	}
}
