// SPDX-License-Identifier: EPL-2.0

// Package config maps the fmiq command line and config file onto a
// modem.Config.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ik5/fmiq/modem"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"hz.tools/rf"
)

// Keys read from flags, FMIQ_* environment variables and the config file.
const (
	KeyLogLevel        = "loglevel"
	KeyLogFile         = "logfile"
	KeyRate            = "rate"
	KeyDeviation       = "deviation"
	KeyAmplitude       = "amplitude"
	KeyCenterFrequency = "centerfrequency"
	KeyTxGain          = "txgain"
	KeyAmpEnable       = "ampenable"
	KeyRounding        = "rounding"
	KeyQuality         = "quality"
)

var keys = []string{
	KeyLogLevel, KeyLogFile, KeyRate, KeyDeviation, KeyAmplitude,
	KeyCenterFrequency, KeyTxGain, KeyAmpEnable, KeyRounding, KeyQuality,
}

// configName is searched for in the working directory and $HOME/.config/fmiq
// when no explicit path is given.
const configName = "fmiq"

func setViperDefaults(v *viper.Viper) {
	def := modem.DefaultConfig()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyRate, def.QuadratureRate)
	v.SetDefault(KeyDeviation, float64(def.Deviation))
	v.SetDefault(KeyAmplitude, def.Amplitude)
	v.SetDefault(KeyCenterFrequency, float64(def.CenterFrequency))
	v.SetDefault(KeyTxGain, def.TxGain)
	v.SetDefault(KeyAmpEnable, def.AmpEnable)
	v.SetDefault(KeyRounding, def.Rounding.String())
	v.SetDefault(KeyQuality, def.ResampleQuality)
}

// New returns a viper instance holding the defaults and reading FMIQ_*
// environment variables.
func New() *viper.Viper {
	v := viper.New()
	setViperDefaults(v)
	v.SetEnvPrefix(configName)
	v.AutomaticEnv()

	return v
}

// RegisterFlags adds a flag for every key to fs and binds it to v. Other
// flags on fs are left unbound.
// Flag defaults are taken from v, so call it after New.
func RegisterFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.String(KeyLogLevel, v.GetString(KeyLogLevel), "log level: none, error, warn, info or debug")
	fs.String(KeyLogFile, v.GetString(KeyLogFile), "write JSON logs to this file instead of stderr")
	fs.Float64P(KeyRate, "s", v.GetFloat64(KeyRate), "I/Q rate in samples per second")
	fs.Float64P(KeyDeviation, "d", v.GetFloat64(KeyDeviation), "FM deviation in Hz")
	fs.Float64P(KeyAmplitude, "A", v.GetFloat64(KeyAmplitude), "I/Q amplitude before quantization")
	fs.Float64(KeyCenterFrequency, v.GetFloat64(KeyCenterFrequency), "transmit center frequency in Hz")
	fs.Uint32(KeyTxGain, v.GetUint32(KeyTxGain), "transmit VGA gain in dB")
	fs.Bool(KeyAmpEnable, v.GetBool(KeyAmpEnable), "enable the RF amplifier")
	fs.String(KeyRounding, v.GetString(KeyRounding), "quantizer rounding: truncate or round")
	fs.Int(KeyQuality, v.GetInt(KeyQuality), fmt.Sprintf("resampler quality, %d to %d", modem.MinQuality, modem.MaxQuality))

	for _, key := range keys {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return fmt.Errorf("binding flag %s: %w", key, err)
		}
	}

	return nil
}

// Load reads configFilePath into v. With an empty path it looks for
// fmiq.{yaml,toml,json,...} and carries on with the defaults when none is
// found. An explicit path must exist.
func Load(v *viper.Viper, configFilePath string) error {
	if configFilePath != "" {
		v.SetConfigFile(configFilePath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/fmiq")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Info("no config file found, using defaults")
			return nil
		}

		return fmt.Errorf("reading config: %w", err)
	}

	slog.Debug("config loaded", "configFilePath", v.ConfigFileUsed())

	return nil
}

// ModemConfig builds and validates a modem.Config from v.
func ModemConfig(v *viper.Viper) (modem.Config, error) {
	rounding, err := modem.ParseRounding(v.GetString(KeyRounding))
	if err != nil {
		return modem.Config{}, err
	}

	cfg := modem.Config{
		QuadratureRate:  v.GetFloat64(KeyRate),
		Deviation:       rf.Hz(v.GetFloat64(KeyDeviation)),
		Amplitude:       v.GetFloat64(KeyAmplitude),
		CenterFrequency: rf.Hz(v.GetFloat64(KeyCenterFrequency)),
		TxGain:          v.GetUint32(KeyTxGain),
		AmpEnable:       v.GetBool(KeyAmpEnable),
		Rounding:        rounding,
		ResampleQuality: v.GetInt(KeyQuality),
	}

	if err := cfg.Validate(); err != nil {
		return modem.Config{}, err
	}

	return cfg, nil
}
