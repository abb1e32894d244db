// SPDX-License-Identifier: EPL-2.0

// Package modem turns a mono recording into continuous-phase FM I/Q samples
// in the signed 8-bit interleaved format SDR transmitters such as the HackRF
// consume.
//
// The work is done in five batch stages, each consuming the complete output
// of the previous one:
//
//	Resample    source rate -> Config.QuadratureRate (polyphase FIR)
//	Normalize   divide by max(|s|)
//	Accumulate  phase[i] = phase[i-1] + s[i]
//	Modulate    I = clamp(A·sin(p·k)), Q = clamp(A·cos(p·k)), k = 2π·dev/rate
//	Quantize    round or truncate value×127 into int8, interleaved I, Q
//
// Pipeline wires them together:
//
//	p, err := modem.NewPipeline(modem.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	iq, err := p.Run(audio.Buffer{Samples: samples, SampleRate: 44100})
//	// len(iq) == 2 × number of quadrature samples
//	// configure the transmitter at p.Config().TransmitRate()
//
// Every stage is also exported on its own.
//
// # Errors
//
// ErrResampling and ErrDegenerateSignal abort a run. A non-finite value
// reaching Quantize is a bug in the caller and panics.
package modem
