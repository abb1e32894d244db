// SPDX-License-Identifier: EPL-2.0

// Package iq reads and writes raw interleaved signed 8-bit I/Q captures,
// the headerless format hackrf_transfer replays with -t and records with -r.
//
// A file holds no rate or frequency; those travel out of band, so the
// transmitter has to be started with the same sample rate the modulator
// used (modem.Config.TransmitRate).
package iq
