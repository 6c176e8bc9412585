//go:build !darwin

package main

import (
	"ratectl/internal/audio"
	"ratectl/internal/config"
	"ratectl/internal/hal"
)

// newDeviceService returns the PortAudio adapter. Rate queries work
// everywhere PortAudio does; rate mutation is unsupported and reported
// as such.
func newDeviceService(cfg *config.Config) hal.Service {
	return audio.NewService(cfg.Probe.CandidateRates)
}
