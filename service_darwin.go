//go:build darwin

package main

import (
	"ratectl/internal/config"
	"ratectl/internal/hal"
	"ratectl/internal/hal/coreaudio"
)

// newDeviceService returns the CoreAudio HAL adapter. It is the only
// adapter able to write the nominal sample rate.
func newDeviceService(cfg *config.Config) hal.Service {
	return coreaudio.New()
}
