// SPDX-License-Identifier: MIT
package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"ratectl/internal/hal"
)

// Service implements hal.Service on PortAudio. PortAudio exposes no live
// nominal-rate property and no rate mutation, so this adapter reports the
// device default sample rate as the nominal rate, probes a candidate-rate
// list to approximate the supported set, and refuses writes.
type Service struct {
	candidates []float64
}

// NewService returns a PortAudio-backed service probing the given
// candidate rates. The list comes from configuration.
func NewService(candidates []float64) *Service {
	return &Service{candidates: candidates}
}

func (s *Service) DefaultOutputDevice() (hal.DeviceID, error) {
	info, err := paLibDefaultOutputDeviceFunc()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", hal.ErrNoDefaultDevice, err)
	}
	if info == nil || info.MaxOutputChannels <= 0 {
		return 0, hal.ErrNoDefaultDevice
	}
	return hal.DeviceID(info.Index), nil
}

// deviceByID resolves a DeviceID back to the PortAudio device info.
func (s *Service) deviceByID(id hal.DeviceID) (*portaudio.DeviceInfo, error) {
	devices, err := paDevices()
	if err != nil {
		return nil, err
	}
	idx := int(id)
	if idx < 0 || idx >= len(devices) {
		return nil, fmt.Errorf("device %d: %w", idx, hal.ErrBadScope)
	}
	return devices[idx], nil
}

func (s *Service) DeviceName(id hal.DeviceID) (string, error) {
	info, err := s.deviceByID(id)
	if err != nil {
		return "", err
	}
	return info.Name, nil
}

func (s *Service) NominalSampleRate(id hal.DeviceID) (float64, error) {
	info, err := s.deviceByID(id)
	if err != nil {
		return 0, err
	}
	return info.DefaultSampleRate, nil
}

// AvailableSampleRateRanges probes each candidate rate against the device
// and reports the supported ones as degenerate [r, r] ranges.
func (s *Service) AvailableSampleRateRanges(id hal.DeviceID) ([]hal.RateRange, error) {
	info, err := s.deviceByID(id)
	if err != nil {
		return nil, err
	}

	var ranges []hal.RateRange
	for _, rate := range s.candidates {
		params := portaudio.HighLatencyParameters(nil, info)
		params.SampleRate = rate
		if paLibIsFormatSupportedFunc(params) == nil {
			ranges = append(ranges, hal.RateRange{Min: rate, Max: rate})
		}
	}
	return ranges, nil
}

// CanSetNominalSampleRate always reports false: PortAudio has no device
// property mutation surface.
func (s *Service) CanSetNominalSampleRate(id hal.DeviceID, scope hal.Scope) (bool, error) {
	return false, nil
}

func (s *Service) SetNominalSampleRate(id hal.DeviceID, scope hal.Scope, rate float64) error {
	return fmt.Errorf("set sample rate via PortAudio: %w", hal.ErrUnsupported)
}
