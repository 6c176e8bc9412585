// SPDX-License-Identifier: MIT
package hal

import (
	"fmt"

	"ratectl/internal/log"
)

// UnknownDeviceName is the placeholder substituted when the device name
// query fails. The name is a cosmetic field; its failure never aborts
// an invocation.
const UnknownDeviceName = "Unknown Device"

// Querier wraps the read-only device queries on top of a Service.
type Querier struct {
	svc Service
}

// NewQuerier returns a Querier backed by svc.
func NewQuerier(svc Service) *Querier {
	return &Querier{svc: svc}
}

// ResolveDefaultOutput returns the default output device. Any failure,
// including the OS reporting no device, surfaces as ErrNoDefaultDevice.
func (q *Querier) ResolveDefaultOutput() (DeviceID, error) {
	id, err := q.svc.DefaultOutputDevice()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoDefaultDevice, err)
	}
	return id, nil
}

// Name returns the device display name, or UnknownDeviceName if the
// query fails.
func (q *Querier) Name(id DeviceID) string {
	name, err := q.svc.DeviceName(id)
	if err != nil || name == "" {
		log.Debugf("device name query failed for device %d: %v", id, err)
		return UnknownDeviceName
	}
	return name
}

// AvailableRates returns the discrete sample rates the device advertises,
// deduplicated and ascending. An empty result means "capability unknown",
// not "zero rates supported": the driver either reported no ranges or the
// query failed.
func (q *Querier) AvailableRates(id DeviceID) []float64 {
	ranges, err := q.svc.AvailableSampleRateRanges(id)
	if err != nil {
		log.Debugf("sample rate range query failed for device %d: %v", id, err)
		return nil
	}
	return CollapseRanges(ranges)
}

// CurrentRate returns the device's configured nominal sample rate.
func (q *Querier) CurrentRate(id DeviceID) (float64, error) {
	rate, err := q.svc.NominalSampleRate(id)
	if err != nil {
		return 0, fmt.Errorf("nominal sample rate unavailable: %w", err)
	}
	return rate, nil
}
