// SPDX-License-Identifier: MIT
//
// Package hal abstracts the operating system's audio hardware service.
// It exposes the handful of device properties this tool cares about
// (default output device, device name, nominal sample rate, supported
// sample-rate ranges) behind the Service interface, with one production
// adapter per platform and a scripted fake for tests.
package hal

import "errors"

// DeviceID identifies an audio device within the OS audio subsystem.
// The value is borrowed for the duration of one invocation; the tool
// performs no lifecycle management on it.
type DeviceID uint32

// Scope selects the property namespace a device property is addressed
// under. A property may be settable in one scope and not another.
type Scope int

const (
	ScopeGlobal Scope = iota
	ScopeOutput
)

// String returns the scope name as used in diagnostics.
func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeOutput:
		return "output"
	default:
		return "unknown"
	}
}

// RateRange is one [Min, Max] sample-rate range as reported by a device
// driver. A degenerate range (Min == Max) denotes a single selectable rate.
type RateRange struct {
	Min float64
	Max float64
}

// Sentinel errors returned by Service adapters. Callers match with
// errors.Is; adapters wrap platform status codes around these.
var (
	// ErrNoDefaultDevice reports that the OS has no default output device.
	ErrNoDefaultDevice = errors.New("no default output device")

	// ErrNotSettable reports that the nominal sample rate cannot be
	// written in any property scope.
	ErrNotSettable = errors.New("sample rate is not settable")

	// ErrFormatUnsupported reports that the device rejected the requested
	// rate as an unsupported format.
	ErrFormatUnsupported = errors.New("format not supported by device")

	// ErrBadScope reports a bad object or scope mismatch from the OS.
	ErrBadScope = errors.New("bad object or scope mismatch")

	// ErrUnsupported reports that the platform adapter cannot perform the
	// operation at all (e.g. rate mutation through PortAudio).
	ErrUnsupported = errors.New("operation not supported on this platform")
)

// Service is the OS audio hardware service as seen by this tool: four
// read queries, one settability check, and one write. Every non-success
// platform status maps to an error wrapping one of the sentinels above.
type Service interface {
	// DefaultOutputDevice returns the device the OS currently routes
	// system audio output to.
	DefaultOutputDevice() (DeviceID, error)

	// DeviceName returns the display name of the device.
	DeviceName(id DeviceID) (string, error)

	// NominalSampleRate returns the currently configured rate in Hz.
	NominalSampleRate(id DeviceID) (float64, error)

	// AvailableSampleRateRanges returns the raw range list advertised by
	// the device driver.
	AvailableSampleRateRanges(id DeviceID) ([]RateRange, error)

	// CanSetNominalSampleRate reports whether the nominal sample rate is
	// settable in the given scope.
	CanSetNominalSampleRate(id DeviceID, scope Scope) (bool, error)

	// SetNominalSampleRate requests a rate change in the given scope.
	SetNominalSampleRate(id DeviceID, scope Scope, rate float64) error
}
