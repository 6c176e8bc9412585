// SPDX-License-Identifier: MIT
//go:build darwin

// Package coreaudio implements hal.Service on the CoreAudio AudioObject
// API. This is the production adapter on macOS and the only one capable
// of writing the nominal sample rate.
package coreaudio

/*
#cgo LDFLAGS: -framework CoreAudio -framework CoreFoundation
#include <CoreAudio/CoreAudio.h>
#include <CoreFoundation/CoreFoundation.h>
*/
import "C"

import (
	"fmt"
	"unsafe"

	"ratectl/internal/hal"
)

// Service talks to the CoreAudio HAL. The zero value is ready to use;
// CoreAudio needs no explicit initialization.
type Service struct{}

// New returns the CoreAudio-backed service.
func New() *Service {
	return &Service{}
}

func scopeConst(scope hal.Scope) C.AudioObjectPropertyScope {
	if scope == hal.ScopeOutput {
		return C.kAudioDevicePropertyScopeOutput
	}
	return C.kAudioObjectPropertyScopeGlobal
}

func address(selector C.AudioObjectPropertySelector, scope C.AudioObjectPropertyScope) C.AudioObjectPropertyAddress {
	return C.AudioObjectPropertyAddress{
		mSelector: selector,
		mScope:    scope,
		mElement:  C.kAudioObjectPropertyElementMain,
	}
}

// statusErr maps an OSStatus to an error, folding the two diagnostically
// interesting sub-cases onto the hal sentinels.
func statusErr(op string, status C.OSStatus) error {
	switch status {
	case 0:
		return nil
	case C.kAudioDeviceUnsupportedFormatError:
		return fmt.Errorf("%s: %w", op, hal.ErrFormatUnsupported)
	case C.kAudioHardwareBadObjectError, C.kAudioHardwareBadDeviceError:
		return fmt.Errorf("%s: %w", op, hal.ErrBadScope)
	default:
		return fmt.Errorf("%s: OSStatus %d", op, int32(status))
	}
}

func (s *Service) DefaultOutputDevice() (hal.DeviceID, error) {
	addr := address(C.kAudioHardwarePropertyDefaultOutputDevice, C.kAudioObjectPropertyScopeGlobal)

	var dev C.AudioDeviceID
	size := C.UInt32(C.sizeof_AudioDeviceID)
	status := C.AudioObjectGetPropertyData(C.AudioObjectID(C.kAudioObjectSystemObject),
		&addr, 0, nil, &size, unsafe.Pointer(&dev))
	if err := statusErr("query default output device", status); err != nil {
		return 0, err
	}
	if dev == C.kAudioObjectUnknown {
		return 0, hal.ErrNoDefaultDevice
	}
	return hal.DeviceID(dev), nil
}

func (s *Service) DeviceName(id hal.DeviceID) (string, error) {
	addr := address(C.kAudioObjectPropertyName, C.kAudioObjectPropertyScopeGlobal)

	var cfName C.CFStringRef
	size := C.UInt32(C.sizeof_CFStringRef)
	status := C.AudioObjectGetPropertyData(C.AudioObjectID(id),
		&addr, 0, nil, &size, unsafe.Pointer(&cfName))
	if err := statusErr("query device name", status); err != nil {
		return "", err
	}
	if cfName == nil {
		return "", fmt.Errorf("query device name: nil CFString")
	}
	defer C.CFRelease(C.CFTypeRef(unsafe.Pointer(cfName)))

	buf := make([]C.char, 256)
	if C.CFStringGetCString(cfName, &buf[0], C.CFIndex(len(buf)), C.kCFStringEncodingUTF8) == 0 {
		return "", fmt.Errorf("query device name: CFString conversion failed")
	}
	return C.GoString(&buf[0]), nil
}

func (s *Service) NominalSampleRate(id hal.DeviceID) (float64, error) {
	addr := address(C.kAudioDevicePropertyNominalSampleRate, C.kAudioObjectPropertyScopeGlobal)

	var rate C.Float64
	size := C.UInt32(C.sizeof_Float64)
	status := C.AudioObjectGetPropertyData(C.AudioObjectID(id),
		&addr, 0, nil, &size, unsafe.Pointer(&rate))
	if err := statusErr("query nominal sample rate", status); err != nil {
		return 0, err
	}
	return float64(rate), nil
}

// AvailableSampleRateRanges performs the two-phase query: probe the
// property size, then fetch that many AudioValueRange pairs.
func (s *Service) AvailableSampleRateRanges(id hal.DeviceID) ([]hal.RateRange, error) {
	addr := address(C.kAudioDevicePropertyAvailableNominalSampleRates, C.kAudioObjectPropertyScopeGlobal)

	var size C.UInt32
	status := C.AudioObjectGetPropertyDataSize(C.AudioObjectID(id), &addr, 0, nil, &size)
	if err := statusErr("probe sample rate ranges", status); err != nil {
		return nil, err
	}

	count := int(size) / C.sizeof_AudioValueRange
	if count == 0 {
		return nil, nil
	}

	raw := make([]C.AudioValueRange, count)
	status = C.AudioObjectGetPropertyData(C.AudioObjectID(id),
		&addr, 0, nil, &size, unsafe.Pointer(&raw[0]))
	if err := statusErr("fetch sample rate ranges", status); err != nil {
		return nil, err
	}

	ranges := make([]hal.RateRange, 0, count)
	for _, r := range raw {
		ranges = append(ranges, hal.RateRange{
			Min: float64(r.mMinimum),
			Max: float64(r.mMaximum),
		})
	}
	return ranges, nil
}

func (s *Service) CanSetNominalSampleRate(id hal.DeviceID, scope hal.Scope) (bool, error) {
	addr := address(C.kAudioDevicePropertyNominalSampleRate, scopeConst(scope))

	var settable C.Boolean
	status := C.AudioObjectIsPropertySettable(C.AudioObjectID(id), &addr, &settable)
	if err := statusErr("check sample rate settability", status); err != nil {
		return false, err
	}
	return settable != 0, nil
}

func (s *Service) SetNominalSampleRate(id hal.DeviceID, scope hal.Scope, rate float64) error {
	addr := address(C.kAudioDevicePropertyNominalSampleRate, scopeConst(scope))

	value := C.Float64(rate)
	status := C.AudioObjectSetPropertyData(C.AudioObjectID(id),
		&addr, 0, nil, C.UInt32(C.sizeof_Float64), unsafe.Pointer(&value))
	return statusErr("set nominal sample rate", status)
}
