package audio

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/gordonklaus/portaudio"
)

func TestErrorInitialize(t *testing.T) {
	orig := paLibInitialize
	defer func() { paLibInitialize = orig }()

	paLibInitialize = func() error { return nil }
	if err := Initialize(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	paLibInitialize = func() error { return fmt.Errorf("mock init error") }
	if err := Initialize(); err == nil || !strings.Contains(err.Error(), "mock init error") {
		t.Errorf("expected mock init error, got %v", err)
	}
}

func TestErrorTerminate(t *testing.T) {
	orig := paLibTerminate
	defer func() { paLibTerminate = orig }()

	paLibTerminate = func() error { return nil }
	if err := Terminate(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	paLibTerminate = func() error { return fmt.Errorf("mock term error") }
	if err := Terminate(); err == nil || !strings.Contains(err.Error(), "mock term error") {
		t.Errorf("expected mock term error, got %v", err)
	}
}

func TestNilDevices(t *testing.T) {
	orig := paLibDevicesFunc
	defer func() { paLibDevicesFunc = orig }()
	paLibDevicesFunc = func() ([]*portaudio.DeviceInfo, error) {
		return nil, nil
	}

	devices, err := paDevices()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if devices == nil {
		t.Errorf("expected empty slice, got nil")
	}
	if len(devices) != 0 {
		t.Errorf("expected length 0, got %d", len(devices))
	}
}

func mockDeviceList(t *testing.T) []*portaudio.DeviceInfo {
	t.Helper()
	return []*portaudio.DeviceInfo{
		{Index: 0, Name: "Built-in Microphone", MaxInputChannels: 2, DefaultSampleRate: 44100},
		{Index: 1, Name: "Built-in Output", MaxOutputChannels: 2, DefaultSampleRate: 44100},
		{Index: 2, Name: "USB DAC", MaxOutputChannels: 8, DefaultSampleRate: 96000},
	}
}

func swapDeviceFuncs(t *testing.T, devices []*portaudio.DeviceInfo, defaultOut *portaudio.DeviceInfo) {
	t.Helper()

	origDevices := paLibDevicesFunc
	origDefault := paLibDefaultOutputDeviceFunc
	t.Cleanup(func() {
		paLibDevicesFunc = origDevices
		paLibDefaultOutputDeviceFunc = origDefault
	})

	paLibDevicesFunc = func() ([]*portaudio.DeviceInfo, error) { return devices, nil }
	paLibDefaultOutputDeviceFunc = func() (*portaudio.DeviceInfo, error) {
		if defaultOut == nil {
			return nil, fmt.Errorf("no default output device")
		}
		return defaultOut, nil
	}
}

func TestOutputDevices(t *testing.T) {
	devices := mockDeviceList(t)
	swapDeviceFuncs(t, devices, devices[1])

	out, err := OutputDevices()
	if err != nil {
		t.Fatalf("OutputDevices error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 output devices, got %d", len(out))
	}
	if out[0].Name != "Built-in Output" || !out[0].IsDefault {
		t.Errorf("expected Built-in Output marked default, got %+v", out[0])
	}
	if out[1].Name != "USB DAC" || out[1].IsDefault {
		t.Errorf("expected USB DAC not default, got %+v", out[1])
	}
}

func TestOutputDevices_NoDefault(t *testing.T) {
	swapDeviceFuncs(t, mockDeviceList(t), nil)

	out, err := OutputDevices()
	if err != nil {
		t.Fatalf("OutputDevices error: %v", err)
	}
	for _, d := range out {
		if d.IsDefault {
			t.Errorf("no device should be marked default, got %+v", d)
		}
	}
}

func TestOutputDevices_Error(t *testing.T) {
	orig := paLibDevicesFunc
	defer func() { paLibDevicesFunc = orig }()
	paLibDevicesFunc = func() ([]*portaudio.DeviceInfo, error) {
		return nil, fmt.Errorf("mock error")
	}

	if _, err := OutputDevices(); err == nil || !strings.Contains(err.Error(), "mock error") {
		t.Errorf("expected mock error, got %v", err)
	}
}

func TestListOutputDevices(t *testing.T) {
	devices := mockDeviceList(t)
	swapDeviceFuncs(t, devices, devices[1])

	var buf bytes.Buffer
	if err := ListOutputDevices(&buf); err != nil {
		t.Fatalf("ListOutputDevices error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"[1] Built-in Output (default)",
		"[2] USB DAC",
		"Default sample rate: 96000 Hz",
		"Output channels: 8",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Built-in Microphone") {
		t.Errorf("input-only device should not be listed:\n%s", out)
	}
}
