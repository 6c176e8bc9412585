// SPDX-License-Identifier: MIT
package audio

import (
	"fmt"
	"io"
)

// Device describes one output-capable audio device.
type Device struct {
	ID                int
	Name              string
	MaxOutputChannels int
	DefaultSampleRate float64
	IsDefault         bool
}

// OutputDevices returns all output-capable devices, with the system
// default output device marked.
func OutputDevices() ([]Device, error) {
	infos, err := paDevices()
	if err != nil {
		return nil, err
	}

	defaultIndex := -1
	if def, err := paLibDefaultOutputDeviceFunc(); err == nil && def != nil {
		defaultIndex = def.Index
	}

	devices := make([]Device, 0, len(infos))
	for _, info := range infos {
		if info.MaxOutputChannels <= 0 {
			continue
		}
		devices = append(devices, Device{
			ID:                info.Index,
			Name:              info.Name,
			MaxOutputChannels: info.MaxOutputChannels,
			DefaultSampleRate: info.DefaultSampleRate,
			IsDefault:         info.Index == defaultIndex,
		})
	}
	return devices, nil
}

// ListOutputDevices prints information about all output-capable devices.
// For each device, it shows:
// - Device ID and name
// - Output channel count
// - Default sample rate
func ListOutputDevices(w io.Writer) error {
	devices, err := OutputDevices()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nAvailable Output Devices\n\n")

	for _, device := range devices {
		marker := ""
		if device.IsDefault {
			marker = " (default)"
		}
		fmt.Fprintf(w, "[%d] %s%s\n", device.ID, device.Name, marker)
		fmt.Fprintf(w, "    Output channels: %d\n", device.MaxOutputChannels)
		fmt.Fprintf(w, "    Default sample rate: %.0f Hz\n", device.DefaultSampleRate)
		fmt.Fprintln(w)
	}

	return nil
}
