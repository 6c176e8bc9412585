package config

import "time"

// Core configuration constants that define the defaults and limits for
// sample-rate queries and mutation.
const (
	// Default values applied before any config file or env override
	DefaultLogLevel        = "info"                 // Quiet operation
	DefaultSettleDelay     = 100 * time.Millisecond // Driver settle pause after a write
	DefaultVerifyPolls     = 5                      // Read-back attempts after a set
	DefaultVerifyInterval  = 100 * time.Millisecond // Pause between read-back attempts
	DefaultVerifyTolerance = 1.0                    // Accepted rate deviation (Hz)

	// Hardware limits
	MinSampleRate = 8000   // Minimum usable sample rate (Hz)
	MaxSampleRate = 192000 // Maximum supported sample rate (Hz)
)

// DefaultCandidateRates are the rates probed by the PortAudio adapter on
// platforms where the driver does not publish its supported ranges.
var DefaultCandidateRates = []float64{
	8000, 11025, 16000, 22050, 32000, 44100, 48000, 88200, 96000, 176400, 192000,
}
