// SPDX-License-Identifier: MIT
package hal

import (
	"errors"
	"fmt"
	"time"

	"ratectl/internal/log"
)

// setScopeOrder is the fixed scope fallback order for rate mutation:
// global first, then output-specific.
var setScopeOrder = [...]Scope{ScopeGlobal, ScopeOutput}

// Setter wraps the sample-rate write on top of a Service. The write is
// attempted per scope in fixed order; after the first successful write
// the Setter sleeps briefly so the hardware driver can apply the change
// asynchronously. Verification is the caller's responsibility.
type Setter struct {
	svc    Service
	settle time.Duration

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// NewSetter returns a Setter backed by svc. settle is the post-write
// pause granted to the driver, typically around 100ms.
func NewSetter(svc Service, settle time.Duration) *Setter {
	return &Setter{svc: svc, settle: settle, sleep: time.Sleep}
}

// Set requests the nominal sample rate change. It tries each scope in
// order, skipping scopes where the property is not settable, and stops
// at the first successful write. An error is returned only once every
// scope has been exhausted.
func (s *Setter) Set(id DeviceID, rate float64) error {
	var lastErr error

	for _, scope := range setScopeOrder {
		settable, err := s.svc.CanSetNominalSampleRate(id, scope)
		if err != nil {
			log.Debugf("settability check failed in %s scope: %v", scope, err)
			lastErr = err
			continue
		}
		if !settable {
			log.Debugf("sample rate not settable in %s scope, skipping", scope)
			continue
		}

		if err := s.svc.SetNominalSampleRate(id, scope, rate); err != nil {
			// Sub-cases are diagnostic only; neither is fatal until
			// both scopes have been tried.
			switch {
			case errors.Is(err, ErrFormatUnsupported):
				log.Warnf("device rejected %.1f Hz in %s scope as an unsupported format", rate, scope)
			case errors.Is(err, ErrBadScope):
				log.Warnf("bad object or scope mismatch writing in %s scope", scope)
			default:
				log.Warnf("sample rate write failed in %s scope: %v", scope, err)
			}
			lastErr = err
			continue
		}

		log.Debugf("sample rate write accepted in %s scope", scope)
		s.sleep(s.settle)
		return nil
	}

	if lastErr != nil {
		return fmt.Errorf("setting sample rate to %.1f Hz failed on all scopes: %w", rate, lastErr)
	}
	return fmt.Errorf("sample rate of device %d: %w", id, ErrNotSettable)
}
