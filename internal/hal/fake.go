// SPDX-License-Identifier: MIT
package hal

// SetCall records one SetNominalSampleRate invocation on a FakeService.
type SetCall struct {
	ID    DeviceID
	Scope Scope
	Rate  float64
}

// FakeService implements Service with scripted responses for tests.
// The zero value reports a single settable device with no rate ranges.
type FakeService struct {
	Device    DeviceID
	DeviceErr error

	NameValue string
	NameErr   error

	Rate    float64
	RateErr error

	Ranges    []RateRange
	RangesErr error

	// Settable maps scope to settability; scopes absent from the map
	// report not settable. SettableErr fails the check for all scopes.
	Settable    map[Scope]bool
	SettableErr error

	// SetErr fails the write for the given scope. When a write succeeds
	// and ApplyWrites is set, Rate is updated to the written value.
	SetErr      map[Scope]error
	ApplyWrites bool

	SetCalls []SetCall
}

func (f *FakeService) DefaultOutputDevice() (DeviceID, error) {
	return f.Device, f.DeviceErr
}

func (f *FakeService) DeviceName(id DeviceID) (string, error) {
	return f.NameValue, f.NameErr
}

func (f *FakeService) NominalSampleRate(id DeviceID) (float64, error) {
	return f.Rate, f.RateErr
}

func (f *FakeService) AvailableSampleRateRanges(id DeviceID) ([]RateRange, error) {
	return f.Ranges, f.RangesErr
}

func (f *FakeService) CanSetNominalSampleRate(id DeviceID, scope Scope) (bool, error) {
	if f.SettableErr != nil {
		return false, f.SettableErr
	}
	return f.Settable[scope], nil
}

func (f *FakeService) SetNominalSampleRate(id DeviceID, scope Scope, rate float64) error {
	f.SetCalls = append(f.SetCalls, SetCall{ID: id, Scope: scope, Rate: rate})
	if err := f.SetErr[scope]; err != nil {
		return err
	}
	if f.ApplyWrites {
		f.Rate = rate
	}
	return nil
}
