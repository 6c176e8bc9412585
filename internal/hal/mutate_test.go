// SPDX-License-Identifier: MIT
package hal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSetter(svc Service, settle time.Duration) (*Setter, *[]time.Duration) {
	s := NewSetter(svc, settle)
	var slept []time.Duration
	s.sleep = func(d time.Duration) { slept = append(slept, d) }
	return s, &slept
}

func TestSetter_GlobalScopeFirst(t *testing.T) {
	svc := &FakeService{Settable: map[Scope]bool{ScopeGlobal: true, ScopeOutput: true}}
	s, slept := newTestSetter(svc, 100*time.Millisecond)

	require.NoError(t, s.Set(1, 48000))

	// Stops at the first successful scope.
	require.Len(t, svc.SetCalls, 1)
	assert.Equal(t, SetCall{ID: 1, Scope: ScopeGlobal, Rate: 48000}, svc.SetCalls[0])
	assert.Equal(t, []time.Duration{100 * time.Millisecond}, *slept, "driver settle pause after a successful write")
}

func TestSetter_SkipsUnsettableScope(t *testing.T) {
	svc := &FakeService{Settable: map[Scope]bool{ScopeOutput: true}}
	s, _ := newTestSetter(svc, 0)

	require.NoError(t, s.Set(1, 44100))

	require.Len(t, svc.SetCalls, 1)
	assert.Equal(t, ScopeOutput, svc.SetCalls[0].Scope)
}

func TestSetter_FallsBackToOutputScope(t *testing.T) {
	svc := &FakeService{
		Settable: map[Scope]bool{ScopeGlobal: true, ScopeOutput: true},
		SetErr:   map[Scope]error{ScopeGlobal: ErrFormatUnsupported},
	}
	s, _ := newTestSetter(svc, 0)

	require.NoError(t, s.Set(1, 96000))

	require.Len(t, svc.SetCalls, 2)
	assert.Equal(t, ScopeGlobal, svc.SetCalls[0].Scope)
	assert.Equal(t, ScopeOutput, svc.SetCalls[1].Scope)
}

func TestSetter_NoSettableScope(t *testing.T) {
	svc := &FakeService{}
	s, slept := newTestSetter(svc, 0)

	err := s.Set(1, 48000)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotSettable)
	assert.Empty(t, svc.SetCalls, "no write attempted when no scope is settable")
	assert.Empty(t, *slept)
}

func TestSetter_AllScopesFail(t *testing.T) {
	svc := &FakeService{
		Settable: map[Scope]bool{ScopeGlobal: true, ScopeOutput: true},
		SetErr: map[Scope]error{
			ScopeGlobal: ErrFormatUnsupported,
			ScopeOutput: ErrBadScope,
		},
	}
	s, slept := newTestSetter(svc, 0)

	err := s.Set(1, 48000)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadScope, "last scope error is the one reported")
	require.Len(t, svc.SetCalls, 2)
	assert.Empty(t, *slept, "no settle pause when every write failed")
}

func TestSetter_SettabilityCheckError(t *testing.T) {
	svc := &FakeService{SettableErr: ErrBadScope}
	s, _ := newTestSetter(svc, 0)

	err := s.Set(1, 48000)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadScope)
	assert.Empty(t, svc.SetCalls)
}
