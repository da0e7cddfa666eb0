package strictmode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/capsel/internal/errors"
)

type recordingEnforcer struct {
	thread, vm *Policy
	threadErr  error
}

func (r *recordingEnforcer) SetThreadPolicy(p Policy) error {
	if r.threadErr != nil {
		return r.threadErr
	}
	r.thread = &p
	return nil
}

func (r *recordingEnforcer) SetVMPolicy(p Policy) error {
	r.vm = &p
	return nil
}

func TestEnable(t *testing.T) {
	tests := []struct {
		name       string
		mode       StrictMode
		wantThread Penalty
		wantVM     Penalty
	}{
		{"gingerbread", NewGingerbread(), PenaltyLog, PenaltyLog},
		{"honeycomb", NewHoneycomb(), PenaltyLog | PenaltyFlashScreen, PenaltyLog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &recordingEnforcer{}
			require.NoError(t, tt.mode.Enable(e))

			require.NotNil(t, e.thread)
			require.NotNil(t, e.vm)
			assert.Equal(t, DetectAll, e.thread.Detect)
			assert.Equal(t, DetectAll, e.vm.Detect)
			assert.Equal(t, tt.wantThread, e.thread.Penalty)
			assert.Equal(t, tt.wantVM, e.vm.Penalty)
		})
	}
}

func TestEnable_ThreadPolicyError(t *testing.T) {
	e := &recordingEnforcer{threadErr: errors.New("denied")}

	err := NewHoneycomb().Enable(e)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting thread policy")
	assert.Nil(t, e.vm, "vm policy must not be set after a thread failure")
}

func TestPenalty_String(t *testing.T) {
	assert.Equal(t, "none", Penalty(0).String())
	assert.Equal(t, "log", PenaltyLog.String())
	assert.Equal(t, "log|flash-screen", (PenaltyLog | PenaltyFlashScreen).String())
}
