package preference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/capsel/internal/errors"
)

type mockEditor struct {
	mock.Mock
}

func (m *mockEditor) Commit() error {
	return m.Called().Error(0)
}

func (m *mockEditor) Apply() {
	m.Called()
}

type mockBackup struct {
	mock.Mock
}

func (m *mockBackup) DataChanged() {
	m.Called()
}

type backupContext struct {
	bm BackupManager
}

func (c backupContext) BackupManager() BackupManager { return c.bm }

func TestLegacySaver(t *testing.T) {
	e := &mockEditor{}
	e.On("Commit").Return(nil).Once()
	bm := &mockBackup{}

	require.NoError(t, NewLegacySaver(backupContext{bm}).Save(e, true))

	e.AssertExpectations(t)
	e.AssertNotCalled(t, "Apply")
	bm.AssertNotCalled(t, "DataChanged")
}

func TestFroyoSaver(t *testing.T) {
	tests := []struct {
		name       string
		backup     bool
		wantBackup bool
	}{
		{"with backup", true, true},
		{"without backup", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &mockEditor{}
			e.On("Commit").Return(nil).Once()
			bm := &mockBackup{}
			if tt.wantBackup {
				bm.On("DataChanged").Once()
			}

			require.NoError(t, NewFroyoSaver(backupContext{bm}).Save(e, tt.backup))

			e.AssertExpectations(t)
			bm.AssertExpectations(t)
			if !tt.wantBackup {
				bm.AssertNotCalled(t, "DataChanged")
			}
		})
	}
}

func TestFroyoSaver_CommitError(t *testing.T) {
	e := &mockEditor{}
	e.On("Commit").Return(errors.New("disk full")).Once()
	bm := &mockBackup{}

	err := NewFroyoSaver(backupContext{bm}).Save(e, true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "committing preferences: disk full")
	bm.AssertNotCalled(t, "DataChanged")
}

func TestGingerbreadSaver(t *testing.T) {
	e := &mockEditor{}
	e.On("Apply").Once()
	bm := &mockBackup{}
	bm.On("DataChanged").Once()

	require.NoError(t, NewGingerbreadSaver(backupContext{bm}).Save(e, true))

	e.AssertExpectations(t)
	e.AssertNotCalled(t, "Commit")
	bm.AssertExpectations(t)
}

func TestSaver_NilBackupManager(t *testing.T) {
	e := &mockEditor{}
	e.On("Apply").Twice()

	assert.NoError(t, NewGingerbreadSaver(backupContext{}).Save(e, true))
	assert.NoError(t, NewGingerbreadSaver(nil).Save(e, false))
}
