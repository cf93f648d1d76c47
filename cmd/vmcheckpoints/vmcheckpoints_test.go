package vmcheckpoints

import (
	"testing"

	"github.com/brian1917/vmmtool/psshell/pstest"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T, sh *pstest.Shell) *vmmapi.Server {
	t.Helper()
	sh.On("Get-SCVMMServer", `[{"Name":"vmm01","ProductVersion":"10.22"}]`)
	s := &vmmapi.Server{FQDN: "vmm01", User: "svc", Password: "secret"}
	_, err := s.Connect(sh)
	require.NoError(t, err)
	return s
}

func TestReport(t *testing.T) {
	sh := pstest.New().
		On("Get-SCVMCheckpoint", `[
			{"Name":"before patch","CheckpointID":"5b0c9a1e-1d1f-4d63-9c55-3f0f2a1a0e01","ParentCheckpoint":"","AddedTime":"2024-03-01T22:15:00.0000000-05:00"},
			{"Name":"after patch","CheckpointID":"5b0c9a1e-1d1f-4d63-9c55-3f0f2a1a0e02","ParentCheckpoint":"before patch","AddedTime":"2024-03-02T01:00:00.0000000-05:00"}]`).
		On("Get-SCVirtualMachine", `[{"Name":"app01"}]`)
	s := connect(t, sh)

	data, err := report(s, "app01")
	require.NoError(t, err)
	require.Len(t, data, 3)
	assert.Equal(t, []string{"app01", "after patch", "5b0c9a1e-1d1f-4d63-9c55-3f0f2a1a0e02", "before patch", "2024-03-02T01:00:00.0000000-05:00"}, data[2])
}

func TestReportVMNotFound(t *testing.T) {
	sh := pstest.New()
	s := connect(t, sh)

	_, err := report(s, "missing")
	require.Error(t, err)
	assert.True(t, vmmapi.IsNotFound(err))
	// connect and the vm lookup only
	assert.Len(t, sh.Calls, 2)
}
