package vmtimesync

import (
	"fmt"
	"strings"
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

// fakeVM answers VM reads and writes from one time synchronization flag.
func fakeVM(sh *pstest.Shell, enabled *bool) {
	vm := func() string {
		return fmt.Sprintf(`[{"Name":"dc01","HostName":"hv01","TimeSynchronizationEnabled":%t}]`, *enabled)
	}
	sh.OnFunc("Set-SCVirtualMachine", func(script string) string {
		*enabled = strings.Contains(script, "-EnableTimeSynchronization $true")
		return vm()
	})
	sh.OnFunc("Get-SCVirtualMachine", func(string) string { return vm() })
}

func approve(string, string) bool { return true }
func deny(string, string) bool    { return false }

func TestParseState(t *testing.T) {
	on, err := parseState("Enabled")
	require.NoError(t, err)
	assert.True(t, on)
	on, err = parseState("disabled")
	require.NoError(t, err)
	assert.False(t, on)
	_, err = parseState("off")
	assert.Error(t, err)
}

func TestSetTimeSyncRecord(t *testing.T) {
	enabled := true
	sh := pstest.New()
	fakeVM(sh, &enabled)
	s := connect(t, sh)

	data, err := setTimeSync(s, "dc01", false, approve)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"vm_name", "time_sync_before", "time_sync_after", "changed"},
		{"dc01", "true", "false", "true"},
	}, data)
	assert.False(t, enabled)
}

func TestSetTimeSyncTwiceWritesOnce(t *testing.T) {
	enabled := true
	sh := pstest.New()
	fakeVM(sh, &enabled)
	s := connect(t, sh)

	_, err := setTimeSync(s, "dc01", false, approve)
	require.NoError(t, err)
	data, err := setTimeSync(s, "dc01", false, approve)
	require.NoError(t, err)

	assert.Nil(t, data)
	assert.False(t, enabled)
	assert.Equal(t, 1, sh.Count("Set-SCVirtualMachine"))
}

func TestSetTimeSyncWithoutConfirmation(t *testing.T) {
	enabled := true
	sh := pstest.New()
	fakeVM(sh, &enabled)
	s := connect(t, sh)

	data, err := setTimeSync(s, "dc01", false, deny)
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.True(t, enabled)
	assert.False(t, sh.Ran("Set-SCVirtualMachine"))
}

func TestSetTimeSyncVMNotFound(t *testing.T) {
	sh := pstest.New()
	s := connect(t, sh)

	_, err := setTimeSync(s, "missing", true, approve)
	assert.True(t, vmmapi.IsNotFound(err))
	assert.False(t, sh.Ran("Set-SCVirtualMachine"))
}
