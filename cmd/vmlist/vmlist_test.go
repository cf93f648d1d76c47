package vmlist

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
		On("-eq 'hv01'", `[{"Name":"app01","HostName":"hv01","Status":"Running","CPUCount":4,"Memory":16384,"DynamicMemoryEnabled":true,"Generation":2,"OperatingSystem":"Windows Server 2022 Datacenter"}]`).
		On("-eq 'hv02'", `[]`)
	s := connect(t, sh)

	data, err := report(s, []vmmapi.VMHost{{Name: "hv01"}, {Name: "hv02"}})
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.Equal(t, []string{"app01", "hv01", "Running", "4", "16.00", "true", "2", "Windows Server 2022 Datacenter"}, data[1])
	assert.Equal(t, 1, sh.Count("-eq 'hv02'"))
}
