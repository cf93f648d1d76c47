package csvprovision

import (
	"testing"

	"github.com/brian1917/vmmtool/hostapi"
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

func fakeVMM(t *testing.T) (*pstest.Shell, *vmmapi.Server) {
	sh := pstest.New().
		On("Get-SCVMHostCluster", `[{"Name":"clu01","Nodes":["hv01","hv02"]}]`).
		On("-eq 'hv01'", `[{"Name":"hv01","FullyQualifiedDomainName":"hv01.corp.local","HostCluster":"clu01"}]`)
	return sh, connect(t, sh)
}

var mutating = []string{"Set-Disk", "Initialize-Disk", "New-Partition", "Format-Volume", "Add-ClusterDisk", "Add-ClusterSharedVolume", "Rename-Item"}

func opener(host *pstest.Shell) func(vmmapi.VMHost) (*hostapi.Host, error) {
	return func(vh vmmapi.VMHost) (*hostapi.Host, error) { return hostapi.New(vh.Name, host), nil }
}

func approve(string, string) bool { return true }
func deny(string, string) bool    { return false }

var r = request{cluster: "clu01", host: "hv01", serial: "6A3B0D2E8F1C4A5600011234", name: "CSV-SQL01", fileSystem: "NTFS"}

func TestProvision(t *testing.T) {
	vmm, s := fakeVMM(t)
	host := pstest.New().
		On("Add-ClusterSharedVolume", `[{"Name":"CSV-SQL01","Path":"C:\\ClusterStorage\\CSV-SQL01","State":"Online","OwnerNode":"hv01"}]`).
		On("Format-Volume", `[{"FileSystemLabel":"CSV-SQL01","FileSystem":"NTFS","Size":1099494850560}]`).
		On("Get-Disk", `[{"Number":4,"FriendlyName":"PURE FlashArray","SerialNumber":"6A3B0D2E8F1C4A5600011234","Size":1099511627776,"PartitionStyle":"RAW","IsClustered":false,"IsOffline":true}]`)

	data, err := provision(s, opener(host), r, approve)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"cluster_name", "host_name", "serial_number", "disk_number", "volume_name", "path", "state", "owner_node"},
		{"clu01", "hv01", "6A3B0D2E8F1C4A5600011234", "4", "CSV-SQL01", `C:\ClusterStorage\CSV-SQL01`, "Online", "hv01"},
	}, data)
	assert.True(t, vmm.Ran("Read-SCVMHostCluster"))
	assert.Len(t, host.Calls, 3)
	assert.True(t, host.Exited)
}

func TestProvisionMissingSerialMakesNoChange(t *testing.T) {
	vmm, s := fakeVMM(t)
	host := pstest.New()

	_, err := provision(s, opener(host), r, approve)
	require.Error(t, err)
	assert.True(t, hostapi.IsNotFound(err))

	require.Len(t, host.Calls, 1)
	for _, cmd := range mutating {
		assert.False(t, host.Ran(cmd), cmd)
	}
	assert.False(t, vmm.Ran("Read-SCVMHostCluster"))
}

func TestProvisionWithoutConfirmation(t *testing.T) {
	vmm, s := fakeVMM(t)
	host := pstest.New().On("Get-Disk", `[{"Number":4,"SerialNumber":"6A3B0D2E8F1C4A5600011234"}]`)

	data, err := provision(s, opener(host), r, deny)
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Len(t, host.Calls, 1)
	assert.False(t, vmm.Ran("Read-SCVMHostCluster"))
}

func TestProvisionClusterNotFound(t *testing.T) {
	vmm := pstest.New()
	s := connect(t, vmm)
	host := pstest.New()

	_, err := provision(s, opener(host), r, approve)
	assert.True(t, vmmapi.IsNotFound(err))
	assert.Empty(t, host.Calls)
	assert.Len(t, vmm.Calls, 2)
}

func TestProvisionHostNotInCluster(t *testing.T) {
	vmm := pstest.New().
		On("Get-SCVMHostCluster", `[{"Name":"clu01","Nodes":["hv02","hv03"]}]`).
		On("-eq 'hv01'", `[{"Name":"hv01","FullyQualifiedDomainName":"hv01.corp.local"}]`)
	s := connect(t, vmm)
	host := pstest.New()

	_, err := provision(s, opener(host), r, approve)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a node of clu01")
	assert.Empty(t, host.Calls)
}

func TestIsNode(t *testing.T) {
	c := vmmapi.Cluster{Name: "clu01", Nodes: []string{"HV02", "hv03.corp.local"}}
	assert.True(t, isNode(c, vmmapi.VMHost{Name: "hv02"}))
	assert.True(t, isNode(c, vmmapi.VMHost{Name: "hv03", FQDN: "hv03.corp.local"}))
	assert.False(t, isNode(c, vmmapi.VMHost{Name: "hv01"}))
}

func TestNormalizeFileSystem(t *testing.T) {
	fs, err := normalizeFileSystem("refs")
	require.NoError(t, err)
	assert.Equal(t, "ReFS", fs)
	fs, err = normalizeFileSystem("")
	require.NoError(t, err)
	assert.Equal(t, "NTFS", fs)
	_, err = normalizeFileSystem("FAT32")
	assert.Error(t, err)
}
