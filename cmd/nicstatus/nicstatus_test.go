package nicstatus

import (
	"testing"

	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/psshell/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adaptersJSON = `[
	{"Name":"SLOT 3 Port 1","Status":"Up","LinkSpeed":"25 Gbps","MacAddress":"24-8A-07-11-22-33"},
	{"Name":"SLOT 3 Port 2","Status":"Up","LinkSpeed":"25 Gbps","MacAddress":"24-8A-07-11-22-34"}]`

func TestJoinByMAC(t *testing.T) {
	nics := []hostapi.NetAdapter{
		{Name: "SLOT 3 Port 1", Status: "Up", LinkSpeed: "25 Gbps", MacAddress: "24-8A-07-11-22-33"},
		{Name: "SLOT 3 Port 2", Status: "Disconnected", LinkSpeed: "0 bps", MacAddress: "24-8A-07-11-22-34"},
	}
	neighbors := []hostapi.LLDPNeighbor{
		{AdapterName: "SLOT 3 Port 1", MacAddress: "24:8a:07:11:22:33", SwitchName: "leaf-101", PortID: "Ethernet1/12", VlanID: "120"},
	}

	rows := joinByMAC("hv01", nics, neighbors)
	assert.Equal(t, [][]string{
		{"hv01", "SLOT 3 Port 1", "24-8A-07-11-22-33", "Up", "25 Gbps", "leaf-101", "Ethernet1/12", "120"},
		{"hv01", "SLOT 3 Port 2", "24-8A-07-11-22-34", "Disconnected", "0 bps", "", "", ""},
	}, rows)
}

func TestStatusRowsWithoutLLDP(t *testing.T) {
	sh := pstest.New().On("Get-NetAdapter -Physical", adaptersJSON)

	rows, err := statusRows(hostapi.New("hv01", sh))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "", rows[0][5])
	assert.True(t, sh.Ran("Invoke-DiscoveryProtocolCapture"))
}

func TestStatusRowsLLDPFailure(t *testing.T) {
	sh := pstest.New().
		Fail("Import-Module PSDiscoveryProtocol", "Import-Module : The specified module 'PSDiscoveryProtocol' was not loaded")
	sh.On("Get-NetAdapter -Physical", adaptersJSON)

	_, err := statusRows(hostapi.New("hv01", sh))
	assert.Error(t, err)
}
