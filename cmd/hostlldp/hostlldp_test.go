package hostlldp

import (
	"testing"

	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/psshell/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLDPRows(t *testing.T) {
	sh := pstest.New().On("Invoke-DiscoveryProtocolCapture", `[{"AdapterName":"SLOT 3 Port 1","MacAddress":"24-8A-07-11-22-33","SwitchName":"leaf-101","ChassisId":"00:3a:7d:aa:bb:cc","PortId":"Ethernet1/12","PortDescription":"hv01 slot3 p1","VlanId":"120","ManagementAddress":"10.0.0.11"}]`)

	rows, err := lldpRows(hostapi.New("hv01", sh))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"hv01", "SLOT 3 Port 1", "24-8A-07-11-22-33", "leaf-101", "00:3a:7d:aa:bb:cc", "Ethernet1/12", "hv01 slot3 p1", "120", "10.0.0.11"}}, rows)
}

func TestLLDPRowsEmptyCaptureFails(t *testing.T) {
	_, err := lldpRows(hostapi.New("hv01", pstest.New()))
	require.Error(t, err)
	assert.True(t, hostapi.IsRemoteCommand(err))
}
