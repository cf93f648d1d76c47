package hostadapters

import (
	"testing"

	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/psshell/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapterRows(t *testing.T) {
	sh := pstest.New().On("Get-NetAdapter -Physical", `[
		{"Name":"SLOT 3 Port 1","InterfaceDescription":"Mellanox ConnectX-4 Lx Ethernet Adapter","Status":"Up","LinkSpeed":"25 Gbps","MacAddress":"24-8A-07-11-22-33","DriverVersion":"3.0.25668.0","MTU":9014},
		{"Name":"NIC1","InterfaceDescription":"Broadcom NetXtreme Gigabit Ethernet","Status":"Disconnected","LinkSpeed":"0 bps","MacAddress":"B0-83-FE-01-02-03","DriverVersion":"214.0.0.0","MTU":1514}]`)

	rows, err := adapterRows(hostapi.New("hv01", sh))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Len(t, r, len(header))
	}
	assert.Equal(t, []string{"hv01", "SLOT 3 Port 1", "Mellanox ConnectX-4 Lx Ethernet Adapter", "Up", "25 Gbps", "24-8A-07-11-22-33", "3.0.25668.0", "9014"}, rows[0])
}
