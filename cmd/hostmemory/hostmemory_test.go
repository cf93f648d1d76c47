package hostmemory

import (
	"testing"

	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/stretchr/testify/assert"
)

func TestMemoryRows(t *testing.T) {
	hosts := []vmmapi.VMHost{
		// 256 GB total, 64 GB available
		{Name: "hv01", TotalMemory: 274877906944, AvailableMemory: 65536},
		{Name: "hv02", TotalMemory: 0, AvailableMemory: 0},
	}

	data := memoryRows(hosts)
	assert.Equal(t, header, data[0])
	assert.Equal(t, []string{"hv01", "256.00", "64.00", "192.00", "75"}, data[1])
	assert.Equal(t, []string{"hv02", "0.00", "0.00", "0.00", "0"}, data[2])
}
