package hostcpu

import (
	"testing"

	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/stretchr/testify/assert"
)

func TestCPURows(t *testing.T) {
	data := cpuRows([]vmmapi.VMHost{{
		Name:                  "hv01",
		ProcessorModel:        "Intel(R) Xeon(R) Gold 6248R CPU @ 3.00GHz",
		PhysicalCPUCount:      2,
		CoresPerCPU:           24,
		LogicalProcessorCount: 96,
		CPUUtilization:        37.4,
	}})

	assert.Len(t, data, 2)
	assert.Len(t, data[0], 6)
	assert.Equal(t, []string{"hv01", "Intel(R) Xeon(R) Gold 6248R CPU @ 3.00GHz", "2", "24", "96", "37"}, data[1])
}
