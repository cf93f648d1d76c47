package vmintegration

import (
	"testing"

	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/stretchr/testify/assert"
)

func TestIntegrationRows(t *testing.T) {
	data := integrationRows(vmmapi.VM{Name: "app01", TimeSyncEnabled: false, HeartbeatEnabled: true, BackupEnabled: true, DataExchEnabled: true, ShutdownEnabled: true})
	assert.Equal(t, []string{"app01", "false", "true", "true", "true", "true"}, data[1])
	assert.Len(t, data[0], len(data[1]))
}
