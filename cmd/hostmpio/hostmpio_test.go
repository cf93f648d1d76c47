package hostmpio

import (
	"testing"

	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/psshell/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMPIORow(t *testing.T) {
	sh := pstest.New().On("Get-MPIOSetting", `[{"PathVerificationState":"Enabled","PathVerificationPeriod":30,"PDORemovePeriod":30,"RetryCount":3,"RetryInterval":1,"UseCustomPathRecoveryTime":"Enabled","CustomPathRecoveryTime":20,"DiskTimeoutValue":60,"LoadBalancePolicy":"LQD"}]`)
	h := hostapi.New("hv01", sh)

	m, _, err := h.GetMPIOSettings()
	require.NoError(t, err)
	assert.Equal(t, []string{"hv01", "Enabled", "30", "30", "3", "1", "Enabled", "20", "60", "LQD"}, mpioRow(h.Name, m))
}
