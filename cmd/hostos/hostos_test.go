package hostos

import (
	"testing"
	"time"

	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/psshell/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSRow(t *testing.T) {
	now = func() time.Time { return time.Date(2024, 5, 11, 18, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	sh := pstest.New().On("Win32_OperatingSystem", `[{"Caption":"Microsoft Windows Server 2022 Datacenter","Version":"10.0.20348","BuildNumber":"20348","InstallDate":"2023-01-10T09:00:00.0000000+00:00","LastBootUpTime":"2024-05-01T06:30:00.0000000+00:00","TotalVisibleMemorySize":268435456,"FreePhysicalMemory":134217728}]`)

	row, err := osRow(hostapi.New("hv01", sh))
	require.NoError(t, err)
	assert.Equal(t, []string{"hv01", "Microsoft Windows Server 2022 Datacenter", "10.0.20348", "20348", "2023-01-10 09:00:00", "2024-05-01 06:30:00", "10", "256.00", "128.00"}, row)
}

func TestOSRowNoOutput(t *testing.T) {
	_, err := osRow(hostapi.New("hv01", pstest.New()))
	require.Error(t, err)
	assert.True(t, hostapi.IsRemoteCommand(err))
}

func TestFormatDate(t *testing.T) {
	s, tm := formatDate("2024-05-01T06:30:00.1234567")
	assert.Equal(t, "2024-05-01 06:30:00", s)
	assert.False(t, tm.IsZero())

	s, tm = formatDate("")
	assert.Equal(t, "", s)
	assert.True(t, tm.IsZero())
}
