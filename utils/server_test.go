package utils

import (
	"testing"

	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/psshell/pstest"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestGetTargetServerFromEnv(t *testing.T) {
	resetViper(t)
	t.Setenv(EnvServer, "vmm01.corp.local")
	t.Setenv(EnvUsername, `CORP\svc`)
	t.Setenv(EnvPassword, "secret")
	t.Setenv(EnvPort, "")

	s, err := GetTargetServer()
	require.NoError(t, err)
	assert.Equal(t, "vmm01.corp.local", s.FQDN)
	assert.Equal(t, `CORP\svc`, s.User)
	assert.Equal(t, "secret", s.Password)
	assert.Equal(t, 8100, s.Port)
}

func TestGetTargetServerMissingValues(t *testing.T) {
	resetViper(t)
	t.Setenv(EnvServer, "vmm01")
	t.Setenv(EnvUsername, "svc")
	t.Setenv(EnvPassword, "")
	t.Setenv(EnvPort, "")

	_, err := GetTargetServer()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvPassword)

	t.Setenv(EnvServer, "")
	_, err = GetTargetServer()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvServer)

	t.Setenv(EnvServer, "vmm01")
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvPassword, "secret")
	_, err = GetTargetServer()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvUsername)
}

func TestGetTargetServerFromProfile(t *testing.T) {
	resetViper(t)
	t.Setenv(EnvServer, "ignored")
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvPassword, "secret")
	viper.Set("default_server_name", "lab")
	viper.Set("lab.server", "vmm-lab.corp.local")
	viper.Set("lab.port", 8101)
	viper.Set("lab.username", "lab-svc")
	viper.Set("lab.transport", "SSH")

	s, err := GetTargetServer()
	require.NoError(t, err)
	assert.Equal(t, "lab", s.FriendlyName)
	assert.Equal(t, "vmm-lab.corp.local", s.FQDN)
	assert.Equal(t, 8101, s.Port)
	assert.Equal(t, "lab-svc", s.User)
	assert.Equal(t, "ssh", Transport())
}

func TestGetTargetServerUnknownProfile(t *testing.T) {
	resetViper(t)
	viper.Set("target_server", "nope")
	_, err := GetTargetServer()
	assert.Error(t, err)
}

func TestTransportDefault(t *testing.T) {
	resetViper(t)
	t.Setenv(EnvTransport, "")
	assert.Equal(t, "winrm", Transport())
}

func TestSessionConfig(t *testing.T) {
	resetViper(t)
	viper.Set("ssh_port", 2222)
	s := vmmapi.Server{FQDN: "vmm01", User: "svc", Password: "secret"}
	cfg := SessionConfig("hv01.corp.local", s, "ssh")
	assert.Equal(t, "hv01.corp.local", cfg.ComputerName)
	assert.Equal(t, 2222, cfg.SSHPort)
	assert.Equal(t, "svc", cfg.User)
}

func TestEachHostSkipsFailedHosts(t *testing.T) {
	shells := map[string]*pstest.Shell{"hv01": pstest.New(), "hv03": pstest.New(), "hv04": pstest.New()}
	open := func(vh vmmapi.VMHost) (*hostapi.Host, error) {
		sh, ok := shells[vh.Name]
		if !ok {
			return nil, errors.New("winrm: connection refused")
		}
		return hostapi.New(vh.Name, sh), nil
	}
	hosts := []vmmapi.VMHost{{Name: "hv01"}, {Name: "hv02"}, {Name: "hv03"}, {Name: "hv04"}}

	var visited []string
	EachHost(open, hosts, func(h *hostapi.Host) error {
		visited = append(visited, h.Name)
		if h.Name == "hv03" {
			return errors.New("Get-Disk : Access denied")
		}
		return nil
	})

	assert.Equal(t, []string{"hv01", "hv03", "hv04"}, visited)
	for name, sh := range shells {
		assert.True(t, sh.Exited, "%s session left open", name)
	}
}
