package servermgmt

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileValidate(t *testing.T) {
	p := serverProfile{name: "lab", server: "vmm01.corp.local", port: 8100, username: `CORP\svc`, transport: "winrm"}
	assert.NoError(t, p.validate())

	bad := p
	bad.name = "lab.one"
	assert.Error(t, bad.validate())

	bad = p
	bad.port = 0
	assert.Error(t, bad.validate())

	bad = p
	bad.transport = "telnet"
	assert.Error(t, bad.validate())

	bad = p
	bad.username = ""
	assert.Error(t, bad.validate())
}

func TestSaveSetsFirstDefault(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	serverProfile{name: "lab", server: "vmm01", port: 8100, username: "svc", transport: "ssh"}.save()
	serverProfile{name: "prod", server: "vmm02", port: 8100, username: "svc", transport: "winrm"}.save()

	assert.Equal(t, "lab", viper.GetString("default_server_name"))
	assert.Equal(t, "vmm02", viper.GetString("prod.server"))
	assert.Equal(t, "ssh", viper.GetString("lab.transport"))
	assert.False(t, viper.IsSet("lab.password"))
	assert.Equal(t, []string{"lab", "prod"}, GetAllServerNames())
}

func TestRemoveProfile(t *testing.T) {
	settings := map[string]interface{}{
		"default_server_name":    "lab",
		"max_entries_for_stdout": 100,
		"debug":                  true,
		"lab":                    map[string]interface{}{"server": "vmm01"},
		"prod":                   map[string]interface{}{"server": "vmm02"},
	}

	out, err := removeProfile(settings, "lab")
	require.NoError(t, err)
	assert.NotContains(t, out, "lab")
	assert.NotContains(t, out, "default_server_name")
	assert.NotContains(t, out, "debug")
	assert.Contains(t, out, "prod")
	assert.Equal(t, 100, out["max_entries_for_stdout"])

	_, err = removeProfile(settings, "missing")
	assert.Error(t, err)
}
