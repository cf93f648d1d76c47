package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brian1917/vmmtool/psshell/pstest"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connectedServer(t *testing.T, sh *pstest.Shell) *vmmapi.Server {
	t.Helper()
	sh.On("Get-SCVMMServer", `[{"Name":"vmm01","ProductVersion":"10.22"}]`)
	s := &vmmapi.Server{FQDN: "vmm01", User: "u", Password: "p"}
	_, err := s.Connect(sh)
	require.NoError(t, err)
	return s
}

func TestTargetsValidate(t *testing.T) {
	assert.Error(t, Targets{}.Validate())
	assert.NoError(t, Targets{Host: "hv01"}.Validate())
	assert.NoError(t, Targets{Cluster: "clu01"}.Validate())
	assert.Error(t, Targets{Host: "hv01", Cluster: "clu01"}.Validate())
}

func TestHostNamesFromFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "hosts.csv")
	require.NoError(t, os.WriteFile(f, []byte("\xef\xbb\xbfhost_name\nhv01\n\nhv02\n"), 0644))
	names, err := hostNamesFromFile(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"hv01", "hv02"}, names)
}

func TestHostNamesFromFileNoHeader(t *testing.T) {
	f := filepath.Join(t.TempDir(), "hosts.csv")
	require.NoError(t, os.WriteFile(f, []byte("hv03\nhv04\n"), 0644))
	names, err := hostNamesFromFile(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"hv03", "hv04"}, names)
}

func TestResolveHostsClusterNotFound(t *testing.T) {
	sh := pstest.New()
	s := connectedServer(t, sh)

	_, err := ResolveHosts(s, Targets{Cluster: "missing"})
	require.Error(t, err)
	assert.True(t, vmmapi.IsNotFound(err))
	// connect and the cluster lookup only
	assert.Len(t, sh.Calls, 2)
	assert.False(t, sh.Ran("Get-SCVMHost -VMMServer"))
}

func TestResolveHostsCluster(t *testing.T) {
	sh := pstest.New().
		On("Get-SCVMHostCluster", `[{"Name":"clu01","Nodes":["hv01","hv02"]}]`).
		On("Get-SCVMHost", `[{"Name":"hv01"},{"Name":"hv02"}]`)
	s := connectedServer(t, sh)

	hosts, err := ResolveHosts(s, Targets{Cluster: "clu01"})
	require.NoError(t, err)
	require.Len(t, hosts, 2)
	assert.Equal(t, "hv02", hosts[1].Name)
}

func TestResolveHostsFileStopsAtFirstMissingHost(t *testing.T) {
	f := filepath.Join(t.TempDir(), "hosts.csv")
	require.NoError(t, os.WriteFile(f, []byte("hv01\nmissing\nhv02\n"), 0644))

	sh := pstest.New().
		On("-eq 'hv01'", `[{"Name":"hv01"}]`).
		On("-eq 'hv02'", `[{"Name":"hv02"}]`)
	s := connectedServer(t, sh)

	_, err := ResolveHosts(s, Targets{HostFile: f})
	require.Error(t, err)
	assert.True(t, vmmapi.IsNotFound(err))
	assert.False(t, sh.Ran("-eq 'hv02'"))
}
