package hostapi

import (
	"strings"

	"github.com/brian1917/vmmtool/psshell"
	"github.com/pkg/errors"
)

// GetNetAdapters returns the physical network adapters.
func (h *Host) GetNetAdapters() ([]NetAdapter, psshell.Result, error) {
	var nics []NetAdapter
	a, err := h.run("Get-NetAdapter -Physical | Select-Object Name, InterfaceDescription, "+
		"@{n='Status';e={[string]$_.Status}}, "+
		"@{n='LinkSpeed';e={[string]$_.LinkSpeed}}, MacAddress, DriverVersion, "+
		"@{n='MTU';e={[int]$_.MtuSize}}", &nics)
	return nics, a, err
}

// GetNetIPAddresses returns unicast addresses, skipping loopback.
func (h *Host) GetNetIPAddresses() ([]NetIPAddress, psshell.Result, error) {
	var ips []NetIPAddress
	a, err := h.run("Get-NetIPAddress | Where-Object { $_.InterfaceAlias -notlike 'Loopback*' } | Select-Object InterfaceAlias, IPAddress, PrefixLength, "+
		"@{n='AddressFamily';e={[string]$_.AddressFamily}}, "+
		"@{n='PrefixOrigin';e={[string]$_.PrefixOrigin}}", &ips)
	return ips, a, err
}

// GetLLDPNeighbors captures LLDP frames on the host with the
// PSDiscoveryProtocol module. A capture that yields nothing is ErrRemoteCommand.
func (h *Host) GetLLDPNeighbors() ([]LLDPNeighbor, psshell.Result, error) {
	var neighbors []LLDPNeighbor
	script := psshell.Script(
		"Import-Module PSDiscoveryProtocol -ErrorAction Stop",
		"$lldp = Invoke-DiscoveryProtocolCapture -Type LLDP -Force -ErrorAction Stop",
		"$lldp | Get-DiscoveryProtocolData | Select-Object "+
			"@{n='AdapterName';e={[string]$_.Interface}}, "+
			"@{n='MacAddress';e={[string](Get-NetAdapter -Name $_.Interface -ErrorAction SilentlyContinue).MacAddress}}, "+
			"@{n='SwitchName';e={[string]$_.Device}}, "+
			"@{n='ChassisId';e={[string]$_.ChassisId}}, "+
			"@{n='PortId';e={[string]$_.Port}}, "+
			"@{n='PortDescription';e={[string]$_.PortDescription}}, "+
			"@{n='VlanId';e={[string]$_.VLAN}}, "+
			"@{n='ManagementAddress';e={[string]($_.IPAddress -join ';')}}",
	)
	a, err := h.run(script, &neighbors)
	if err != nil {
		return nil, a, err
	}
	if len(neighbors) == 0 {
		return nil, a, errors.Wrapf(ErrRemoteCommand, "%s: lldp capture returned no data", h.Name)
	}
	return neighbors, a, nil
}

// NormalizeMAC returns mac in upper case with dash separators so addresses
// from different cmdlets compare equal.
func NormalizeMAC(mac string) string {
	mac = strings.ToUpper(strings.TrimSpace(mac))
	mac = strings.NewReplacer(":", "", "-", "", ".", "").Replace(mac)
	if len(mac) != 12 {
		return mac
	}
	pairs := make([]string, 0, 6)
	for i := 0; i < 12; i += 2 {
		pairs = append(pairs, mac[i:i+2])
	}
	return strings.Join(pairs, "-")
}
