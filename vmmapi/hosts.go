package vmmapi

import (
	"fmt"

	"github.com/brian1917/vmmtool/psshell"
)

const hostSelect = "Select-Object Name, FullyQualifiedDomainName, " +
	"@{n='HostCluster';e={[string]$_.HostCluster.Name}}, " +
	"@{n='OverallState';e={[string]$_.OverallState}}, " +
	"@{n='CommunicationState';e={[string]$_.CommunicationState}}, " +
	"@{n='OperatingSystem';e={[string]$_.OperatingSystem.Name}}, " +
	"@{n='VirtualizationPlatform';e={[string]$_.VirtualizationPlatform}}, " +
	"TotalMemory, AvailableMemory, " +
	"@{n='ProcessorModel';e={[string]$_.ProcessorModel}}, " +
	"PhysicalCPUCount, CoresPerCPU, LogicalProcessorCount, CpuUtilization"

// hostFilter matches a host by short name or FQDN.
func hostFilter(name string) string {
	return fmt.Sprintf("Where-Object { $_.Name -eq %[1]s -or $_.FullyQualifiedDomainName -eq %[1]s -or $_.ComputerName -eq %[1]s }", psshell.Quote(name))
}

// GetVMHost returns the host with the given short name or FQDN.
func (s *Server) GetVMHost(name string) (VMHost, psshell.Result, error) {
	var hosts []VMHost
	a, err := s.run(fmt.Sprintf("Get-SCVMHost -VMMServer $vmm | %s | %s", hostFilter(name), hostSelect), &hosts)
	if err != nil {
		return VMHost{}, a, err
	}
	if len(hosts) == 0 {
		return VMHost{}, a, notFound("host", name)
	}
	return hosts[0], a, nil
}

// GetVMHosts returns all managed hosts.
func (s *Server) GetVMHosts() ([]VMHost, psshell.Result, error) {
	var hosts []VMHost
	a, err := s.run("Get-SCVMHost -VMMServer $vmm | "+hostSelect, &hosts)
	return hosts, a, err
}

// GetClusterHosts returns the nodes of a cluster.
func (s *Server) GetClusterHosts(clusterName string) ([]VMHost, psshell.Result, error) {
	var hosts []VMHost
	a, err := s.run(fmt.Sprintf("Get-SCVMHost -VMMServer $vmm | Where-Object { $_.HostCluster.Name -eq %[1]s -or $_.HostCluster.ClusterName -eq %[1]s } | %[2]s", psshell.Quote(clusterName), hostSelect), &hosts)
	return hosts, a, err
}

// GetHostNetworkAdapters returns the physical adapters VMM knows for a host.
func (s *Server) GetHostNetworkAdapters(hostName string) ([]HostNetworkAdapter, psshell.Result, error) {
	var nics []HostNetworkAdapter
	script := psshell.Script(
		fmt.Sprintf("$h = Get-SCVMHost -VMMServer $vmm | %s | Select-Object -First 1", hostFilter(hostName)),
		"if ($h) { Get-SCVMHostNetworkAdapter -VMHost $h | Select-Object Name, MacAddress, ConnectionName, MaxBandwidth, "+
			"@{n='VirtualSwitch';e={[string]$_.VirtualNetwork.Name}}, "+
			"@{n='LogicalNetworks';e={@($_.LogicalNetworkMap.Keys | ForEach-Object { [string]$_.Name })}} }",
	)
	a, err := s.run(script, &nics)
	return nics, a, err
}

// GetVirtualSwitches returns the virtual switches of a host.
func (s *Server) GetVirtualSwitches(hostName string) ([]VirtualSwitch, psshell.Result, error) {
	var switches []VirtualSwitch
	script := psshell.Script(
		fmt.Sprintf("$h = Get-SCVMHost -VMMServer $vmm | %s | Select-Object -First 1", hostFilter(hostName)),
		"if ($h) { Get-SCVirtualNetwork -VMHost $h | Select-Object Name, "+
			"@{n='SwitchType';e={ if ($_.LogicalSwitch) { 'Logical' } else { 'Standard' } }}, "+
			"@{n='BoundAdapters';e={@($_.VMHostNetworkAdapters | ForEach-Object { [string]$_.ConnectionName })}}, "+
			"@{n='LogicalNetworks';e={@($_.LogicalNetworks | ForEach-Object { [string]$_.Name })}} }",
	)
	a, err := s.run(script, &switches)
	return switches, a, err
}
