package vmmapi

import (
	"fmt"

	"github.com/brian1917/vmmtool/psshell"
	"github.com/pkg/errors"
)

const vmSelect = "Select-Object Name, @{n='VMId';e={[string]$_.VMId}}, " +
	"@{n='HostName';e={[string]$_.HostName}}, " +
	"@{n='Status';e={[string]$_.Status}}, " +
	"CPUCount, Memory, DynamicMemoryEnabled, Generation, " +
	"@{n='OperatingSystem';e={[string]$_.OperatingSystem.Name}}, Description, " +
	"TimeSynchronizationEnabled, HeartbeatEnabled, BackupEnabled, DataExchangeEnabled, OperatingSystemShutdownEnabled"

// vmLookup assigns the first VM with the given name to $vm.
func vmLookup(name string) string {
	return fmt.Sprintf("$vm = Get-SCVirtualMachine -VMMServer $vmm -Name %s | Select-Object -First 1", psshell.Quote(name))
}

// GetVM returns the virtual machine with the given name.
func (s *Server) GetVM(name string) (VM, psshell.Result, error) {
	var vms []VM
	a, err := s.run(psshell.Script(vmLookup(name), "$vm | "+vmSelect), &vms)
	if err != nil {
		return VM{}, a, err
	}
	if len(vms) == 0 {
		return VM{}, a, notFound("vm", name)
	}
	return vms[0], a, nil
}

// GetVMs returns the virtual machines placed on a host.
func (s *Server) GetVMs(hostName string) ([]VM, psshell.Result, error) {
	var vms []VM
	script := psshell.Script(
		fmt.Sprintf("$h = Get-SCVMHost -VMMServer $vmm | %s | Select-Object -First 1", hostFilter(hostName)),
		"if ($h) { Get-SCVirtualMachine -VMMServer $vmm -VMHost $h | "+vmSelect+" }",
	)
	a, err := s.run(script, &vms)
	return vms, a, err
}

// GetVirtualDiskDrives returns the disk drives of a VM.
func (s *Server) GetVirtualDiskDrives(vmName string) ([]VirtualDiskDrive, psshell.Result, error) {
	var disks []VirtualDiskDrive
	script := psshell.Script(
		vmLookup(vmName),
		"if ($vm) { Get-SCVirtualDiskDrive -VM $vm | Select-Object Name, "+
			"@{n='BusType';e={[string]$_.BusType}}, Bus, Lun, "+
			"@{n='Path';e={[string]$_.VirtualHardDisk.Location}}, "+
			"@{n='VHDType';e={[string]$_.VirtualHardDisk.VHDType}}, "+
			"@{n='VHDFormat';e={[string]$_.VirtualHardDisk.VHDFormatType}}, "+
			"@{n='MaximumSize';e={$_.VirtualHardDisk.MaximumSize}}, "+
			"@{n='Size';e={$_.VirtualHardDisk.Size}} }",
	)
	a, err := s.run(script, &disks)
	return disks, a, err
}

// GetVirtualNetworkAdapters returns the network adapters of a VM.
func (s *Server) GetVirtualNetworkAdapters(vmName string) ([]VirtualNetworkAdapter, psshell.Result, error) {
	var nics []VirtualNetworkAdapter
	script := psshell.Script(
		vmLookup(vmName),
		"if ($vm) { Get-SCVirtualNetworkAdapter -VM $vm | Select-Object Name, MACAddress, "+
			"@{n='MACAddressType';e={[string]$_.MACAddressType}}, "+
			"@{n='VMNetwork';e={[string]$_.VMNetwork.Name}}, VLanEnabled, VLanID, "+
			"@{n='IPv4Addresses';e={@($_.IPv4Addresses | ForEach-Object { [string]$_ })}}, "+
			"@{n='IPv6Addresses';e={@($_.IPv6Addresses | ForEach-Object { [string]$_ })}} }",
	)
	a, err := s.run(script, &nics)
	return nics, a, err
}

// GetCheckpoints returns the checkpoints of a VM.
func (s *Server) GetCheckpoints(vmName string) ([]Checkpoint, psshell.Result, error) {
	var checkpoints []Checkpoint
	script := psshell.Script(
		vmLookup(vmName),
		"if ($vm) { Get-SCVMCheckpoint -VM $vm | Select-Object Name, "+
			"@{n='CheckpointID';e={[string]$_.CheckpointID}}, "+
			"@{n='ParentCheckpoint';e={[string]$_.ParentCheckpoint.Name}}, "+
			"@{n='AddedTime';e={ if ($_.AddedTime) { $_.AddedTime.ToString('o') } }} }",
	)
	a, err := s.run(script, &checkpoints)
	return checkpoints, a, err
}

// SetTimeSync sets the time synchronization integration service of vm to
// enabled and re-reads the VM to confirm the change. When the service is
// already in the requested state nothing is sent and changed is false.
func (s *Server) SetTimeSync(vm VM, enabled bool) (after VM, changed bool, a psshell.Result, err error) {
	if vm.TimeSyncEnabled == enabled {
		return vm, false, a, nil
	}

	var ignored []VM
	script := psshell.Script(
		vmLookup(vm.Name),
		"if (-not $vm) { throw 'vm not found' }",
		fmt.Sprintf("Set-SCVirtualMachine -VM $vm -EnableTimeSynchronization %s -ErrorAction Stop | Out-Null", psshell.Bool(enabled)),
	)
	a, err = s.run(script, &ignored)
	if err != nil {
		return vm, false, a, errors.Wrapf(err, "setting time synchronization on %s", vm.Name)
	}

	after, _, err = s.GetVM(vm.Name)
	if err != nil {
		return vm, false, a, errors.Wrapf(err, "re-reading %s", vm.Name)
	}
	if after.TimeSyncEnabled != enabled {
		return after, false, a, errors.Errorf("time synchronization on %s is still %t", vm.Name, after.TimeSyncEnabled)
	}
	return after, true, a, nil
}
