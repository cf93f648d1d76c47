package hostapi

import (
	"fmt"
	"strings"

	"github.com/brian1917/vmmtool/psshell"
	"github.com/pkg/errors"
)

const diskSelect = "Select-Object Number, FriendlyName, SerialNumber, Size, " +
	"@{n='PartitionStyle';e={[string]$_.PartitionStyle}}, " +
	"@{n='OperationalStatus';e={[string]$_.OperationalStatus}}, " +
	"@{n='HealthStatus';e={[string]$_.HealthStatus}}, " +
	"@{n='BusType';e={[string]$_.BusType}}, IsClustered, IsOffline"

// GetInitiatorPorts returns the fibre channel initiator ports.
func (h *Host) GetInitiatorPorts() ([]InitiatorPort, psshell.Result, error) {
	var ports []InitiatorPort
	a, err := h.run("Get-InitiatorPort | Where-Object { [string]$_.ConnectionType -eq 'Fibre Channel' } | Select-Object InstanceName, NodeAddress, PortAddress, "+
		"@{n='ConnectionType';e={[string]$_.ConnectionType}}, "+
		"@{n='OperationalStatus';e={[string]$_.OperationalStatus}}", &ports)
	return ports, a, err
}

// GetMPIOSettings returns the MPIO settings. Hosts without the MPIO feature
// fail with the cmdlet error.
func (h *Host) GetMPIOSettings() (MPIOSettings, psshell.Result, error) {
	var settings []MPIOSettings
	script := psshell.Script(
		"$mpio = Get-MPIOSetting -ErrorAction Stop",
		"$mpio | Select-Object @{n='PathVerificationState';e={[string]$_.PathVerificationState}}, PathVerificationPeriod, PDORemovePeriod, RetryCount, RetryInterval, "+
			"@{n='UseCustomPathRecoveryTime';e={[string]$_.UseCustomPathRecoveryTime}}, CustomPathRecoveryTime, DiskTimeoutValue, "+
			"@{n='LoadBalancePolicy';e={[string](Get-MSDSMGlobalDefaultLoadBalancePolicy)}}",
	)
	a, err := h.run(script, &settings)
	if err != nil {
		return MPIOSettings{}, a, err
	}
	if len(settings) == 0 {
		return MPIOSettings{}, a, errors.Wrapf(ErrRemoteCommand, "%s: no mpio settings returned", h.Name)
	}
	return settings[0], a, nil
}

// GetDisks returns the disks of the host with serial numbers trimmed.
func (h *Host) GetDisks() ([]Disk, psshell.Result, error) {
	var disks []Disk
	a, err := h.run("Get-Disk | "+diskSelect, &disks)
	for i := range disks {
		disks[i].SerialNumber = strings.TrimSpace(disks[i].SerialNumber)
	}
	return disks, a, err
}

// GetDiskBySerial returns the disk with the given serial number.
func (h *Host) GetDiskBySerial(serial string) (Disk, psshell.Result, error) {
	var disks []Disk
	a, err := h.run(fmt.Sprintf("Get-Disk | Where-Object { $_.SerialNumber -and $_.SerialNumber.Trim() -eq %s } | %s", psshell.Quote(strings.TrimSpace(serial)), diskSelect), &disks)
	if err != nil {
		return Disk{}, a, err
	}
	if len(disks) == 0 {
		return Disk{}, a, errors.Wrapf(ErrNotFound, "disk with serial number %s on %s", serial, h.Name)
	}
	disks[0].SerialNumber = strings.TrimSpace(disks[0].SerialNumber)
	return disks[0], a, nil
}

// FormatWWN renders a hex world wide name as lower case colon separated pairs.
// Values that are not 16 hex digits are returned unchanged.
func FormatWWN(wwn string) string {
	raw := strings.ToLower(strings.NewReplacer(":", "", "-", "", " ", "").Replace(strings.TrimSpace(wwn)))
	if len(raw) != 16 {
		return wwn
	}
	for _, c := range raw {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return wwn
		}
	}
	pairs := make([]string, 0, 8)
	for i := 0; i < 16; i += 2 {
		pairs = append(pairs, raw[i:i+2])
	}
	return strings.Join(pairs, ":")
}
