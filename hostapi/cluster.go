package hostapi

import (
	"fmt"
	"strings"

	"github.com/brian1917/vmmtool/psshell"
	"github.com/pkg/errors"
)

// GetClusterNodes returns the nodes of the failover cluster the host belongs to.
func (h *Host) GetClusterNodes() ([]ClusterNode, psshell.Result, error) {
	var nodes []ClusterNode
	a, err := h.run("Get-ClusterNode -ErrorAction Stop | Select-Object Name, "+
		"@{n='State';e={[string]$_.State}}, NodeWeight, DynamicWeight", &nodes)
	return nodes, a, err
}

// InitializeDisk brings the disk online, initializes it as GPT when it is raw,
// creates one partition using all of the disk and formats it. fileSystem is
// NTFS or ReFS in any case. Empty means NTFS.
func (h *Host) InitializeDisk(d Disk, label, fileSystem string) (Volume, psshell.Result, error) {
	switch {
	case fileSystem == "", strings.EqualFold(fileSystem, "NTFS"):
		fileSystem = "NTFS"
	case strings.EqualFold(fileSystem, "ReFS"):
		fileSystem = "ReFS"
	default:
		return Volume{}, psshell.Result{}, errors.Errorf("%s: unsupported file system %q - must be NTFS or ReFS", h.Name, fileSystem)
	}
	script := psshell.Script(
		fmt.Sprintf("$d = Get-Disk -Number %d -ErrorAction Stop", d.Number),
		fmt.Sprintf("if ($d.IsOffline) { Set-Disk -Number %d -IsOffline $false }", d.Number),
		fmt.Sprintf("if ($d.IsReadOnly) { Set-Disk -Number %d -IsReadOnly $false }", d.Number),
		fmt.Sprintf("if ([string]$d.PartitionStyle -eq 'RAW') { Initialize-Disk -Number %d -PartitionStyle GPT -PassThru | Out-Null }", d.Number),
		fmt.Sprintf("New-Partition -DiskNumber %d -UseMaximumSize | Format-Volume -FileSystem %s -NewFileSystemLabel %s -Confirm:$false | Select-Object FileSystemLabel, FileSystem, Size",
			d.Number, fileSystem, psshell.Quote(label)),
	)

	var vols []Volume
	a, err := h.run(script, &vols)
	if err != nil {
		return Volume{}, a, err
	}
	if len(vols) == 0 {
		return Volume{}, a, errors.Wrapf(ErrRemoteCommand, "%s: disk %d was not formatted", h.Name, d.Number)
	}
	return vols[0], a, nil
}

// AddClusterSharedVolume adds the available cluster disk backed by the given
// disk number to the cluster, names the cluster resource, turns it into a
// cluster shared volume and renames its mount folder to name.
func (h *Host) AddClusterSharedVolume(diskNumber int, name string) (SharedVolume, psshell.Result, error) {
	q := psshell.Quote(name)
	script := psshell.Script(
		fmt.Sprintf("$ad = Get-ClusterAvailableDisk -ErrorAction Stop | Where-Object { $_.Number -eq %d } | Select-Object -First 1", diskNumber),
		"if ($ad) { "+psshell.Script(
			"$res = $ad | Add-ClusterDisk -ErrorAction Stop",
			"$res.Name = "+q,
			"$csv = Add-ClusterSharedVolume -Name "+q+" -ErrorAction Stop",
			"$path = [string]$csv.SharedVolumeInfo.FriendlyVolumeName",
			"$target = Join-Path 'C:\\ClusterStorage' "+q,
			"if ($path -and $path -ne $target) { Rename-Item -Path $path -NewName "+q+" -ErrorAction Stop; $path = $target }",
			"$csv | Select-Object Name, @{n='Path';e={$path}}, @{n='State';e={[string]$_.State}}, @{n='OwnerNode';e={[string]$_.OwnerNode.Name}}",
		)+" }",
	)

	var vols []SharedVolume
	a, err := h.run(script, &vols)
	if err != nil {
		return SharedVolume{}, a, err
	}
	if len(vols) == 0 {
		return SharedVolume{}, a, errors.Wrapf(ErrRemoteCommand, "%s: no cluster shared volume was created for disk %d", h.Name, diskNumber)
	}
	return vols[0], a, nil
}

// ProvisionSharedVolume formats the disk and registers it as a cluster shared
// volume named name. The two steps run in order with no rollback.
func (h *Host) ProvisionSharedVolume(d Disk, name, fileSystem string) (SharedVolume, map[string]psshell.Result, error) {
	apiResps := make(map[string]psshell.Result)

	if strings.TrimSpace(name) == "" {
		return SharedVolume{}, apiResps, errors.New("volume name is required")
	}
	if d.IsClustered {
		return SharedVolume{}, apiResps, errors.Errorf("disk %d (%s) on %s is already clustered", d.Number, d.SerialNumber, h.Name)
	}

	_, a, err := h.InitializeDisk(d, name, fileSystem)
	apiResps["InitializeDisk"] = a
	if err != nil {
		return SharedVolume{}, apiResps, err
	}

	csv, a, err := h.AddClusterSharedVolume(d.Number, name)
	apiResps["AddClusterSharedVolume"] = a
	if err != nil {
		return SharedVolume{}, apiResps, err
	}
	return csv, apiResps, nil
}
