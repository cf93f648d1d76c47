package vmmapi

import (
	"fmt"

	"github.com/brian1917/vmmtool/psshell"
)

const clusterSelect = "Select-Object Name, " +
	"@{n='Nodes';e={@($_.Nodes | ForEach-Object { [string]$_.Name })}}, " +
	"ClusterReserve, " +
	"@{n='ClusterReserveState';e={[string]$_.ClusterReserveState}}, " +
	"@{n='SharedVolumeCount';e={@($_.SharedVolumes).Count}}"

func clusterFilter(name string) string {
	return fmt.Sprintf("Where-Object { $_.Name -eq %[1]s -or $_.ClusterName -eq %[1]s }", psshell.Quote(name))
}

// GetCluster returns the host cluster with the given name.
func (s *Server) GetCluster(name string) (Cluster, psshell.Result, error) {
	var clusters []Cluster
	a, err := s.run(fmt.Sprintf("Get-SCVMHostCluster -VMMServer $vmm | %s | %s", clusterFilter(name), clusterSelect), &clusters)
	if err != nil {
		return Cluster{}, a, err
	}
	if len(clusters) == 0 {
		return Cluster{}, a, notFound("cluster", name)
	}
	return clusters[0], a, nil
}

// GetClusters returns all host clusters.
func (s *Server) GetClusters() ([]Cluster, psshell.Result, error) {
	var clusters []Cluster
	a, err := s.run("Get-SCVMHostCluster -VMMServer $vmm | "+clusterSelect, &clusters)
	return clusters, a, err
}

// GetClusterSharedVolumes returns the cluster shared volumes as seen from the
// first node of the cluster. A cluster without nodes has no volumes.
func (s *Server) GetClusterSharedVolumes(c Cluster) ([]SharedVolume, psshell.Result, error) {
	if len(c.Nodes) == 0 {
		return nil, psshell.Result{}, nil
	}
	var vols []SharedVolume
	script := psshell.Script(
		fmt.Sprintf("$node = Get-SCVMHost -VMMServer $vmm | %s | Select-Object -First 1", hostFilter(c.Nodes[0])),
		"if ($node) { Get-SCStorageVolume -VMMServer $vmm -VMHost $node | Where-Object { $_.IsClusterSharedVolume } | "+
			"Select-Object @{n='Name';e={[string]$_.VolumeLabel}}, @{n='Path';e={[string]$_.Name}}, Capacity, FreeSpace }",
	)
	a, err := s.run(script, &vols)
	return vols, a, err
}

// RefreshCluster asks VMM to re-read the cluster from its nodes.
func (s *Server) RefreshCluster(name string) (psshell.Result, error) {
	var clusters []Cluster
	a, err := s.run(fmt.Sprintf("Get-SCVMHostCluster -VMMServer $vmm | %s | Read-SCVMHostCluster | %s", clusterFilter(name), clusterSelect), &clusters)
	if err != nil {
		return a, err
	}
	if len(clusters) == 0 {
		return a, notFound("cluster", name)
	}
	return a, nil
}
