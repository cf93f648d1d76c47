package vmmapi

// VMHost is a virtualization host managed by VMM.
// TotalMemory is in bytes and AvailableMemory is in MB, as VMM reports them.
type VMHost struct {
	Name                   string  `json:"Name"`
	FQDN                   string  `json:"FullyQualifiedDomainName"`
	ClusterName            string  `json:"HostCluster"`
	OverallState           string  `json:"OverallState"`
	CommunicationState     string  `json:"CommunicationState"`
	OperatingSystem        string  `json:"OperatingSystem"`
	VirtualizationPlatform string  `json:"VirtualizationPlatform"`
	TotalMemory            int64   `json:"TotalMemory"`
	AvailableMemory        int64   `json:"AvailableMemory"`
	ProcessorModel         string  `json:"ProcessorModel"`
	PhysicalCPUCount       int     `json:"PhysicalCPUCount"`
	CoresPerCPU            int     `json:"CoresPerCPU"`
	LogicalProcessorCount  int     `json:"LogicalProcessorCount"`
	CPUUtilization         float64 `json:"CpuUtilization"`
}

// Address returns the name to use when opening a remote session to the host.
func (h VMHost) Address() string {
	if h.FQDN != "" {
		return h.FQDN
	}
	return h.Name
}

// Cluster is a host cluster.
type Cluster struct {
	Name                string   `json:"Name"`
	Nodes               []string `json:"Nodes"`
	ClusterReserve      int      `json:"ClusterReserve"`
	ClusterReserveState string   `json:"ClusterReserveState"`
	SharedVolumeCount   int      `json:"SharedVolumeCount"`
}

// SharedVolume is a cluster shared volume as seen from a cluster node.
// Capacity and FreeSpace are in bytes.
type SharedVolume struct {
	Name      string `json:"Name"`
	Path      string `json:"Path"`
	Capacity  int64  `json:"Capacity"`
	FreeSpace int64  `json:"FreeSpace"`
}

// VM is a virtual machine. Memory is in MB.
type VM struct {
	Name                 string `json:"Name"`
	ID                   string `json:"VMId"`
	HostName             string `json:"HostName"`
	Status               string `json:"Status"`
	CPUCount             int    `json:"CPUCount"`
	Memory               int64  `json:"Memory"`
	DynamicMemoryEnabled bool   `json:"DynamicMemoryEnabled"`
	Generation           int    `json:"Generation"`
	OperatingSystem      string `json:"OperatingSystem"`
	Description          string `json:"Description"`

	// Integration services
	TimeSyncEnabled  bool `json:"TimeSynchronizationEnabled"`
	HeartbeatEnabled bool `json:"HeartbeatEnabled"`
	BackupEnabled    bool `json:"BackupEnabled"`
	DataExchEnabled  bool `json:"DataExchangeEnabled"`
	ShutdownEnabled  bool `json:"OperatingSystemShutdownEnabled"`
}

// VirtualDiskDrive is a disk drive attached to a VM and the virtual hard disk behind it.
// MaximumSize and Size are in bytes.
type VirtualDiskDrive struct {
	Name        string `json:"Name"`
	BusType     string `json:"BusType"`
	Bus         int    `json:"Bus"`
	Lun         int    `json:"Lun"`
	Path        string `json:"Path"`
	VHDType     string `json:"VHDType"`
	VHDFormat   string `json:"VHDFormat"`
	MaximumSize int64  `json:"MaximumSize"`
	Size        int64  `json:"Size"`
}

// VirtualNetworkAdapter is a VM network adapter. VLanID is null when no VLAN is set.
type VirtualNetworkAdapter struct {
	Name           string   `json:"Name"`
	MACAddress     string   `json:"MACAddress"`
	MACAddressType string   `json:"MACAddressType"`
	VMNetwork      string   `json:"VMNetwork"`
	VLanEnabled    bool     `json:"VLanEnabled"`
	VLanID         *int     `json:"VLanID"`
	IPv4Addresses  []string `json:"IPv4Addresses"`
	IPv6Addresses  []string `json:"IPv6Addresses"`
}

// Checkpoint is a VM checkpoint. AddedTime is ISO 8601.
type Checkpoint struct {
	Name             string `json:"Name"`
	CheckpointID     string `json:"CheckpointID"`
	ParentCheckpoint string `json:"ParentCheckpoint"`
	AddedTime        string `json:"AddedTime"`
}

// HostNetworkAdapter is a physical adapter of a host as VMM sees it.
type HostNetworkAdapter struct {
	Name            string   `json:"Name"`
	MacAddress      string   `json:"MacAddress"`
	ConnectionName  string   `json:"ConnectionName"`
	MaxBandwidth    int64    `json:"MaxBandwidth"`
	VirtualSwitch   string   `json:"VirtualSwitch"`
	LogicalNetworks []string `json:"LogicalNetworks"`
}

// VirtualSwitch is a host virtual switch.
type VirtualSwitch struct {
	Name            string   `json:"Name"`
	SwitchType      string   `json:"SwitchType"`
	BoundAdapters   []string `json:"BoundAdapters"`
	LogicalNetworks []string `json:"LogicalNetworks"`
}
