package hostapi

// OperatingSystem is Win32_OperatingSystem. Memory values are in KB and
// dates are ISO 8601.
type OperatingSystem struct {
	Caption                string `json:"Caption"`
	Version                string `json:"Version"`
	BuildNumber            string `json:"BuildNumber"`
	InstallDate            string `json:"InstallDate"`
	LastBootUpTime         string `json:"LastBootUpTime"`
	TotalVisibleMemorySize int64  `json:"TotalVisibleMemorySize"`
	FreePhysicalMemory     int64  `json:"FreePhysicalMemory"`
}

// NetAdapter is a physical network adapter.
type NetAdapter struct {
	Name                 string `json:"Name"`
	InterfaceDescription string `json:"InterfaceDescription"`
	Status               string `json:"Status"`
	LinkSpeed            string `json:"LinkSpeed"`
	MacAddress           string `json:"MacAddress"`
	DriverVersion        string `json:"DriverVersion"`
	MTU                  int    `json:"MTU"`
}

// NetIPAddress is an IP address bound to an interface.
type NetIPAddress struct {
	InterfaceAlias string `json:"InterfaceAlias"`
	IPAddress      string `json:"IPAddress"`
	PrefixLength   int    `json:"PrefixLength"`
	AddressFamily  string `json:"AddressFamily"`
	PrefixOrigin   string `json:"PrefixOrigin"`
}

// LLDPNeighbor is the switch port seen on a local adapter.
type LLDPNeighbor struct {
	AdapterName       string `json:"AdapterName"`
	MacAddress        string `json:"MacAddress"`
	SwitchName        string `json:"SwitchName"`
	ChassisID         string `json:"ChassisId"`
	PortID            string `json:"PortId"`
	PortDescription   string `json:"PortDescription"`
	VlanID            string `json:"VlanId"`
	ManagementAddress string `json:"ManagementAddress"`
}

// InitiatorPort is a storage initiator port. NodeAddress and PortAddress are
// the raw hex WWNs for fibre channel ports.
type InitiatorPort struct {
	InstanceName      string `json:"InstanceName"`
	NodeAddress       string `json:"NodeAddress"`
	PortAddress       string `json:"PortAddress"`
	ConnectionType    string `json:"ConnectionType"`
	OperationalStatus string `json:"OperationalStatus"`
}

// MPIOSettings are the MPIO timers and the MSDSM default load balance policy.
type MPIOSettings struct {
	PathVerificationState     string `json:"PathVerificationState"`
	PathVerificationPeriod    int    `json:"PathVerificationPeriod"`
	PDORemovePeriod           int    `json:"PDORemovePeriod"`
	RetryCount                int    `json:"RetryCount"`
	RetryInterval             int    `json:"RetryInterval"`
	UseCustomPathRecoveryTime string `json:"UseCustomPathRecoveryTime"`
	CustomPathRecoveryTime    int    `json:"CustomPathRecoveryTime"`
	DiskTimeoutValue          int    `json:"DiskTimeoutValue"`
	LoadBalancePolicy         string `json:"LoadBalancePolicy"`
}

// Disk is a disk as the host storage stack sees it. Size is in bytes.
type Disk struct {
	Number            int    `json:"Number"`
	FriendlyName      string `json:"FriendlyName"`
	SerialNumber      string `json:"SerialNumber"`
	Size              int64  `json:"Size"`
	PartitionStyle    string `json:"PartitionStyle"`
	OperationalStatus string `json:"OperationalStatus"`
	HealthStatus      string `json:"HealthStatus"`
	BusType           string `json:"BusType"`
	IsClustered       bool   `json:"IsClustered"`
	IsOffline         bool   `json:"IsOffline"`
}

// Hotfix is an installed update. InstalledOn is yyyy-MM-dd or empty.
type Hotfix struct {
	HotFixID    string `json:"HotFixID"`
	Description string `json:"Description"`
	InstalledBy string `json:"InstalledBy"`
	InstalledOn string `json:"InstalledOn"`
}

// ClusterNode is a failover cluster node.
type ClusterNode struct {
	Name          string `json:"Name"`
	State         string `json:"State"`
	NodeWeight    int    `json:"NodeWeight"`
	DynamicWeight int    `json:"DynamicWeight"`
}

// Volume is a formatted volume. Size is in bytes.
type Volume struct {
	FileSystemLabel string `json:"FileSystemLabel"`
	FileSystem      string `json:"FileSystem"`
	Size            int64  `json:"Size"`
}

// SharedVolume is a cluster shared volume created on the host.
type SharedVolume struct {
	Name      string `json:"Name"`
	Path      string `json:"Path"`
	State     string `json:"State"`
	OwnerNode string `json:"OwnerNode"`
}
