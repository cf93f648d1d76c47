package nicstatus

import (
	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/utils"
	"github.com/spf13/cobra"
)

var targets utils.Targets
var outputFileName string

func init() {
	targets.AddFlags(NICStatusCmd)
	NICStatusCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	NICStatusCmd.Flags().SortFlags = false
}

// NICStatusCmd joins adapter state with LLDP neighbors
var NICStatusCmd = &cobra.Command{
	Use:   "host-nic-status",
	Short: "Report host adapter status with the switch port each one connects to.",
	Long: `
Report each physical host adapter with its link status and, when LLDP data is available, the switch and port it connects to.

Adapters and LLDP neighbors are matched by MAC address. When the LLDP capture returns nothing the switch columns are left blank and a warning is logged.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := targets.Validate(); err != nil {
			utils.LogError(err.Error())
		}
		nicStatus()
	},
}

func nicStatus() {
	utils.LogStartCommand("host-nic-status")

	s := utils.ConnectServer()
	defer s.Close()

	hosts, err := utils.ResolveHosts(s, targets)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	data := [][]string{{"host_name", "adapter_name", "mac_address", "status", "link_speed", "switch_name", "port_id", "vlan_id"}}
	utils.EachHost(utils.HostSessions(s), hosts, func(h *hostapi.Host) error {
		rows, err := statusRows(h)
		data = append(data, rows...)
		return err
	})

	utils.WriteRecords(data, "host-nic-status", outputFileName)
	utils.LogEndCommand("host-nic-status")
}

func statusRows(h *hostapi.Host) ([][]string, error) {
	nics, a, err := h.GetNetAdapters()
	utils.LogAPIResp("GetNetAdapters", a)
	if err != nil {
		return nil, err
	}

	neighbors, a, err := h.GetLLDPNeighbors()
	utils.LogAPIResp("GetLLDPNeighbors", a)
	if err != nil {
		if !hostapi.IsRemoteCommand(err) {
			return nil, err
		}
		utils.LogWarning(err.Error(), true)
	}

	return joinByMAC(h.Name, nics, neighbors), nil
}

// joinByMAC returns one row per adapter with the LLDP neighbor seen on the
// same MAC address, if any.
func joinByMAC(hostName string, nics []hostapi.NetAdapter, neighbors []hostapi.LLDPNeighbor) [][]string {
	byMAC := make(map[string]hostapi.LLDPNeighbor)
	for _, n := range neighbors {
		if mac := hostapi.NormalizeMAC(n.MacAddress); mac != "" {
			byMAC[mac] = n
		}
	}

	rows := [][]string{}
	for _, nic := range nics {
		mac := hostapi.NormalizeMAC(nic.MacAddress)
		n := byMAC[mac]
		rows = append(rows, []string{hostName, nic.Name, mac, nic.Status, nic.LinkSpeed, n.SwitchName, n.PortID, n.VlanID})
	}
	return rows
}
