package hostlldp

import (
	"fmt"

	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/utils"
	"github.com/spf13/cobra"
)

var targets utils.Targets
var outputFileName string

func init() {
	targets.AddFlags(HostLLDPCmd)
	HostLLDPCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	HostLLDPCmd.Flags().SortFlags = false
}

// HostLLDPCmd reports LLDP neighbors of host adapters
var HostLLDPCmd = &cobra.Command{
	Use:   "host-lldp",
	Short: "Report the switch and port connected to each host adapter using LLDP.",
	Long: `
Report the switch and port connected to each host adapter by capturing LLDP frames on the host.

The PSDiscoveryProtocol module must be installed on each host. A capture takes about 30 seconds per host.

A host where the capture returns nothing ends the command. Use host-nic-status to report adapters even when LLDP is not available.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := targets.Validate(); err != nil {
			utils.LogError(err.Error())
		}
		hostLLDP()
	},
}

func hostLLDP() {
	utils.LogStartCommand("host-lldp")

	s := utils.ConnectServer()
	defer s.Close()

	hosts, err := utils.ResolveHosts(s, targets)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	data := [][]string{{"host_name", "adapter_name", "mac_address", "switch_name", "chassis_id", "port_id", "port_description", "vlan_id", "management_address"}}
	for _, vh := range hosts {
		h, err := utils.OpenHost(s, vh)
		if err != nil {
			utils.LogError(fmt.Sprintf("%s - could not open session - %s", vh.Name, err))
		}
		rows, err := lldpRows(h)
		h.Close()
		if err != nil {
			utils.LogError(err.Error())
		}
		data = append(data, rows...)
	}

	utils.WriteRecords(data, "host-lldp", outputFileName)
	utils.LogEndCommand("host-lldp")
}

func lldpRows(h *hostapi.Host) ([][]string, error) {
	neighbors, a, err := h.GetLLDPNeighbors()
	utils.LogAPIResp("GetLLDPNeighbors", a)
	if err != nil {
		return nil, err
	}
	rows := [][]string{}
	for _, n := range neighbors {
		rows = append(rows, []string{h.Name, n.AdapterName, hostapi.NormalizeMAC(n.MacAddress), n.SwitchName, n.ChassisID, n.PortID, n.PortDescription, n.VlanID, n.ManagementAddress})
	}
	return rows, nil
}
