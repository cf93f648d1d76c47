package hosthba

import (
	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/utils"
	"github.com/spf13/cobra"
)

var targets utils.Targets
var outputFileName string

func init() {
	targets.AddFlags(HostHBACmd)
	HostHBACmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	HostHBACmd.Flags().SortFlags = false
}

// HostHBACmd reports fibre channel HBA ports
var HostHBACmd = &cobra.Command{
	Use:   "host-hba",
	Short: "Report fibre channel HBA ports and their WWNs.",
	Long: `
Report the fibre channel initiator ports of hosts with node and port WWNs. WWNs are lower case with colon separators, the format most SAN zoning tools accept.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := targets.Validate(); err != nil {
			utils.LogError(err.Error())
		}
		hostHBA()
	},
}

func hostHBA() {
	utils.LogStartCommand("host-hba")

	s := utils.ConnectServer()
	defer s.Close()

	hosts, err := utils.ResolveHosts(s, targets)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	data := [][]string{{"host_name", "instance_name", "node_wwn", "port_wwn", "connection_type", "operational_status"}}
	utils.EachHost(utils.HostSessions(s), hosts, func(h *hostapi.Host) error {
		ports, a, err := h.GetInitiatorPorts()
		utils.LogAPIResp("GetInitiatorPorts", a)
		if err != nil {
			return err
		}
		if len(ports) == 0 {
			utils.LogInfo(h.Name+" has no fibre channel ports", true)
		}
		data = append(data, portRows(h.Name, ports)...)
		return nil
	})

	utils.WriteRecords(data, "host-hba", outputFileName)
	utils.LogEndCommand("host-hba")
}

func portRows(hostName string, ports []hostapi.InitiatorPort) [][]string {
	rows := [][]string{}
	for _, p := range ports {
		rows = append(rows, []string{hostName, p.InstanceName, hostapi.FormatWWN(p.NodeAddress), hostapi.FormatWWN(p.PortAddress), p.ConnectionType, p.OperationalStatus})
	}
	return rows
}
