package hostvmmnics

import (
	"strconv"

	"github.com/brian1917/vmmtool/utils"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/spf13/cobra"
)

var targets utils.Targets
var outputFileName string

func init() {
	targets.AddFlags(HostVMMNICsCmd)
	HostVMMNICsCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	HostVMMNICsCmd.Flags().SortFlags = false
}

// HostVMMNICsCmd reports host adapters from VMM
var HostVMMNICsCmd = &cobra.Command{
	Use:   "host-vmm-nics",
	Short: "Report physical host adapters as VMM sees them.",
	Long: `
Report the physical network adapters of hosts as VMM sees them, including the virtual switch each is bound to and its logical networks.

Logical networks are separated by semicolons. Use host-adapters to see the adapters as the host reports them.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := targets.Validate(); err != nil {
			utils.LogError(err.Error())
		}
		hostVMMNICs()
	},
}

var header = []string{"host_name", "adapter_name", "mac_address", "connection_name", "max_bandwidth_mbps", "virtual_switch", "logical_networks"}

func hostVMMNICs() {
	utils.LogStartCommand("host-vmm-nics")

	s := utils.ConnectServer()
	defer s.Close()

	hosts, err := utils.ResolveHosts(s, targets)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	data, err := report(s, hosts)
	if err != nil {
		utils.LogError(err.Error())
	}

	utils.WriteRecords(data, "host-vmm-nics", outputFileName)
	utils.LogEndCommand("host-vmm-nics")
}

func report(s *vmmapi.Server, hosts []vmmapi.VMHost) ([][]string, error) {
	data := [][]string{header}
	for _, h := range hosts {
		nics, a, err := s.GetHostNetworkAdapters(h.Name)
		utils.LogAPIResp("GetHostNetworkAdapters", a)
		if err != nil {
			return nil, err
		}
		for _, n := range nics {
			data = append(data, []string{h.Name, n.Name, n.MacAddress, n.ConnectionName, strconv.FormatInt(n.MaxBandwidth, 10), n.VirtualSwitch, utils.JoinList(n.LogicalNetworks)})
		}
	}
	return data, nil
}
