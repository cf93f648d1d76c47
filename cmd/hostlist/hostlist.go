package hostlist

import (
	"github.com/brian1917/vmmtool/utils"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/spf13/cobra"
)

var cluster, outputFileName string

func init() {
	HostListCmd.Flags().StringVar(&cluster, "cluster", "", "only list the nodes of this cluster.")
	HostListCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	HostListCmd.Flags().SortFlags = false
}

// HostListCmd lists the hosts managed by VMM
var HostListCmd = &cobra.Command{
	Use:   "host-list",
	Short: "List the hosts managed by VMM and their state.",
	Long: `
List the hosts managed by VMM and their state.

All hosts are listed unless --cluster is set.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		hostList()
	},
}

var header = []string{"host_name", "fqdn", "cluster_name", "overall_state", "communication_state", "operating_system", "virtualization_platform"}

func hostList() {

	// Log start of the command
	utils.LogStartCommand("host-list")

	s := utils.ConnectServer()
	defer s.Close()

	hosts, err := getHosts(s, cluster)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	utils.WriteRecords(hostListRows(hosts), "host-list", outputFileName)
	utils.LogEndCommand("host-list")
}

func getHosts(s *vmmapi.Server, cluster string) ([]vmmapi.VMHost, error) {
	if cluster != "" {
		return utils.ResolveHosts(s, utils.Targets{Cluster: cluster})
	}
	hosts, a, err := s.GetVMHosts()
	utils.LogAPIResp("GetVMHosts", a)
	return hosts, err
}

func hostListRows(hosts []vmmapi.VMHost) [][]string {
	data := [][]string{header}
	for _, h := range hosts {
		data = append(data, []string{h.Name, h.FQDN, h.ClusterName, h.OverallState, h.CommunicationState, h.OperatingSystem, h.VirtualizationPlatform})
	}
	return data
}
