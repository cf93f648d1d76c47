package hostvswitch

import (
	"github.com/brian1917/vmmtool/utils"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/spf13/cobra"
)

var targets utils.Targets
var outputFileName string

func init() {
	targets.AddFlags(HostVSwitchCmd)
	HostVSwitchCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	HostVSwitchCmd.Flags().SortFlags = false
}

// HostVSwitchCmd reports host virtual switches
var HostVSwitchCmd = &cobra.Command{
	Use:   "host-vswitch",
	Short: "Report virtual switches of hosts.",
	Long: `
Report the virtual switches of hosts with their bound adapters and logical networks.

switch_type is Logical for switches deployed from a VMM logical switch and Standard otherwise.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := targets.Validate(); err != nil {
			utils.LogError(err.Error())
		}
		hostVSwitch()
	},
}

func hostVSwitch() {
	utils.LogStartCommand("host-vswitch")

	s := utils.ConnectServer()
	defer s.Close()

	hosts, err := utils.ResolveHosts(s, targets)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	data := [][]string{{"host_name", "switch_name", "switch_type", "bound_adapters", "logical_networks"}}
	for _, h := range hosts {
		switches, a, err := s.GetVirtualSwitches(h.Name)
		utils.LogAPIResp("GetVirtualSwitches", a)
		if err != nil {
			utils.LogError(err.Error())
		}
		data = append(data, switchRows(h, switches)...)
	}

	utils.WriteRecords(data, "host-vswitch", outputFileName)
	utils.LogEndCommand("host-vswitch")
}

func switchRows(h vmmapi.VMHost, switches []vmmapi.VirtualSwitch) [][]string {
	rows := [][]string{}
	for _, sw := range switches {
		rows = append(rows, []string{h.Name, sw.Name, sw.SwitchType, utils.JoinList(sw.BoundAdapters), utils.JoinList(sw.LogicalNetworks)})
	}
	return rows
}
