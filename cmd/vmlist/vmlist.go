package vmlist

import (
	"strconv"

	"github.com/brian1917/vmmtool/utils"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/spf13/cobra"
)

var targets utils.Targets
var outputFileName string

func init() {
	targets.AddFlags(VMListCmd)
	VMListCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	VMListCmd.Flags().SortFlags = false
}

// VMListCmd lists the virtual machines on hosts
var VMListCmd = &cobra.Command{
	Use:   "vm-list",
	Short: "List virtual machines placed on hosts.",
	Long: `
List the virtual machines placed on a host, every node of a cluster, or the hosts in a csv file.

memory_gb is the startup memory in GB.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := targets.Validate(); err != nil {
			utils.LogError(err.Error())
		}
		vmList()
	},
}

func vmList() {
	utils.LogStartCommand("vm-list")

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

	utils.WriteRecords(data, "vm-list", outputFileName)
	utils.LogEndCommand("vm-list")
}

func report(s *vmmapi.Server, hosts []vmmapi.VMHost) ([][]string, error) {
	data := [][]string{{"vm_name", "host_name", "status", "cpu_count", "memory_gb", "dynamic_memory", "generation", "operating_system"}}
	for _, h := range hosts {
		vms, a, err := s.GetVMs(h.Name)
		utils.LogAPIResp("GetVMs", a)
		if err != nil {
			return nil, err
		}
		utils.LogInfo(utils.LogBlankValue(h.Name)+" has "+strconv.Itoa(len(vms))+" vms", false)
		for _, vm := range vms {
			data = append(data, []string{
				vm.Name,
				vm.HostName,
				vm.Status,
				strconv.Itoa(vm.CPUCount),
				utils.MBToGB(vm.Memory),
				strconv.FormatBool(vm.DynamicMemoryEnabled),
				strconv.Itoa(vm.Generation),
				vm.OperatingSystem,
			})
		}
	}
	return data, nil
}
