package hostmemory

import (
	"github.com/brian1917/vmmtool/utils"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/spf13/cobra"
)

var targets utils.Targets
var outputFileName string

func init() {
	targets.AddFlags(HostMemoryCmd)
	HostMemoryCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	HostMemoryCmd.Flags().SortFlags = false
}

// HostMemoryCmd reports host memory as VMM sees it
var HostMemoryCmd = &cobra.Command{
	Use:   "host-memory",
	Short: "Report total, available, and used memory of hosts.",
	Long: `
Report total, available, and used memory of hosts as VMM reports it.

Memory values are in GB (2^30 bytes). memory_used_pct is rounded to a whole number.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := targets.Validate(); err != nil {
			utils.LogError(err.Error())
		}
		hostMemory()
	},
}

var header = []string{"host_name", "total_memory_gb", "available_memory_gb", "used_memory_gb", "memory_used_pct"}

func hostMemory() {
	utils.LogStartCommand("host-memory")

	s := utils.ConnectServer()
	defer s.Close()

	hosts, err := utils.ResolveHosts(s, targets)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	utils.WriteRecords(memoryRows(hosts), "host-memory", outputFileName)
	utils.LogEndCommand("host-memory")
}

// memoryRows converts VMM's values. Total is in bytes and available is in MB.
func memoryRows(hosts []vmmapi.VMHost) [][]string {
	data := [][]string{header}
	for _, h := range hosts {
		used := h.TotalMemory - h.AvailableMemory*(1<<20)
		if used < 0 {
			used = 0
		}
		data = append(data, []string{
			h.Name,
			utils.BytesToGB(h.TotalMemory),
			utils.MBToGB(h.AvailableMemory),
			utils.BytesToGB(used),
			utils.Percent(float64(used), float64(h.TotalMemory)),
		})
	}
	return data
}
