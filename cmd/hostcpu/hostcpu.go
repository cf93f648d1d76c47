package hostcpu

import (
	"strconv"

	"github.com/brian1917/vmmtool/utils"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/spf13/cobra"
)

var targets utils.Targets
var outputFileName string

func init() {
	targets.AddFlags(HostCPUCmd)
	HostCPUCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	HostCPUCmd.Flags().SortFlags = false
}

// HostCPUCmd reports host processors
var HostCPUCmd = &cobra.Command{
	Use:   "host-cpu",
	Short: "Report processor model, counts, and utilization of hosts.",
	Long: `
Report processor model, socket and core counts, and current CPU utilization of hosts as VMM reports them.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := targets.Validate(); err != nil {
			utils.LogError(err.Error())
		}
		hostCPU()
	},
}

func hostCPU() {
	utils.LogStartCommand("host-cpu")

	s := utils.ConnectServer()
	defer s.Close()

	hosts, err := utils.ResolveHosts(s, targets)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	utils.WriteRecords(cpuRows(hosts), "host-cpu", outputFileName)
	utils.LogEndCommand("host-cpu")
}

func cpuRows(hosts []vmmapi.VMHost) [][]string {
	data := [][]string{{"host_name", "processor_model", "physical_cpu_count", "cores_per_cpu", "logical_processor_count", "cpu_utilization_pct"}}
	for _, h := range hosts {
		data = append(data, []string{
			h.Name,
			h.ProcessorModel,
			strconv.Itoa(h.PhysicalCPUCount),
			strconv.Itoa(h.CoresPerCPU),
			strconv.Itoa(h.LogicalProcessorCount),
			utils.FormatPercent(h.CPUUtilization),
		})
	}
	return data
}
