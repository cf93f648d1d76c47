package vmintegration

import (
	"strconv"

	"github.com/brian1917/vmmtool/utils"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/spf13/cobra"
)

var vmName, outputFileName string

func init() {
	VMIntegrationCmd.Flags().StringVar(&vmName, "vm", "", "name of the virtual machine. required.")
	VMIntegrationCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	VMIntegrationCmd.MarkFlagRequired("vm")
	VMIntegrationCmd.Flags().SortFlags = false
}

// VMIntegrationCmd reports integration services of a VM
var VMIntegrationCmd = &cobra.Command{
	Use:   "vm-integration",
	Short: "Report which integration services are enabled on a virtual machine.",
	Long: `
Report which integration services are enabled on a virtual machine. Each value is true or false.

Use vm-timesync to change the time synchronization service.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		vmIntegration()
	},
}

func vmIntegration() {
	utils.LogStartCommand("vm-integration")

	s := utils.ConnectServer()
	defer s.Close()

	vm, a, err := s.GetVM(vmName)
	utils.LogAPIResp("GetVM", a)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	utils.WriteRecords(integrationRows(vm), "vm-integration", outputFileName)
	utils.LogEndCommand("vm-integration")
}

func integrationRows(vm vmmapi.VM) [][]string {
	return [][]string{
		{"vm_name", "time_sync", "heartbeat", "backup", "data_exchange", "shutdown"},
		{vm.Name,
			strconv.FormatBool(vm.TimeSyncEnabled),
			strconv.FormatBool(vm.HeartbeatEnabled),
			strconv.FormatBool(vm.BackupEnabled),
			strconv.FormatBool(vm.DataExchEnabled),
			strconv.FormatBool(vm.ShutdownEnabled)},
	}
}
