package vmtimesync

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brian1917/vmmtool/utils"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/spf13/cobra"
)

var vmName, state, outputFileName string

func init() {
	VMTimeSyncCmd.Flags().StringVar(&vmName, "vm", "", "name of the virtual machine. required.")
	VMTimeSyncCmd.Flags().StringVar(&state, "state", "", "requested state of time synchronization. must be enabled or disabled.")
	VMTimeSyncCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	VMTimeSyncCmd.MarkFlagRequired("vm")
	VMTimeSyncCmd.MarkFlagRequired("state")
	VMTimeSyncCmd.Flags().SortFlags = false
}

// VMTimeSyncCmd enables or disables time synchronization on a VM
var VMTimeSyncCmd = &cobra.Command{
	Use:   "vm-timesync",
	Short: "Enable or disable the time synchronization integration service of a virtual machine.",
	Long: `
Enable or disable the time synchronization integration service of a virtual machine.

Domain controllers and other VMs that keep their own time source usually have time synchronization disabled.

Nothing is changed when the VM is already in the requested state.

Use the --update-vmm command to make the change with a user prompt confirmation.

Use --update-vmm and --no-prompt to make the change with no prompts.`,
	Run: func(cmd *cobra.Command, args []string) {
		enabled, err := parseState(state)
		if err != nil {
			utils.LogError(err.Error())
		}
		vmTimeSync(enabled)
	},
}

func parseState(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "enabled", "enable":
		return true, nil
	case "disabled", "disable":
		return false, nil
	}
	return false, fmt.Errorf("invalid state %q - must be enabled or disabled", s)
}

func stateName(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

func vmTimeSync(enabled bool) {
	utils.LogStartCommand("vm-timesync")

	s := utils.ConnectServer()
	defer s.Close()

	data, err := setTimeSync(s, vmName, enabled, utils.ConfirmUpdate)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}
	if data == nil {
		utils.LogEndCommand("vm-timesync")
		return
	}

	utils.WriteRecords(data, "vm-timesync", outputFileName)
	utils.LogEndCommand("vm-timesync")
}

// setTimeSync reads the VM and applies the requested state when confirm
// allows it. It returns nil data when nothing was applied.
func setTimeSync(s *vmmapi.Server, name string, enabled bool, confirm func(commandName, change string) bool) ([][]string, error) {
	vm, a, err := s.GetVM(name)
	utils.LogAPIResp("GetVM", a)
	if err != nil {
		return nil, err
	}

	if vm.TimeSyncEnabled == enabled {
		utils.LogInfo(fmt.Sprintf("time synchronization on %s is already %s. no change.", vm.Name, stateName(enabled)), true)
		return nil, nil
	}

	if !confirm("vm-timesync", fmt.Sprintf("set time synchronization on %s from %s to %s", vm.Name, stateName(vm.TimeSyncEnabled), stateName(enabled))) {
		return nil, nil
	}

	after, changed, a, err := s.SetTimeSync(vm, enabled)
	utils.LogAPIResp("SetTimeSync", a)
	if err != nil {
		return nil, err
	}
	utils.LogInfo(fmt.Sprintf("time synchronization on %s is now %s", after.Name, stateName(after.TimeSyncEnabled)), true)

	return [][]string{
		{"vm_name", "time_sync_before", "time_sync_after", "changed"},
		{vm.Name, strconv.FormatBool(vm.TimeSyncEnabled), strconv.FormatBool(after.TimeSyncEnabled), strconv.FormatBool(changed)},
	}, nil
}
