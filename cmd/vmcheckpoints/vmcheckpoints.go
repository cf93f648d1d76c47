package vmcheckpoints

import (
	"github.com/brian1917/vmmtool/utils"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/spf13/cobra"
)

var vmName, outputFileName string

func init() {
	VMCheckpointsCmd.Flags().StringVar(&vmName, "vm", "", "name of the virtual machine. required.")
	VMCheckpointsCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	VMCheckpointsCmd.MarkFlagRequired("vm")
	VMCheckpointsCmd.Flags().SortFlags = false
}

// VMCheckpointsCmd lists VM checkpoints
var VMCheckpointsCmd = &cobra.Command{
	Use:   "vm-checkpoints",
	Short: "List the checkpoints of a virtual machine.",
	Run: func(cmd *cobra.Command, args []string) {
		vmCheckpoints()
	},
}

func vmCheckpoints() {
	utils.LogStartCommand("vm-checkpoints")

	s := utils.ConnectServer()
	defer s.Close()

	data, err := report(s, vmName)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	utils.WriteRecords(data, "vm-checkpoints", outputFileName)
	utils.LogEndCommand("vm-checkpoints")
}

func report(s *vmmapi.Server, name string) ([][]string, error) {
	vm, a, err := s.GetVM(name)
	utils.LogAPIResp("GetVM", a)
	if err != nil {
		return nil, err
	}

	checkpoints, a, err := s.GetCheckpoints(vm.Name)
	utils.LogAPIResp("GetCheckpoints", a)
	if err != nil {
		return nil, err
	}

	data := [][]string{{"vm_name", "checkpoint_name", "checkpoint_id", "parent_checkpoint", "added_time"}}
	for _, c := range checkpoints {
		data = append(data, []string{vm.Name, c.Name, c.CheckpointID, c.ParentCheckpoint, c.AddedTime})
	}
	return data, nil
}
