package vmdisks

import (
	"strconv"

	"github.com/brian1917/vmmtool/utils"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/spf13/cobra"
)

var vmName, outputFileName string

func init() {
	VMDisksCmd.Flags().StringVar(&vmName, "vm", "", "name of the virtual machine. required.")
	VMDisksCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	VMDisksCmd.MarkFlagRequired("vm")
	VMDisksCmd.Flags().SortFlags = false
}

// VMDisksCmd reports the disks of a VM
var VMDisksCmd = &cobra.Command{
	Use:   "vm-disks",
	Short: "Report the virtual disks of a virtual machine.",
	Long: `
Report the disk drives of a virtual machine and the virtual hard disk behind each one.

max_size_gb is the configured maximum size and current_size_gb is the size of the file on disk. Both are in GB (2^30 bytes).

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		vmDisks()
	},
}

func vmDisks() {
	utils.LogStartCommand("vm-disks")

	s := utils.ConnectServer()
	defer s.Close()

	data, err := report(s, vmName)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	utils.WriteRecords(data, "vm-disks", outputFileName)
	utils.LogEndCommand("vm-disks")
}

func report(s *vmmapi.Server, name string) ([][]string, error) {
	vm, a, err := s.GetVM(name)
	utils.LogAPIResp("GetVM", a)
	if err != nil {
		return nil, err
	}

	disks, a, err := s.GetVirtualDiskDrives(vm.Name)
	utils.LogAPIResp("GetVirtualDiskDrives", a)
	if err != nil {
		return nil, err
	}

	data := [][]string{{"vm_name", "disk_name", "path", "bus_type", "bus", "lun", "vhd_type", "vhd_format", "max_size_gb", "current_size_gb"}}
	for _, d := range disks {
		data = append(data, []string{
			vm.Name,
			d.Name,
			d.Path,
			d.BusType,
			strconv.Itoa(d.Bus),
			strconv.Itoa(d.Lun),
			d.VHDType,
			d.VHDFormat,
			utils.BytesToGB(d.MaximumSize),
			utils.BytesToGB(d.Size),
		})
	}
	return data, nil
}
