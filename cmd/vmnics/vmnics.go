package vmnics

import (
	"strconv"

	"github.com/brian1917/vmmtool/utils"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/spf13/cobra"
)

var vmName, outputFileName string

func init() {
	VMNICsCmd.Flags().StringVar(&vmName, "vm", "", "name of the virtual machine. required.")
	VMNICsCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	VMNICsCmd.MarkFlagRequired("vm")
	VMNICsCmd.Flags().SortFlags = false
}

// VMNICsCmd reports the network adapters of a VM
var VMNICsCmd = &cobra.Command{
	Use:   "vm-nics",
	Short: "Report the network adapters of a virtual machine.",
	Long: `
Report the network adapters of a virtual machine with VM network, VLAN, and IP addresses.

vlan_id is blank when no VLAN is set. Multiple addresses are separated by semicolons.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		vmNICs()
	},
}

func vmNICs() {
	utils.LogStartCommand("vm-nics")

	s := utils.ConnectServer()
	defer s.Close()

	vm, a, err := s.GetVM(vmName)
	utils.LogAPIResp("GetVM", a)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	nics, a, err := s.GetVirtualNetworkAdapters(vm.Name)
	utils.LogAPIResp("GetVirtualNetworkAdapters", a)
	if err != nil {
		utils.LogError(err.Error())
	}

	utils.WriteRecords(nicRows(vm, nics), "vm-nics", outputFileName)
	utils.LogEndCommand("vm-nics")
}

func nicRows(vm vmmapi.VM, nics []vmmapi.VirtualNetworkAdapter) [][]string {
	data := [][]string{{"vm_name", "adapter_name", "mac_address", "mac_address_type", "vm_network", "vlan_enabled", "vlan_id", "ipv4_addresses", "ipv6_addresses"}}
	for _, n := range nics {
		data = append(data, []string{
			vm.Name,
			n.Name,
			n.MACAddress,
			n.MACAddressType,
			n.VMNetwork,
			strconv.FormatBool(n.VLanEnabled),
			utils.IntPtrToStr(n.VLanID),
			utils.JoinList(n.IPv4Addresses),
			utils.JoinList(n.IPv6Addresses),
		})
	}
	return data
}
