package hostadapters

import (
	"strconv"

	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/utils"
	"github.com/spf13/cobra"
)

var targets utils.Targets
var outputFileName string

func init() {
	targets.AddFlags(HostAdaptersCmd)
	HostAdaptersCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	HostAdaptersCmd.Flags().SortFlags = false
}

// HostAdaptersCmd reports physical adapters from the host
var HostAdaptersCmd = &cobra.Command{
	Use:   "host-adapters",
	Short: "Report physical network adapters as the host reports them.",
	Long: `
Report the physical network adapters of hosts with link state, speed, driver version, and MTU.

A session is opened to each host. Hosts that cannot be reached are logged and skipped.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := targets.Validate(); err != nil {
			utils.LogError(err.Error())
		}
		hostAdapters()
	},
}

var header = []string{"host_name", "adapter_name", "interface_description", "status", "link_speed", "mac_address", "driver_version", "mtu"}

func hostAdapters() {
	utils.LogStartCommand("host-adapters")

	s := utils.ConnectServer()
	defer s.Close()

	hosts, err := utils.ResolveHosts(s, targets)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	data := [][]string{header}
	utils.EachHost(utils.HostSessions(s), hosts, func(h *hostapi.Host) error {
		rows, err := adapterRows(h)
		data = append(data, rows...)
		return err
	})

	utils.WriteRecords(data, "host-adapters", outputFileName)
	utils.LogEndCommand("host-adapters")
}

func adapterRows(h *hostapi.Host) ([][]string, error) {
	nics, a, err := h.GetNetAdapters()
	utils.LogAPIResp("GetNetAdapters", a)
	if err != nil {
		return nil, err
	}
	rows := [][]string{}
	for _, n := range nics {
		rows = append(rows, []string{h.Name, n.Name, n.InterfaceDescription, n.Status, n.LinkSpeed, n.MacAddress, n.DriverVersion, strconv.Itoa(n.MTU)})
	}
	return rows, nil
}
