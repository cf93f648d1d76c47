package hostips

import (
	"strconv"

	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/utils"
	"github.com/spf13/cobra"
)

var targets utils.Targets
var ipv4Only bool
var outputFileName string

func init() {
	targets.AddFlags(HostIPsCmd)
	HostIPsCmd.Flags().BoolVar(&ipv4Only, "ipv4-only", false, "only include ipv4 addresses.")
	HostIPsCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	HostIPsCmd.Flags().SortFlags = false
}

// HostIPsCmd reports IP addresses of hosts
var HostIPsCmd = &cobra.Command{
	Use:   "host-ips",
	Short: "Report IP addresses configured on hosts.",
	Long: `
Report the IP addresses configured on hosts, including host virtual adapters. Loopback addresses are skipped.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := targets.Validate(); err != nil {
			utils.LogError(err.Error())
		}
		hostIPs()
	},
}

func hostIPs() {
	utils.LogStartCommand("host-ips")

	s := utils.ConnectServer()
	defer s.Close()

	hosts, err := utils.ResolveHosts(s, targets)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	data := [][]string{{"host_name", "interface_alias", "ip_address", "prefix_length", "address_family", "prefix_origin"}}
	utils.EachHost(utils.HostSessions(s), hosts, func(h *hostapi.Host) error {
		ips, a, err := h.GetNetIPAddresses()
		utils.LogAPIResp("GetNetIPAddresses", a)
		if err != nil {
			return err
		}
		data = append(data, ipRows(h.Name, ips, ipv4Only)...)
		return nil
	})

	utils.WriteRecords(data, "host-ips", outputFileName)
	utils.LogEndCommand("host-ips")
}

func ipRows(hostName string, ips []hostapi.NetIPAddress, ipv4Only bool) [][]string {
	rows := [][]string{}
	for _, ip := range ips {
		if ipv4Only && ip.AddressFamily != "IPv4" {
			continue
		}
		rows = append(rows, []string{hostName, ip.InterfaceAlias, ip.IPAddress, strconv.Itoa(ip.PrefixLength), ip.AddressFamily, ip.PrefixOrigin})
	}
	return rows
}
