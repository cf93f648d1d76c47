package hostdisks

import (
	"strconv"

	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/utils"
	"github.com/spf13/cobra"
)

var targets utils.Targets
var unclusteredOnly bool
var outputFileName string

func init() {
	targets.AddFlags(HostDisksCmd)
	HostDisksCmd.Flags().BoolVar(&unclusteredOnly, "unclustered-only", false, "only include disks that are not clustered. useful to find the serial number for csv-provision.")
	HostDisksCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	HostDisksCmd.Flags().SortFlags = false
}

// HostDisksCmd reports disks of hosts
var HostDisksCmd = &cobra.Command{
	Use:   "host-disks",
	Short: "Report the disks seen by hosts with serial numbers and health.",
	Long: `
Report the disks seen by hosts with serial number, size in GB (2^30 bytes), partition style, and health.

The serial number is what csv-provision uses to find a newly presented LUN.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := targets.Validate(); err != nil {
			utils.LogError(err.Error())
		}
		hostDisks()
	},
}

func hostDisks() {
	utils.LogStartCommand("host-disks")

	s := utils.ConnectServer()
	defer s.Close()

	hosts, err := utils.ResolveHosts(s, targets)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	data := [][]string{{"host_name", "disk_number", "friendly_name", "serial_number", "size_gb", "partition_style", "operational_status", "health_status", "bus_type", "is_clustered"}}
	utils.EachHost(utils.HostSessions(s), hosts, func(h *hostapi.Host) error {
		disks, a, err := h.GetDisks()
		utils.LogAPIResp("GetDisks", a)
		if err != nil {
			return err
		}
		data = append(data, diskRows(h.Name, disks, unclusteredOnly)...)
		return nil
	})

	utils.WriteRecords(data, "host-disks", outputFileName)
	utils.LogEndCommand("host-disks")
}

func diskRows(hostName string, disks []hostapi.Disk, unclusteredOnly bool) [][]string {
	rows := [][]string{}
	for _, d := range disks {
		if unclusteredOnly && d.IsClustered {
			continue
		}
		rows = append(rows, []string{
			hostName,
			strconv.Itoa(d.Number),
			d.FriendlyName,
			d.SerialNumber,
			utils.BytesToGB(d.Size),
			d.PartitionStyle,
			d.OperationalStatus,
			d.HealthStatus,
			d.BusType,
			strconv.FormatBool(d.IsClustered),
		})
	}
	return rows
}
