package hostos

import (
	"strconv"
	"time"

	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/utils"
	"github.com/spf13/cobra"
)

var targets utils.Targets
var outputFileName string

// now is replaced in tests.
var now = time.Now

func init() {
	targets.AddFlags(HostOSCmd)
	HostOSCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	HostOSCmd.Flags().SortFlags = false
}

// HostOSCmd reports the operating system of hosts
var HostOSCmd = &cobra.Command{
	Use:   "host-os",
	Short: "Report operating system, last boot, and memory of hosts.",
	Long: `
Report the operating system version, install date, last boot, uptime, and physical memory of hosts.

A session is opened to each host. Hosts that cannot be reached are logged and skipped.

Dates are in the host's local time. uptime_days is whole days since the last boot.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := targets.Validate(); err != nil {
			utils.LogError(err.Error())
		}
		hostOS()
	},
}

func hostOS() {
	utils.LogStartCommand("host-os")

	s := utils.ConnectServer()
	defer s.Close()

	hosts, err := utils.ResolveHosts(s, targets)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	data := [][]string{{"host_name", "os_name", "os_version", "build_number", "install_date", "last_boot", "uptime_days", "total_memory_gb", "free_memory_gb"}}
	utils.EachHost(utils.HostSessions(s), hosts, func(h *hostapi.Host) error {
		row, err := osRow(h)
		if err != nil {
			return err
		}
		data = append(data, row)
		return nil
	})

	utils.WriteRecords(data, "host-os", outputFileName)
	utils.LogEndCommand("host-os")
}

func osRow(h *hostapi.Host) ([]string, error) {
	info, a, err := h.GetOperatingSystem()
	utils.LogAPIResp("GetOperatingSystem", a)
	if err != nil {
		return nil, err
	}

	installDate, _ := formatDate(info.InstallDate)
	lastBoot, boot := formatDate(info.LastBootUpTime)
	uptime := ""
	if !boot.IsZero() {
		uptime = strconv.Itoa(int(now().Sub(boot).Hours() / 24))
	}

	return []string{
		h.Name,
		info.Caption,
		info.Version,
		info.BuildNumber,
		installDate,
		lastBoot,
		uptime,
		utils.KBToGB(info.TotalVisibleMemorySize),
		utils.KBToGB(info.FreePhysicalMemory),
	}, nil
}

// formatDate parses an ISO 8601 date from the host. Values that do not parse
// are returned as is with a zero time.
func formatDate(s string) (string, time.Time) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.9999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02 15:04:05"), t
		}
	}
	return s, time.Time{}
}
