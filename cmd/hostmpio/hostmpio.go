package hostmpio

import (
	"strconv"

	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/utils"
	"github.com/spf13/cobra"
)

var targets utils.Targets
var outputFileName string

func init() {
	targets.AddFlags(HostMPIOCmd)
	HostMPIOCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	HostMPIOCmd.Flags().SortFlags = false
}

// HostMPIOCmd reports MPIO settings of hosts
var HostMPIOCmd = &cobra.Command{
	Use:   "host-mpio",
	Short: "Report MPIO timers and the default load balance policy of hosts.",
	Long: `
Report the MPIO timers and the MSDSM default load balance policy of hosts. Timer values are in seconds.

Use the output to confirm every node of a cluster carries the settings the storage vendor recommends.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := targets.Validate(); err != nil {
			utils.LogError(err.Error())
		}
		hostMPIO()
	},
}

func hostMPIO() {
	utils.LogStartCommand("host-mpio")

	s := utils.ConnectServer()
	defer s.Close()

	hosts, err := utils.ResolveHosts(s, targets)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	data := [][]string{{"host_name", "path_verification_state", "path_verification_period", "pdo_remove_period", "retry_count", "retry_interval", "custom_path_recovery", "custom_path_recovery_time", "disk_timeout", "load_balance_policy"}}
	utils.EachHost(utils.HostSessions(s), hosts, func(h *hostapi.Host) error {
		m, a, err := h.GetMPIOSettings()
		utils.LogAPIResp("GetMPIOSettings", a)
		if err != nil {
			return err
		}
		data = append(data, mpioRow(h.Name, m))
		return nil
	})

	utils.WriteRecords(data, "host-mpio", outputFileName)
	utils.LogEndCommand("host-mpio")
}

func mpioRow(hostName string, m hostapi.MPIOSettings) []string {
	return []string{
		hostName,
		m.PathVerificationState,
		strconv.Itoa(m.PathVerificationPeriod),
		strconv.Itoa(m.PDORemovePeriod),
		strconv.Itoa(m.RetryCount),
		strconv.Itoa(m.RetryInterval),
		m.UseCustomPathRecoveryTime,
		strconv.Itoa(m.CustomPathRecoveryTime),
		strconv.Itoa(m.DiskTimeoutValue),
		m.LoadBalancePolicy,
	}
}
