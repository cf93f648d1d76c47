package hosthotfix

import (
	"strings"

	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/utils"
	"github.com/spf13/cobra"
)

var targets utils.Targets
var kb, outputFileName string

func init() {
	targets.AddFlags(HostHotfixCmd)
	HostHotfixCmd.Flags().StringVar(&kb, "kb", "", "only include this hotfix id (e.g., KB5034129).")
	HostHotfixCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	HostHotfixCmd.Flags().SortFlags = false
}

// HostHotfixCmd reports installed updates of hosts
var HostHotfixCmd = &cobra.Command{
	Use:   "host-hotfix",
	Short: "Report installed updates on hosts.",
	Long: `
Report the updates installed on hosts. Use --kb with --cluster to check that one update is on every node.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := targets.Validate(); err != nil {
			utils.LogError(err.Error())
		}
		hostHotfix()
	},
}

func hostHotfix() {
	utils.LogStartCommand("host-hotfix")

	s := utils.ConnectServer()
	defer s.Close()

	hosts, err := utils.ResolveHosts(s, targets)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	data := [][]string{{"host_name", "hotfix_id", "description", "installed_by", "installed_on"}}
	utils.EachHost(utils.HostSessions(s), hosts, func(h *hostapi.Host) error {
		hotfixes, a, err := h.GetHotfixes()
		utils.LogAPIResp("GetHotfixes", a)
		if err != nil {
			return err
		}
		rows := hotfixRows(h.Name, hotfixes, kb)
		if kb != "" && len(rows) == 0 {
			utils.LogWarning(h.Name+" does not have "+kb+" installed", true)
		}
		data = append(data, rows...)
		return nil
	})

	utils.WriteRecords(data, "host-hotfix", outputFileName)
	utils.LogEndCommand("host-hotfix")
}

func hotfixRows(hostName string, hotfixes []hostapi.Hotfix, kb string) [][]string {
	rows := [][]string{}
	for _, hf := range hotfixes {
		if kb != "" && !strings.EqualFold(hf.HotFixID, kb) {
			continue
		}
		rows = append(rows, []string{hostName, hf.HotFixID, hf.Description, hf.InstalledBy, hf.InstalledOn})
	}
	return rows
}
