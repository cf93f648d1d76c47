package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/brian1917/vmmtool/utils"

	"github.com/brian1917/vmmtool/cmd/clusterinfo"
	"github.com/brian1917/vmmtool/cmd/clusternodes"
	"github.com/brian1917/vmmtool/cmd/csvlist"
	"github.com/brian1917/vmmtool/cmd/csvprovision"
	"github.com/brian1917/vmmtool/cmd/hostadapters"
	"github.com/brian1917/vmmtool/cmd/hostcpu"
	"github.com/brian1917/vmmtool/cmd/hostdisks"
	"github.com/brian1917/vmmtool/cmd/hosthba"
	"github.com/brian1917/vmmtool/cmd/hosthotfix"
	"github.com/brian1917/vmmtool/cmd/hostips"
	"github.com/brian1917/vmmtool/cmd/hostlist"
	"github.com/brian1917/vmmtool/cmd/hostlldp"
	"github.com/brian1917/vmmtool/cmd/hostmemory"
	"github.com/brian1917/vmmtool/cmd/hostmpio"
	"github.com/brian1917/vmmtool/cmd/hostos"
	"github.com/brian1917/vmmtool/cmd/hostvmmnics"
	"github.com/brian1917/vmmtool/cmd/hostvswitch"
	"github.com/brian1917/vmmtool/cmd/nicstatus"
	"github.com/brian1917/vmmtool/cmd/servermgmt"
	"github.com/brian1917/vmmtool/cmd/vmcheckpoints"
	"github.com/brian1917/vmmtool/cmd/vmdisks"
	"github.com/brian1917/vmmtool/cmd/vmintegration"
	"github.com/brian1917/vmmtool/cmd/vmlist"
	"github.com/brian1917/vmmtool/cmd/vmnics"
	"github.com/brian1917/vmmtool/cmd/vmtimesync"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd calls the CLI
var RootCmd = &cobra.Command{
	Use: "vmmtool",
	Long: `
vmmtool reports on and manages Hyper-V hosts, clusters, and virtual machines through System Center Virtual Machine Manager.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		viper.Set("debug", debug)
		viper.Set("update_vmm", updateVMM)
		viper.Set("no_prompt", noPrompt)
		viper.Set("verbose", verbose)
		viper.Set("target_server", targetServer)

		//Output format
		outFormat = strings.ToLower(outFormat)
		if outFormat != "both" && outFormat != "stdout" && outFormat != "csv" {
			utils.LogError("Invalid out - must be csv, stdout, or both.")
		}
		viper.Set("output_format", outFormat)
	},
	Run: func(cmd *cobra.Command, args []string) {

		cmd.Help()
	},
}

var updateVMM, noPrompt, debug, verbose bool
var outFormat, targetServer string

// All subcommand flags are taken care of in their package's init.
// Root init sets up everything else - all usage templates, Viper, etc.
func init() {

	// Disable sorting
	cobra.EnableCommandSorting = false

	// Server profiles
	RootCmd.AddCommand(servermgmt.AddServerCmd)
	RootCmd.AddCommand(servermgmt.RemoveServerCmd)
	RootCmd.AddCommand(servermgmt.ServerListCmd)
	RootCmd.AddCommand(servermgmt.GetDefaultServerCmd)
	RootCmd.AddCommand(servermgmt.SetDefaultServerCmd)

	// Host reporting
	RootCmd.AddCommand(hostlist.HostListCmd)
	RootCmd.AddCommand(hostos.HostOSCmd)
	RootCmd.AddCommand(hostmemory.HostMemoryCmd)
	RootCmd.AddCommand(hostcpu.HostCPUCmd)
	RootCmd.AddCommand(hostdisks.HostDisksCmd)
	RootCmd.AddCommand(hosthba.HostHBACmd)
	RootCmd.AddCommand(hostmpio.HostMPIOCmd)
	RootCmd.AddCommand(hosthotfix.HostHotfixCmd)

	// Host network
	RootCmd.AddCommand(hostadapters.HostAdaptersCmd)
	RootCmd.AddCommand(hostips.HostIPsCmd)
	RootCmd.AddCommand(hostlldp.HostLLDPCmd)
	RootCmd.AddCommand(nicstatus.NICStatusCmd)
	RootCmd.AddCommand(hostvmmnics.HostVMMNICsCmd)
	RootCmd.AddCommand(hostvswitch.HostVSwitchCmd)

	// Cluster
	RootCmd.AddCommand(clusterinfo.ClusterInfoCmd)
	RootCmd.AddCommand(clusternodes.ClusterNodesCmd)
	RootCmd.AddCommand(csvlist.CSVListCmd)
	RootCmd.AddCommand(csvprovision.CSVProvisionCmd)

	// Virtual machines
	RootCmd.AddCommand(vmlist.VMListCmd)
	RootCmd.AddCommand(vmdisks.VMDisksCmd)
	RootCmd.AddCommand(vmnics.VMNICsCmd)
	RootCmd.AddCommand(vmcheckpoints.VMCheckpointsCmd)
	RootCmd.AddCommand(vmintegration.VMIntegrationCmd)
	RootCmd.AddCommand(vmtimesync.VMTimeSyncCmd)

	// Version Commands
	RootCmd.AddCommand(versionCmd)

	// Set the usage templates
	for _, c := range RootCmd.Commands() {
		c.SetUsageTemplate(utils.SubCmdTemplate())
	}
	RootCmd.SetUsageTemplate(utils.RootTemplate())

	// Setup Viper
	viper.SetConfigType("yaml")
	if os.Getenv("VMM_CONFIG") != "" {
		viper.SetConfigFile(os.Getenv("VMM_CONFIG"))
	} else {
		viper.SetConfigFile("./vmm.yaml")
	}
	viper.SetDefault("max_entries_for_stdout", 100)
	viper.SetDefault("transport", "winrm")
	viper.SetDefault("ssh_port", 22)
	viper.ReadInConfig()

	// Persistent flags that will be passed into root command pre-run.
	RootCmd.PersistentFlags().BoolVar(&updateVMM, "update-vmm", false, "Command will make changes after a single user prompt. Default will just log potential changes.")
	RootCmd.PersistentFlags().BoolVar(&noPrompt, "no-prompt", false, "Remove the user prompt when used with update-vmm.")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug level logging for troubleshooting.")
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "When debug is enabled, include the raw PowerShell output. This makes vmmtool.log increase in size significantly.")
	RootCmd.PersistentFlags().StringVar(&outFormat, "out", "csv", "Output format. 3 options: csv, stdout, both")
	RootCmd.PersistentFlags().StringVar(&targetServer, "server", "", "Server profile to use in command if not using the default.")

	RootCmd.Flags().SortFlags = false

}

// Execute is called by the CLI main function to initiate the Cobra application
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

//versionCmd returns the version of vmmtool
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print vmmtool version.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Version %s\r\n", utils.GetVersion())
		fmt.Printf("Previous commit: %s \r\n", utils.GetCommit())
	},
}
