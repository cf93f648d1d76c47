package servermgmt

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/brian1917/vmmtool/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// SetDefaultServerCmd sets the default server profile
var SetDefaultServerCmd = &cobra.Command{
	Use:   "set-default [name of server profile]",
	Short: "Changes the default server profile used when --server is not set.",
	PreRun: func(cmd *cobra.Command, args []string) {
		configFilePath, err = filepath.Abs(viper.ConfigFileUsed())
		if err != nil {
			utils.LogError(err.Error())
		}
	},
	Run: func(cmd *cobra.Command, args []string) {

		if len(args) != 1 {
			fmt.Println("Command requires 1 argument for the name of the new default server profile. See usage help.")
			os.Exit(0)
		}
		newDefault := args[0]

		// Make sure the profile exists in the YAML file
		if !isProfile(newDefault) {
			utils.LogError(fmt.Sprintf("%s server profile does not exist.", newDefault))
		}

		viper.Set("default_server_name", newDefault)
		if err := viper.WriteConfig(); err != nil {
			utils.LogError(err.Error())
		}

		fmt.Printf("%s is the default server profile.\r\n", newDefault)
	},
}

// GetDefaultServerCmd prints the default server profile
var GetDefaultServerCmd = &cobra.Command{
	Use:   "get-default",
	Short: "Get the default server profile used when --server is not set.",
	Run: func(cmd *cobra.Command, args []string) {

		utils.LogStartCommand("get-default")

		name := viper.GetString("default_server_name")
		if name == "" {
			utils.LogInfo("no default server profile. run server-add to add one.", true)
			return
		}
		fmt.Printf("%s - %s\r\n", name, viper.GetString(name+".server"))

		utils.LogEndCommand("get-default")
	},
}

// ServerListCmd lists all server profiles
var ServerListCmd = &cobra.Command{
	Use:   "server-list",
	Short: "List all server profiles in vmm.yaml.",
	Run: func(cmd *cobra.Command, args []string) {

		defaultName := viper.GetString("default_server_name")

		names := GetAllServerNames()
		for _, name := range names {
			marker := " "
			if name == defaultName {
				marker = "*"
			}
			fmt.Printf("%s %s (%s - %s)\r\n", marker, name, viper.GetString(name+".server"), viper.GetString(name+".transport"))
		}
		if len(names) == 0 {
			utils.LogInfo("no server configured. run server-add to add a server to vmm.yaml file.", true)
		}
	},
}

// GetAllServerNames returns the names of all server profiles in vmm.yaml.
func GetAllServerNames() []string {
	names := []string{}
	for k := range viper.AllSettings() {
		if isProfile(k) {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

func isProfile(name string) bool {
	return viper.GetString(name+".server") != ""
}
