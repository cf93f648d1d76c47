package servermgmt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/brian1917/vmmtool/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RemoveServerCmd removes a server profile from vmm.yaml
var RemoveServerCmd = &cobra.Command{
	Use:   "server-remove [name of server profile]",
	Short: "Remove a server profile from vmm.yaml file.",
	Long: `
Remove a server profile from vmm.yaml file. If the profile was the default, the default is cleared.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	PreRun: func(cmd *cobra.Command, args []string) {
		configFilePath, err = filepath.Abs(viper.ConfigFileUsed())
		if err != nil {
			utils.LogError(err.Error())
		}
	},
	Run: func(cmd *cobra.Command, args []string) {

		if len(args) != 1 {
			fmt.Println("Command requires 1 argument for the name of the server profile to remove. See usage help.")
			os.Exit(0)
		}

		utils.LogStartCommand("server-remove")

		settings, err := removeProfile(viper.AllSettings(), args[0])
		if err != nil {
			utils.LogError(err.Error())
		}

		// Viper cannot unset a key so the file is rewritten from a fresh instance.
		v := viper.New()
		v.SetConfigType("yaml")
		v.SetConfigFile(viper.ConfigFileUsed())
		for k, val := range settings {
			v.Set(k, val)
		}
		if err := v.WriteConfig(); err != nil {
			utils.LogError(err.Error())
		}

		utils.LogInfo(fmt.Sprintf("removed %s from %s", args[0], configFilePath), true)
		utils.LogEndCommand("server-remove")
	},
}

// removeProfile returns settings without the named profile. Runtime keys set
// from flags are not carried into the file.
func removeProfile(settings map[string]interface{}, name string) (map[string]interface{}, error) {
	if _, ok := settings[name].(map[string]interface{}); !ok {
		return nil, fmt.Errorf("%s server profile does not exist", name)
	}

	runtime := map[string]bool{"debug": true, "update_vmm": true, "no_prompt": true, "verbose": true, "output_format": true, "target_server": true}

	out := make(map[string]interface{})
	for k, v := range settings {
		if k == name || runtime[k] {
			continue
		}
		out[k] = v
	}
	if s, ok := out["default_server_name"].(string); ok && s == name {
		delete(out, "default_server_name")
	}
	return out, nil
}
