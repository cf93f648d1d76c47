package servermgmt

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/brian1917/vmmtool/psshell"
	"github.com/brian1917/vmmtool/utils"
	"github.com/brian1917/vmmtool/vmmapi"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Set global variables for flags
var skipTest bool
var configFilePath string
var err error

func init() {
	AddServerCmd.Flags().BoolVar(&skipTest, "skip-test", false, "Do not connect to the server before saving the profile.")
}

// AddServerCmd adds a server profile to vmm.yaml
var AddServerCmd = &cobra.Command{
	Use:   "server-add",
	Short: "Adds a VMM server profile to the vmm.yaml file.",
	Long: `
Adds a VMM server profile to the vmm.yaml file.

The default file name is vmm.yaml stored in the current directory.
Set VMM_CONFIG environment variable for a custom file location, including file name.
This environment variable must be set for future use so vmmtool knows where to look for it.

The password is used to test the connection and is never written to vmm.yaml.
Commands read it from the VMM_PASSWORD environment variable.

The command can be automated (avoid prompt) by setting the following environment variables:
VMM_PROFILE_NAME, VMM_SERVER, VMM_PORT, VMM_USERNAME, VMM_PASSWORD, VMM_TRANSPORT.

The --update-vmm and --no-prompt flags are ignored for this command.
`,
	PreRun: func(cmd *cobra.Command, args []string) {
		configFilePath, err = filepath.Abs(viper.ConfigFileUsed())
		if err != nil {
			utils.LogError(err.Error())
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		addServer()
	},
}

// serverProfile is what server-add saves for one server.
type serverProfile struct {
	name      string
	server    string
	port      int
	username  string
	transport string
}

func (p serverProfile) validate() error {
	if p.name == "" || strings.ContainsAny(p.name, ". ") {
		return fmt.Errorf("profile name %q cannot be blank or contain spaces or periods", p.name)
	}
	if p.server == "" {
		return fmt.Errorf("server is required")
	}
	if p.username == "" {
		return fmt.Errorf("username is required")
	}
	if p.port <= 0 || p.port > 65535 {
		return fmt.Errorf("%d is not a valid port", p.port)
	}
	switch p.transport {
	case psshell.TransportWinRM, psshell.TransportSSH, psshell.TransportLocal:
	default:
		return fmt.Errorf("invalid transport %q - must be winrm, ssh, or local", p.transport)
	}
	return nil
}

// save writes the profile keys. The first profile becomes the default.
func (p serverProfile) save() {
	viper.Set(p.name+".server", p.server)
	viper.Set(p.name+".port", p.port)
	viper.Set(p.name+".username", p.username)
	viper.Set(p.name+".transport", p.transport)
	if !viper.IsSet("max_entries_for_stdout") {
		viper.Set("max_entries_for_stdout", 100)
	}
	if viper.GetString("default_server_name") == "" {
		viper.Set("default_server_name", p.name)
	}
}

func addServer() {

	// Log start
	utils.LogStartCommand("server-add")

	var p serverProfile
	var pwd string

	// Check if all our env variables are set
	envVars := []string{"VMM_PROFILE_NAME", utils.EnvServer, utils.EnvPort, utils.EnvUsername, utils.EnvPassword, utils.EnvTransport}
	auto := true
	for _, e := range envVars {
		if os.Getenv(e) == "" {
			auto = false
		}
	}

	// Start user prompt
	if !auto {
		fmt.Println("\r\nDefault values will be shown in [brackets]. Press enter to accept default.")
		fmt.Println("")
	}

	p.name = os.Getenv("VMM_PROFILE_NAME")
	if p.name == "" {
		fmt.Print("Name of server profile (no spaces or periods) [default-vmm]: ")
		fmt.Scanln(&p.name)
		for strings.Contains(p.name, ".") {
			fmt.Println("\r\n[WARNING] - The name of the profile cannot contain periods. Please re-enter.")
			fmt.Print("Name of server profile (no spaces or periods) [default-vmm]: ")
			fmt.Scanln(&p.name)
		}
		if p.name == "" {
			p.name = "default-vmm"
		}
	}

	p.server = os.Getenv(utils.EnvServer)
	if p.server == "" {
		fmt.Print("VMM server FQDN: ")
		fmt.Scanln(&p.server)
	}

	portStr := os.Getenv(utils.EnvPort)
	if portStr == "" {
		fmt.Printf("VMM server port [%d]: ", vmmapi.DefaultPort)
		fmt.Scanln(&portStr)
	}
	p.port = vmmapi.DefaultPort
	if portStr != "" {
		p.port, err = strconv.Atoi(portStr)
		if err != nil {
			utils.LogError(fmt.Sprintf("%s is not a valid port", portStr))
		}
	}

	p.username = os.Getenv(utils.EnvUsername)
	if p.username == "" {
		fmt.Print("Username (DOMAIN\\user): ")
		fmt.Scanln(&p.username)
	}

	p.transport = strings.ToLower(os.Getenv(utils.EnvTransport))
	if p.transport == "" {
		fmt.Print("Transport (winrm/ssh/local) [winrm]: ")
		fmt.Scanln(&p.transport)
		p.transport = strings.ToLower(p.transport)
		if p.transport == "" {
			p.transport = psshell.TransportWinRM
		}
	}

	if err := p.validate(); err != nil {
		utils.LogError(err.Error())
	}

	// Test the connection before saving
	if !skipTest {
		pwd = os.Getenv(utils.EnvPassword)
		if pwd == "" {
			fmt.Print("Password: ")
			bytePassword, _ := term.ReadPassword(int(syscall.Stdin))
			pwd = string(bytePassword)
			fmt.Println("")
		}
		if auto {
			fmt.Println("Testing connection...")
		} else {
			fmt.Println("\r\nTesting connection...")
		}

		s := vmmapi.Server{FriendlyName: p.name, FQDN: p.server, Port: p.port, User: p.username, Password: pwd}
		sh, err := psshell.Open(utils.SessionConfig(s.FQDN, s, p.transport))
		if err != nil {
			utils.LogError(fmt.Sprintf("opening session to %s - %s", s.FQDN, err))
		}
		a, err := s.Connect(sh)
		utils.LogAPIResp("Connect", a)
		s.Close()
		if err != nil {
			utils.LogError(err.Error())
		}
		utils.LogInfo(fmt.Sprintf("connected to %s - vmm version %s", s.Name, s.ProductVersion), true)
	}

	// Write the profile
	p.save()
	if err := viper.WriteConfig(); err != nil {
		utils.LogError(err.Error())
	}

	// Log
	if auto {
		fmt.Printf("Added server profile %s to %s\r\n", p.name, configFilePath)
	} else {
		fmt.Printf("\r\nAdded server profile %s to %s\r\n", p.name, configFilePath)
	}
	utils.LogEndCommand("server-add")
}
