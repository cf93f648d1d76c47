package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/psshell"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/spf13/viper"
)

// Environment variables holding the management server connection values.
const (
	EnvServer    = "VMM_SERVER"
	EnvUsername  = "VMM_USERNAME"
	EnvPassword  = "VMM_PASSWORD"
	EnvPort      = "VMM_PORT"
	EnvTransport = "VMM_TRANSPORT"
)

// TargetServerName returns the server profile selected with --server or the default profile.
func TargetServerName() string {
	if name := viper.GetString("target_server"); name != "" {
		return name
	}
	return viper.GetString("default_server_name")
}

// GetTargetServer builds the management server for a command from the selected
// profile and the environment. Server, username, and password must all be set.
func GetTargetServer() (vmmapi.Server, error) {
	var s vmmapi.Server

	name := TargetServerName()
	if name != "" && viper.IsSet(name+".server") {
		s.FriendlyName = name
		s.FQDN = viper.GetString(name + ".server")
		s.Port = viper.GetInt(name + ".port")
		s.User = viper.GetString(name + ".username")
	} else if viper.GetString("target_server") != "" {
		return s, fmt.Errorf("%s is not a server profile in %s. run server-list to see profiles", name, viper.ConfigFileUsed())
	}

	if s.FQDN == "" {
		s.FQDN = os.Getenv(EnvServer)
	}
	if s.User == "" {
		s.User = os.Getenv(EnvUsername)
	}
	s.Password = os.Getenv(EnvPassword)

	if s.Port == 0 && os.Getenv(EnvPort) != "" {
		port, err := strconv.Atoi(os.Getenv(EnvPort))
		if err != nil {
			return s, fmt.Errorf("%s is not a valid port for the %s env variable", os.Getenv(EnvPort), EnvPort)
		}
		s.Port = port
	}
	if s.Port == 0 {
		s.Port = vmmapi.DefaultPort
	}

	switch {
	case s.FQDN == "":
		return s, fmt.Errorf("the %s env variable is not set and no server profile is configured", EnvServer)
	case s.User == "":
		return s, fmt.Errorf("the %s env variable is not set", EnvUsername)
	case s.Password == "":
		return s, fmt.Errorf("the %s env variable is not set", EnvPassword)
	}

	return s, nil
}

// Transport returns the session transport for the selected profile.
func Transport() string {
	if name := TargetServerName(); name != "" && viper.IsSet(name+".transport") {
		return strings.ToLower(viper.GetString(name + ".transport"))
	}
	if t := os.Getenv(EnvTransport); t != "" {
		return strings.ToLower(t)
	}
	if t := viper.GetString("transport"); t != "" {
		return strings.ToLower(t)
	}
	return psshell.TransportWinRM
}

// SessionConfig returns the session settings for reaching computerName with
// the server credentials.
func SessionConfig(computerName string, s vmmapi.Server, transport string) psshell.Config {
	return psshell.Config{
		Transport:    transport,
		ComputerName: computerName,
		User:         s.User,
		Password:     s.Password,
		UseSSL:       viper.GetBool("winrm_ssl"),
		SSHPort:      viper.GetInt("ssh_port"),
		KnownHosts:   viper.GetString("known_hosts"),
	}
}

// ConnectServer validates the configuration, opens a session, and connects to
// the management server. Any failure ends the command.
func ConnectServer() *vmmapi.Server {
	s, err := GetTargetServer()
	if err != nil {
		LogError(err.Error())
	}

	sh, err := psshell.Open(SessionConfig(s.FQDN, s, Transport()))
	if err != nil {
		LogError(fmt.Sprintf("opening session to %s - %s", s.FQDN, err))
	}

	a, err := s.Connect(sh)
	LogAPIResp("Connect", a)
	if err != nil {
		sh.Exit()
		LogError(err.Error())
	}
	LogInfo(fmt.Sprintf("connected to %s - vmm version %s", s.Name, s.ProductVersion), false)

	return &s
}

// OpenHost opens a session to a managed host with the server credentials.
// Hosts are always reached remotely, so the local transport falls back to winrm.
func OpenHost(s *vmmapi.Server, h vmmapi.VMHost) (*hostapi.Host, error) {
	transport := Transport()
	if transport == psshell.TransportLocal {
		transport = psshell.TransportWinRM
	}
	sh, err := psshell.Open(SessionConfig(h.Address(), *s, transport))
	if err != nil {
		return nil, err
	}
	LogDebug(fmt.Sprintf("opened %s session to %s", transport, h.Address()))
	return hostapi.New(h.Name, sh), nil
}

// HostOpener opens a session to a managed host.
type HostOpener func(vmmapi.VMHost) (*hostapi.Host, error)

// HostSessions returns a HostOpener using the credentials of s.
func HostSessions(s *vmmapi.Server) HostOpener {
	return func(vh vmmapi.VMHost) (*hostapi.Host, error) { return OpenHost(s, vh) }
}

// EachHost opens a session to every host in turn and calls fn with it. A host
// that cannot be reached or whose fn fails is logged and skipped.
func EachHost(open HostOpener, hosts []vmmapi.VMHost, fn func(h *hostapi.Host) error) {
	for _, vh := range hosts {
		h, err := open(vh)
		if err != nil {
			LogWarning(fmt.Sprintf("%s - could not open session - %s", vh.Name, err), true)
			continue
		}
		err = fn(h)
		h.Close()
		if err != nil {
			LogWarning(fmt.Sprintf("%s - %s", vh.Name, err), true)
		}
	}
}

// LogLookupFailure logs a not-found lookup as a warning and any other error as an error.
func LogLookupFailure(err error) {
	if vmmapi.IsNotFound(err) || hostapi.IsNotFound(err) {
		LogWarning(err.Error(), true)
		return
	}
	LogError(err.Error())
}
