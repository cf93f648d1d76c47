// Package vmmapi is a typed client for a System Center Virtual Machine
// Manager server. Every call runs a VMM cmdlet in an open PowerShell session
// and decodes the selected properties.
package vmmapi

import (
	"fmt"

	"github.com/brian1917/vmmtool/psshell"
	"github.com/pkg/errors"
)

// DefaultPort is the VMM server TCP port.
const DefaultPort = 8100

// ErrNotFound is returned when a named object does not exist in VMM.
var ErrNotFound = errors.New("not found")

// Server represents a VMM management server.
type Server struct {
	FriendlyName string
	FQDN         string
	Port         int
	User         string
	Password     string

	// Set by Connect
	Name           string
	ProductVersion string

	shell psshell.Shell
}

type serverInfo struct {
	Name           string `json:"Name"`
	ProductVersion string `json:"ProductVersion"`
}

// Connect imports the VMM module in sh and connects to the server. All later
// calls on s run in sh.
func (s *Server) Connect(sh psshell.Shell) (psshell.Result, error) {
	s.shell = sh
	port := s.Port
	if port == 0 {
		port = DefaultPort
	}

	script := psshell.Script(
		"Import-Module VirtualMachineManager -ErrorAction Stop",
		fmt.Sprintf("$vmmCred = New-Object System.Management.Automation.PSCredential(%s, (ConvertTo-SecureString %s -AsPlainText -Force))", psshell.Quote(s.User), psshell.Quote(s.Password)),
		fmt.Sprintf("$vmm = Get-SCVMMServer -ComputerName %s -TCPPort %d -Credential $vmmCred -ErrorAction Stop", psshell.Quote(s.FQDN), port),
		"$vmm | Select-Object Name, @{n='ProductVersion';e={[string]$_.ProductVersion}}",
	)

	var info []serverInfo
	a, err := psshell.RunJSONRedacted(sh, script, &info, s.Password)
	if err != nil {
		return a, errors.Wrapf(err, "connecting to %s", s.FQDN)
	}
	if len(info) == 0 {
		return a, errors.Wrapf(psshell.ErrNoOutput, "connecting to %s", s.FQDN)
	}
	s.Name = info[0].Name
	s.ProductVersion = info[0].ProductVersion
	return a, nil
}

// Connected reports whether Connect succeeded.
func (s *Server) Connected() bool {
	return s.shell != nil && s.Name != ""
}

// Close ends the session.
func (s *Server) Close() {
	if s.shell != nil {
		s.shell.Exit()
		s.shell = nil
	}
}

func (s *Server) run(script string, v interface{}) (psshell.Result, error) {
	if s.shell == nil {
		return psshell.Result{}, errors.New("vmm server is not connected")
	}
	return psshell.RunJSON(s.shell, script, v)
}

func notFound(kind, name string) error {
	return errors.Wrapf(ErrNotFound, "%s %s", kind, name)
}

// IsNotFound reports whether err is a lookup miss.
func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}
