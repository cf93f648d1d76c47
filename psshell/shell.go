// Package psshell opens PowerShell sessions against Windows machines and runs
// scripts in them. A session is either a local PowerShell process, a local
// process holding a PS remoting session to the target (winrm), or a
// PowerShell process started on the target over SSH.
package psshell

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	ps "github.com/gorillalabs/go-powershell"
	"github.com/gorillalabs/go-powershell/backend"
	"github.com/gorillalabs/go-powershell/middleware"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// Shell is an open PowerShell session. Commands run one at a time in the
// order they are sent and share session state ($variables, imported modules).
type Shell interface {
	Execute(cmd string) (string, string, error)
	Exit()
}

// Transports
const (
	TransportWinRM = "winrm"
	TransportSSH   = "ssh"
	TransportLocal = "local"
)

// Config describes how to reach a machine.
type Config struct {
	Transport    string
	ComputerName string
	User         string
	Password     string

	// WinRM
	Port   int
	UseSSL bool

	// SSH
	SSHPort    int
	KnownHosts string
	Timeout    time.Duration
}

// Open starts a session using the configured transport. An empty transport is winrm.
func Open(cfg Config) (Shell, error) {
	switch strings.ToLower(cfg.Transport) {
	case "", TransportWinRM:
		return openWinRM(cfg)
	case TransportSSH:
		return openSSH(cfg)
	case TransportLocal:
		return openLocal()
	}
	return nil, fmt.Errorf("invalid transport %q - must be winrm, ssh, or local", cfg.Transport)
}

func openLocal() (Shell, error) {
	shell, err := ps.New(&backend.Local{})
	if err != nil {
		return nil, errors.Wrap(err, "starting local powershell")
	}
	return shell, nil
}

func openWinRM(cfg Config) (Shell, error) {
	if cfg.ComputerName == "" {
		return nil, errors.New("winrm transport requires a computer name")
	}
	local, err := openLocal()
	if err != nil {
		return nil, err
	}

	sc := middleware.NewSessionConfig()
	sc.ComputerName = cfg.ComputerName
	sc.UseSSL = cfg.UseSSL
	if cfg.Port != 0 {
		sc.Port = cfg.Port
	}
	if cfg.User != "" {
		sc.Credential = &middleware.UserPasswordCredential{Username: cfg.User, Password: cfg.Password}
	}

	session, err := middleware.NewSession(local, sc)
	if err != nil {
		local.Exit()
		return nil, errors.Wrapf(err, "opening remote session to %s", cfg.ComputerName)
	}
	return session, nil
}

// sshShell closes the SSH client after the remote PowerShell process exits.
type sshShell struct {
	Shell
	client *ssh.Client
}

func (s *sshShell) Exit() {
	s.Shell.Exit()
	s.client.Close()
}

func openSSH(cfg Config) (Shell, error) {
	if cfg.ComputerName == "" {
		return nil, errors.New("ssh transport requires a computer name")
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey()
	if cfg.KnownHosts != "" {
		cb, err := knownhosts.New(cfg.KnownHosts)
		if err != nil {
			return nil, errors.Wrapf(err, "loading known hosts %s", cfg.KnownHosts)
		}
		hostKeyCallback = cb
	}

	port := cfg.SSHPort
	if port == 0 {
		port = 22
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	clientCfg := &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Password)},
		HostKeyCallback: hostKeyCallback,
		Timeout:         timeout,
	}
	client, err := ssh.Dial("tcp", net.JoinHostPort(cfg.ComputerName, strconv.Itoa(port)), clientCfg)
	if err != nil {
		return nil, errors.Wrapf(err, "ssh to %s", cfg.ComputerName)
	}

	session, err := client.NewSession()
	if err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "ssh session on %s", cfg.ComputerName)
	}

	shell, err := ps.New(&backend.SSH{Session: session})
	if err != nil {
		session.Close()
		client.Close()
		return nil, errors.Wrapf(err, "starting powershell on %s", cfg.ComputerName)
	}

	return &sshShell{Shell: shell, client: client}, nil
}
