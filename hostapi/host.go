// Package hostapi queries and changes a single Windows host through an open
// PowerShell session on that host.
package hostapi

import (
	"github.com/brian1917/vmmtool/psshell"
	"github.com/pkg/errors"
)

// ErrNotFound is returned when a named object does not exist on the host.
var ErrNotFound = errors.New("not found")

// ErrRemoteCommand is returned when a remote command did not produce the
// object it is expected to produce.
var ErrRemoteCommand = errors.New("remote command did not complete")

// Host is a remote host with an open session.
type Host struct {
	Name  string
	shell psshell.Shell
}

// New returns a Host that runs its queries in sh.
func New(name string, sh psshell.Shell) *Host {
	return &Host{Name: name, shell: sh}
}

// Close ends the session.
func (h *Host) Close() {
	if h.shell != nil {
		h.shell.Exit()
		h.shell = nil
	}
}

func (h *Host) run(script string, v interface{}) (psshell.Result, error) {
	if h.shell == nil {
		return psshell.Result{}, errors.Errorf("no session to %s", h.Name)
	}
	a, err := psshell.RunJSON(h.shell, script, v)
	if err != nil {
		return a, errors.Wrap(err, h.Name)
	}
	return a, nil
}

// IsNotFound reports whether err is a lookup miss.
func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}

// IsRemoteCommand reports whether err is a remote command that produced nothing.
func IsRemoteCommand(err error) bool {
	return errors.Cause(err) == ErrRemoteCommand
}

// GetOperatingSystem returns the operating system of the host.
func (h *Host) GetOperatingSystem() (OperatingSystem, psshell.Result, error) {
	var info []OperatingSystem
	a, err := h.run("Get-CimInstance -ClassName Win32_OperatingSystem | Select-Object Caption, Version, BuildNumber, "+
		"@{n='InstallDate';e={$_.InstallDate.ToString('o')}}, "+
		"@{n='LastBootUpTime';e={$_.LastBootUpTime.ToString('o')}}, "+
		"TotalVisibleMemorySize, FreePhysicalMemory", &info)
	if err != nil {
		return OperatingSystem{}, a, err
	}
	if len(info) == 0 {
		return OperatingSystem{}, a, errors.Wrapf(ErrRemoteCommand, "%s: no operating system information", h.Name)
	}
	return info[0], a, nil
}

// GetHotfixes returns the installed updates.
func (h *Host) GetHotfixes() ([]Hotfix, psshell.Result, error) {
	var hotfixes []Hotfix
	a, err := h.run("Get-HotFix | Select-Object HotFixID, Description, InstalledBy, "+
		"@{n='InstalledOn';e={ if ($_.InstalledOn) { $_.InstalledOn.ToString('yyyy-MM-dd') } }}", &hotfixes)
	return hotfixes, a, err
}
