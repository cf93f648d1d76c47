// Package pstest provides a scripted psshell.Shell for tests.
package pstest

import (
	"errors"
	"strings"
)

type rule struct {
	match  string
	stdout func(script string) string
	stderr string
}

// Shell answers each script with the first rule whose match string is
// contained in the script. Scripts with no matching rule produce no output.
// Every script is recorded in Calls.
type Shell struct {
	Calls  []string
	Exited bool
	rules  []rule
}

// New returns an empty Shell.
func New() *Shell {
	return &Shell{}
}

// On answers scripts containing match with stdout.
func (s *Shell) On(match, stdout string) *Shell {
	s.rules = append(s.rules, rule{match: match, stdout: func(string) string { return stdout }})
	return s
}

// OnFunc answers scripts containing match with the output of fn.
// fn can keep state between calls.
func (s *Shell) OnFunc(match string, fn func(script string) string) *Shell {
	s.rules = append(s.rules, rule{match: match, stdout: fn})
	return s
}

// Fail makes scripts containing match fail with stderr.
func (s *Shell) Fail(match, stderr string) *Shell {
	s.rules = append(s.rules, rule{match: match, stderr: stderr})
	return s
}

// Execute implements psshell.Shell.
func (s *Shell) Execute(cmd string) (string, string, error) {
	s.Calls = append(s.Calls, cmd)
	for _, r := range s.rules {
		if !strings.Contains(cmd, r.match) {
			continue
		}
		if r.stderr != "" {
			return "", r.stderr, errors.New("command has been executed, but returned errors")
		}
		return r.stdout(cmd), "", nil
	}
	return "", "", nil
}

// Exit implements psshell.Shell.
func (s *Shell) Exit() {
	s.Exited = true
}

// Count returns how many executed scripts contain match.
func (s *Shell) Count(match string) int {
	n := 0
	for _, c := range s.Calls {
		if strings.Contains(c, match) {
			n++
		}
	}
	return n
}

// Ran reports whether any executed script contains match.
func (s *Shell) Ran(match string) bool {
	return s.Count(match) > 0
}
