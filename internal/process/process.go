package process

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/gops/goprocess"
)

// Process is a running Go program.
type Process struct {
	PID  int
	Exec string
	Path string
}

// lister is swapped in tests.
var lister = goprocess.FindAll

// Peers returns the other running Go processes whose executable is named
// name, such as a second taskr holding the store open.
func Peers(name string) []Process {
	self := os.Getpid()

	var peers []Process

	for _, p := range lister() {
		if p.PID == self || !matches(p, name) {
			continue
		}

		peers = append(peers, Process{PID: p.PID, Exec: p.Exec, Path: p.Path})
	}

	return peers
}

func matches(p goprocess.P, name string) bool {
	exec := strings.TrimSuffix(strings.ToLower(p.Exec), ".exe")
	if exec == name {
		return true
	}

	base := strings.TrimSuffix(strings.ToLower(filepath.Base(p.Path)), ".exe")

	return base == name
}
