package process

import (
	"os"
	"testing"

	"github.com/google/gops/goprocess"
	"github.com/stretchr/testify/assert"
)

func TestPeers(t *testing.T) {
	self := os.Getpid()

	orig := lister
	t.Cleanup(func() { lister = orig })

	lister = func() []goprocess.P {
		return []goprocess.P{
			{PID: self, Exec: "taskr", Path: "/usr/local/bin/taskr"},
			{PID: 101, Exec: "taskr", Path: "/usr/local/bin/taskr"},
			{PID: 102, Exec: "TASKR.EXE", Path: `C:\bin\TASKR.EXE`},
			{PID: 103, Exec: "other", Path: "/opt/bin/taskr"},
			{PID: 104, Exec: "gopls", Path: "/usr/bin/gopls"},
		}
	}

	got := Peers("taskr")

	pids := make([]int, len(got))
	for i, p := range got {
		pids[i] = p.PID
	}

	assert.Equal(t, []int{101, 102, 103}, pids)
}

func TestPeersLive(t *testing.T) {
	// The test binary is never its own peer.
	for _, p := range Peers("process.test") {
		assert.NotEqual(t, os.Getpid(), p.PID)
	}
}
