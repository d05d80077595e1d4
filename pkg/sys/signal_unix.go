//go:build !windows
// +build !windows

package sys

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// NotifySignals returns a channel on which the signals that should terminate
// the console are delivered.
func NotifySignals() chan os.Signal {
	sigs := make(chan os.Signal, 8)
	signal.Notify(sigs, unix.SIGHUP, unix.SIGTERM)
	return sigs
}
