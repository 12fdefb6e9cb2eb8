package cmdlog

import (
	"github.com/sarthakbiswas97/X-clone/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// Run executes one CLI command, counting runs and failures and emitting a
// log line per outcome.
func Run(cmd string, f func() error) error {
	metrics.IncCommandRun(cmd)
	err := f()
	if err != nil {
		metrics.IncCommandError(cmd)
		log.WithField("command", cmd).WithError(err).Error("command failed")
	} else {
		log.WithField("command", cmd).Debug("command ok")
	}
	return err
}
