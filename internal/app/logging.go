package app

import (
	"fmt"
	"io"
	"os"

	"fortio.org/log"

	"github.com/diegok/pixbreak/internal/config"
	"github.com/diegok/pixbreak/internal/protocol"
)

// setupLogging points the logger at the configured file. The terminal
// front end owns stdout/stderr, so without a file its logs are dropped.
// The returned func restores stderr and closes the file.
func setupLogging(cfg *config.Config) (func(), error) {
	if cfg.Debug {
		log.SetLogLevel(log.Debug)
	}

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
		return func() {
			log.SetOutput(os.Stderr)
			_ = f.Close()
		}, nil
	case !cfg.Window:
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	return func() {}, nil
}

// sessionLog reports session events to the log
type sessionLog struct{}

func (sessionLog) BallLaunched(id string, dx, dy float64) {
	log.Debugf("Session %s: ball launched dx=%.0f dy=%.0f", id, dx, dy)
}

func (sessionLog) BlockDestroyed(id string, row, col, score int) {
	log.Debugf("Session %s: block %d,%d destroyed, score %d", id, row, col, score)
}

func (sessionLog) SessionEnded(id string, outcome protocol.Outcome, score int) {
	log.Infof("Session %s ended: %s with %d blocks", id, outcome, score)
}
