package cli

import (
	"fmt"
	"time"

	"github.com/tandem-cli/tandem/internal/config"
	"github.com/tandem-cli/tandem/internal/errors"
)

// ParseInterval parses an --interval flag value. An empty flag returns zero
// so callers can fall back to the configured interval.
func ParseInterval(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 2s, 500ms, or 1m.")
	}
	if d < config.MinInterval {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval %s is below the minimum %s", d, config.MinInterval),
			"Every tick spawns telemetry commands, so very short intervals mostly measure the monitor itself.")
	}
	return d, nil
}
