package agent

import loggerpkg "github.com/sgorecki/utility-agent/pkg/logger"

// Option configures optional runtime dependencies for Driver.
type Option func(*driverDeps)

type driverDeps struct {
	logger loggerpkg.Logger
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *driverDeps) {
		if l != nil {
			d.logger = l
		}
	}
}
