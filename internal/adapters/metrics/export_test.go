package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SetClock replaces the clock used for the last run timestamp.
func (t *Textfile) SetClock(now func() time.Time) {
	t.now = now
}

// Registry exposes the private registry for assertions.
func (t *Textfile) Registry() *prometheus.Registry {
	return t.registry
}
