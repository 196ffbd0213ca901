// Package metrics exports run statistics as a Prometheus textfile for the
// node_exporter textfile collector.
package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/zerr"
)

const namespace = "pinsync"

// Textfile implements ports.MetricsSink. A Textfile with an empty path
// records nothing.
type Textfile struct {
	path     string
	now      func() time.Time
	registry *prometheus.Registry

	hooks       prometheus.Gauge
	mapped      prometheus.Gauge
	mismatches  prometheus.Gauge
	patched     prometheus.Gauge
	unlocked    prometheus.Gauge
	errors      prometheus.Gauge
	mappingSize prometheus.Gauge
	regenerated prometheus.Gauge
	lastRun     prometheus.Gauge
}

// NewTextfile creates a sink writing to path.
func NewTextfile(path string) *Textfile {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	gauge := func(name, help string) prometheus.Gauge {
		return factory.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
	}

	return &Textfile{
		path:        path,
		now:         time.Now,
		registry:    reg,
		hooks:       gauge("hooks", "Remote hook entries compared in the last run."),
		mapped:      gauge("hooks_mapped", "Hooks with a known registry project in the last run."),
		mismatches:  gauge("mismatches", "Hooks whose pin differed from the locked version."),
		patched:     gauge("patched", "Hook pins rewritten in the last run."),
		unlocked:    gauge("unlocked", "Mapped projects absent from the requirements file."),
		errors:      gauge("errors", "Non-fatal per-hook errors in the last run."),
		mappingSize: gauge("mapping_size", "Repositories in the registry mapping used."),
		regenerated: gauge("mapping_regenerated", "1 when the registry mapping was rebuilt during the run."),
		lastRun:     gauge("last_run_timestamp_seconds", "Unix time the last run finished."),
	}
}

// Record writes the statistics of result to the textfile.
func (t *Textfile) Record(result *domain.Result) error {
	if t.path == "" || result == nil {
		return nil
	}

	t.hooks.Set(float64(result.Hooks))
	t.mapped.Set(float64(result.Mapped))
	t.mismatches.Set(float64(len(result.Mismatches)))
	t.patched.Set(float64(result.Patched()))
	t.unlocked.Set(float64(len(result.Unlocked)))
	t.errors.Set(float64(len(result.Errors)))
	t.mappingSize.Set(float64(result.MappingSize))
	t.regenerated.Set(boolToFloat(result.MappingRegenerated))
	t.lastRun.Set(float64(t.now().Unix()))

	if err := os.MkdirAll(filepath.Dir(t.path), domain.DirPerm); err != nil {
		return errors.Join(domain.ErrMetricsWriteFailed, zerr.With(err, "path", t.path))
	}
	if err := prometheus.WriteToTextfile(t.path, t.registry); err != nil {
		return errors.Join(domain.ErrMetricsWriteFailed, zerr.With(err, "path", t.path))
	}
	return nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
