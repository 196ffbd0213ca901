// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pinsync/internal/adapters/cache"
	_ "go.trai.ch/pinsync/internal/adapters/catalog"
	_ "go.trai.ch/pinsync/internal/adapters/config"
	_ "go.trai.ch/pinsync/internal/adapters/logger"
	_ "go.trai.ch/pinsync/internal/adapters/metrics"
	_ "go.trai.ch/pinsync/internal/adapters/precommit"
	_ "go.trai.ch/pinsync/internal/adapters/report"
	_ "go.trai.ch/pinsync/internal/adapters/requirements"
	// Register app and engine nodes.
	_ "go.trai.ch/pinsync/internal/app"
	_ "go.trai.ch/pinsync/internal/engine/reconcile"
)
