// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/config"
	_ "github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/gwf"
	_ "github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/logger"
	_ "github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/slurm"
	_ "github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/MOMA-AUH/gwf-failed-targets/internal/app"
	_ "github.com/MOMA-AUH/gwf-failed-targets/internal/engine/triage"
)
