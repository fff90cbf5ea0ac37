package main

import (
	"sortbench/internal/benchmark"
	"sortbench/internal/config"
	"sortbench/internal/db"
	"sortbench/internal/telemetry"
	"sortbench/internal/ui"
)

var (
	newStoreFunc = func(cfg config.StoreConfig) (benchmark.Store, error) {
		return db.NewStore(db.StoreConfig{Type: cfg.Type, ConnectionString: cfg.DSN})
	}
	startMetricsServer = telemetry.StartMetricsServer
	startReportView    = ui.StartReportView
)
