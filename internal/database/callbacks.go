package database

import (
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder is an interface for recording document store metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

// RegisterMetricsCallbacks registers GORM callbacks that time every
// query/insert/update/delete against the document tables
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	timeOp := func(op string) (before func(*gorm.DB), after func(*gorm.DB)) {
		before = func(db *gorm.DB) {
			db.InstanceSet("query_start_time", time.Now())
		}
		after = func(db *gorm.DB) {
			startTime, ok := db.InstanceGet("query_start_time")
			if !ok {
				return
			}
			duration := time.Since(startTime.(time.Time))
			table := db.Statement.Table
			if table == "" {
				table = "unknown"
			}
			recorder.RecordDBQuery(op, table, duration, db.Error)
		}
		return before, after
	}

	queryBefore, queryAfter := timeOp("select")
	db.Callback().Query().Before("gorm:query").Register("metrics:query_before", queryBefore)
	db.Callback().Query().After("gorm:query").Register("metrics:query_after", queryAfter)

	createBefore, createAfter := timeOp("insert")
	db.Callback().Create().Before("gorm:create").Register("metrics:create_before", createBefore)
	db.Callback().Create().After("gorm:create").Register("metrics:create_after", createAfter)

	updateBefore, updateAfter := timeOp("update")
	db.Callback().Update().Before("gorm:update").Register("metrics:update_before", updateBefore)
	db.Callback().Update().After("gorm:update").Register("metrics:update_after", updateAfter)

	deleteBefore, deleteAfter := timeOp("delete")
	db.Callback().Delete().Before("gorm:delete").Register("metrics:delete_before", deleteBefore)
	db.Callback().Delete().After("gorm:delete").Register("metrics:delete_after", deleteAfter)
}

// StartDBStatsCollector starts periodic connection pool stats collection.
// Close the returned channel to stop it.
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
