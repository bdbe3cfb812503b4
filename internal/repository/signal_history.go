package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"YieldPulse/internal/domain/models"
	"YieldPulse/internal/domain/repository"
)

// SignalHistory implements Recorder on ClickHouse. Each fired signal is
// stored as one row so downstream analysis can replay what the pipelines
// advised and when.
type SignalHistory struct {
	db    *sql.DB
	table string
}

// NewSignalHistory creates the ClickHouse-backed signal recorder.
func NewSignalHistory(db *sql.DB, table string) repository.Recorder {
	return &SignalHistory{db: db, table: table}
}

func (s *SignalHistory) Init(ctx context.Context) error {
	q := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		ts DateTime,
		token String,
		symbol String,
		signal_type String,
		signal String,
		reason String,
		report String
	) ENGINE = MergeTree() ORDER BY (token, ts)`, s.table)
	if _, err := s.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init signal history: %w", err)
	}
	return nil
}

func (s *SignalHistory) Record(ctx context.Context, at time.Time, report *models.SignalReport) error {
	if report == nil || len(report.Signals) == 0 {
		return nil
	}

	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	q := fmt.Sprintf("INSERT INTO %s (ts, token, symbol, signal_type, signal, reason, report) VALUES (?, ?, ?, ?, ?, ?, ?)", s.table)
	for _, sig := range report.Signals {
		if _, err := s.db.ExecContext(ctx, q,
			at,
			report.Token,
			report.Symbol,
			sig.Type,
			sig.Signal,
			sig.Reason,
			string(raw),
		); err != nil {
			return fmt.Errorf("store signal: %w", err)
		}
	}
	return nil
}

func (s *SignalHistory) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SignalHistory) Close() error {
	return s.db.Close()
}
