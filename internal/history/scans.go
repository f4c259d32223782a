package history

import (
	"context"

	"phishguard/internal/models"
)

// OutcomeCount is an aggregate row for metrics export.
type OutcomeCount struct {
	Prediction string
	FromCache  bool
	Count      int64
}

// RecordScan appends one scan result to the history table.
func (d *DB) RecordScan(ctx context.Context, rec models.ScanRecord) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO scans (url, prediction, confidence, risk_score, from_cache, request_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.URL, rec.Prediction, rec.Confidence, rec.RiskScore, rec.FromCache, rec.RequestID)
	return err
}

// Totals aggregates the recorded history for the stats endpoint.
func (d *DB) Totals(ctx context.Context) (models.ScanTotals, error) {
	var t models.ScanTotals
	err := d.Pool.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE from_cache),
			COUNT(*) FILTER (WHERE NOT from_cache),
			COUNT(*) FILTER (WHERE prediction = 'Phishing'),
			COUNT(*) FILTER (WHERE prediction = 'Benign')
		FROM scans
	`).Scan(&t.Scans, &t.CacheHits, &t.CacheMiss, &t.Phishing, &t.Benign)
	return t, err
}

// OutcomeCounts returns scan counts grouped by prediction and cache
// outcome for the Prometheus collector.
func (d *DB) OutcomeCounts(ctx context.Context) ([]OutcomeCount, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT prediction, from_cache, COUNT(*)
		FROM scans
		GROUP BY prediction, from_cache
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []OutcomeCount
	for rows.Next() {
		var c OutcomeCount
		if err := rows.Scan(&c.Prediction, &c.FromCache, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// RecentScans returns the newest history rows, most recent first.
func (d *DB) RecentScans(ctx context.Context, limit int) ([]models.ScanRecord, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT url, prediction, confidence, risk_score, from_cache, request_id, created_at
		FROM scans
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []models.ScanRecord
	for rows.Next() {
		var r models.ScanRecord
		if err := rows.Scan(&r.URL, &r.Prediction, &r.Confidence, &r.RiskScore, &r.FromCache, &r.RequestID, &r.CreatedAt); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}
