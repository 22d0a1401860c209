// Package normalize repairs raw order-history rows before any session logic
// runs. Malformed numeric data is common in the source and must never abort
// an analysis: bad numbers degrade to 0, rows without a trustworthy
// timestamp are excluded, and both corrections are counted for diagnostics.
package normalize

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/models/domain"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/models/store"
	"github.com/rs/zerolog"
)

// Layouts the robot has been observed writing. Tried in order.
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02/01/2006 15:04:05",
	"2006-01-02",
}

// Normalize converts raw rows into cleaned records. It never fails; the
// returned stats describe every correction that was applied.
func Normalize(ctx context.Context, raw []store.OrderRecord) ([]domain.OrderRecord, domain.NormalizeStats) {
	logger := zerolog.Ctx(ctx)
	stats := domain.NormalizeStats{InputRows: len(raw)}

	type parsedRow struct {
		record domain.OrderRecord
		valid  bool
	}

	// First pass: type every row and capture the first-seen description per
	// product. The canonical name is decided over all rows in input order,
	// including rows later dropped for a bad timestamp.
	parsed := make([]parsedRow, 0, len(raw))
	names := make(map[int]string)
	for _, r := range raw {
		rec := domain.OrderRecord{
			ProductID:    coerceQty(r.ProductID, &stats),
			Description:  strings.TrimSpace(r.Description),
			TargetQty:    coerceQty(r.TargetQty, &stats),
			StockQty:     coerceQty(r.StockQty, &stats),
			ToOrderQty:   coerceQty(r.ToOrderQty, &stats),
			AvailableQty: coerceQty(r.AvailableQty, &stats),
			OrderedQty:   coerceQty(r.OrderedQty, &stats),
			Supplier:     strings.TrimSpace(r.Supplier),
		}

		if rec.ToOrderQty == 0 && rec.OrderedQty > 0 {
			// The source emits a stale ordered figure when nothing was due
			// to be ordered.
			rec.OrderedQty = 0
			stats.OrderedFixes++
		}

		if _, seen := names[rec.ProductID]; !seen {
			names[rec.ProductID] = rec.Description
		}

		ts, ok := parseTimestamp(r.Timestamp)
		if !ok {
			stats.DroppedRows++
			parsed = append(parsed, parsedRow{record: rec})
			continue
		}
		rec.Timestamp = ts
		rec.Date = time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
		parsed = append(parsed, parsedRow{record: rec, valid: true})
	}

	// Second pass: broadcast canonical descriptions and keep placeable rows.
	cleaned := make([]domain.OrderRecord, 0, len(parsed))
	for _, p := range parsed {
		if !p.valid {
			continue
		}
		rec := p.record
		rec.Description = names[rec.ProductID]
		rec.Display = fmt.Sprintf("%d - %s", rec.ProductID, rec.Description)
		cleaned = append(cleaned, rec)
	}
	stats.CleanRows = len(cleaned)

	if stats.DroppedRows > 0 || stats.ZeroedFields > 0 || stats.OrderedFixes > 0 {
		logger.Info().
			Int("input_rows", stats.InputRows).
			Int("dropped_rows", stats.DroppedRows).
			Int("zeroed_fields", stats.ZeroedFields).
			Int("ordered_fixes", stats.OrderedFixes).
			Msg("normalized order history with corrections")
	}

	return cleaned, stats
}

// coerceQty parses an integer-like field. Unparsable or negative values
// degrade to 0 and are counted; cleaned quantities are always non-negative.
func coerceQty(s string, stats *domain.NormalizeStats) int {
	v := strings.TrimSpace(s)
	if v == "" {
		stats.ZeroedFields++
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 {
			stats.ZeroedFields++
			return 0
		}
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		if f < 0 {
			stats.ZeroedFields++
			return 0
		}
		return int(f)
	}
	stats.ZeroedFields++
	return 0
}

func parseTimestamp(s string) (time.Time, bool) {
	v := strings.TrimSpace(s)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, v); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
