// Package analysis orchestrates one ROI run: load, normalize, filter,
// segment, aggregate. Normalization always completes before segmentation and
// segmentation before aggregation; every stage is a pure pass over the
// immutable cleaned set.
package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/models/domain"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/models/store"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/services/audit"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/services/normalize"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/services/roi"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/services/session"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/store/sqlite/history"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

// ErrDatasetNotFound reports an unknown or expired dataset id.
var ErrDatasetNotFound = errors.New("dataset not found")

// Params are the caller-supplied knobs of one ROI computation.
type Params struct {
	HourlyCost      float64
	GapMinutes      float64
	DiscountSeconds float64
}

// Service is the analysis boundary the CLI and the HTTP layer consume.
type Service interface {
	LoadFile(ctx context.Context, path string) (*domain.Dataset, error)
	LoadBytes(ctx context.Context, raw []byte) (*domain.Dataset, error)
	Dataset(ctx context.Context, id string) (*domain.Dataset, error)
	Summarize(records []domain.OrderRecord, p Params) domain.ROISummary
	AuditProduct(records []domain.OrderRecord, productID int) domain.ProductAudit
	Defaults() Params
	Invalidate(hash string)
	Reset()
}

type controller struct {
	cfg      Config
	cleaned  *gocache.Cache // content hash -> cleanedEntry
	datasets *gocache.Cache // dataset id -> *domain.Dataset
}

type cleanedEntry struct {
	records []domain.OrderRecord
	stats   domain.NormalizeStats
}

// NewController creates the analysis service. Cleaned sets are memoized by
// the SHA-256 of the raw input bytes: the same upload reuses the same
// cleaned set until the caller invalidates it.
func NewController(cfg Config) Service {
	return &controller{
		cfg:      cfg,
		cleaned:  gocache.New(1*time.Hour, 10*time.Minute),
		datasets: gocache.New(24*time.Hour, 1*time.Hour),
	}
}

func (c *controller) Defaults() Params {
	return Params{
		HourlyCost:      c.cfg.HourlyCost,
		GapMinutes:      c.cfg.GapMinutes,
		DiscountSeconds: c.cfg.DiscountSeconds,
	}
}

func (c *controller) LoadFile(ctx context.Context, path string) (*domain.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", history.ErrSourceMissing, path)
	}
	return c.LoadBytes(ctx, raw)
}

func (c *controller) LoadBytes(ctx context.Context, raw []byte) (*domain.Dataset, error) {
	logger := zerolog.Ctx(ctx)

	sum := sha256.Sum256(raw)
	hash := hex.EncodeToString(sum[:])

	entry, err := c.cleanedFor(ctx, hash, raw)
	if err != nil {
		return nil, err
	}

	ds := &domain.Dataset{
		ID:      uuid.NewString(),
		Hash:    hash,
		Records: entry.records,
		Stats:   entry.stats,
	}
	c.datasets.SetDefault(ds.ID, ds)

	logger.Info().
		Str("dataset", ds.ID).
		Int("rows", ds.Stats.CleanRows).
		Msg("dataset registered")

	return ds, nil
}

func (c *controller) cleanedFor(ctx context.Context, hash string, raw []byte) (cleanedEntry, error) {
	if cached, ok := c.cleaned.Get(hash); ok {
		zerolog.Ctx(ctx).Debug().Str("hash", hash).Msg("cleaned set cache hit")
		return cached.(cleanedEntry), nil
	}

	records, err := c.readSource(ctx, raw)
	if err != nil {
		return cleanedEntry{}, err
	}

	cleaned, stats := normalize.Normalize(ctx, records)
	entry := cleanedEntry{records: cleaned, stats: stats}
	c.cleaned.SetDefault(hash, entry)
	return entry, nil
}

// readSource materializes the uploaded bytes as a temporary SQLite file and
// reads the order-history table from it. The sqlite driver needs a file on
// disk; the temp copy is removed before returning.
func (c *controller) readSource(ctx context.Context, raw []byte) ([]store.OrderRecord, error) {
	dir, err := os.MkdirTemp("", "orders-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "orders.db")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return nil, fmt.Errorf("write temp database: %w", err)
	}

	s, err := history.Open(path, c.cfg.Table)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return s.ReadAll(ctx)
}

func (c *controller) Dataset(_ context.Context, id string) (*domain.Dataset, error) {
	ds, ok := c.datasets.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, id)
	}
	return ds.(*domain.Dataset), nil
}

// Summarize runs segmentation and aggregation over an already-filtered
// record subset. A degenerate subset yields the zero summary.
func (c *controller) Summarize(records []domain.OrderRecord, p Params) domain.ROISummary {
	sessions := session.Segment(records, p.GapMinutes)
	return roi.Aggregate(sessions, p.HourlyCost, p.DiscountSeconds)
}

func (c *controller) AuditProduct(records []domain.OrderRecord, productID int) domain.ProductAudit {
	return audit.Product(FilterProduct(records, productID))
}

// Invalidate drops the cleaned set memoized for one content hash.
func (c *controller) Invalidate(hash string) {
	c.cleaned.Delete(hash)
}

// Reset drops every memoized cleaned set and registered dataset.
func (c *controller) Reset() {
	c.cleaned.Flush()
	c.datasets.Flush()
}
