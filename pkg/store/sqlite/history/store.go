package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/models/store"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

// ErrSourceMissing reports an unreadable source: the database file does not
// exist or it carries no order-history table. Callers must treat this
// differently from a present-but-empty log.
var ErrSourceMissing = errors.New("order history source missing")

const DefaultTable = "ORDER_HISTORY"

// Store reads raw order-history rows. No cleaning happens here; every column
// is surfaced as the text the source holds.
type Store interface {
	ReadAll(ctx context.Context) ([]store.OrderRecord, error)
	Close() error
}

type historyStore struct {
	db    *sql.DB
	table string
}

// Open opens a SQLite order-history file. A missing file is reported as
// ErrSourceMissing right away; a missing table surfaces on the first read.
func Open(path, table string) (Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open order history database: %w", err)
	}

	return NewStore(db, table), nil
}

// NewStore wraps an existing database handle.
func NewStore(db *sql.DB, table string) Store {
	if table == "" {
		table = DefaultTable
	}
	return &historyStore{db: db, table: table}
}

func (s *historyStore) ReadAll(ctx context.Context) ([]store.OrderRecord, error) {
	logger := zerolog.Ctx(ctx)

	query := fmt.Sprintf(`
		SELECT
			CNP,
			DESCRICAO,
			QT_TARGET,
			QT_STOCK,
			QT_A_ENCOMENDAR,
			QT_DISPONIVEL,
			QT_ENCOMENDADA,
			FORNECEDOR,
			TIME_STAMP
		FROM %s`, s.table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		if strings.Contains(err.Error(), "no such table") {
			return nil, fmt.Errorf("%w: table %s", ErrSourceMissing, s.table)
		}
		if strings.Contains(err.Error(), "not a database") {
			return nil, fmt.Errorf("%w: not a database", ErrSourceMissing)
		}
		return nil, fmt.Errorf("order history query failed: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close order history rows")
		}
	}(rows)

	var records []store.OrderRecord
	for rows.Next() {
		var (
			productID, description, supplier, timestamp        sql.NullString
			targetQty, stockQty, toOrderQty, availQty, ordered sql.NullString
		)
		if err := rows.Scan(
			&productID, &description, &targetQty, &stockQty,
			&toOrderQty, &availQty, &ordered, &supplier, &timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan order history row: %w", err)
		}

		records = append(records, store.OrderRecord{
			ProductID:    productID.String,
			Description:  description.String,
			TargetQty:    targetQty.String,
			StockQty:     stockQty.String,
			ToOrderQty:   toOrderQty.String,
			AvailableQty: availQty.String,
			OrderedQty:   ordered.String,
			Supplier:     supplier.String,
			Timestamp:    timestamp.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order history rows: %w", err)
	}

	return records, nil
}

func (s *historyStore) Close() error {
	return s.db.Close()
}
