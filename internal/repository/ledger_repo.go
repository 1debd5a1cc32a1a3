package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/arnav-sinha2713/trading-journal/config"
	"github.com/arnav-sinha2713/trading-journal/internal/model"
	"github.com/arnav-sinha2713/trading-journal/pkg/logger"
)

// LedgerRepository maps a user identity to its worksheet and exposes the
// ledger contract: read everything, or append one record.
type LedgerRepository interface {
	Read(ctx context.Context, identity string) (model.Ledger, error)
	Append(ctx context.Context, identity string, record model.TradeRecord) (model.Ledger, error)
	EnsureCreated(ctx context.Context, identity string) error
}

type ledgerRepository struct {
	store TableStore
	cfg   *config.Config
	log   *logger.Logger
}

func NewLedgerRepository(store TableStore, cfg *config.Config, log *logger.Logger) LedgerRepository {
	return &ledgerRepository{
		store: store,
		cfg:   cfg,
		log:   log,
	}
}

// Read fetches the full ledger for the identity. A missing worksheet is the
// normal first-use state and yields an empty ledger, not an error.
func (r *ledgerRepository) Read(ctx context.Context, identity string) (model.Ledger, error) {
	name := SanitizeIdentity(identity)

	rows, err := r.store.ReadTable(ctx, name)
	if err != nil {
		if errors.Is(err, ErrTableNotFound) {
			return model.Ledger{}, nil
		}
		return nil, fmt.Errorf("failed to read ledger for %s: %w", name, err)
	}

	return r.decodeRows(ctx, name, rows), nil
}

// Append re-reads the current ledger, concatenates the new record and
// writes the whole table back as one replace. A missing worksheet is
// created with the configured reserved capacity and the write retried
// exactly once. Last writer wins across concurrent sessions.
func (r *ledgerRepository) Append(ctx context.Context, identity string, record model.TradeRecord) (model.Ledger, error) {
	name := SanitizeIdentity(identity)

	ledger, err := r.Read(ctx, identity)
	if err != nil {
		return nil, err
	}
	ledger = append(ledger, record)

	rows := make([][]string, 0, len(ledger)+1)
	rows = append(rows, model.Header())
	for _, rec := range ledger {
		rows = append(rows, rec.ToRow())
	}

	if err := r.store.WriteTable(ctx, name, rows); err != nil {
		if !errors.Is(err, ErrTableNotFound) {
			return nil, fmt.Errorf("failed to write ledger for %s: %w", name, err)
		}

		r.log.InfoContext(ctx, "Worksheet missing, creating before retry",
			logger.StringField("worksheet", name),
		)
		if err := r.EnsureCreated(ctx, identity); err != nil {
			return nil, err
		}
		if err := r.store.WriteTable(ctx, name, rows); err != nil {
			return nil, fmt.Errorf("failed to write ledger for %s after create: %w", name, err)
		}
	}

	return ledger, nil
}

// EnsureCreated registers the identity's worksheet with the configured
// reserved capacity. Idempotent; an existing worksheet is left untouched.
func (r *ledgerRepository) EnsureCreated(ctx context.Context, identity string) error {
	name := SanitizeIdentity(identity)
	if err := r.store.CreateTable(ctx, name, r.cfg.Journal.WorksheetRowCapacity, r.cfg.Journal.WorksheetColCapacity); err != nil {
		return fmt.Errorf("failed to create worksheet for %s: %w", name, err)
	}
	return nil
}

func (r *ledgerRepository) decodeRows(ctx context.Context, name string, rows [][]string) model.Ledger {
	// Drop the header row when present; old hand-created tabs may lack it.
	if len(rows) > 0 && len(rows[0]) > 0 && rows[0][0] == model.Header()[0] {
		rows = rows[1:]
	}

	ledger := make(model.Ledger, 0, len(rows))
	for i, cells := range rows {
		rec := model.RecordFromRow(cells)
		if rec.Date == "" && rec.Symbol == "" {
			r.log.DebugContext(ctx, "Skipping blank worksheet row",
				logger.StringField("worksheet", name),
				logger.IntField("row", i),
			)
			continue
		}
		ledger = append(ledger, rec)
	}
	return ledger
}
