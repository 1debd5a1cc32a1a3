package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arnav-sinha2713/trading-journal/internal/model"
	"github.com/arnav-sinha2713/trading-journal/pkg/logger"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrTableNotFound marks a read or write against a worksheet that was never
// created. Callers branch on it; it never reaches the user.
var ErrTableNotFound = errors.New("worksheet not found")

// TableStore is the spreadsheet-like backing store: named row tables with
// whole-table replacement as the only write.
type TableStore interface {
	ReadTable(ctx context.Context, name string) ([][]string, error)
	WriteTable(ctx context.Context, name string, rows [][]string) error
	CreateTable(ctx context.Context, name string, rowCapacity, colCapacity int) error
}

type worksheetStore struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWorksheetStore(db *gorm.DB, log *logger.Logger) TableStore {
	return &worksheetStore{
		db:  db,
		log: log,
	}
}

func (s *worksheetStore) ReadTable(ctx context.Context, name string) ([][]string, error) {
	if err := s.findWorksheet(ctx, name); err != nil {
		return nil, err
	}

	var stored []model.WorksheetRow
	if err := s.db.WithContext(ctx).
		Where("worksheet_name = ?", name).
		Order("row_index ASC").
		Find(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to read worksheet %s: %w", name, err)
	}

	rows := make([][]string, 0, len(stored))
	for _, row := range stored {
		var cells []string
		if err := json.Unmarshal(row.Cells, &cells); err != nil {
			return nil, fmt.Errorf("corrupt cells in worksheet %s row %d: %w", name, row.RowIndex, err)
		}
		rows = append(rows, cells)
	}

	return rows, nil
}

// WriteTable replaces the entire contents of the worksheet in one
// transaction. Last writer wins; there is no optimistic concurrency check.
func (s *worksheetStore) WriteTable(ctx context.Context, name string, rows [][]string) error {
	if err := s.findWorksheet(ctx, name); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worksheet_name = ?", name).Delete(&model.WorksheetRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear worksheet %s: %w", name, err)
		}

		for i, cells := range rows {
			encoded, err := json.Marshal(cells)
			if err != nil {
				return fmt.Errorf("failed to encode row %d for worksheet %s: %w", i, name, err)
			}
			row := model.WorksheetRow{
				WorksheetName: name,
				RowIndex:      i,
				Cells:         datatypes.JSON(encoded),
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to write row %d of worksheet %s: %w", i, name, err)
			}
		}

		// Reserved capacity is advisory and grows with the table.
		if err := tx.Model(&model.Worksheet{}).
			Where("name = ? AND row_capacity < ?", name, len(rows)).
			Update("row_capacity", len(rows)).Error; err != nil {
			return fmt.Errorf("failed to grow worksheet %s capacity: %w", name, err)
		}

		return nil
	})
}

func (s *worksheetStore) CreateTable(ctx context.Context, name string, rowCapacity, colCapacity int) error {
	sheet := model.Worksheet{
		Name:        name,
		RowCapacity: rowCapacity,
		ColCapacity: colCapacity,
	}
	if err := s.db.WithContext(ctx).
		Where(model.Worksheet{Name: name}).
		FirstOrCreate(&sheet).Error; err != nil {
		return fmt.Errorf("failed to create worksheet %s: %w", name, err)
	}

	s.log.InfoContext(ctx, "Created worksheet",
		logger.StringField("worksheet", name),
		logger.IntField("row_capacity", rowCapacity),
		logger.IntField("col_capacity", colCapacity),
	)
	return nil
}

func (s *worksheetStore) findWorksheet(ctx context.Context, name string) error {
	var sheet model.Worksheet
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&sheet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTableNotFound
		}
		return fmt.Errorf("failed to look up worksheet %s: %w", name, err)
	}
	return nil
}
