package model

import (
	"time"

	"gorm.io/datatypes"
)

// Worksheet registers one named row table, one per user identity. The
// capacities are reserved on creation and grow as writes exceed them.
type Worksheet struct {
	Name        string    `gorm:"primaryKey;size:31" json:"name"`
	RowCapacity int       `gorm:"not null" json:"row_capacity"`
	ColCapacity int       `gorm:"not null" json:"col_capacity"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Worksheet) TableName() string {
	return "worksheets"
}

// WorksheetRow holds one positioned row of a worksheet, cells as a JSON
// array of strings.
type WorksheetRow struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	WorksheetName string         `gorm:"not null;index;size:31" json:"worksheet_name"`
	RowIndex      int            `gorm:"not null" json:"row_index"`
	Cells         datatypes.JSON `gorm:"type:jsonb;not null" json:"cells"`
}

func (WorksheetRow) TableName() string {
	return "worksheet_rows"
}
