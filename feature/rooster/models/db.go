package models

import (
	"context"
	"errors"
	"fmt"

	"preekrooster/core/utils"

	"gorm.io/gorm"
)

// expected column order of the configured query.
const rowColumns = 8

// RowSource reads upcoming service rows through the operator-configured
// query. It owns no filtering itself; which rows count as "upcoming" is
// decided by the query.
type RowSource struct {
	db    *gorm.DB
	query string
}

// NewRowSource creates a row source for the given query.
func NewRowSource(db *gorm.DB, query string) *RowSource {
	return &RowSource{db: db, query: query}
}

// FetchRows executes the configured query and returns the rows in the
// database's natural order.
func (s *RowSource) FetchRows(ctx context.Context) ([]ServiceRow, error) {
	if s.query == "" {
		return nil, errors.New("row source query is not configured")
	}

	rows, err := s.db.WithContext(ctx).Raw(s.query).Rows()
	if err != nil {
		return nil, fmt.Errorf("querying service rows: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading row columns: %w", err)
	}
	if len(cols) != rowColumns {
		return nil, fmt.Errorf("service row query returned %d columns, want %d (id, date, time, title, voorganger, collecte1..3)", len(cols), rowColumns)
	}

	var result []ServiceRow
	for rows.Next() {
		values := make([]any, rowColumns)
		ptrs := make([]any, rowColumns)
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning service row: %w", err)
		}

		// Column values arrive as driver-dependent types ([]byte, int64,
		// time.Time), hence the conversions.
		date, ok := utils.ToTime(values[1])
		if !ok {
			return nil, fmt.Errorf("row %d: unreadable service date %v", utils.ToInt(values[0]), values[1])
		}

		result = append(result, ServiceRow{
			ID:         utils.ToInt(values[0]),
			Date:       date,
			Time:       utils.ToString(values[2]),
			Title:      utils.ToString(values[3]),
			Voorganger: utils.ToString(values[4]),
			Collecten: [3]string{
				utils.ToString(values[5]),
				utils.ToString(values[6]),
				utils.ToString(values[7]),
			},
		})
	}

	return result, rows.Err()
}
