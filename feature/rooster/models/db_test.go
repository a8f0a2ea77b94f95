package models

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const testQuery = "SELECT id, datum, tijd, dienst, voorganger, collecte1, collecte2, collecte3 FROM rooster"

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestFetchRows(t *testing.T) {
	db, mock := setupMockDB(t)
	source := NewRowSource(db, testQuery)

	date := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "datum", "tijd", "dienst", "voorganger", "collecte1", "collecte2", "collecte3"})
	rows.AddRow(1, date, []byte("09.30"), []byte(" morgendienst "), []byte("Ds. Jansen"), []byte("Kerk"), []byte("Diaconie"), []byte("Onderhoud"))
	rows.AddRow(2, []byte("2024-06-16"), "10:00", "avonddienst", "Ds. de Vries", "Zending", "Jeugdwerk", "Orgelfonds")

	mock.ExpectQuery("SELECT id, datum").WillReturnRows(rows)

	result, err := source.FetchRows(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, 1, result[0].ID)
	assert.Equal(t, date, result[0].Date)
	assert.Equal(t, "09.30", result[0].Time)
	assert.Equal(t, " morgendienst ", result[0].Title)
	assert.Equal(t, "Ds. Jansen", result[0].Voorganger)
	assert.Equal(t, [3]string{"Kerk", "Diaconie", "Onderhoud"}, result[0].Collecten)

	// Date delivered as []byte still parses.
	assert.Equal(t, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), result[1].Date)
}

func TestFetchRows_WrongColumnCount(t *testing.T) {
	db, mock := setupMockDB(t)
	source := NewRowSource(db, "SELECT id, datum FROM rooster")

	rows := sqlmock.NewRows([]string{"id", "datum"}).AddRow(1, "2024-06-09")
	mock.ExpectQuery("SELECT id, datum").WillReturnRows(rows)

	_, err := source.FetchRows(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "columns")
}

func TestFetchRows_NoQuery(t *testing.T) {
	db, _ := setupMockDB(t)
	source := NewRowSource(db, "")

	_, err := source.FetchRows(context.Background())
	assert.Error(t, err)
}
