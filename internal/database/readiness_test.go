package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetCheck_PingContext(t *testing.T) {
	existsQuery := regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM datasets WHERE name = $1)`)

	tests := []struct {
		name    string
		setup   func(m sqlmock.Sqlmock)
		wantErr error
		wantMsg string
	}{
		{
			name: "ready",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectPing()
				m.ExpectQuery(existsQuery).WithArgs("dummy").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
		},
		{
			name: "dataset row missing",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectPing()
				m.ExpectQuery(existsQuery).WithArgs("dummy").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			wantErr: ErrDatasetMissing,
		},
		{
			name: "ping fails",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectPing().WillReturnError(errors.New("connection refused"))
			},
			wantMsg: "db ping: connection refused",
		},
		{
			name: "table missing",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectPing()
				m.ExpectQuery(existsQuery).WithArgs("dummy").
					WillReturnError(errors.New(`relation "datasets" does not exist`))
			},
			wantMsg: `check dataset: relation "datasets" does not exist`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer db.Close()
			tt.setup(mock)

			err = NewDatasetCheck(db, "dummy").PingContext(context.Background())

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				assert.EqualError(t, err, tt.wantMsg)
			default:
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
