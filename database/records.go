package database

import (
	"context"
	"fmt"
	"time"

	"github.com/AnnaCarter465/naija-tax/tax"
)

type RecordKind string

const (
	RecordIncome  RecordKind = "income"
	RecordExpense RecordKind = "expense"
)

// yearRange is the half-open [1 Jan year, 1 Jan year+1) interval.
func yearRange(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}

// FindRecords returns the user's income or expense records dated in year.
func (db *DB) FindRecords(ctx context.Context, userID string, kind RecordKind, year int) ([]tax.Record, error) {
	results := []tax.Record{}
	from, to := yearRange(year)

	rows, err := db.GetSQLDB().QueryContext(
		ctx,
		`
		SELECT record_date, amount, category, description
		FROM records
		WHERE user_id = $1 AND kind = $2 AND record_date >= $3 AND record_date < $4
		ORDER BY record_date
		`,
		userID, string(kind), from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("find %s records: %w", kind, err)
	}
	defer rows.Close()

	for rows.Next() {
		var r tax.Record

		err = rows.Scan(&r.Date, &r.Amount, &r.Category, &r.Description)
		if err != nil {
			return nil, fmt.Errorf("scan %s record: %w", kind, err)
		}

		results = append(results, r)
	}

	return results, rows.Err()
}

func (db *DB) FindIncomeRecords(ctx context.Context, userID string, year int) ([]tax.Record, error) {
	return db.FindRecords(ctx, userID, RecordIncome, year)
}

func (db *DB) FindExpenseRecords(ctx context.Context, userID string, year int) ([]tax.Record, error) {
	return db.FindRecords(ctx, userID, RecordExpense, year)
}
