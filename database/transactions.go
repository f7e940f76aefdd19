package database

import (
	"context"
	"fmt"
	"time"

	"github.com/AnnaCarter465/naija-tax/tax"
)

// FindVATTransactions returns the user's VAT transactions dated in
// [from, to), split by direction.
func (db *DB) FindVATTransactions(ctx context.Context, userID string, from, to time.Time) (output, input []tax.VATTransaction, err error) {
	output = []tax.VATTransaction{}
	input = []tax.VATTransaction{}

	rows, err := db.GetSQLDB().QueryContext(
		ctx,
		`
		SELECT id, tx_date, direction, category, amount, vat_amount, is_exempt
		FROM vat_transactions
		WHERE user_id = $1 AND tx_date >= $2 AND tx_date < $3
		ORDER BY tx_date
		`,
		userID, from, to,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("find vat transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			tx        tax.VATTransaction
			direction string
		)

		err = rows.Scan(&tx.ID, &tx.Date, &direction, &tx.Category, &tx.Amount, &tx.VATAmount, &tx.IsExempt)
		if err != nil {
			return nil, nil, fmt.Errorf("scan vat transaction: %w", err)
		}
		tx.Direction = tax.VATDirection(direction)

		if tx.Direction == tax.VATInput {
			input = append(input, tx)
		} else {
			output = append(output, tx)
		}
	}

	return output, input, rows.Err()
}

func (db *DB) FindWHTTransactions(ctx context.Context, userID string, from, to time.Time) ([]tax.WHTTransaction, error) {
	results := []tax.WHTTransaction{}

	rows, err := db.GetSQLDB().QueryContext(
		ctx,
		`
		SELECT id, tx_date, payment_type, recipient_type, recipient_name, gross_amount
		FROM wht_transactions
		WHERE user_id = $1 AND tx_date >= $2 AND tx_date < $3
		ORDER BY tx_date
		`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("find wht transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			tx                         tax.WHTTransaction
			paymentType, recipientType string
		)

		err = rows.Scan(&tx.ID, &tx.Date, &paymentType, &recipientType, &tx.RecipientName, &tx.GrossAmount)
		if err != nil {
			return nil, fmt.Errorf("scan wht transaction: %w", err)
		}
		tx.PaymentType = tax.PaymentType(paymentType)
		tx.RecipientType = tax.RecipientType(recipientType)

		results = append(results, tx)
	}

	return results, rows.Err()
}

// PeriodRange is the date interval a VAT period covers.
func PeriodRange(p tax.VATPeriod) (time.Time, time.Time) {
	if p.Annual() {
		return yearRange(p.Year)
	}
	from := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}
