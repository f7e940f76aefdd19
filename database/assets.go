package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AnnaCarter465/naija-tax/tax"
)

func (db *DB) FindCapitalAssets(ctx context.Context, userID string) ([]tax.CapitalAsset, error) {
	results := []tax.CapitalAsset{}

	rows, err := db.GetSQLDB().QueryContext(
		ctx,
		`
		SELECT id, name, category, cost, acquisition_year
		FROM capital_assets
		WHERE user_id = $1
		ORDER BY acquisition_year, name
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("find capital assets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			a        tax.CapitalAsset
			category string
		)

		err = rows.Scan(&a.ID, &a.Name, &category, &a.Cost, &a.AcquisitionYear)
		if err != nil {
			return nil, fmt.Errorf("scan capital asset: %w", err)
		}
		a.Category = tax.AssetCategory(category)

		results = append(results, a)
	}

	return results, rows.Err()
}

// CreateCapitalAsset stores an asset, assigning it an id when it has none.
func (db *DB) CreateCapitalAsset(ctx context.Context, userID string, a tax.CapitalAsset) (tax.CapitalAsset, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	_, err := db.GetSQLDB().ExecContext(
		ctx,
		`
		INSERT INTO capital_assets (id, user_id, name, category, cost, acquisition_year)
		VALUES ($1, $2, $3, $4, $5, $6)
		`,
		a.ID, userID, a.Name, string(a.Category), a.Cost, a.AcquisitionYear,
	)
	if err != nil {
		return tax.CapitalAsset{}, fmt.Errorf("create capital asset: %w", err)
	}

	db.log.Debug("capital asset created",
		zap.String("user_id", userID),
		zap.Stringer("asset_id", a.ID),
		zap.String("category", string(a.Category)),
	)

	return a, nil
}
