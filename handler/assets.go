package handler

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/AnnaCarter465/naija-tax/tax"
)

type AssetStore interface {
	FindCapitalAssets(ctx context.Context, userID string) ([]tax.CapitalAsset, error)
	CreateCapitalAsset(ctx context.Context, userID string, a tax.CapitalAsset) (tax.CapitalAsset, error)
}

type AssetHandler struct {
	vl    *validator.Validate
	store AssetStore
	log   *zap.Logger
}

func NewAssetHandler(vl *validator.Validate, store AssetStore, log *zap.Logger) *AssetHandler {
	return &AssetHandler{vl, store, log}
}

func (a *AssetHandler) CreateAsset(c echo.Context) error {
	userID := c.Param("userID")

	var req AssetRequest

	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}

	if err := a.vl.Struct(req); err != nil {
		return badRequest(c)
	}

	asset, err := a.store.CreateCapitalAsset(c.Request().Context(), userID, req.toAsset())
	if err != nil {
		a.log.Error("failed to create capital asset", zap.String("user_id", userID), zap.Error(err))
		return internalError(c)
	}

	return c.JSON(http.StatusCreated, asset)
}

func (a *AssetHandler) ListAssets(c echo.Context) error {
	userID := c.Param("userID")

	assets, err := a.store.FindCapitalAssets(c.Request().Context(), userID)
	if err != nil {
		a.log.Error("failed to find capital assets", zap.String("user_id", userID), zap.Error(err))
		return internalError(c)
	}

	return c.JSON(http.StatusOK, assets)
}
