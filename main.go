package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/AnnaCarter465/naija-tax/config"
	"github.com/AnnaCarter465/naija-tax/database"
	"github.com/AnnaCarter465/naija-tax/handler"
	"github.com/AnnaCarter465/naija-tax/logger"
	"github.com/AnnaCarter465/naija-tax/tax"
)

func loadRules(path string) (tax.Rules, error) {
	if path == "" {
		return tax.DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return tax.Rules{}, fmt.Errorf("read tax rules: %w", err)
	}

	return tax.ParseRules(data)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	rules, err := loadRules(cfg.Rules.Path)
	if err != nil {
		log.Fatal("failed to load tax rules", zap.String("path", cfg.Rules.Path), zap.Error(err))
	}
	calc := tax.NewCalculator(rules)

	db, err := database.NewDB(cfg.Database, log)
	if err != nil {
		log.Fatal("cannot connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		log.Fatal("cannot migrate database", zap.Error(err))
	}

	vl := validator.New()

	health := handler.NewHealthHandler(db, log)
	taxes := handler.NewTaxHandler(vl, calc, db, log)
	deductions := handler.NewDeductionHandler(vl, calc, db, log)
	assets := handler.NewAssetHandler(vl, db, log)
	transactions := handler.NewTransactionHandler(vl, calc, db, log)

	e := echo.New()
	e.HideBanner = true
	e.Use(logger.Middleware(log))
	e.Use(logger.Recover(log))

	e.GET("/", health.Healthcheck)

	e.POST("/tax/personal", taxes.CalculatePersonalTax)
	e.POST("/tax/business", taxes.CalculateBusinessTax)
	e.POST("/vat/returns", transactions.CalculateVATReturn)
	e.POST("/wht/calculations", transactions.CalculateWHT)
	e.POST("/wht/summaries", transactions.SummarizeWHT)
	e.POST("/deductions/suggestions", deductions.SuggestDeductions)

	users := e.Group("/users/:userID")
	users.GET("/tax/:year", taxes.CalculateUserTax)
	users.POST("/tax/:year/business", taxes.CalculateUserBusinessTax)
	users.PUT("/deductions/:year", deductions.UpdateDeductions)
	users.POST("/assets", assets.CreateAsset)
	users.GET("/assets", assets.ListAssets)
	users.GET("/vat/:year", transactions.UserVATReturn)
	users.GET("/wht/:year", transactions.UserWHTSummary)

	go func() {
		log.Info("starting server", zap.String("address", cfg.Address()))
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	<-shutdown

	log.Info("shutting down the server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
