package main

import (
	"os"

	"github.com/ymakhloufi/loancalc/internal/app/accrual"
	"github.com/ymakhloufi/loancalc/internal/app/cli"
	"github.com/ymakhloufi/loancalc/internal/app/history"
	"github.com/ymakhloufi/loancalc/internal/app/validator"
	"github.com/ymakhloufi/loancalc/internal/pkg/config"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	noErr(err)

	logger, err := cfg.NewLogger()
	noErr(err)
	defer func() { _ = logger.Sync() }()

	v := validator.New(logger.Named("Validator"))
	calc := accrual.NewCalculator(cfg.NegativeSpanPolicy, logger.Named("Calculator"))
	store := history.NewStore(logger.Named("History"))
	console := cli.NewConsole(os.Stdin, os.Stdout)

	session := cli.NewSession(console, v, calc, store, logger.Named("Session"))
	if err := session.Run(); err != nil {
		logger.Error("session aborted", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func noErr(err error) {
	if err != nil {
		panic("failed to initialize something important: " + err.Error())
	}
}
