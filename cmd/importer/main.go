package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(config.NewConfig).ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("importer failed")
		stop()
		os.Exit(1)
	}
}
