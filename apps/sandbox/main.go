// Command sandbox runs the local fake backend with demo accounts so the
// medhistory CLI can be exercised without the real API.
package main

import (
	"log"
	"os"

	"github.com/medhistory/medhistory/core"
	"github.com/medhistory/medhistory/sandbox"
	logsvc "github.com/medhistory/medhistory/services/logger"
)

func main() {
	std := log.New(os.Stdout, "SANDBOX : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewLogger(std, core.Conf)

	store := sandbox.NewStore()
	if err := sandbox.Seed(store); err != nil {
		logger.Fatal("seeding store", err)
	}
	logger.Info("demo accounts: admin|doctor|student@medhistory.local")

	srv := sandbox.NewServer(&sandbox.Options{
		Address: core.Conf.Sandbox.Address,
		Store:   store,
		Logger:  logger,
	})
	logger.Info("sandbox listening on " + core.Conf.Sandbox.Address)
	srv.Start()
}
