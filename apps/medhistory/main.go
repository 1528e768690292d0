package main

import (
	"fmt"
	"log"
	"os"

	"github.com/medhistory/medhistory/core"
	"github.com/medhistory/medhistory/core/session"
	apisvc "github.com/medhistory/medhistory/services/api"
	logsvc "github.com/medhistory/medhistory/services/logger"
)

func main() {
	defer os.Exit(0)

	std := log.New(os.Stderr, "", log.LstdFlags)
	logger := logsvc.NewLogger(std, core.Conf)

	sess, err := session.Open(core.Conf.SessionFile)
	if err != nil {
		logger.Fatal("opening session", err)
	}

	client := apisvc.NewClient(&apisvc.Options{
		BaseURL: core.Conf.API.BaseURL,
		Timeout: core.Conf.API.Timeout,
		Session: sess,
		Logger:  logger,
	})

	cli := commandLine{
		api:     client,
		session: sess,
		out:     os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(1)
	}
}
