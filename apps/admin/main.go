package main

import (
	"log"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/trezcool/edumind/core"
	logsvc "github.com/trezcool/edumind/services/logger"
)

func main() {
	defer os.Exit(0)

	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)
	logger.Enable(!conf.Debug)

	// start CLI
	cli := commandLine{
		stdin:         os.Stdin,
		stdout:        os.Stdout,
		clock:         clockwork.NewRealClock(),
		responseDelay: conf.Workflow.ResponseDelay,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
		}
		os.Exit(1)
	}
}
