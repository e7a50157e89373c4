package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/hgschmie/askpass/cmd"
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp:          true,
		DisableQuote:              true,
		EnvironmentOverrideColors: true,
		DisableLevelTruncation:    true,
	})

}

func main() {
	cmd.Execute()
}
