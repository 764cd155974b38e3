package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/vitalbridge/vitalbridge/gatewayservice"
)

func main() {
	if err := gatewayservice.Run(); err != nil {
		log.Error().Err(err).Msg("health-gateway exited with error")
		os.Exit(1)
	}
}
