// Package testlog wires the test logging profile so debug traces from
// the codec and validator show up in -v runs.
package testlog

import (
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/drennick/aamvactl/internal/logging"
)

func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	log.Info().Str("test", t.Name()).Msg("start")
}
