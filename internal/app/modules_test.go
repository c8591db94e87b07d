package app

import (
	"testing"

	"github.com/beaconhouse/beacon/internal/pubsub"
	"github.com/stretchr/testify/assert"
)

func TestNewModules(t *testing.T) {
	bus := pubsub.NewWatermillBridge()
	defer bus.Close()

	mods := NewModules(Dependencies{Publisher: bus, Subscriber: bus})

	names := make([]string, 0, len(mods))
	for _, m := range mods {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"leads"}, names)
}
