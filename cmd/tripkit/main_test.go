package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripkit/places"
)

func TestPlaceLine(t *testing.T) {
	t.Run("name and address", func(t *testing.T) {
		line := placeLine(places.Place{DisplayName: "Casa Toni", FormattedAddress: "Calle de la Cruz, 14"})
		assert.Equal(t, "Casa Toni - Calle de la Cruz, 14", line)
	})

	t.Run("name only", func(t *testing.T) {
		line := placeLine(places.Place{DisplayName: "Casa Toni"})
		assert.Equal(t, "Casa Toni", line)
	})

	t.Run("output stays ASCII", func(t *testing.T) {
		line := placeLine(places.Place{DisplayName: "Prado", FormattedAddress: "Paseo del Prado"})
		for _, r := range line {
			assert.Less(t, r, rune(128))
		}
	})
}
