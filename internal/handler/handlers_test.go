package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/starwars-api/internal/config"
	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/internal/service"
)

func TestNewHandlers(t *testing.T) {
	t.Run("builds the HTTP handler", func(t *testing.T) {
		handlers, err := NewHandlers(&service.Services{}, config.StructuredConfig{}, logger.Nop())

		require.NoError(t, err)
		assert.NotNil(t, handlers.HTTP)
	})

	t.Run("nil services", func(t *testing.T) {
		handlers, err := NewHandlers(nil, config.StructuredConfig{}, logger.Nop())

		assert.ErrorIs(t, err, errNoServices)
		assert.Nil(t, handlers)
	})
}
