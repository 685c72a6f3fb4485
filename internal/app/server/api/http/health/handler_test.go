package health

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestHandler_root(t *testing.T) {
	// Arrange
	log := slog.Default()
	handler := NewHandler(log, huma.Middlewares{})

	// Act
	output, err := handler.root(context.Background(), &Input{})

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, output)
}

func TestNewHandler(t *testing.T) {
	handler := NewHandler(slog.Default(), huma.Middlewares{})

	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
}
