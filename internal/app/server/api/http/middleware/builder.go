package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container collects per-handler middleware chains during API assembly.
type Container struct {
	huma.Middlewares
}

func NewContainer() *Container {
	return &Container{
		Middlewares: make(huma.Middlewares, 0),
	}
}

// Add appends one middleware to the container.
func (mc *Container) Add(middleware func(ctx huma.Context, next func(huma.Context))) {
	mc.Middlewares = append(mc.Middlewares, middleware)
}

// GetAllAndClear hands out the collected chain and resets the container for
// the next handler.
func (mc *Container) GetAllAndClear() huma.Middlewares {
	result := mc.Middlewares
	mc.Middlewares = nil
	return result
}
