package app

import (
	"github.com/geodykes/geodykes-backend/internal/middleware"
	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
)

type Middleware struct {
	RequestID *middleware.RequestIDMiddleware
}

func wireMiddleware(log *logger.Logger) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		RequestID: middleware.NewRequestIDMiddleware(log),
	}
}
