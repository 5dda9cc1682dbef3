package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// HumaMiddleware attaches a fresh LogData to every request handled by the
// Huma API and emits one completion line per request with the accumulated
// timings and data points.
func HumaMiddleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(logger)
		endTimer := logData.AddTiming("duration")

		next(huma.WithContext(ctx, ContextWithLogData(ctx.Context(), logData)))

		endTimer()
		logData.AddData("status", ctx.Status())
		logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
	}
}
