package logging

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// Middleware attaches a fresh LogData to each request's context and logs
// a completion line with the accumulated fields and timings.
func Middleware(logger *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(logger)
		logData.AddData("method", req.Method)
		logData.AddData("path", req.URL.Path)

		endTimer := logData.AddTiming("durationMs")
		next.ServeHTTP(w, req.WithContext(WithLogData(req.Context(), logData)))
		endTimer()

		logData.Log().Info("Request.Complete")
	})
}
