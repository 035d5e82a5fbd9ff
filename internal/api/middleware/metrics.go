package middleware

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
)

// MetricsMiddleware пишет длительность и статус запросов по шаблону маршрута
func MetricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			snapshot := httpsnoop.CaptureMetrics(next, w, r)
			m.ObserveHTTP(r.Method, routeTemplate(r), snapshot.Code, snapshot.Duration)
		})
	}
}

// routeTemplate шаблон пути, чтобы не плодить метки по confirmation code и id
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
