package healthcheck

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/nutrobots/nutrobot-go/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Healthcheck that starts http server, also exposing /metrics for the
// Prometheus scraper
func StartHealthcheck(ctx context.Context, cfg config.AppConfig) {
	// start http server
	go func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/healthz", HealthCheckHandler())
		mux.Handle("/metrics", promhttp.Handler())

		port := strconv.Itoa(cfg.Port)
		err := http.ListenAndServe(":"+port, mux)
		if err != nil && err != http.ErrServerClosed {
			log.Printf("healthcheck server error: %v", err)
		}
	}()

}

func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
