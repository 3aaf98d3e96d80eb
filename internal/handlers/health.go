package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// DBPinger defines the interface for the database liveness check.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// CachePinger defines the interface for the Redis liveness check.
type CachePinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// HealthData is the payload for the health endpoint.
// swagger:model HealthData
type HealthData struct {
	Status    string    `json:"status"`
	Database  bool      `json:"database"`
	Cache     bool      `json:"cache"`
	AI        bool      `json:"ai"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHealthHandler returns an HTTP handler reporting component liveness.
// The database is the only hard dependency: a failed database check answers
// 503, degraded cache or AI still answers 200.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.Response "Healthy or degraded"
// @Failure 503 {object} handlers.Response "Database unreachable"
// @Router /health [get]
func NewHealthHandler(db DBPinger, cache CachePinger, ai GrokInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		data := HealthData{
			Status:    "ok",
			Database:  db.PingContext(ctx) == nil,
			AI:        ai.Available(),
			Timestamp: time.Now().UTC(),
		}
		if cache != nil {
			data.Cache = cache.Ping(ctx).Err() == nil
		}

		status := http.StatusOK
		if !data.Database {
			data.Status = "unhealthy"
			status = http.StatusServiceUnavailable
		} else if !data.Cache || !data.AI {
			data.Status = "degraded"
		}

		respond(w, status, Response{Success: data.Database, Data: data})
	}
}
