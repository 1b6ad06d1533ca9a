package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	DB          *gorm.DB
	RedisClient *redis.Client
}

func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dbStatus := "ok"
	redisStatus := "ok"

	if err := h.DB.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		dbStatus = "error"
	}

	if h.RedisClient == nil {
		redisStatus = "disabled"
	} else if err := h.RedisClient.Ping(ctx).Err(); err != nil {
		redisStatus = "error"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":   "ok",
		"database": dbStatus,
		"redis":    redisStatus,
	})
}
