package handlers

import (
	"context"
	"log"
	"net/http"
)

type HealthChecker interface {
	Check(ctx context.Context) error
}

type HealthHandler struct {
	checker HealthChecker
}

func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.checker != nil {
		if err := h.checker.Check(r.Context()); err != nil {
			log.Printf("ERROR [health.Check]: %v", err)
			http.Error(w, "Database unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	w.Write([]byte("OK"))
}
