package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	intdb "github.com/mark1um/bus-seat-manage-api/internal/db"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "bus seat api running"})
}

// DBCheck reports which owned tables exist. A missing table or connection
// answers 500 with the same body.
func (h *Handler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusInternalServerError, "db_unavailable", "database not connected", nil)
		return
	}
	tables := intdb.SchemaStatus(c.Request.Context(), h.DB)
	ok := true
	for _, present := range tables {
		ok = ok && present
	}
	status := http.StatusOK
	msg := "database connection OK"
	if !ok {
		status = http.StatusInternalServerError
		msg = "database schema incomplete"
	}
	c.JSON(status, gin.H{"message": msg, "tables": tables})
}

// routeTable lets /api/routes list the engine that serves it.
type routeTable struct {
	mu     sync.RWMutex
	engine *gin.Engine
}

// SetRouter stores the active gin engine for /api/routes.
func (h *Handler) SetRouter(r *gin.Engine) {
	h.routes.mu.Lock()
	defer h.routes.mu.Unlock()
	h.routes.engine = r
}

func (h *Handler) Routes(c *gin.Context) {
	h.routes.mu.RLock()
	r := h.routes.engine
	h.routes.mu.RUnlock()
	if r == nil {
		respondError(c, http.StatusServiceUnavailable, "router_not_ready", "router not ready", nil)
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{"method": rt.Method, "path": rt.Path})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
