package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/mark1um/bus-seat-manage-api/internal/utils"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	idempotencyHitHeader = "X-Idempotency-Hit"

	idempotencyInFlight = "PROCESSING"
	idempotencyLockTTL  = 10 * time.Second
	idempotencyTTL      = 24 * time.Hour
)

// IdempotencyStore is the subset of the redis client the replay cache uses.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the first completed response for a repeated
// Idempotency-Key on POST/PUT requests. A duplicate that arrives while the
// first is still running gets 409. Server errors are not cached so the
// client may retry. Requests without the header, and every request when
// store is nil, pass straight through.
func Idempotency(store IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || (c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut) {
			c.Next()
			return
		}
		key := c.GetHeader(idempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		reqID := GetRequestID(c)
		idemKey := "idempotency:" + c.Request.Method + ":" + c.Request.URL.Path + ":" + key
		ctx := c.Request.Context()

		val, err := store.Get(ctx, idemKey).Result()
		switch {
		case err == nil && val == idempotencyInFlight:
			abortJSON(c, http.StatusConflict, "conflict", "concurrent request with the same idempotency key")
			return
		case err == nil:
			var resp storedResponse
			if jsonErr := json.Unmarshal([]byte(val), &resp); jsonErr == nil {
				c.Header(idempotencyHitHeader, "true")
				c.Data(resp.Status, resp.ContentType, resp.Body)
				c.Abort()
				return
			}
			// Unreadable entry; drop it and treat as a miss.
			store.Del(ctx, idemKey)
		case !errors.Is(err, redis.Nil):
			utils.LogError(reqID, "idempotency", "get", err)
			c.Next()
			return
		}

		acquired, err := store.SetNX(ctx, idemKey, idempotencyInFlight, idempotencyLockTTL).Result()
		if err != nil {
			utils.LogError(reqID, "idempotency", "lock", err)
			c.Next()
			return
		}
		if !acquired {
			abortJSON(c, http.StatusConflict, "conflict", "concurrent request with the same idempotency key")
			return
		}

		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Next()

		saveCtx := context.WithoutCancel(ctx)
		status := cw.Status()
		if status >= http.StatusInternalServerError {
			store.Del(saveCtx, idemKey)
			return
		}

		payload, err := json.Marshal(storedResponse{
			Status:      status,
			ContentType: cw.Header().Get("Content-Type"),
			Body:        cw.body.Bytes(),
		})
		if err != nil {
			store.Del(saveCtx, idemKey)
			return
		}
		if err := store.Set(saveCtx, idemKey, payload, idempotencyTTL).Err(); err != nil {
			utils.LogError(reqID, "idempotency", "store", err)
		}
	}
}
