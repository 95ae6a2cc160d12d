package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/entity"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/repository"
	"github.com/swarnaabhushan/backoffice-api/internal/presentation/http/dto/response"
	"github.com/swarnaabhushan/backoffice-api/pkg/apperror"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
	Log  *zap.Logger
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func requestHash(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// Idempotency replays the stored response when a signed-in user repeats a
// write with the same Idempotency-Key. The key is reserved before the
// handler runs, so a concurrent duplicate is turned away instead of being
// processed twice. Only successful responses are kept; any other outcome
// releases the key so a rejected payment can be corrected and resent.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		userID := GetUserID(c)
		if key == "" || userID == nil {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "Failed to read request body")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		hash := requestHash(body)

		ctx := c.Request.Context()
		existing, err := config.Repo.GetByKey(ctx, key, *userID)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if existing != nil && existing.IsExpired() {
			if err := config.Repo.DeleteExpired(ctx); err != nil {
				config.Log.Warn("failed to purge expired idempotency keys", zap.Error(err))
			}
			existing = nil
		}

		if existing == nil {
			ikey := &entity.IdempotencyKey{
				Key:         key,
				UserID:      *userID,
				Endpoint:    c.Request.Method + " " + c.FullPath(),
				RequestHash: hash,
				ExpiresAt:   time.Now().Add(IdempotencyKeyTTL),
			}
			reserved, err := config.Repo.Reserve(ctx, ikey)
			if err != nil {
				response.Error(c, err)
				c.Abort()
				return
			}
			if reserved {
				process(c, config, ikey)
				return
			}

			// another request took the key between the lookup and the insert
			existing, err = config.Repo.GetByKey(ctx, key, *userID)
			if err != nil {
				response.Error(c, err)
				c.Abort()
				return
			}
			if existing == nil {
				response.Error(c, apperror.NewConflictError("Idempotency-Key was already used for a different request"))
				c.Abort()
				return
			}
		}

		switch {
		case existing.RequestHash != hash:
			response.Error(c, apperror.NewConflictError("Idempotency-Key was already used for a different request"))
		case existing.IsPending():
			response.Error(c, apperror.NewConflictError("A request with this Idempotency-Key is still being processed"))
		default:
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
		}
		c.Abort()
	}
}

// process runs the handler under a reserved key and then either stores the
// response or releases the key.
func process(c *gin.Context, config IdempotencyConfig, ikey *entity.IdempotencyKey) {
	blw := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
	c.Writer = blw

	c.Next()

	ctx := context.WithoutCancel(c.Request.Context())
	status := c.Writer.Status()
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		if err := config.Repo.Release(ctx, ikey.ID); err != nil {
			config.Log.Warn("failed to release idempotency key", zap.String("key", ikey.Key), zap.Error(err))
		}
		return
	}
	if err := config.Repo.Complete(ctx, ikey.ID, status, blw.body.String()); err != nil {
		config.Log.Warn("failed to store idempotency response", zap.String("key", ikey.Key), zap.Error(err))
	}
}
