package middleware

import (
	"bytes"
	"net/http"
	"time"

	"yatube/internal/config"
	"yatube/internal/ports/pagecache"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CachePage serves GET responses from cache for ttl. Entries are keyed by
// name, the actor and the request URI. Nothing invalidates them early:
// writes show up once the entry expires or the cache is cleared.
func CachePage(cache pagecache.PageCache, ttl time.Duration, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := name + ":" + actorKey(c) + ":" + c.Request.URL.RequestURI()

		page, ok, err := cache.Get(ctx, key)
		if err != nil {
			config.Logger.Warn("Page cache read failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "text/html; charset=utf-8", page)
			c.Abort()
			return
		}

		rec := &pageRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		if rec.Status() != http.StatusOK || rec.body.Len() == 0 {
			return
		}
		if err := cache.Set(ctx, key, rec.body.Bytes(), ttl); err != nil {
			config.Logger.Warn("Page cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
}

func actorKey(c *gin.Context) string {
	if id, ok := ActorID(c); ok {
		return id.String()
	}
	return "anonymous"
}

// pageRecorder copies the response body while it is written to the client.
type pageRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *pageRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *pageRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
