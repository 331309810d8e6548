package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest transparently unwraps gzip encoded request bodies, such
// as large workspace seed payloads.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			c.Next()
			return
		}

		originalBody := c.Request.Body
		reader, err := gzip.NewReader(originalBody)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "malformed gzip body"})
			return
		}
		defer reader.Close()
		defer originalBody.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		c.Next()
	}
}
