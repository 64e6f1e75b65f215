package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Recovery перехватывает панику обработчика и отвечает 500,
// не роняя процесс.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(log.Fields{
					"panic": r,
					"path":  c.Request.URL.Path,
					"stack": string(debug.Stack()),
				}).Error("Паника в обработчике")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
			}
		}()
		c.Next()
	}
}
