package middleware

import (
	"hotelops/pkg/logger"
	"hotelops/pkg/response"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recupera panics y responde un 500 genérico; el detalle
// completo queda en el log del servidor, nunca en la respuesta.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				appLogger := logger.GetLogger()
				appLogger.Errorf("Panic recovered: %v", err)
				response.ServerError(c, "Ocurrió un problema inesperado en el servidor. Por favor intenta más tarde o contacta a soporte.")
				c.Abort()
			}
		}()

		c.Next()
	}
}
