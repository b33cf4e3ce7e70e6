package response

import (
	"net/http"

	"hotelops/pkg/apperrors"
	"hotelops/pkg/logger"
	"hotelops/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// ErrorBody cuerpo de error uniforme
type ErrorBody struct {
	Error string `json:"error"`
}

// ========== Respuestas de éxito ==========

// Success respuesta 200 con datos
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created respuesta 201 con la entidad creada
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Page respuesta 200 con envolvente paginada
func Page(c *gin.Context, data interface{}, total int64, params *pagination.Params) {
	c.JSON(http.StatusOK, pagination.NewEnvelope(data, total, params))
}

// ========== Errores HTTP ==========

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorBody{Error: message})
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, ErrorBody{Error: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: message})
}

func ServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: message})
}

// FromError mapea la taxonomía de errores de dominio a un único código HTTP
// por clase. El detalle interno se registra en el servidor y nunca viaja al
// cliente.
func FromError(c *gin.Context, err error) {
	message := apperrors.MessageOf(err)

	switch apperrors.KindOf(err) {
	case apperrors.KindUnauthenticated:
		Unauthorized(c, message)
	case apperrors.KindForbidden, apperrors.KindPermissionDenied:
		Forbidden(c, message)
	case apperrors.KindNotFound:
		NotFound(c, message)
	case apperrors.KindConflict, apperrors.KindReferentialConflict, apperrors.KindValidation:
		BadRequest(c, message)
	default:
		logger.GetLogger().WithField("path", c.FullPath()).Errorf("error interno: %v", err)
		ServerError(c, message)
	}
}
