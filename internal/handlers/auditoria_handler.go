package handlers

import (
	"hotelops/internal/middleware"
	"hotelops/internal/services"
	"hotelops/pkg/pagination"
	"hotelops/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuditoriaHandler consulta de la bitácora (solo lectura)
type AuditoriaHandler struct {
	auditoria *services.AuditoriaService
}

func NewAuditoriaHandler(auditoria *services.AuditoriaService) *AuditoriaHandler {
	return &AuditoriaHandler{auditoria: auditoria}
}

func (h *AuditoriaHandler) List(c *gin.Context) {
	params := pagination.Parse(c, pagination.AuditLimit)

	filtros := services.FiltrosAuditoria{
		Entidad:   c.Query("entity"),
		UsuarioID: c.Query("userId"),
		HotelID:   c.Query("hotelId"),
	}

	registros, total, err := h.auditoria.GetRegistros(params, filtros, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Page(c, registros, total, params)
}
