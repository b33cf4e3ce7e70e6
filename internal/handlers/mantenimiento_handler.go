package handlers

import (
	"fmt"
	"strconv"
	"time"

	"hotelops/internal/middleware"
	"hotelops/internal/models"
	"hotelops/internal/services"
	"hotelops/pkg/pagination"
	"hotelops/pkg/response"

	"github.com/gin-gonic/gin"
)

type MantenimientoHandler struct {
	mantenimientos *services.MantenimientoService
}

func NewMantenimientoHandler(mantenimientos *services.MantenimientoService) *MantenimientoHandler {
	return &MantenimientoHandler{mantenimientos: mantenimientos}
}

func (h *MantenimientoHandler) List(c *gin.Context) {
	params := pagination.Parse(c, pagination.DefaultLimit)

	mantenimientos, total, err := h.mantenimientos.List(params, c.Query("sortBy"), c.Query("order"), middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Page(c, mantenimientos, total, params)
}

func (h *MantenimientoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	mantenimiento, err := h.mantenimientos.GetByID(id, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, mantenimiento)
}

func (h *MantenimientoHandler) Create(c *gin.Context) {
	var input services.MantenimientoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos: "+err.Error())
		return
	}

	mantenimiento, err := h.mantenimientos.Create(input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, mantenimiento)
}

func (h *MantenimientoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.MantenimientoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos: "+err.Error())
		return
	}

	mantenimiento, err := h.mantenimientos.Update(id, input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, mantenimiento)
}

func (h *MantenimientoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.mantenimientos.Delete(id, middleware.PrincipalFrom(c)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Eliminado"})
}

// ExportAll descarga tabular del historial de mantenimientos visible
func (h *MantenimientoHandler) ExportAll(c *gin.Context) {
	mantenimientos, err := h.mantenimientos.ListAll(middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	escribirCSV(c, "mantenimientos.csv", encabezadosMantenimiento, filasMantenimiento(mantenimientos))
}

// ExportIndividual descarga tabular de una sola intervención
func (h *MantenimientoHandler) ExportIndividual(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	mantenimiento, err := h.mantenimientos.GetByID(id, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	nombre := fmt.Sprintf("mantenimiento_%d.csv", id)
	escribirCSV(c, nombre, encabezadosMantenimiento, filasMantenimiento([]models.Mantenimiento{*mantenimiento}))
}

var encabezadosMantenimiento = []string{"ID", "Dispositivo", "Tipo", "Descripción", "Fecha Programada", "Fecha Realizada", "Técnico"}

func filasMantenimiento(mantenimientos []models.Mantenimiento) [][]string {
	filas := make([][]string, 0, len(mantenimientos))
	for _, m := range mantenimientos {
		dispositivo := ""
		if m.Dispositivo != nil {
			dispositivo = m.Dispositivo.Nombre
		}
		realizada := ""
		if m.FechaRealizada != nil {
			realizada = m.FechaRealizada.Format(time.DateOnly)
		}
		filas = append(filas, []string{
			strconv.FormatUint(uint64(m.ID), 10),
			dispositivo,
			m.Tipo,
			m.Descripcion,
			m.FechaProgramada.Format(time.DateOnly),
			realizada,
			m.Tecnico,
		})
	}
	return filas
}
