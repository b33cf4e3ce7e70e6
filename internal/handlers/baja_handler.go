package handlers

import (
	"strconv"
	"time"

	"hotelops/internal/middleware"
	"hotelops/internal/services"
	"hotelops/pkg/pagination"
	"hotelops/pkg/response"

	"github.com/gin-gonic/gin"
)

type BajaHandler struct {
	bajas *services.BajaService
}

func NewBajaHandler(bajas *services.BajaService) *BajaHandler {
	return &BajaHandler{bajas: bajas}
}

func (h *BajaHandler) List(c *gin.Context) {
	params := pagination.Parse(c, pagination.DefaultLimit)

	bajas, total, err := h.bajas.List(params, c.Query("sortBy"), c.Query("order"), middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Page(c, bajas, total, params)
}

func (h *BajaHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	baja, err := h.bajas.GetByID(id, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, baja)
}

func (h *BajaHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.BajaUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos: "+err.Error())
		return
	}

	baja, err := h.bajas.Update(id, input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, baja)
}

func (h *BajaHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.bajas.Delete(id, middleware.PrincipalFrom(c)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Eliminado"})
}

// Export descarga tabular del registro de bajas visible
func (h *BajaHandler) Export(c *gin.Context) {
	bajas, err := h.bajas.ListAll(middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	filas := make([][]string, 0, len(bajas))
	for _, b := range bajas {
		dispositivo, serie, hotel := "", "", ""
		if b.Dispositivo != nil {
			dispositivo = b.Dispositivo.Nombre
			serie = texto(b.Dispositivo.NumeroSerie)
		}
		if b.Hotel != nil {
			hotel = b.Hotel.Nombre
		}
		filas = append(filas, []string{
			strconv.FormatUint(uint64(b.ID), 10),
			dispositivo,
			serie,
			b.Motivo,
			b.Observaciones,
			b.Fecha.Format(time.DateOnly),
			hotel,
		})
	}

	escribirCSV(c, "bajas.csv", []string{"ID", "Dispositivo", "Número de Serie", "Motivo", "Observaciones", "Fecha", "Hotel"}, filas)
}
