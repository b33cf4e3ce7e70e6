package handlers

import (
	"hotelops/internal/middleware"
	"hotelops/internal/services"
	"hotelops/pkg/pagination"
	"hotelops/pkg/response"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hoteles *services.HotelService
}

func NewHotelHandler(hoteles *services.HotelService) *HotelHandler {
	return &HotelHandler{hoteles: hoteles}
}

// ListDisponibles hoteles activos visibles para el actor (selector de tenant)
func (h *HotelHandler) ListDisponibles(c *gin.Context) {
	hoteles, err := h.hoteles.ListDisponibles(middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, hoteles)
}

// ListAdmin listado completo para administración (solo ROOT en la ruta)
func (h *HotelHandler) ListAdmin(c *gin.Context) {
	params := pagination.Parse(c, pagination.DefaultLimit)

	hoteles, total, err := h.hoteles.List(params, c.Query("sortBy"), c.Query("order"), middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Page(c, hoteles, total, params)
}

func (h *HotelHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	hotel, err := h.hoteles.GetByID(id, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, hotel)
}

func (h *HotelHandler) Create(c *gin.Context) {
	var input services.HotelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos: "+err.Error())
		return
	}

	hotel, err := h.hoteles.Create(input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, hotel)
}

func (h *HotelHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.HotelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos: "+err.Error())
		return
	}

	hotel, err := h.hoteles.Update(id, input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, hotel)
}

func (h *HotelHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.hoteles.Delete(id, middleware.PrincipalFrom(c)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Hotel dado de baja"})
}
