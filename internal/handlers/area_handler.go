package handlers

import (
	"hotelops/internal/middleware"
	"hotelops/internal/services"
	"hotelops/pkg/pagination"
	"hotelops/pkg/response"

	"github.com/gin-gonic/gin"
)

type AreaHandler struct {
	areas *services.AreaService
}

func NewAreaHandler(areas *services.AreaService) *AreaHandler {
	return &AreaHandler{areas: areas}
}

func (h *AreaHandler) List(c *gin.Context) {
	if c.Query("all") == "true" {
		areas, err := h.areas.ListAll(middleware.PrincipalFrom(c))
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, areas)
		return
	}

	params := pagination.Parse(c, pagination.DefaultLimit)

	areas, total, err := h.areas.List(params, c.Query("sortBy"), c.Query("order"), middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Page(c, areas, total, params)
}

func (h *AreaHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	area, err := h.areas.GetByID(id, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, area)
}

func (h *AreaHandler) Create(c *gin.Context) {
	var input services.AreaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos: "+err.Error())
		return
	}

	area, err := h.areas.Create(input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, area)
}

func (h *AreaHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.AreaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos: "+err.Error())
		return
	}

	area, err := h.areas.Update(id, input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, area)
}

func (h *AreaHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.areas.Delete(id, middleware.PrincipalFrom(c)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Área eliminada"})
}
