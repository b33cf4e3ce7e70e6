package handlers

import (
	"hotelops/internal/middleware"
	"hotelops/internal/services"
	"hotelops/pkg/pagination"
	"hotelops/pkg/response"

	"github.com/gin-gonic/gin"
)

type DepartamentoHandler struct {
	departamentos *services.DepartamentoService
}

func NewDepartamentoHandler(departamentos *services.DepartamentoService) *DepartamentoHandler {
	return &DepartamentoHandler{departamentos: departamentos}
}

func (h *DepartamentoHandler) List(c *gin.Context) {
	// all=true devuelve el listado completo para selectores
	if c.Query("all") == "true" {
		departamentos, err := h.departamentos.ListAll(middleware.PrincipalFrom(c))
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, departamentos)
		return
	}

	params := pagination.Parse(c, pagination.DefaultLimit)

	departamentos, total, err := h.departamentos.List(params, c.Query("sortBy"), c.Query("order"), middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Page(c, departamentos, total, params)
}

func (h *DepartamentoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	departamento, err := h.departamentos.GetByID(id, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, departamento)
}

func (h *DepartamentoHandler) Create(c *gin.Context) {
	var input services.DepartamentoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos: "+err.Error())
		return
	}

	departamento, err := h.departamentos.Create(input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, departamento)
}

func (h *DepartamentoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.DepartamentoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos: "+err.Error())
		return
	}

	departamento, err := h.departamentos.Update(id, input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, departamento)
}

func (h *DepartamentoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.departamentos.Delete(id, middleware.PrincipalFrom(c)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Departamento eliminado"})
}
