package handlers

import (
	"hotelops/internal/middleware"
	"hotelops/internal/services"
	"hotelops/pkg/response"

	"github.com/gin-gonic/gin"
)

// CatalogoHandler CRUD de los tres catálogos globales de inventario
type CatalogoHandler struct {
	catalogos *services.CatalogoService
}

func NewCatalogoHandler(catalogos *services.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{catalogos: catalogos}
}

// --- Tipos de dispositivo ---

func (h *CatalogoHandler) ListTipos(c *gin.Context) {
	tipos, err := h.catalogos.ListTipos()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, tipos)
}

func (h *CatalogoHandler) CreateTipo(c *gin.Context) {
	var input services.CatalogoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "El nombre es obligatorio")
		return
	}
	tipo, err := h.catalogos.CreateTipo(input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, tipo)
}

func (h *CatalogoHandler) UpdateTipo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input services.CatalogoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "El nombre es obligatorio")
		return
	}
	tipo, err := h.catalogos.UpdateTipo(id, input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, tipo)
}

func (h *CatalogoHandler) DeleteTipo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalogos.DeleteTipo(id, middleware.PrincipalFrom(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Eliminado"})
}

// --- Sistemas operativos ---

func (h *CatalogoHandler) ListSistemasOperativos(c *gin.Context) {
	sistemas, err := h.catalogos.ListSistemasOperativos()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, sistemas)
}

func (h *CatalogoHandler) CreateSistemaOperativo(c *gin.Context) {
	var input services.CatalogoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "El nombre es obligatorio")
		return
	}
	so, err := h.catalogos.CreateSistemaOperativo(input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, so)
}

func (h *CatalogoHandler) UpdateSistemaOperativo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input services.CatalogoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "El nombre es obligatorio")
		return
	}
	so, err := h.catalogos.UpdateSistemaOperativo(id, input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, so)
}

func (h *CatalogoHandler) DeleteSistemaOperativo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalogos.DeleteSistemaOperativo(id, middleware.PrincipalFrom(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Eliminado"})
}

// --- Estados de dispositivo ---

func (h *CatalogoHandler) ListEstados(c *gin.Context) {
	estados, err := h.catalogos.ListEstados()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, estados)
}

func (h *CatalogoHandler) CreateEstado(c *gin.Context) {
	var input services.CatalogoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "El nombre es obligatorio")
		return
	}
	estado, err := h.catalogos.CreateEstado(input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, estado)
}

func (h *CatalogoHandler) UpdateEstado(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input services.CatalogoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "El nombre es obligatorio")
		return
	}
	estado, err := h.catalogos.UpdateEstado(id, input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, estado)
}

func (h *CatalogoHandler) DeleteEstado(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalogos.DeleteEstado(id, middleware.PrincipalFrom(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Eliminado"})
}
