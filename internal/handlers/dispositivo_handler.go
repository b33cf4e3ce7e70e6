package handlers

import (
	"strconv"

	"hotelops/internal/middleware"
	"hotelops/internal/models"
	"hotelops/internal/services"
	"hotelops/pkg/pagination"
	"hotelops/pkg/response"

	"github.com/gin-gonic/gin"
)

type DispositivoHandler struct {
	dispositivos *services.DispositivoService
}

func NewDispositivoHandler(dispositivos *services.DispositivoService) *DispositivoHandler {
	return &DispositivoHandler{dispositivos: dispositivos}
}

func (h *DispositivoHandler) List(c *gin.Context) {
	params := pagination.Parse(c, pagination.DefaultLimit)

	dispositivos, total, err := h.dispositivos.List(params, c.Query("search"), c.Query("sortBy"), c.Query("order"), middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Page(c, dispositivos, total, params)
}

// ListNombres listado completo para selectores
func (h *DispositivoHandler) ListNombres(c *gin.Context) {
	dispositivos, err := h.dispositivos.ListNombres(middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dispositivos)
}

func (h *DispositivoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	dispositivo, err := h.dispositivos.GetByID(id, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, dispositivo)
}

func (h *DispositivoHandler) Create(c *gin.Context) {
	var input services.DispositivoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos: "+err.Error())
		return
	}

	dispositivo, err := h.dispositivos.Create(input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, dispositivo)
}

func (h *DispositivoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.DispositivoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos: "+err.Error())
		return
	}

	dispositivo, err := h.dispositivos.Update(id, input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, dispositivo)
}

// Delete da de baja el equipo y registra la disposición
func (h *DispositivoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.BajaInput
	_ = c.ShouldBindJSON(&input) // cuerpo opcional

	if _, err := h.dispositivos.Delete(id, input, middleware.PrincipalFrom(c)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Dispositivo dado de baja"})
}

// Import carga masiva de inventario desde un archivo tabular multipart
func (h *DispositivoHandler) Import(c *gin.Context) {
	archivo, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Se requiere un archivo en el campo 'file'")
		return
	}

	lector, err := archivo.Open()
	if err != nil {
		response.BadRequest(c, "El archivo no se pudo leer")
		return
	}
	defer lector.Close()

	resultado, err := h.dispositivos.Importar(lector, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, resultado)
}

// ExportAll descarga tabular del inventario completo visible
func (h *DispositivoHandler) ExportAll(c *gin.Context) {
	dispositivos, err := h.dispositivos.ListAll(middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.exportar(c, "inventario.csv", dispositivos)
}

// ExportInactivos descarga tabular de los equipos inactivos o de baja
func (h *DispositivoHandler) ExportInactivos(c *gin.Context) {
	dispositivos, err := h.dispositivos.ListInactivos(middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.exportar(c, "inventario_inactivos.csv", dispositivos)
}

func (h *DispositivoHandler) exportar(c *gin.Context, nombreArchivo string, dispositivos []models.Dispositivo) {
	filas := make([][]string, 0, len(dispositivos))
	for _, d := range dispositivos {
		tipo, so, estado, area, empleado, hotel := "", "", "", "", "", ""
		if d.Tipo != nil {
			tipo = d.Tipo.Nombre
		}
		if d.SistemaOperativo != nil {
			so = d.SistemaOperativo.Nombre
		}
		if d.Estado != nil {
			estado = d.Estado.Nombre
		}
		if d.Area != nil {
			area = d.Area.Nombre
		}
		if d.Empleado != nil {
			empleado = d.Empleado.Nombre
		}
		if d.Hotel != nil {
			hotel = d.Hotel.Nombre
		}
		filas = append(filas, []string{
			strconv.FormatUint(uint64(d.ID), 10),
			d.Nombre,
			texto(d.NumeroSerie),
			texto(d.Etiqueta),
			tipo,
			so,
			estado,
			area,
			empleado,
			hotel,
		})
	}

	escribirCSV(c, nombreArchivo, []string{"ID", "Nombre", "Número de Serie", "Etiqueta", "Tipo", "Sistema Operativo", "Estado", "Área", "Empleado", "Hotel"}, filas)
}
