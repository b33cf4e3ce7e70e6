package handlers

import (
	"strconv"

	"hotelops/internal/middleware"
	"hotelops/internal/services"
	"hotelops/pkg/pagination"
	"hotelops/pkg/response"

	"github.com/gin-gonic/gin"
)

type EmpleadoHandler struct {
	empleados *services.EmpleadoService
}

func NewEmpleadoHandler(empleados *services.EmpleadoService) *EmpleadoHandler {
	return &EmpleadoHandler{empleados: empleados}
}

func (h *EmpleadoHandler) List(c *gin.Context) {
	params := pagination.Parse(c, pagination.DefaultLimit)

	empleados, total, err := h.empleados.List(params, c.Query("search"), c.Query("sortBy"), c.Query("order"), middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Page(c, empleados, total, params)
}

// ListNombres listado completo para selectores
func (h *EmpleadoHandler) ListNombres(c *gin.Context) {
	empleados, err := h.empleados.ListNombres(middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, empleados)
}

func (h *EmpleadoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	empleado, err := h.empleados.GetByID(id, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, empleado)
}

func (h *EmpleadoHandler) Create(c *gin.Context) {
	var input services.EmpleadoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos: "+err.Error())
		return
	}

	empleado, err := h.empleados.Create(input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, empleado)
}

func (h *EmpleadoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.EmpleadoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos: "+err.Error())
		return
	}

	empleado, err := h.empleados.Update(id, input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, empleado)
}

func (h *EmpleadoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.empleados.Delete(id, middleware.PrincipalFrom(c)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Eliminado"})
}

// Import carga masiva de staff desde un archivo tabular multipart
func (h *EmpleadoHandler) Import(c *gin.Context) {
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

	resultado, err := h.empleados.Importar(lector, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, resultado)
}

// Export descarga tabular del staff visible
func (h *EmpleadoHandler) Export(c *gin.Context) {
	empleados, err := h.empleados.ListAll(middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	filas := make([][]string, 0, len(empleados))
	for _, e := range empleados {
		area, depto := "", ""
		if e.Area != nil {
			area = e.Area.Nombre
			if e.Area.Departamento != nil {
				depto = e.Area.Departamento.Nombre
			}
		}
		jefe := "No"
		if e.EsJefeDeArea {
			jefe = "Si"
		}
		filas = append(filas, []string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.Nombre,
			texto(e.Correo),
			texto(e.UsuarioLogin),
			area,
			depto,
			jefe,
		})
	}

	escribirCSV(c, "staff.csv", []string{"ID", "Nombre", "Correo", "Usuario de Login", "Área", "Departamento", "Es Jefe"}, filas)
}
