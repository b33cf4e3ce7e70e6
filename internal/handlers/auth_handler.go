package handlers

import (
	"strconv"

	"hotelops/internal/middleware"
	"hotelops/internal/services"
	"hotelops/pkg/pagination"
	"hotelops/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// mensajeValidacion traduce errores de binding a mensajes por campo
func mensajeValidacion(err error) string {
	validationErr, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Datos inválidos: " + err.Error()
	}
	for _, fieldErr := range validationErr {
		switch fieldErr.Field() {
		case "Username":
			return "El usuario es obligatorio"
		case "Correo":
			return "El correo es obligatorio y debe ser válido"
		case "Nombre":
			return "El nombre es obligatorio"
		case "Rol":
			return "El rol es obligatorio"
		}
	}
	return "Datos inválidos: " + err.Error()
}

// AuthHandler login y administración de cuentas del sistema
type AuthHandler struct {
	usuarios *services.UsuarioSistemaService
}

func NewAuthHandler(usuarios *services.UsuarioSistemaService) *AuthHandler {
	return &AuthHandler{usuarios: usuarios}
}

// Login valida credenciales y devuelve el token junto con el perfil
func (h *AuthHandler) Login(c *gin.Context) {
	var input services.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Usuario y contraseña son obligatorios")
		return
	}

	token, usuario, err := h.usuarios.Login(input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{
		"message": "Login exitoso",
		"token":   token,
		"user":    usuario,
	})
}

// GetUsers lista paginada de cuentas administrables
func (h *AuthHandler) GetUsers(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	params := pagination.Parse(c, pagination.AuditLimit)
	search := c.Query("search")

	usuarios, total, err := h.usuarios.GetUsers(params, search, principal)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Page(c, usuarios, total, params)
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	usuario, err := h.usuarios.GetByID(id, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, usuario)
}

func (h *AuthHandler) CreateUser(c *gin.Context) {
	var input services.UsuarioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, mensajeValidacion(err))
		return
	}

	usuario, err := h.usuarios.Create(input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, usuario)
}

func (h *AuthHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.UsuarioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, mensajeValidacion(err))
		return
	}

	usuario, err := h.usuarios.Update(id, input, middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, usuario)
}

func (h *AuthHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.usuarios.Delete(id, middleware.PrincipalFrom(c)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Eliminado"})
}

// UpdatePassword cambio de contraseña (propia, o ajena si admin)
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Contraseña requerida")
		return
	}

	if err := h.usuarios.UpdatePassword(id, input.Password, middleware.PrincipalFrom(c)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Contraseña actualizada"})
}

// ExportUsers descarga tabular de cuentas del sistema
func (h *AuthHandler) ExportUsers(c *gin.Context) {
	usuarios, err := h.usuarios.ListAll(middleware.PrincipalFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	filas := make([][]string, 0, len(usuarios))
	for _, u := range usuarios {
		hoteles := ""
		for i, hotel := range u.Hoteles {
			if i > 0 {
				hoteles += ", "
			}
			hoteles += hotel.Nombre
		}
		filas = append(filas, []string{
			strconv.FormatUint(uint64(u.ID), 10),
			u.Nombre,
			u.Username,
			u.Correo,
			string(u.Rol),
			hoteles,
		})
	}

	escribirCSV(c, "usuarios.csv", []string{"ID", "Nombre", "Usuario", "Correo", "Rol", "Hoteles"}, filas)
}
