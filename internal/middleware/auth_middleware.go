package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"hotelops/internal/models"
	"hotelops/internal/services"
	"hotelops/pkg/jwt"
	"hotelops/pkg/response"

	"github.com/gin-gonic/gin"
)

// HeaderHotel header con el id del hotel en el que el cliente quiere
// trabajar durante esta petición
const HeaderHotel = "x-hotel-id"

// principalKey clave del principal en el contexto de gin. El contexto es
// solo transporte: los handlers lo extraen una vez y lo pasan explícito a
// los servicios.
const principalKey = "principal"

// UsuarioResolver relee el usuario y sus membresías vigentes. Las
// membresías embebidas en la credencial nunca se usan: pueden haber
// cambiado después de emitir el token.
type UsuarioResolver interface {
	GetActivoConHoteles(id uint) (*models.UsuarioSistema, error)
}

// Auditor registra eventos de seguridad (mejor esfuerzo)
type Auditor interface {
	Registrar(e services.EntradaAuditoria)
}

// AuthMiddleware resuelve la identidad y aplica las puertas de rol
type AuthMiddleware struct {
	usuarios   UsuarioResolver
	auditoria  Auditor
	jwtManager *jwt.Manager
}

func NewAuthMiddleware(usuarios UsuarioResolver, auditoria Auditor, jwtManager *jwt.Manager) *AuthMiddleware {
	return &AuthMiddleware{
		usuarios:   usuarios,
		auditoria:  auditoria,
		jwtManager: jwtManager,
	}
}

// extraerToken toma la credencial de la cookie `token` o del header
// Authorization: Bearer
func extraerToken(c *gin.Context) string {
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return ""
}

// RequireLogin resuelve la sesión: verifica la credencial, relee el usuario
// y deriva el hotel activo de la petición. Se recalcula en cada petición.
func (m *AuthMiddleware) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extraerToken(c)
		if tokenString == "" {
			response.Unauthorized(c, "No autorizado: Token no proporcionado")
			c.Abort()
			return
		}

		claims, err := m.jwtManager.VerifyToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Token inválido o expirado")
			c.Abort()
			return
		}

		// Lectura viva: si el usuario ya no existe o fue dado de baja, la
		// credencial deja de servir aunque siga vigente su firma.
		usuario, err := m.usuarios.GetActivoConHoteles(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "Token inválido o expirado")
			c.Abort()
			return
		}

		principal := &models.Principal{
			Usuario: usuario,
			Rol:     usuario.Rol,
			Hoteles: usuario.HotelesResumen(),
		}

		// Derivación del hotel activo
		header := c.GetHeader(HeaderHotel)
		if usuario.Rol.EsGlobal() {
			// Los roles globales pueden suplantar cualquier hotel que pidan;
			// sin header quedan en vista global.
			if header != "" {
				hotelID, err := strconv.ParseUint(header, 10, 32)
				if err != nil {
					response.BadRequest(c, "ID de hotel inválido")
					c.Abort()
					return
				}
				id := uint(hotelID)
				principal.HotelActivo = &id
			}
		} else {
			if header != "" {
				// Un header ilegible nunca es una membresía
				hotelID, err := strconv.ParseUint(header, 10, 32)
				if err != nil || !principal.EsMiembro(uint(hotelID)) {
					response.Forbidden(c, "No tienes acceso al hotel seleccionado.")
					c.Abort()
					return
				}
				id := uint(hotelID)
				principal.HotelActivo = &id
			} else if len(principal.Hoteles) == 1 {
				// Única membresía: se selecciona sola
				id := principal.Hoteles[0].ID
				principal.HotelActivo = &id
			}
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireRol verifica que el rol del principal pertenezca al conjunto
// permitido. La denegación se audita como acceso no autorizado antes de
// responder 403; si la auditoría falla, el 403 se devuelve igual.
func (m *AuthMiddleware) RequireRol(permitidos models.RolSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := PrincipalFrom(c)
		if principal == nil {
			response.Unauthorized(c, "No autorizado: Token no proporcionado")
			c.Abort()
			return
		}

		if !permitidos.Contains(principal.Rol) {
			m.auditoria.Registrar(services.EntradaAuditoria{
				Accion:    models.AccionUnauthorizedAccess,
				Entidad:   "Security",
				EntidadID: 0,
				Principal: principal,
				Detalles:  fmt.Sprintf("Acceso denegado. %s %s", c.Request.Method, c.Request.URL.Path),
			})
			response.Forbidden(c, "No tienes permisos para esta acción")
			c.Abort()
			return
		}

		c.Next()
	}
}

// PrincipalFrom extrae el principal resuelto del contexto
func PrincipalFrom(c *gin.Context) *models.Principal {
	valor, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	principal, ok := valor.(*models.Principal)
	if !ok {
		return nil
	}
	return principal
}
