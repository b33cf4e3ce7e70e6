package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelops/internal/models"
	"hotelops/internal/services"
	"hotelops/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type usuarioResolverMock struct {
	usuario *models.UsuarioSistema
	err     error
}

func (m *usuarioResolverMock) GetActivoConHoteles(id uint) (*models.UsuarioSistema, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.usuario, nil
}

type auditorMock struct {
	entradas []services.EntradaAuditoria
}

func (m *auditorMock) Registrar(e services.EntradaAuditoria) {
	m.entradas = append(m.entradas, e)
}

func nuevoManager() *jwt.Manager {
	return jwt.NewManager("clave-de-prueba", time.Hour)
}

func usuarioConHoteles(rol models.Rol, hoteles ...models.Hotel) *models.UsuarioSistema {
	u := &models.UsuarioSistema{
		Username: "prueba",
		Nombre:   "Usuario de Prueba",
		Rol:      rol,
		Hoteles:  hoteles,
	}
	u.ID = 42
	return u
}

// montarRuta arma un router mínimo que expone el principal resuelto
func montarRuta(auth *AuthMiddleware, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := []gin.HandlerFunc{auth.RequireLogin()}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		p := PrincipalFrom(c)
		var activo *uint
		if p != nil {
			activo = p.HotelActivo
		}
		c.JSON(http.StatusOK, gin.H{"hotelActivo": activo})
	})

	router.GET("/recurso", handlers...)
	return router
}

func hacerPeticion(router *gin.Engine, token, headerHotel string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/recurso", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if headerHotel != "" {
		req.Header.Set(HeaderHotel, headerHotel)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireLoginSinToken(t *testing.T) {
	auth := NewAuthMiddleware(&usuarioResolverMock{}, &auditorMock{}, nuevoManager())
	w := hacerPeticion(montarRuta(auth), "", "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("código = %d, se esperaba 401", w.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != "No autorizado: Token no proporcionado" {
		t.Errorf("mensaje inesperado: %q", body["error"])
	}
}

func TestRequireLoginTokenInvalido(t *testing.T) {
	auth := NewAuthMiddleware(&usuarioResolverMock{}, &auditorMock{}, nuevoManager())
	w := hacerPeticion(montarRuta(auth), "no-es-un-jwt", "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("código = %d, se esperaba 401", w.Code)
	}
}

func TestRequireLoginTokenDeOtraClave(t *testing.T) {
	otro := jwt.NewManager("otra-clave", time.Hour)
	token, _ := otro.GenerateToken(42, "prueba")

	auth := NewAuthMiddleware(&usuarioResolverMock{}, &auditorMock{}, nuevoManager())
	w := hacerPeticion(montarRuta(auth), token, "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("código = %d, se esperaba 401", w.Code)
	}
}

func TestRequireLoginTokenExpirado(t *testing.T) {
	vencido := jwt.NewManager("clave-de-prueba", -time.Minute)
	token, _ := vencido.GenerateToken(42, "prueba")

	auth := NewAuthMiddleware(&usuarioResolverMock{}, &auditorMock{}, nuevoManager())
	w := hacerPeticion(montarRuta(auth), token, "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("código = %d, se esperaba 401", w.Code)
	}
}

func TestRequireLoginUsuarioInexistente(t *testing.T) {
	manager := nuevoManager()
	token, _ := manager.GenerateToken(42, "prueba")

	resolver := &usuarioResolverMock{err: errors.New("record not found")}
	auth := NewAuthMiddleware(resolver, &auditorMock{}, manager)
	w := hacerPeticion(montarRuta(auth), token, "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("código = %d, se esperaba 401", w.Code)
	}
}

func TestRequireLoginCookie(t *testing.T) {
	manager := nuevoManager()
	token, _ := manager.GenerateToken(42, "prueba")

	resolver := &usuarioResolverMock{usuario: usuarioConHoteles(models.RolHotelGuest)}
	auth := NewAuthMiddleware(resolver, &auditorMock{}, manager)
	router := montarRuta(auth)

	req := httptest.NewRequest("GET", "/recurso", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("código = %d, se esperaba 200", w.Code)
	}
}

func hotelConID(id uint, nombre string) models.Hotel {
	h := models.Hotel{Nombre: nombre, Codigo: nombre}
	h.ID = id
	return h
}

func TestDerivacionHotelActivo(t *testing.T) {
	manager := nuevoManager()
	token, _ := manager.GenerateToken(42, "prueba")

	tests := []struct {
		name        string
		rol         models.Rol
		hoteles     []models.Hotel
		header      string
		wantCode    int
		wantActivo  *uint
		wantMensaje string
	}{
		{
			name:       "rol global sin header queda en vista global",
			rol:        models.RolRoot,
			header:     "",
			wantCode:   http.StatusOK,
			wantActivo: nil,
		},
		{
			name:       "rol global con header suplanta cualquier hotel",
			rol:        models.RolCorpViewer,
			header:     "9",
			wantCode:   http.StatusOK,
			wantActivo: ptrUint(9),
		},
		{
			name:     "rol global con header ilegible",
			rol:      models.RolRoot,
			header:   "abc",
			wantCode: http.StatusBadRequest,
		},
		{
			name:       "rol acotado con header de su membresía",
			rol:        models.RolHotelAdmin,
			hoteles:    []models.Hotel{hotelConID(3, "A"), hotelConID(5, "B")},
			header:     "5",
			wantCode:   http.StatusOK,
			wantActivo: ptrUint(5),
		},
		{
			name:        "rol acotado con header ajeno",
			rol:         models.RolHotelAdmin,
			hoteles:     []models.Hotel{hotelConID(3, "A")},
			header:      "8",
			wantCode:    http.StatusForbidden,
			wantMensaje: "No tienes acceso al hotel seleccionado.",
		},
		{
			name:        "rol acotado con header ilegible",
			rol:         models.RolHotelAdmin,
			hoteles:     []models.Hotel{hotelConID(3, "A")},
			header:      "abc",
			wantCode:    http.StatusForbidden,
			wantMensaje: "No tienes acceso al hotel seleccionado.",
		},
		{
			name:       "única membresía se selecciona sola",
			rol:        models.RolHotelAux,
			hoteles:    []models.Hotel{hotelConID(4, "A")},
			header:     "",
			wantCode:   http.StatusOK,
			wantActivo: ptrUint(4),
		},
		{
			name:       "varias membresías sin header quedan sin selección",
			rol:        models.RolHotelAdmin,
			hoteles:    []models.Hotel{hotelConID(3, "A"), hotelConID(5, "B")},
			header:     "",
			wantCode:   http.StatusOK,
			wantActivo: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &usuarioResolverMock{usuario: usuarioConHoteles(tt.rol, tt.hoteles...)}
			auth := NewAuthMiddleware(resolver, &auditorMock{}, manager)
			w := hacerPeticion(montarRuta(auth), token, tt.header)

			if w.Code != tt.wantCode {
				t.Fatalf("código = %d, se esperaba %d (cuerpo: %s)", w.Code, tt.wantCode, w.Body.String())
			}

			if tt.wantCode == http.StatusOK {
				var body struct {
					HotelActivo *uint `json:"hotelActivo"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("respuesta ilegible: %v", err)
				}
				if (body.HotelActivo == nil) != (tt.wantActivo == nil) {
					t.Fatalf("hotelActivo = %v, se esperaba %v", body.HotelActivo, tt.wantActivo)
				}
				if tt.wantActivo != nil && *body.HotelActivo != *tt.wantActivo {
					t.Errorf("hotelActivo = %d, se esperaba %d", *body.HotelActivo, *tt.wantActivo)
				}
			}

			if tt.wantMensaje != "" {
				var body map[string]string
				_ = json.Unmarshal(w.Body.Bytes(), &body)
				if body["error"] != tt.wantMensaje {
					t.Errorf("mensaje = %q, se esperaba %q", body["error"], tt.wantMensaje)
				}
			}
		})
	}
}

func TestRequireRol(t *testing.T) {
	manager := nuevoManager()
	token, _ := manager.GenerateToken(42, "prueba")

	t.Run("rol permitido pasa", func(t *testing.T) {
		resolver := &usuarioResolverMock{usuario: usuarioConHoteles(models.RolHotelAdmin, hotelConID(1, "A"))}
		auditor := &auditorMock{}
		auth := NewAuthMiddleware(resolver, auditor, manager)
		router := montarRuta(auth, auth.RequireRol(models.NewRolSet(models.RolRoot, models.RolHotelAdmin)))

		w := hacerPeticion(router, token, "")
		if w.Code != http.StatusOK {
			t.Fatalf("código = %d, se esperaba 200", w.Code)
		}
		if len(auditor.entradas) != 0 {
			t.Errorf("un acceso permitido no debe auditarse, se registraron %d entradas", len(auditor.entradas))
		}
	})

	t.Run("rol denegado responde 403 y audita", func(t *testing.T) {
		resolver := &usuarioResolverMock{usuario: usuarioConHoteles(models.RolHotelGuest, hotelConID(1, "A"))}
		auditor := &auditorMock{}
		auth := NewAuthMiddleware(resolver, auditor, manager)
		router := montarRuta(auth, auth.RequireRol(models.NewRolSet(models.RolRoot)))

		w := hacerPeticion(router, token, "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("código = %d, se esperaba 403", w.Code)
		}

		if len(auditor.entradas) != 1 {
			t.Fatalf("se esperaba 1 entrada de auditoría, hay %d", len(auditor.entradas))
		}
		entrada := auditor.entradas[0]
		if entrada.Accion != models.AccionUnauthorizedAccess {
			t.Errorf("acción = %s, se esperaba UNAUTHORIZED_ACCESS", entrada.Accion)
		}
		if entrada.Entidad != "Security" {
			t.Errorf("entidad = %s, se esperaba Security", entrada.Entidad)
		}
		if entrada.EntidadID != 0 {
			t.Errorf("entidadID = %d, se esperaba 0", entrada.EntidadID)
		}
	})
}

func ptrUint(v uint) *uint {
	return &v
}
