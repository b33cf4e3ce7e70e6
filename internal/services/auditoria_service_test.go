package services

import (
	"encoding/json"
	"testing"

	"hotelops/internal/models"
)

func TestSnapshot(t *testing.T) {
	t.Run("nil da nil", func(t *testing.T) {
		raw, hotelID := snapshot(nil)
		if raw != nil || hotelID != nil {
			t.Errorf("snapshot(nil) = (%v, %v)", raw, hotelID)
		}
	})

	t.Run("extrae hotelId de la entidad", func(t *testing.T) {
		empleado := models.Empleado{Nombre: "Ana", HotelID: 5}
		raw, hotelID := snapshot(empleado)

		if hotelID == nil || *hotelID != 5 {
			t.Fatalf("hotelID = %v, se esperaba 5", hotelID)
		}

		var decoded map[string]interface{}
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("el snapshot no es JSON válido: %v", err)
		}
		if decoded["nombre"] != "Ana" {
			t.Errorf("nombre = %v", decoded["nombre"])
		}
	})

	t.Run("sin hotelId no atribuye", func(t *testing.T) {
		hotel := models.Hotel{Nombre: "CPC", Codigo: "CPC"}
		_, hotelID := snapshot(hotel)
		if hotelID != nil {
			t.Errorf("hotelID = %v, se esperaba nil", hotelID)
		}
	})

	t.Run("el hash de contraseña no se serializa", func(t *testing.T) {
		usuario := models.UsuarioSistema{Username: "ana", PasswordHash: "secreto"}
		raw, _ := snapshot(usuario)

		var decoded map[string]interface{}
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("el snapshot no es JSON válido: %v", err)
		}
		for clave := range decoded {
			if clave == "passwordHash" || clave == "password_hash" {
				t.Fatalf("el snapshot expone %q", clave)
			}
		}
	})
}

func TestAtribucionDeHotel(t *testing.T) {
	activo := uint(9)

	tests := []struct {
		name      string
		principal *models.Principal
		antes     interface{}
		despues   interface{}
		want      *uint
	}{
		{
			name:      "hotel activo del actor manda",
			principal: &models.Principal{HotelActivo: &activo},
			despues:   models.Empleado{HotelID: 3},
			want:      &activo,
		},
		{
			name:    "sin hotel activo toma el de la entidad resultante",
			despues: models.Empleado{HotelID: 3},
			want:    ptrID(3),
		},
		{
			name:  "sin resultado toma el de la entidad previa",
			antes: models.Empleado{HotelID: 4},
			want:  ptrID(4),
		},
		{
			name: "sin nada queda sin atribuir",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Misma cascada que usa Registrar
			_, hotelAntes := snapshot(tt.antes)
			_, hotelDespues := snapshot(tt.despues)

			var got *uint
			if tt.principal != nil && tt.principal.HotelActivo != nil {
				got = tt.principal.HotelActivo
			} else if hotelDespues != nil {
				got = hotelDespues
			} else if hotelAntes != nil {
				got = hotelAntes
			}

			if (got == nil) != (tt.want == nil) {
				t.Fatalf("hotel atribuido = %v, se esperaba %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("hotel = %d, se esperaba %d", *got, *tt.want)
			}
		})
	}
}

func TestAccionesSinID(t *testing.T) {
	permitidas := []string{models.AccionLoginFail, models.AccionUnauthorizedAccess, models.AccionImport}
	for _, accion := range permitidas {
		if !accionesSinID[accion] {
			t.Errorf("%s debe poder registrarse sin id de entidad", accion)
		}
	}
	if accionesSinID[models.AccionCreate] {
		t.Error("CREATE sin id de entidad debe descartarse")
	}
}

func TestFiltroPresente(t *testing.T) {
	ausentes := []string{"", "undefined", "null"}
	for _, v := range ausentes {
		if _, ok := filtroPresente(v); ok {
			t.Errorf("filtroPresente(%q) debe reportar ausente", v)
		}
	}

	if valor, ok := filtroPresente("Empleado"); !ok || valor != "Empleado" {
		t.Errorf("filtroPresente(Empleado) = (%q, %v)", valor, ok)
	}
}
