package services

import (
	"testing"
	"time"

	"hotelops/internal/models"
	"hotelops/pkg/apperrors"
	"hotelops/pkg/jwt"

	"gorm.io/gorm"
)

func crearHotelDePrueba(t *testing.T, db *gorm.DB, nombre, codigo string) models.Hotel {
	t.Helper()
	hotel := models.Hotel{Nombre: nombre, Codigo: codigo, Activo: true}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("crear hotel %s: %v", codigo, err)
	}
	return hotel
}

func crearCuentaDePrueba(t *testing.T, db *gorm.DB, username string, rol models.Rol, hoteles ...models.Hotel) *models.UsuarioSistema {
	t.Helper()
	usuario := models.UsuarioSistema{
		Username: username,
		Correo:   username + "@hotelops.local",
		Nombre:   username,
		Rol:      rol,
		Hoteles:  hoteles,
	}
	if err := usuario.SetPassword("Inicial@123"); err != nil {
		t.Fatalf("cifrar contraseña inicial: %v", err)
	}
	if err := db.Create(&usuario).Error; err != nil {
		t.Fatalf("crear cuenta %s: %v", username, err)
	}
	return &usuario
}

func principalDe(u *models.UsuarioSistema) *models.Principal {
	return &models.Principal{Usuario: u, Rol: u.Rol, Hoteles: u.HotelesResumen()}
}

// Un admin de hotel solo puede restablecer contraseñas de cuentas con las que
// comparte hotel, y la del superadministrador no la toca nadie más que root.
func TestUpdatePasswordAlcance(t *testing.T) {
	db := abrirDBDePrueba(t)
	servicio := NewUsuarioSistemaService(db, NewAuditoriaService(db), jwt.NewManager("clave-de-prueba", time.Hour))

	hotelA := crearHotelDePrueba(t, db, "Hotel Alfa", "ALFA")
	hotelB := crearHotelDePrueba(t, db, "Hotel Beta", "BETA")

	admin := crearCuentaDePrueba(t, db, "admin.alfa", models.RolHotelAdmin, hotelA)
	colega := crearCuentaDePrueba(t, db, "aux.alfa", models.RolHotelAux, hotelA)
	ajeno := crearCuentaDePrueba(t, db, "aux.beta", models.RolHotelAux, hotelB)
	root := crearCuentaDePrueba(t, db, models.UsernameRoot, models.RolRoot, hotelA)

	t.Run("admin no alcanza cuentas de otro hotel", func(t *testing.T) {
		err := servicio.UpdatePassword(ajeno.ID, "Nueva@123", principalDe(admin))
		if apperrors.KindOf(err) != apperrors.KindNotFound {
			t.Fatalf("kind = %v, se esperaba NotFound (error: %v)", apperrors.KindOf(err), err)
		}

		var intacto models.UsuarioSistema
		if err := db.First(&intacto, ajeno.ID).Error; err != nil {
			t.Fatalf("releer cuenta ajena: %v", err)
		}
		if !intacto.CheckPassword("Inicial@123") {
			t.Error("la contraseña ajena no debe cambiar")
		}
	})

	t.Run("admin no toca la contraseña del root aunque compartan hotel", func(t *testing.T) {
		err := servicio.UpdatePassword(root.ID, "Nueva@123", principalDe(admin))
		if apperrors.KindOf(err) != apperrors.KindPermissionDenied {
			t.Fatalf("kind = %v, se esperaba PermissionDenied (error: %v)", apperrors.KindOf(err), err)
		}
	})

	t.Run("admin restablece a un colega de su hotel", func(t *testing.T) {
		if err := servicio.UpdatePassword(colega.ID, "Nueva@123", principalDe(admin)); err != nil {
			t.Fatalf("UpdatePassword: %v", err)
		}

		var actualizado models.UsuarioSistema
		if err := db.First(&actualizado, colega.ID).Error; err != nil {
			t.Fatalf("releer colega: %v", err)
		}
		if !actualizado.CheckPassword("Nueva@123") {
			t.Error("la contraseña nueva debe verificar")
		}
	})

	t.Run("un rol sin privilegios solo cambia la propia", func(t *testing.T) {
		err := servicio.UpdatePassword(admin.ID, "Nueva@123", principalDe(colega))
		if apperrors.KindOf(err) != apperrors.KindPermissionDenied {
			t.Fatalf("kind = %v, se esperaba PermissionDenied (error: %v)", apperrors.KindOf(err), err)
		}

		if err := servicio.UpdatePassword(colega.ID, "Propia@123", principalDe(colega)); err != nil {
			t.Fatalf("cambio propio: %v", err)
		}
	})

	t.Run("root restablece cualquier cuenta", func(t *testing.T) {
		if err := servicio.UpdatePassword(ajeno.ID, "DesdeRoot@123", principalDe(root)); err != nil {
			t.Fatalf("UpdatePassword desde root: %v", err)
		}
	})
}
