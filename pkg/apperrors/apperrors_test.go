package apperrors

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestFromDBNil(t *testing.T) {
	if err := FromDB(nil); err != nil {
		t.Errorf("FromDB(nil) = %v, se esperaba nil", err)
	}
}

func TestFromDBRecordNotFound(t *testing.T) {
	err := FromDB(gorm.ErrRecordNotFound)
	if KindOf(err) != KindNotFound {
		t.Errorf("clase = %v, se esperaba KindNotFound", KindOf(err))
	}
	if MessageOf(err) != "La información solicitada no existe o ya fue eliminada." {
		t.Errorf("mensaje inesperado: %q", MessageOf(err))
	}
}

func TestFromDBUniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       string
	}{
		{"correo de empleado", "idx_empleados_correo", "Este correo electrónico ya está registrado en el sistema."},
		{"username de sistema", "uni_usuarios_sistema_username", "Este nombre de usuario ya está en uso. Intenta con otro."},
		{"usuario de login", "idx_empleados_usuario_login_hotel", "Este nombre de usuario ya está en uso. Intenta con otro."},
		{"número de serie", "idx_dispositivos_numero_serie_hotel", "Ya existe un equipo registrado con este Número de Serie en este hotel."},
		{"etiqueta", "idx_dispositivos_etiqueta_hotel", "Ya existe un equipo con esta Etiqueta."},
		{"código de hotel", "uni_hoteles_codigo", "Ya existe un hotel con este código."},
		{"nombre de estructura", "idx_departamentos_nombre_hotel", "Ya existe un registro con este Nombre (probablemente Área o Departamento)."},
		{"constraint desconocida", "idx_algo_raro", genericDuplicateMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: tt.constraint}
			err := FromDB(pgErr)
			if KindOf(err) != KindConflict {
				t.Fatalf("clase = %v, se esperaba KindConflict", KindOf(err))
			}
			if MessageOf(err) != tt.want {
				t.Errorf("mensaje = %q, se esperaba %q", MessageOf(err), tt.want)
			}
		})
	}
}

func TestFromDBForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_dispositivos_hotel"}
	err := FromDB(pgErr)
	if KindOf(err) != KindReferentialConflict {
		t.Errorf("clase = %v, se esperaba KindReferentialConflict", KindOf(err))
	}
	if MessageOf(err) != referentialMessage {
		t.Errorf("mensaje inesperado: %q", MessageOf(err))
	}
}

func TestFromDBErrorDesconocido(t *testing.T) {
	err := FromDB(errors.New("conexión rechazada"))
	if KindOf(err) != KindInternal {
		t.Errorf("clase = %v, se esperaba KindInternal", KindOf(err))
	}
}

func TestMessageOfErrorSinClasificar(t *testing.T) {
	msg := MessageOf(errors.New("detalle interno con rutas /var/db"))
	if msg != "Ocurrió un problema inesperado en el servidor. Por favor intenta más tarde o contacta a soporte." {
		t.Errorf("el error sin clasificar filtró detalle interno: %q", msg)
	}
}

func TestUnwrap(t *testing.T) {
	causa := errors.New("causa raíz")
	err := Wrap(KindInternal, "algo falló", causa)
	if !errors.Is(err, causa) {
		t.Error("errors.Is no encontró la causa envuelta")
	}
}

func TestKindOfDirecto(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{NotFound("x"), KindNotFound},
		{Conflict("x"), KindConflict},
		{Validation("x"), KindValidation},
		{PermissionDenied("x"), KindPermissionDenied},
		{Forbidden("x"), KindForbidden},
		{Unauthenticated("x"), KindUnauthenticated},
	}
	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.want {
			t.Errorf("KindOf(%v) = %v, se esperaba %v", tt.err, got, tt.want)
		}
	}
}
