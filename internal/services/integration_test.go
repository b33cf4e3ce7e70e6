package services

import (
	"os"
	"testing"

	"hotelops/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// abrirDBDePrueba abre la base de integración (se omite sin
// TEST_DATABASE_URL) y devuelve una transacción que se revierte al final,
// para que cada prueba parta de una base limpia.
func abrirDBDePrueba(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no configurada")
	}

	base, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir base de prueba: %v", err)
	}

	err = base.AutoMigrate(
		&models.Hotel{},
		&models.Departamento{},
		&models.Area{},
		&models.Empleado{},
		&models.UsuarioSistema{},
		&models.TipoDispositivo{},
		&models.SistemaOperativo{},
		&models.EstadoDispositivo{},
		&models.Dispositivo{},
		&models.Mantenimiento{},
		&models.Baja{},
		&models.RegistroAuditoria{},
	)
	if err != nil {
		t.Fatalf("migrar esquema de prueba: %v", err)
	}

	tx := base.Begin()
	t.Cleanup(func() { tx.Rollback() })
	return tx
}
