package database

import (
	"hotelops/internal/models"
	"hotelops/pkg/logger"
)

// Migrate ejecuta la migración automática del esquema
func Migrate() error {
	appLogger := logger.GetLogger()
	appLogger.Info("Starting database migration...")

	err := DB.AutoMigrate(
		&models.Hotel{},
		&models.Departamento{},
		&models.Area{},
		&models.Empleado{},
		&models.UsuarioSistema{},
		// Inventario
		&models.TipoDispositivo{},
		&models.SistemaOperativo{},
		&models.EstadoDispositivo{},
		&models.Dispositivo{},
		&models.Mantenimiento{},
		&models.Baja{},
		// Bitácora
		&models.RegistroAuditoria{},
	)

	if err != nil {
		appLogger.Errorf("Database migration failed: %v", err)
		return err
	}

	appLogger.Info("Database migration completed successfully")
	return nil
}
