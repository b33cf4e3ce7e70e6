package main

import (
	"fmt"

	"hotelops/internal/database"
	"hotelops/internal/models"
	"hotelops/internal/services"
	"hotelops/pkg/config"
	"hotelops/pkg/logger"

	"gorm.io/gorm"
)

// seedData inicializa los datos semilla
func seedData() error {
	appLogger := logger.GetLogger()
	appLogger.Info("Inicializando datos semilla...")

	db := database.GetDB()

	root, err := createRootUser(db)
	if err != nil {
		return fmt.Errorf("crear usuario root: %v", err)
	}

	if err := seedCatalogos(db); err != nil {
		return fmt.Errorf("inicializar catálogos: %v", err)
	}

	if err := seedHotelesDemo(db, root); err != nil {
		return fmt.Errorf("crear hoteles de demostración: %v", err)
	}

	appLogger.Info("Datos semilla listos")
	return nil
}

// createRootUser crea la cuenta del superadministrador si no existe
func createRootUser(db *gorm.DB) (*models.UsuarioSistema, error) {
	var existente models.UsuarioSistema
	err := db.Where("username = ?", models.UsernameRoot).First(&existente).Error
	if err == nil {
		return &existente, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	password := config.GetConfig().Server.RootPassword
	usuario := models.UsuarioSistema{
		Username: models.UsernameRoot,
		Correo:   "root@hotelops.local",
		Nombre:   "Superadministrador",
		Rol:      models.RolRoot,
	}
	if err := usuario.SetPassword(password); err != nil {
		return nil, err
	}

	if err := db.Create(&usuario).Error; err != nil {
		return nil, err
	}

	logger.GetLogger().Infof("Usuario root creado - username: %s", usuario.Username)
	return &usuario, nil
}

// seedCatalogos carga los catálogos globales base (idempotente)
func seedCatalogos(db *gorm.DB) error {
	tipos := []string{"Laptop", "Estación de Trabajo", "Servidor", "AIO", "Impresora"}
	for _, nombre := range tipos {
		var count int64
		db.Model(&models.TipoDispositivo{}).Where("nombre = ?", nombre).Count(&count)
		if count == 0 {
			if err := db.Create(&models.TipoDispositivo{Nombre: nombre}).Error; err != nil {
				return err
			}
		}
	}

	sistemas := []string{"Windows 10", "Windows 11", "Windows Server 2019", "Linux"}
	for _, nombre := range sistemas {
		var count int64
		db.Model(&models.SistemaOperativo{}).Where("nombre = ?", nombre).Count(&count)
		if count == 0 {
			if err := db.Create(&models.SistemaOperativo{Nombre: nombre}).Error; err != nil {
				return err
			}
		}
	}

	estados := []string{models.EstadoActivo, models.EstadoEnReparacion, models.EstadoInactivo, models.EstadoBaja}
	for _, nombre := range estados {
		var count int64
		db.Model(&models.EstadoDispositivo{}).Where("nombre = ?", nombre).Count(&count)
		if count == 0 {
			if err := db.Create(&models.EstadoDispositivo{Nombre: nombre}).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// seedHotelesDemo crea los hoteles de demostración con su estructura
// estándar, a través del servicio para que el flujo sea el mismo que el de
// producción.
func seedHotelesDemo(db *gorm.DB, root *models.UsuarioSistema) error {
	hoteles := []services.HotelInput{
		{Nombre: "Crown Paradise Cancún", Codigo: "CPC", Ciudad: "Cancún", Diminutivo: "Crown", AutoStructure: true},
		{Nombre: "Sensira Resort & Spa", Codigo: "SEN", Ciudad: "Riviera Maya", Diminutivo: "Sensira", AutoStructure: true},
	}

	principal := &models.Principal{Usuario: root, Rol: models.RolRoot}
	servicio := services.NewHotelService(db, services.NewAuditoriaService(db))

	for _, input := range hoteles {
		var count int64
		db.Model(&models.Hotel{}).Where("codigo = ?", input.Codigo).Count(&count)
		if count > 0 {
			continue
		}
		if _, err := servicio.Create(input, principal); err != nil {
			return err
		}
		logger.GetLogger().Infof("Hotel de demostración creado: %s", input.Nombre)
	}

	return nil
}
