package main

import (
	"os"
	"testing"

	"hotelops/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

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
		&models.UsuarioSistema{},
		&models.RegistroAuditoria{},
	)
	if err != nil {
		t.Fatalf("migrar esquema de prueba: %v", err)
	}

	tx := base.Begin()
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

// Los hoteles sembrados nacen con la estructura organizativa estándar
// completa, igual que un alta manual con autoStructure.
func TestSeedHotelesDemoConEstructura(t *testing.T) {
	db := abrirDBDePrueba(t)

	root := &models.UsuarioSistema{
		Username: models.UsernameRoot,
		Correo:   "root@hotelops.local",
		Nombre:   "Superadministrador",
		Rol:      models.RolRoot,
	}
	if err := root.SetPassword("Root@123"); err != nil {
		t.Fatalf("cifrar contraseña: %v", err)
	}
	if err := db.Create(root).Error; err != nil {
		t.Fatalf("crear root: %v", err)
	}

	if err := seedHotelesDemo(db, root); err != nil {
		t.Fatalf("seedHotelesDemo: %v", err)
	}

	var hotel models.Hotel
	if err := db.Where("codigo = ?", "CPC").First(&hotel).Error; err != nil {
		t.Fatalf("el hotel CPC debe existir: %v", err)
	}

	var departamentos int64
	db.Model(&models.Departamento{}).Where("hotel_id = ?", hotel.ID).Count(&departamentos)
	if departamentos == 0 {
		t.Fatal("el hotel sembrado debe nacer con departamentos")
	}

	// Un par de piezas conocidas de la plantilla
	var depto models.Departamento
	err := db.Where("nombre = ? AND hotel_id = ?", "División Cuartos", hotel.ID).First(&depto).Error
	if err != nil {
		t.Fatalf("falta el departamento División Cuartos: %v", err)
	}

	var area models.Area
	err = db.Where("nombre = ? AND departamento_id = ?", "Recepción", depto.ID).First(&area).Error
	if err != nil {
		t.Fatalf("falta el área Recepción: %v", err)
	}

	// Una segunda pasada no duplica nada
	if err := seedHotelesDemo(db, root); err != nil {
		t.Fatalf("segunda pasada: %v", err)
	}
	var hoteles int64
	db.Model(&models.Hotel{}).Where("codigo = ?", "CPC").Count(&hoteles)
	if hoteles != 1 {
		t.Errorf("hoteles CPC = %d, se esperaba 1", hoteles)
	}
}
