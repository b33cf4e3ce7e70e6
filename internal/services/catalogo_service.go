package services

import (
	"fmt"

	"hotelops/internal/models"
	"hotelops/pkg/apperrors"

	"gorm.io/gorm"
)

// CatalogoService CRUD de los catálogos globales de inventario. Los
// catálogos no se acotan por hotel: cualquier usuario autenticado los lee,
// solo ROOT los modifica (eso lo decide la ruta).
type CatalogoService struct {
	db        *gorm.DB
	auditoria *AuditoriaService
}

func NewCatalogoService(db *gorm.DB, auditoria *AuditoriaService) *CatalogoService {
	return &CatalogoService{db: db, auditoria: auditoria}
}

// CatalogoInput los tres catálogos comparten la misma forma
type CatalogoInput struct {
	Nombre string `json:"nombre" binding:"required"`
}

// --- Tipos de dispositivo ---

func (s *CatalogoService) ListTipos() ([]models.TipoDispositivo, error) {
	var tipos []models.TipoDispositivo
	if err := s.db.Order("nombre ASC").Find(&tipos).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return tipos, nil
}

func (s *CatalogoService) CreateTipo(input CatalogoInput, p *models.Principal) (*models.TipoDispositivo, error) {
	tipo := models.TipoDispositivo{Nombre: input.Nombre}
	if err := s.db.Create(&tipo).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	s.registrarCatalogo(models.AccionCreate, "TipoDispositivo", tipo.ID, nil, &tipo, p,
		fmt.Sprintf("Tipo de dispositivo creado: %s", tipo.Nombre))
	return &tipo, nil
}

func (s *CatalogoService) UpdateTipo(id uint, input CatalogoInput, p *models.Principal) (*models.TipoDispositivo, error) {
	var anterior models.TipoDispositivo
	if err := s.db.First(&anterior, id).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	tipo := anterior
	tipo.Nombre = input.Nombre
	if err := s.db.Save(&tipo).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	s.registrarCatalogo(models.AccionUpdate, "TipoDispositivo", id, &anterior, &tipo, p,
		fmt.Sprintf("Tipo de dispositivo actualizado: %s", tipo.Nombre))
	return &tipo, nil
}

func (s *CatalogoService) DeleteTipo(id uint, p *models.Principal) error {
	var anterior models.TipoDispositivo
	if err := s.db.First(&anterior, id).Error; err != nil {
		return apperrors.FromDB(err)
	}
	if err := s.db.Delete(&models.TipoDispositivo{}, id).Error; err != nil {
		return apperrors.FromDB(err)
	}
	s.registrarCatalogo(models.AccionDelete, "TipoDispositivo", id, &anterior, nil, p,
		fmt.Sprintf("Tipo de dispositivo eliminado: %s", anterior.Nombre))
	return nil
}

// --- Sistemas operativos ---

func (s *CatalogoService) ListSistemasOperativos() ([]models.SistemaOperativo, error) {
	var sistemas []models.SistemaOperativo
	if err := s.db.Order("nombre ASC").Find(&sistemas).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return sistemas, nil
}

func (s *CatalogoService) CreateSistemaOperativo(input CatalogoInput, p *models.Principal) (*models.SistemaOperativo, error) {
	so := models.SistemaOperativo{Nombre: input.Nombre}
	if err := s.db.Create(&so).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	s.registrarCatalogo(models.AccionCreate, "SistemaOperativo", so.ID, nil, &so, p,
		fmt.Sprintf("Sistema operativo creado: %s", so.Nombre))
	return &so, nil
}

func (s *CatalogoService) UpdateSistemaOperativo(id uint, input CatalogoInput, p *models.Principal) (*models.SistemaOperativo, error) {
	var anterior models.SistemaOperativo
	if err := s.db.First(&anterior, id).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	so := anterior
	so.Nombre = input.Nombre
	if err := s.db.Save(&so).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	s.registrarCatalogo(models.AccionUpdate, "SistemaOperativo", id, &anterior, &so, p,
		fmt.Sprintf("Sistema operativo actualizado: %s", so.Nombre))
	return &so, nil
}

func (s *CatalogoService) DeleteSistemaOperativo(id uint, p *models.Principal) error {
	var anterior models.SistemaOperativo
	if err := s.db.First(&anterior, id).Error; err != nil {
		return apperrors.FromDB(err)
	}
	if err := s.db.Delete(&models.SistemaOperativo{}, id).Error; err != nil {
		return apperrors.FromDB(err)
	}
	s.registrarCatalogo(models.AccionDelete, "SistemaOperativo", id, &anterior, nil, p,
		fmt.Sprintf("Sistema operativo eliminado: %s", anterior.Nombre))
	return nil
}

// --- Estados de dispositivo ---

func (s *CatalogoService) ListEstados() ([]models.EstadoDispositivo, error) {
	var estados []models.EstadoDispositivo
	if err := s.db.Order("nombre ASC").Find(&estados).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return estados, nil
}

func (s *CatalogoService) CreateEstado(input CatalogoInput, p *models.Principal) (*models.EstadoDispositivo, error) {
	estado := models.EstadoDispositivo{Nombre: input.Nombre}
	if err := s.db.Create(&estado).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	s.registrarCatalogo(models.AccionCreate, "EstadoDispositivo", estado.ID, nil, &estado, p,
		fmt.Sprintf("Estado de dispositivo creado: %s", estado.Nombre))
	return &estado, nil
}

func (s *CatalogoService) UpdateEstado(id uint, input CatalogoInput, p *models.Principal) (*models.EstadoDispositivo, error) {
	var anterior models.EstadoDispositivo
	if err := s.db.First(&anterior, id).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	estado := anterior
	estado.Nombre = input.Nombre
	if err := s.db.Save(&estado).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	s.registrarCatalogo(models.AccionUpdate, "EstadoDispositivo", id, &anterior, &estado, p,
		fmt.Sprintf("Estado de dispositivo actualizado: %s", estado.Nombre))
	return &estado, nil
}

func (s *CatalogoService) DeleteEstado(id uint, p *models.Principal) error {
	var anterior models.EstadoDispositivo
	if err := s.db.First(&anterior, id).Error; err != nil {
		return apperrors.FromDB(err)
	}
	if err := s.db.Delete(&models.EstadoDispositivo{}, id).Error; err != nil {
		return apperrors.FromDB(err)
	}
	s.registrarCatalogo(models.AccionDelete, "EstadoDispositivo", id, &anterior, nil, p,
		fmt.Sprintf("Estado de dispositivo eliminado: %s", anterior.Nombre))
	return nil
}

func (s *CatalogoService) registrarCatalogo(accion, entidad string, id uint, antes, despues interface{}, p *models.Principal, detalles string) {
	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    accion,
		Entidad:   entidad,
		EntidadID: id,
		Antes:     antes,
		Despues:   despues,
		Principal: p,
		Detalles:  detalles,
	})
}
