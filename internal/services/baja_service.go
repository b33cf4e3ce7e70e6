package services

import (
	"fmt"

	"hotelops/internal/models"
	"hotelops/pkg/apperrors"
	"hotelops/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BajaService consulta y ajuste del registro de bajas. Las bajas no se crean
// por esta vía: nacen al dar de baja un equipo en DispositivoService.
type BajaService struct {
	db        *gorm.DB
	auditoria *AuditoriaService
}

func NewBajaService(db *gorm.DB, auditoria *AuditoriaService) *BajaService {
	return &BajaService{db: db, auditoria: auditoria}
}

// BajaUpdateInput campos corregibles de una baja ya registrada
type BajaUpdateInput struct {
	Motivo        string `json:"motivo" binding:"required"`
	Observaciones string `json:"observaciones"`
}

var bajaSortKeys = sortMap{
	"fecha":              {column: "bajas.fecha"},
	"motivo":             {column: "bajas.motivo"},
	"created_at":         {column: "bajas.created_at"},
	"dispositivo.nombre": {join: "LEFT JOIN dispositivos ON dispositivos.id = bajas.dispositivo_id", column: "dispositivos.nombre"},
	"hotel.nombre":       {join: "LEFT JOIN hoteles ON hoteles.id = bajas.hotel_id", column: "hoteles.nombre"},
}

func (s *BajaService) preloads(db *gorm.DB) *gorm.DB {
	// el equipo referido suele estar soft-borrado, se lee sin filtro
	return db.
		Preload("Dispositivo", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Hotel")
}

// List listado paginado de bajas visibles, más reciente primero
func (s *BajaService) List(params *pagination.Params, sortBy, order string, p *models.Principal) ([]models.Baja, int64, error) {
	var bajas []models.Baja
	var total int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Baja{}).Scopes(ScopeHotel(p, "bajas"))

		if err := query.Count(&total).Error; err != nil {
			return err
		}

		return s.preloads(aplicarOrden(query, bajaSortKeys, sortBy, order, "bajas.fecha DESC")).
			Offset(params.GetOffset()).
			Limit(params.GetLimit()).
			Find(&bajas).Error
	})
	if err != nil {
		return nil, 0, apperrors.FromDB(err)
	}

	return bajas, total, nil
}

// ListAll bajas visibles sin paginar, para exportación
func (s *BajaService) ListAll(p *models.Principal) ([]models.Baja, error) {
	var bajas []models.Baja
	err := s.preloads(s.db.Scopes(ScopeHotel(p, "bajas"))).
		Order("bajas.fecha DESC").
		Find(&bajas).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return bajas, nil
}

// GetByID búsqueda acotada
func (s *BajaService) GetByID(id uint, p *models.Principal) (*models.Baja, error) {
	var baja models.Baja
	err := s.preloads(s.db.Scopes(ScopeHotel(p, "bajas"))).
		First(&baja, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("Baja no encontrada o sin permisos.")
		}
		return nil, apperrors.FromDB(err)
	}
	return &baja, nil
}

// Update corrige motivo y observaciones de una baja
func (s *BajaService) Update(id uint, input BajaUpdateInput, p *models.Principal) (*models.Baja, error) {
	anterior, err := s.GetByID(id, p)
	if err != nil {
		return nil, err
	}

	baja := *anterior
	baja.Motivo = input.Motivo
	baja.Observaciones = input.Observaciones

	if err := s.db.Omit(clause.Associations).Save(&baja).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionUpdate,
		Entidad:   "Baja",
		EntidadID: id,
		Antes:     anterior,
		Despues:   &baja,
		Principal: p,
		Detalles:  fmt.Sprintf("Baja actualizada (id %d)", id),
	})

	return &baja, nil
}

// Delete elimina una entrada del registro de bajas
func (s *BajaService) Delete(id uint, p *models.Principal) error {
	anterior, err := s.GetByID(id, p)
	if err != nil {
		return err
	}

	if err := s.db.Delete(&models.Baja{}, id).Error; err != nil {
		return apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionDelete,
		Entidad:   "Baja",
		EntidadID: id,
		Antes:     anterior,
		Principal: p,
		Detalles:  fmt.Sprintf("Registro de baja eliminado (id %d)", id),
	})

	return nil
}
