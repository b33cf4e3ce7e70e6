package services

import (
	"fmt"
	"time"

	"hotelops/internal/models"
	"hotelops/pkg/apperrors"
	"hotelops/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MantenimientoService struct {
	db        *gorm.DB
	auditoria *AuditoriaService
}

func NewMantenimientoService(db *gorm.DB, auditoria *AuditoriaService) *MantenimientoService {
	return &MantenimientoService{db: db, auditoria: auditoria}
}

// MantenimientoInput datos de una intervención sobre un equipo
type MantenimientoInput struct {
	DispositivoID   uint       `json:"dispositivoId" binding:"required"`
	Tipo            string     `json:"tipo" binding:"required"`
	Descripcion     string     `json:"descripcion"`
	FechaProgramada time.Time  `json:"fechaProgramada" binding:"required"`
	FechaRealizada  *time.Time `json:"fechaRealizada"`
	Tecnico         string     `json:"tecnico"`
}

var mantenimientoSortKeys = sortMap{
	"tipo":               {column: "mantenimientos.tipo"},
	"fecha_programada":   {column: "mantenimientos.fecha_programada"},
	"fecha_realizada":    {column: "mantenimientos.fecha_realizada"},
	"tecnico":            {column: "mantenimientos.tecnico"},
	"created_at":         {column: "mantenimientos.created_at"},
	"dispositivo.nombre": {join: "LEFT JOIN dispositivos ON dispositivos.id = mantenimientos.dispositivo_id", column: "dispositivos.nombre"},
	"hotel.nombre":       {join: "LEFT JOIN hoteles ON hoteles.id = mantenimientos.hotel_id", column: "hoteles.nombre"},
}

func validarTipoMantenimiento(tipo string) error {
	switch tipo {
	case models.MantenimientoPreventivo, models.MantenimientoCorrectivo:
		return nil
	}
	return apperrors.Validation("El tipo de mantenimiento debe ser preventivo o correctivo.")
}

// List listado paginado de mantenimientos visibles
func (s *MantenimientoService) List(params *pagination.Params, sortBy, order string, p *models.Principal) ([]models.Mantenimiento, int64, error) {
	var mantenimientos []models.Mantenimiento
	var total int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Mantenimiento{}).Scopes(ScopeHotel(p, "mantenimientos"))

		if err := query.Count(&total).Error; err != nil {
			return err
		}

		return aplicarOrden(query, mantenimientoSortKeys, sortBy, order, "mantenimientos.fecha_programada DESC").
			Preload("Dispositivo").
			Preload("Hotel").
			Offset(params.GetOffset()).
			Limit(params.GetLimit()).
			Find(&mantenimientos).Error
	})
	if err != nil {
		return nil, 0, apperrors.FromDB(err)
	}

	return mantenimientos, total, nil
}

// ListAll historial visible completo, sin paginar, para exportación
func (s *MantenimientoService) ListAll(p *models.Principal) ([]models.Mantenimiento, error) {
	var mantenimientos []models.Mantenimiento
	err := s.db.Scopes(ScopeHotel(p, "mantenimientos")).
		Preload("Dispositivo").
		Preload("Hotel").
		Order("mantenimientos.fecha_programada DESC").
		Find(&mantenimientos).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return mantenimientos, nil
}

// GetByID búsqueda acotada
func (s *MantenimientoService) GetByID(id uint, p *models.Principal) (*models.Mantenimiento, error) {
	var mantenimiento models.Mantenimiento
	err := s.db.Scopes(ScopeHotel(p, "mantenimientos")).
		Preload("Dispositivo").
		First(&mantenimiento, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("Mantenimiento no encontrado o sin permisos.")
		}
		return nil, apperrors.FromDB(err)
	}
	return &mantenimiento, nil
}

// Create programa una intervención. El equipo debe ser visible para el actor;
// el hotel del mantenimiento se hereda del equipo, nunca del payload.
func (s *MantenimientoService) Create(input MantenimientoInput, p *models.Principal) (*models.Mantenimiento, error) {
	if err := validarTipoMantenimiento(input.Tipo); err != nil {
		return nil, err
	}

	var dispositivo models.Dispositivo
	err := s.db.Scopes(ScopeHotel(p, "dispositivos")).First(&dispositivo, input.DispositivoID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.Validation("El dispositivo indicado no existe o no pertenece a tu hotel.")
		}
		return nil, apperrors.FromDB(err)
	}

	if err := CanCreateIn(p, dispositivo.HotelID, "mantenimientos"); err != nil {
		return nil, err
	}

	mantenimiento := models.Mantenimiento{
		DispositivoID:   dispositivo.ID,
		HotelID:         dispositivo.HotelID,
		Tipo:            input.Tipo,
		Descripcion:     input.Descripcion,
		FechaProgramada: input.FechaProgramada,
		FechaRealizada:  input.FechaRealizada,
		Tecnico:         input.Tecnico,
	}

	if err := s.db.Create(&mantenimiento).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionCreate,
		Entidad:   "Mantenimiento",
		EntidadID: mantenimiento.ID,
		Despues:   &mantenimiento,
		Principal: p,
		Detalles:  fmt.Sprintf("Mantenimiento %s programado para: %s", mantenimiento.Tipo, dispositivo.Nombre),
	})

	return &mantenimiento, nil
}

// Update actualiza una intervención. El equipo asociado no cambia por esta vía.
func (s *MantenimientoService) Update(id uint, input MantenimientoInput, p *models.Principal) (*models.Mantenimiento, error) {
	if err := validarTipoMantenimiento(input.Tipo); err != nil {
		return nil, err
	}

	anterior, err := s.GetByID(id, p)
	if err != nil {
		return nil, err
	}

	mantenimiento := *anterior
	mantenimiento.Tipo = input.Tipo
	mantenimiento.Descripcion = input.Descripcion
	mantenimiento.FechaProgramada = input.FechaProgramada
	mantenimiento.FechaRealizada = input.FechaRealizada
	mantenimiento.Tecnico = input.Tecnico

	if err := s.db.Omit(clause.Associations).Save(&mantenimiento).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionUpdate,
		Entidad:   "Mantenimiento",
		EntidadID: id,
		Antes:     anterior,
		Despues:   &mantenimiento,
		Principal: p,
		Detalles:  fmt.Sprintf("Mantenimiento actualizado (id %d)", id),
	})

	return &mantenimiento, nil
}

// Delete baja lógica de la intervención
func (s *MantenimientoService) Delete(id uint, p *models.Principal) error {
	anterior, err := s.GetByID(id, p)
	if err != nil {
		return err
	}

	if err := s.db.Delete(&models.Mantenimiento{}, id).Error; err != nil {
		return apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionDelete,
		Entidad:   "Mantenimiento",
		EntidadID: id,
		Antes:     anterior,
		Principal: p,
		Detalles:  fmt.Sprintf("Mantenimiento eliminado (id %d)", id),
	})

	return nil
}
