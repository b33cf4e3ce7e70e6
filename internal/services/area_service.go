package services

import (
	"fmt"

	"hotelops/internal/models"
	"hotelops/pkg/apperrors"
	"hotelops/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AreaService struct {
	db        *gorm.DB
	auditoria *AuditoriaService
}

func NewAreaService(db *gorm.DB, auditoria *AuditoriaService) *AreaService {
	return &AreaService{db: db, auditoria: auditoria}
}

// AreaInput datos de creación/actualización
type AreaInput struct {
	Nombre         string `json:"nombre" binding:"required"`
	DepartamentoID *uint  `json:"departamentoId"`
	HotelID        *uint  `json:"hotelId"`
}

var areaSortKeys = sortMap{
	"nombre":              {column: "areas.nombre"},
	"created_at":          {column: "areas.created_at"},
	"departamento.nombre": {join: "LEFT JOIN departamentos ON departamentos.id = areas.departamento_id", column: "departamentos.nombre"},
	"hotel.nombre":        {join: "LEFT JOIN hoteles ON hoteles.id = areas.hotel_id", column: "hoteles.nombre"},
}

// List listado paginado acotado por tenant
func (s *AreaService) List(params *pagination.Params, sortBy, order string, p *models.Principal) ([]models.Area, int64, error) {
	var areas []models.Area
	var total int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Area{}).Scopes(ScopeHotel(p, "areas"))

		if err := query.Count(&total).Error; err != nil {
			return err
		}

		return aplicarOrden(query, areaSortKeys, sortBy, order, "areas.nombre ASC").
			Preload("Departamento").
			Preload("Hotel").
			Offset(params.GetOffset()).
			Limit(params.GetLimit()).
			Find(&areas).Error
	})
	if err != nil {
		return nil, 0, apperrors.FromDB(err)
	}

	return areas, total, nil
}

// ListAll todas las áreas visibles con su departamento, sin paginar
func (s *AreaService) ListAll(p *models.Principal) ([]models.Area, error) {
	var areas []models.Area
	err := s.db.
		Scopes(ScopeHotel(p, "areas")).
		Joins("LEFT JOIN departamentos ON departamentos.id = areas.departamento_id").
		Preload("Departamento").
		Order("departamentos.nombre ASC").
		Order("areas.nombre ASC").
		Find(&areas).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return areas, nil
}

// GetByID búsqueda acotada
func (s *AreaService) GetByID(id uint, p *models.Principal) (*models.Area, error) {
	var area models.Area
	err := s.db.
		Scopes(ScopeHotel(p, "areas")).
		Preload("Departamento").
		First(&area, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("Área no encontrada o sin permisos.")
		}
		return nil, apperrors.FromDB(err)
	}
	return &area, nil
}

// Create crea un área. El departamento padre debe pertenecer al mismo hotel
// que se está asignando.
func (s *AreaService) Create(input AreaInput, p *models.Principal) (*models.Area, error) {
	hotelID, err := ResolverHotelDestino(p, input.HotelID, "el área")
	if err != nil {
		return nil, err
	}
	if err := CanCreateIn(p, hotelID, "áreas"); err != nil {
		return nil, err
	}

	if input.DepartamentoID == nil {
		return nil, apperrors.Validation("Se requiere un Departamento para crear el área.")
	}
	var depto models.Departamento
	err = s.db.Where("id = ? AND hotel_id = ?", *input.DepartamentoID, hotelID).First(&depto).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.Validation("El departamento seleccionado no existe o no pertenece a tu hotel.")
		}
		return nil, apperrors.FromDB(err)
	}

	area := models.Area{
		Nombre:         input.Nombre,
		DepartamentoID: *input.DepartamentoID,
		HotelID:        hotelID,
	}
	if err := s.db.Create(&area).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionCreate,
		Entidad:   "Area",
		EntidadID: area.ID,
		Despues:   &area,
		Principal: p,
		Detalles:  fmt.Sprintf("Área creada: %s", area.Nombre),
	})

	return &area, nil
}

// Update actualiza el área. Un cambio de departamento debe quedarse dentro
// del hotel ya propietario de la fila.
func (s *AreaService) Update(id uint, input AreaInput, p *models.Principal) (*models.Area, error) {
	anterior, err := s.GetByID(id, p)
	if err != nil {
		return nil, err
	}

	area := *anterior
	area.Nombre = input.Nombre
	if input.DepartamentoID != nil && *input.DepartamentoID != area.DepartamentoID {
		var depto models.Departamento
		err = s.db.Where("id = ? AND hotel_id = ?", *input.DepartamentoID, anterior.HotelID).First(&depto).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, apperrors.Validation("El departamento destino no es válido.")
			}
			return nil, apperrors.FromDB(err)
		}
		area.DepartamentoID = *input.DepartamentoID
	}

	if err := s.db.Omit(clause.Associations).Save(&area).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionUpdate,
		Entidad:   "Area",
		EntidadID: id,
		Antes:     anterior,
		Despues:   &area,
		Principal: p,
		Detalles:  fmt.Sprintf("Área actualizada: %s", area.Nombre),
	})

	return &area, nil
}

// Delete baja lógica
func (s *AreaService) Delete(id uint, p *models.Principal) (*models.Area, error) {
	anterior, err := s.GetByID(id, p)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(&models.Area{}, id).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionDelete,
		Entidad:   "Area",
		EntidadID: id,
		Antes:     anterior,
		Principal: p,
		Detalles:  "Área eliminada",
	})

	return anterior, nil
}
