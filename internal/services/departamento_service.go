package services

import (
	"fmt"

	"hotelops/internal/models"
	"hotelops/pkg/apperrors"
	"hotelops/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DepartamentoService struct {
	db        *gorm.DB
	auditoria *AuditoriaService
}

func NewDepartamentoService(db *gorm.DB, auditoria *AuditoriaService) *DepartamentoService {
	return &DepartamentoService{db: db, auditoria: auditoria}
}

// DepartamentoInput datos de creación/actualización
type DepartamentoInput struct {
	Nombre  string `json:"nombre" binding:"required"`
	HotelID *uint  `json:"hotelId"`
}

var departamentoSortKeys = sortMap{
	"nombre":       {column: "departamentos.nombre"},
	"created_at":   {column: "departamentos.created_at"},
	"hotel.nombre": {join: "LEFT JOIN hoteles ON hoteles.id = departamentos.hotel_id", column: "hoteles.nombre"},
}

// List listado paginado acotado por tenant
func (s *DepartamentoService) List(params *pagination.Params, sortBy, order string, p *models.Principal) ([]models.Departamento, int64, error) {
	var departamentos []models.Departamento
	var total int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Departamento{}).Scopes(ScopeHotel(p, "departamentos"))

		if err := query.Count(&total).Error; err != nil {
			return err
		}

		return aplicarOrden(query, departamentoSortKeys, sortBy, order, "departamentos.nombre ASC").
			Preload("Hotel").
			Offset(params.GetOffset()).
			Limit(params.GetLimit()).
			Find(&departamentos).Error
	})
	if err != nil {
		return nil, 0, apperrors.FromDB(err)
	}

	return departamentos, total, nil
}

// ListAll todos los departamentos visibles, sin paginar (selectores)
func (s *DepartamentoService) ListAll(p *models.Principal) ([]models.Departamento, error) {
	var departamentos []models.Departamento
	err := s.db.
		Scopes(ScopeHotel(p, "departamentos")).
		Order("nombre ASC").
		Find(&departamentos).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return departamentos, nil
}

// GetByID búsqueda acotada; fuera de alcance responde igual que ausente
func (s *DepartamentoService) GetByID(id uint, p *models.Principal) (*models.Departamento, error) {
	var departamento models.Departamento
	err := s.db.
		Scopes(ScopeHotel(p, "departamentos")).
		Preload("Hotel").
		First(&departamento, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("Departamento no encontrado o sin permisos.")
		}
		return nil, apperrors.FromDB(err)
	}
	return &departamento, nil
}

// Create crea un departamento bajo el hotel destino
func (s *DepartamentoService) Create(input DepartamentoInput, p *models.Principal) (*models.Departamento, error) {
	hotelID, err := ResolverHotelDestino(p, input.HotelID, "un departamento")
	if err != nil {
		return nil, err
	}
	if err := CanCreateIn(p, hotelID, "departamentos"); err != nil {
		return nil, err
	}

	departamento := models.Departamento{
		Nombre:  input.Nombre,
		HotelID: hotelID,
	}
	if err := s.db.Create(&departamento).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionCreate,
		Entidad:   "Departamento",
		EntidadID: departamento.ID,
		Despues:   &departamento,
		Principal: p,
		Detalles:  fmt.Sprintf("Departamento creado: %s", departamento.Nombre),
	})

	return &departamento, nil
}

// Update renombra el departamento. El hotel propietario nunca cambia.
func (s *DepartamentoService) Update(id uint, input DepartamentoInput, p *models.Principal) (*models.Departamento, error) {
	anterior, err := s.GetByID(id, p)
	if err != nil {
		return nil, err
	}

	departamento := *anterior
	departamento.Nombre = input.Nombre

	if err := s.db.Omit(clause.Associations).Save(&departamento).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionUpdate,
		Entidad:   "Departamento",
		EntidadID: id,
		Antes:     anterior,
		Despues:   &departamento,
		Principal: p,
		Detalles:  "Departamento actualizado",
	})

	return &departamento, nil
}

// Delete baja lógica
func (s *DepartamentoService) Delete(id uint, p *models.Principal) (*models.Departamento, error) {
	anterior, err := s.GetByID(id, p)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(&models.Departamento{}, id).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionDelete,
		Entidad:   "Departamento",
		EntidadID: id,
		Antes:     anterior,
		Principal: p,
		Detalles:  "Departamento eliminado",
	})

	return anterior, nil
}
