package services

import (
	"fmt"

	"hotelops/internal/models"
	"hotelops/pkg/apperrors"
	"hotelops/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HotelService administración de hoteles. La entidad hotel es el tenant
// mismo: su clave de acotación es el propio id, no una columna hotel_id.
type HotelService struct {
	db        *gorm.DB
	auditoria *AuditoriaService
}

func NewHotelService(db *gorm.DB, auditoria *AuditoriaService) *HotelService {
	return &HotelService{db: db, auditoria: auditoria}
}

// HotelInput datos de creación/actualización de un hotel
type HotelInput struct {
	Nombre        string `json:"nombre" binding:"required"`
	Codigo        string `json:"codigo" binding:"required"`
	Direccion     string `json:"direccion"`
	Ciudad        string `json:"ciudad"`
	RazonSocial   string `json:"razonSocial"`
	Diminutivo    string `json:"diminutivo"`
	Activo        *bool  `json:"activo"`
	AutoStructure bool   `json:"autoStructure"`
}

// grupoEstructura plantilla de la estructura organizativa estándar que se
// genera al crear un hotel con autoStructure
type grupoEstructura struct {
	Depto string
	Areas []string
}

var plantillaEstructura = []grupoEstructura{
	{Depto: "Gerencia General", Areas: []string{"Gerencia General"}},
	{Depto: "Capital Humano", Areas: []string{"Capital Humano"}},
	{Depto: "Contraloría", Areas: []string{"Contabilidad", "Compras", "Almacén", "Costos", "Sistemas"}},
	{Depto: "División Cuartos", Areas: []string{"Recepción", "Ama de Llaves", "Seguridad", "Teléfonos", "Concierge", "Áreas Públicas"}},
	{Depto: "Mantenimiento", Areas: []string{"Mantenimiento"}},
	{Depto: "Alimentos y Bebidas", Areas: []string{"Alimentos y Bebidas"}},
	{Depto: "Animación y Deportes", Areas: []string{"Animación y Deportes"}},
	{Depto: "Ventas", Areas: []string{"Ventas", "Reservaciones"}},
}

// scopeHoteles predicado de acotación sobre la tabla de hoteles (la clave
// del tenant aquí es el id)
func scopeHoteles(p *models.Principal) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p == nil {
			return db.Where("hoteles.id = ?", hotelImposible)
		}
		if p.HotelActivo != nil {
			return db.Where("hoteles.id = ?", *p.HotelActivo)
		}
		if p.Rol.EsGlobal() {
			return db
		}
		if ids := p.HotelIDs(); len(ids) > 0 {
			return db.Where("hoteles.id IN ?", ids)
		}
		return db.Where("hoteles.id = ?", hotelImposible)
	}
}

// ListDisponibles hoteles visibles para el selector del cliente
func (s *HotelService) ListDisponibles(p *models.Principal) ([]models.HotelResumen, error) {
	var hoteles []models.Hotel
	err := s.db.
		Scopes(scopeHoteles(p)).
		Where("activo = ?", true).
		Order("nombre ASC").
		Find(&hoteles).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}

	resumen := make([]models.HotelResumen, 0, len(hoteles))
	for _, h := range hoteles {
		resumen = append(resumen, models.HotelResumen{ID: h.ID, Nombre: h.Nombre, Codigo: h.Codigo})
	}
	return resumen, nil
}

var hotelSortKeys = sortMap{
	"nombre":     {column: "hoteles.nombre"},
	"codigo":     {column: "hoteles.codigo"},
	"ciudad":     {column: "hoteles.ciudad"},
	"created_at": {column: "hoteles.created_at"},
}

// List listado administrativo paginado
func (s *HotelService) List(params *pagination.Params, sortBy, order string, p *models.Principal) ([]models.Hotel, int64, error) {
	var hoteles []models.Hotel
	var total int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Hotel{}).Scopes(scopeHoteles(p))

		if err := query.Count(&total).Error; err != nil {
			return err
		}

		return aplicarOrden(query, hotelSortKeys, sortBy, order, "hoteles.nombre ASC").
			Offset(params.GetOffset()).
			Limit(params.GetLimit()).
			Find(&hoteles).Error
	})
	if err != nil {
		return nil, 0, apperrors.FromDB(err)
	}

	return hoteles, total, nil
}

// GetByID búsqueda acotada. La ausencia y la falta de alcance responden lo
// mismo: no se distingue si el hotel existe fuera del alcance del llamador.
func (s *HotelService) GetByID(id uint, p *models.Principal) (*models.Hotel, error) {
	var hotel models.Hotel
	err := s.db.Scopes(scopeHoteles(p)).First(&hotel, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("Hotel no encontrado o sin permisos.")
		}
		return nil, apperrors.FromDB(err)
	}
	return &hotel, nil
}

// Create crea un hotel y, si se solicita, su estructura organizativa
// estándar de departamentos y áreas
func (s *HotelService) Create(input HotelInput, p *models.Principal) (*models.Hotel, error) {
	hotel := models.Hotel{
		Nombre:      input.Nombre,
		Codigo:      input.Codigo,
		Direccion:   input.Direccion,
		Ciudad:      input.Ciudad,
		RazonSocial: input.RazonSocial,
		Diminutivo:  input.Diminutivo,
		Activo:      true,
	}
	if input.Activo != nil {
		hotel.Activo = *input.Activo
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&hotel).Error; err != nil {
			return err
		}
		if input.AutoStructure {
			return crearEstructuraEstandar(tx, hotel.ID)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDB(err)
	}

	detalles := fmt.Sprintf("Nuevo Hotel creado: %s", hotel.Nombre)
	if input.AutoStructure {
		detalles += " (Con estructura base)"
	}
	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionCreate,
		Entidad:   "Hotel",
		EntidadID: hotel.ID,
		Despues:   &hotel,
		Principal: p,
		Detalles:  detalles,
	})

	return &hotel, nil
}

// crearEstructuraEstandar genera los departamentos y áreas de la plantilla.
// Las inserciones ignoran duplicados por si la plantilla repite nombres.
func crearEstructuraEstandar(tx *gorm.DB, hotelID uint) error {
	for _, grupo := range plantillaEstructura {
		depto := models.Departamento{Nombre: grupo.Depto, HotelID: hotelID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&depto).Error; err != nil {
			return err
		}
		if depto.ID == 0 {
			// Ya existía: recuperar el id para colgar las áreas
			if err := tx.Where("nombre = ? AND hotel_id = ?", grupo.Depto, hotelID).First(&depto).Error; err != nil {
				return err
			}
		}

		vistos := make(map[string]bool, len(grupo.Areas))
		areas := make([]models.Area, 0, len(grupo.Areas))
		for _, nombre := range grupo.Areas {
			if vistos[nombre] {
				continue
			}
			vistos[nombre] = true
			areas = append(areas, models.Area{
				Nombre:         nombre,
				DepartamentoID: depto.ID,
				HotelID:        hotelID,
			})
		}
		if len(areas) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&areas).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// Update actualiza los datos generales del hotel
func (s *HotelService) Update(id uint, input HotelInput, p *models.Principal) (*models.Hotel, error) {
	anterior, err := s.GetByID(id, p)
	if err != nil {
		return nil, err
	}

	hotel := *anterior
	hotel.Nombre = input.Nombre
	hotel.Codigo = input.Codigo
	hotel.Direccion = input.Direccion
	hotel.Ciudad = input.Ciudad
	hotel.RazonSocial = input.RazonSocial
	hotel.Diminutivo = input.Diminutivo
	if input.Activo != nil {
		hotel.Activo = *input.Activo
	}

	if err := s.db.Omit(clause.Associations).Save(&hotel).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionUpdate,
		Entidad:   "Hotel",
		EntidadID: hotel.ID,
		Antes:     anterior,
		Despues:   &hotel,
		Principal: p,
		Detalles:  fmt.Sprintf("Hotel actualizado: %s", hotel.Nombre),
	})

	return &hotel, nil
}

// Delete baja lógica: marca la eliminación y desactiva el hotel. No hay
// transición de regreso a activo.
func (s *HotelService) Delete(id uint, p *models.Principal) (*models.Hotel, error) {
	anterior, err := s.GetByID(id, p)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Hotel{}).Where("id = ?", id).Update("activo", false).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Hotel{}, id).Error
	})
	if err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionDelete,
		Entidad:   "Hotel",
		EntidadID: id,
		Antes:     anterior,
		Principal: p,
		Detalles:  fmt.Sprintf("Hotel dado de baja: %s", anterior.Nombre),
	})

	return anterior, nil
}
