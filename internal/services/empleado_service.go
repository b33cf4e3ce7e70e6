package services

import (
	"fmt"

	"hotelops/internal/models"
	"hotelops/pkg/apperrors"
	"hotelops/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmpleadoService struct {
	db        *gorm.DB
	auditoria *AuditoriaService
}

func NewEmpleadoService(db *gorm.DB, auditoria *AuditoriaService) *EmpleadoService {
	return &EmpleadoService{db: db, auditoria: auditoria}
}

// EmpleadoInput datos de creación/actualización de staff
type EmpleadoInput struct {
	Nombre       string  `json:"nombre" binding:"required"`
	Correo       *string `json:"correo"`
	UsuarioLogin *string `json:"usuario_login"`
	EsJefeDeArea *bool   `json:"es_jefe_de_area"`
	AreaID       *uint   `json:"areaId"`
	HotelID      *uint   `json:"hotelId"`
}

var empleadoSortKeys = sortMap{
	"nombre":        {column: "empleados.nombre"},
	"correo":        {column: "empleados.correo"},
	"usuario_login": {column: "empleados.usuario_login"},
	"created_at":    {column: "empleados.created_at"},
	"area.nombre":   {join: "LEFT JOIN areas ON areas.id = empleados.area_id", column: "areas.nombre"},
	"hotel.nombre":  {join: "LEFT JOIN hoteles ON hoteles.id = empleados.hotel_id", column: "hoteles.nombre"},
}

// List listado paginado con búsqueda por nombre, correo o usuario de login
func (s *EmpleadoService) List(params *pagination.Params, search, sortBy, order string, p *models.Principal) ([]models.Empleado, int64, error) {
	var empleados []models.Empleado
	var total int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Empleado{}).Scopes(ScopeHotel(p, "empleados"))

		if search != "" {
			patron := fmt.Sprintf("%%%s%%", search)
			query = query.Where(
				"empleados.nombre ILIKE ? OR empleados.correo ILIKE ? OR empleados.usuario_login ILIKE ?",
				patron, patron, patron,
			)
		}

		if err := query.Count(&total).Error; err != nil {
			return err
		}

		return aplicarOrden(query, empleadoSortKeys, sortBy, order, "empleados.nombre ASC").
			Preload("Area.Departamento").
			Preload("Hotel").
			Offset(params.GetOffset()).
			Limit(params.GetLimit()).
			Find(&empleados).Error
	})
	if err != nil {
		return nil, 0, apperrors.FromDB(err)
	}

	return empleados, total, nil
}

// ListAll staff visible completo, sin paginar, para exportación
func (s *EmpleadoService) ListAll(p *models.Principal) ([]models.Empleado, error) {
	var empleados []models.Empleado
	err := s.db.
		Scopes(ScopeHotel(p, "empleados")).
		Preload("Area.Departamento").
		Preload("Hotel").
		Order("empleados.nombre ASC").
		Find(&empleados).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return empleados, nil
}

// ListNombres id y nombre de todo el staff visible (selectores)
func (s *EmpleadoService) ListNombres(p *models.Principal) ([]models.Empleado, error) {
	var empleados []models.Empleado
	err := s.db.
		Model(&models.Empleado{}).
		Scopes(ScopeHotel(p, "empleados")).
		Select("id", "nombre").
		Order("nombre ASC").
		Find(&empleados).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return empleados, nil
}

// GetByID búsqueda acotada
func (s *EmpleadoService) GetByID(id uint, p *models.Principal) (*models.Empleado, error) {
	var empleado models.Empleado
	err := s.db.
		Scopes(ScopeHotel(p, "empleados")).
		Preload("Area.Departamento").
		First(&empleado, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("Empleado no encontrado o sin permisos.")
		}
		return nil, apperrors.FromDB(err)
	}
	return &empleado, nil
}

// validarAreaEnHotel verifica que el área asignada pertenezca al hotel
func (s *EmpleadoService) validarAreaEnHotel(areaID, hotelID uint, mensaje string) error {
	var area models.Area
	err := s.db.Where("id = ? AND hotel_id = ?", areaID, hotelID).First(&area).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.Validation(mensaje)
		}
		return apperrors.FromDB(err)
	}
	return nil
}

// Create alta de staff bajo el hotel destino
func (s *EmpleadoService) Create(input EmpleadoInput, p *models.Principal) (*models.Empleado, error) {
	hotelID, err := ResolverHotelDestino(p, input.HotelID, "al empleado")
	if err != nil {
		return nil, err
	}
	if err := CanCreateIn(p, hotelID, "empleados"); err != nil {
		return nil, err
	}

	if input.AreaID != nil {
		if err := s.validarAreaEnHotel(*input.AreaID, hotelID, "El área seleccionada no pertenece al hotel asignado."); err != nil {
			return nil, err
		}
	}

	empleado := models.Empleado{
		Nombre:       input.Nombre,
		Correo:       input.Correo,
		UsuarioLogin: input.UsuarioLogin,
		AreaID:       input.AreaID,
		HotelID:      hotelID,
	}
	if input.EsJefeDeArea != nil {
		empleado.EsJefeDeArea = *input.EsJefeDeArea
	}

	if err := s.db.Create(&empleado).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionCreate,
		Entidad:   "Empleado",
		EntidadID: empleado.ID,
		Despues:   &empleado,
		Principal: p,
		Detalles:  fmt.Sprintf("Staff creado: %s", empleado.Nombre),
	})

	return &empleado, nil
}

// Update actualiza el staff. Un cambio de área se valida contra el hotel ya
// propietario, nunca contra uno nuevo.
func (s *EmpleadoService) Update(id uint, input EmpleadoInput, p *models.Principal) (*models.Empleado, error) {
	anterior, err := s.GetByID(id, p)
	if err != nil {
		return nil, err
	}

	if input.AreaID != nil {
		if err := s.validarAreaEnHotel(*input.AreaID, anterior.HotelID, "El área destino no es válida para este hotel."); err != nil {
			return nil, err
		}
	}

	empleado := *anterior
	empleado.Nombre = input.Nombre
	if input.Correo != nil {
		empleado.Correo = input.Correo
	}
	if input.UsuarioLogin != nil {
		empleado.UsuarioLogin = input.UsuarioLogin
	}
	if input.EsJefeDeArea != nil {
		empleado.EsJefeDeArea = *input.EsJefeDeArea
	}
	if input.AreaID != nil {
		empleado.AreaID = input.AreaID
	}

	if err := s.db.Omit(clause.Associations).Save(&empleado).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionUpdate,
		Entidad:   "Empleado",
		EntidadID: id,
		Antes:     anterior,
		Despues:   &empleado,
		Principal: p,
		Detalles:  fmt.Sprintf("Staff actualizado: %s", empleado.Nombre),
	})

	return &empleado, nil
}

// Delete baja lógica. Borrar una fila ya dada de baja responde NotFound y
// no genera una segunda entrada de auditoría.
func (s *EmpleadoService) Delete(id uint, p *models.Principal) (*models.Empleado, error) {
	anterior, err := s.GetByID(id, p)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(&models.Empleado{}, id).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionDelete,
		Entidad:   "Empleado",
		EntidadID: id,
		Antes:     anterior,
		Principal: p,
		Detalles:  "Staff eliminado (Soft Delete)",
	})

	return anterior, nil
}
