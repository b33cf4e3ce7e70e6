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

type DispositivoService struct {
	db        *gorm.DB
	auditoria *AuditoriaService
}

func NewDispositivoService(db *gorm.DB, auditoria *AuditoriaService) *DispositivoService {
	return &DispositivoService{db: db, auditoria: auditoria}
}

// DispositivoInput datos de alta/edición de equipo
type DispositivoInput struct {
	Nombre             string  `json:"nombre" binding:"required"`
	NumeroSerie        *string `json:"numero_serie"`
	Etiqueta           *string `json:"etiqueta"`
	TipoID             *uint   `json:"tipoId"`
	SistemaOperativoID *uint   `json:"sistemaOperativoId"`
	EstadoID           *uint   `json:"estadoId"`
	AreaID             *uint   `json:"areaId"`
	EmpleadoID         *uint   `json:"empleadoId"`
	HotelID            *uint   `json:"hotelId"`
}

// BajaInput datos de la disposición que acompaña el borrado de un equipo
type BajaInput struct {
	Motivo        string `json:"motivo"`
	Observaciones string `json:"observaciones"`
}

var dispositivoSortKeys = sortMap{
	"nombre":                  {column: "dispositivos.nombre"},
	"numero_serie":            {column: "dispositivos.numero_serie"},
	"etiqueta":                {column: "dispositivos.etiqueta"},
	"created_at":              {column: "dispositivos.created_at"},
	"tipo.nombre":             {join: "LEFT JOIN tipos_dispositivo ON tipos_dispositivo.id = dispositivos.tipo_id", column: "tipos_dispositivo.nombre"},
	"estado.nombre":           {join: "LEFT JOIN estados_dispositivo ON estados_dispositivo.id = dispositivos.estado_id", column: "estados_dispositivo.nombre"},
	"sistemaOperativo.nombre": {join: "LEFT JOIN sistemas_operativos ON sistemas_operativos.id = dispositivos.sistema_operativo_id", column: "sistemas_operativos.nombre"},
	"area.nombre":             {join: "LEFT JOIN areas ON areas.id = dispositivos.area_id", column: "areas.nombre"},
	"empleado.nombre":         {join: "LEFT JOIN empleados ON empleados.id = dispositivos.empleado_id", column: "empleados.nombre"},
	"hotel.nombre":            {join: "LEFT JOIN hoteles ON hoteles.id = dispositivos.hotel_id", column: "hoteles.nombre"},
}

func (s *DispositivoService) preloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Tipo").
		Preload("SistemaOperativo").
		Preload("Estado").
		Preload("Area.Departamento").
		Preload("Empleado").
		Preload("Hotel")
}

// List listado paginado con búsqueda por nombre, serie o etiqueta
func (s *DispositivoService) List(params *pagination.Params, search, sortBy, order string, p *models.Principal) ([]models.Dispositivo, int64, error) {
	var dispositivos []models.Dispositivo
	var total int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Dispositivo{}).Scopes(ScopeHotel(p, "dispositivos"))

		if search != "" {
			patron := fmt.Sprintf("%%%s%%", search)
			query = query.Where(
				"dispositivos.nombre ILIKE ? OR dispositivos.numero_serie ILIKE ? OR dispositivos.etiqueta ILIKE ?",
				patron, patron, patron,
			)
		}

		if err := query.Count(&total).Error; err != nil {
			return err
		}

		return s.preloads(aplicarOrden(query, dispositivoSortKeys, sortBy, order, "dispositivos.created_at DESC")).
			Offset(params.GetOffset()).
			Limit(params.GetLimit()).
			Find(&dispositivos).Error
	})
	if err != nil {
		return nil, 0, apperrors.FromDB(err)
	}

	return dispositivos, total, nil
}

// ListAll inventario completo visible, sin paginar, para exportación
func (s *DispositivoService) ListAll(p *models.Principal) ([]models.Dispositivo, error) {
	var dispositivos []models.Dispositivo
	err := s.preloads(s.db.Scopes(ScopeHotel(p, "dispositivos"))).
		Order("dispositivos.nombre ASC").
		Find(&dispositivos).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return dispositivos, nil
}

// ListInactivos equipos en estado Inactivo o Baja, para exportación
func (s *DispositivoService) ListInactivos(p *models.Principal) ([]models.Dispositivo, error) {
	var dispositivos []models.Dispositivo
	err := s.preloads(s.db.Scopes(ScopeHotel(p, "dispositivos"))).
		Joins("JOIN estados_dispositivo ON estados_dispositivo.id = dispositivos.estado_id").
		Where("estados_dispositivo.nombre IN ?", []string{models.EstadoInactivo, models.EstadoBaja}).
		Order("dispositivos.nombre ASC").
		Find(&dispositivos).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return dispositivos, nil
}

// ListNombres id y nombre de los equipos visibles (selectores)
func (s *DispositivoService) ListNombres(p *models.Principal) ([]models.Dispositivo, error) {
	var dispositivos []models.Dispositivo
	err := s.db.
		Model(&models.Dispositivo{}).
		Scopes(ScopeHotel(p, "dispositivos")).
		Select("id", "nombre").
		Order("nombre ASC").
		Find(&dispositivos).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return dispositivos, nil
}

// GetByID búsqueda acotada
func (s *DispositivoService) GetByID(id uint, p *models.Principal) (*models.Dispositivo, error) {
	var dispositivo models.Dispositivo
	err := s.preloads(s.db.Scopes(ScopeHotel(p, "dispositivos"))).
		First(&dispositivo, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("Dispositivo no encontrado o sin permisos.")
		}
		return nil, apperrors.FromDB(err)
	}
	return &dispositivo, nil
}

// validarReferencias verifica que área y empleado pertenezcan al hotel del
// equipo. Los catálogos son globales y no se validan por hotel.
func (s *DispositivoService) validarReferencias(input DispositivoInput, hotelID uint) error {
	if input.AreaID != nil {
		var area models.Area
		err := s.db.Where("id = ? AND hotel_id = ?", *input.AreaID, hotelID).First(&area).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.Validation("El área seleccionada no pertenece al hotel del equipo.")
			}
			return apperrors.FromDB(err)
		}
	}
	if input.EmpleadoID != nil {
		var empleado models.Empleado
		err := s.db.Where("id = ? AND hotel_id = ?", *input.EmpleadoID, hotelID).First(&empleado).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.Validation("El empleado asignado no pertenece al hotel del equipo.")
			}
			return apperrors.FromDB(err)
		}
	}
	return nil
}

// Create alta de equipo bajo el hotel destino
func (s *DispositivoService) Create(input DispositivoInput, p *models.Principal) (*models.Dispositivo, error) {
	hotelID, err := ResolverHotelDestino(p, input.HotelID, "el dispositivo")
	if err != nil {
		return nil, err
	}
	if err := CanCreateIn(p, hotelID, "dispositivos"); err != nil {
		return nil, err
	}
	if err := s.validarReferencias(input, hotelID); err != nil {
		return nil, err
	}

	dispositivo := models.Dispositivo{
		Nombre:             input.Nombre,
		NumeroSerie:        input.NumeroSerie,
		Etiqueta:           input.Etiqueta,
		TipoID:             input.TipoID,
		SistemaOperativoID: input.SistemaOperativoID,
		EstadoID:           input.EstadoID,
		AreaID:             input.AreaID,
		EmpleadoID:         input.EmpleadoID,
		HotelID:            hotelID,
	}

	if err := s.db.Create(&dispositivo).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionCreate,
		Entidad:   "Dispositivo",
		EntidadID: dispositivo.ID,
		Despues:   &dispositivo,
		Principal: p,
		Detalles:  fmt.Sprintf("Dispositivo creado: %s", dispositivo.Nombre),
	})

	return &dispositivo, nil
}

// Update actualiza un equipo. Área y empleado se validan contra el hotel que
// ya es dueño de la fila; el hotel del equipo no cambia por esta vía.
func (s *DispositivoService) Update(id uint, input DispositivoInput, p *models.Principal) (*models.Dispositivo, error) {
	anterior, err := s.GetByID(id, p)
	if err != nil {
		return nil, err
	}

	if err := s.validarReferencias(input, anterior.HotelID); err != nil {
		return nil, err
	}

	dispositivo := *anterior
	dispositivo.Nombre = input.Nombre
	dispositivo.NumeroSerie = input.NumeroSerie
	dispositivo.Etiqueta = input.Etiqueta
	dispositivo.TipoID = input.TipoID
	dispositivo.SistemaOperativoID = input.SistemaOperativoID
	dispositivo.EstadoID = input.EstadoID
	dispositivo.AreaID = input.AreaID
	dispositivo.EmpleadoID = input.EmpleadoID

	if err := s.db.Omit(clause.Associations).Save(&dispositivo).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionUpdate,
		Entidad:   "Dispositivo",
		EntidadID: id,
		Antes:     anterior,
		Despues:   &dispositivo,
		Principal: p,
		Detalles:  fmt.Sprintf("Dispositivo actualizado: %s", dispositivo.Nombre),
	})

	return &dispositivo, nil
}

// Delete da de baja un equipo: lo borra lógicamente y deja constancia en el
// registro de bajas, todo en la misma transacción.
func (s *DispositivoService) Delete(id uint, input BajaInput, p *models.Principal) (*models.Dispositivo, error) {
	anterior, err := s.GetByID(id, p)
	if err != nil {
		return nil, err
	}

	motivo := input.Motivo
	if motivo == "" {
		motivo = "Baja de inventario"
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		baja := models.Baja{
			DispositivoID: anterior.ID,
			HotelID:       anterior.HotelID,
			Motivo:        motivo,
			Observaciones: input.Observaciones,
			Fecha:         time.Now(),
		}
		if err := tx.Create(&baja).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Dispositivo{}, id).Error
	})
	if err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionDelete,
		Entidad:   "Dispositivo",
		EntidadID: id,
		Antes:     anterior,
		Principal: p,
		Detalles:  fmt.Sprintf("Dispositivo dado de baja: %s", anterior.Nombre),
	})

	return anterior, nil
}
