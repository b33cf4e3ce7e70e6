package services

import (
	"fmt"
	"strings"

	"hotelops/internal/models"
	"hotelops/pkg/apperrors"
	"hotelops/pkg/jwt"
	"hotelops/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsuarioSistemaService struct {
	db        *gorm.DB
	auditoria *AuditoriaService
	jwtMgr    *jwt.Manager
}

func NewUsuarioSistemaService(db *gorm.DB, auditoria *AuditoriaService, jwtMgr *jwt.Manager) *UsuarioSistemaService {
	return &UsuarioSistemaService{db: db, auditoria: auditoria, jwtMgr: jwtMgr}
}

// LoginInput acepta username o correo en el mismo campo
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UsuarioInput datos de alta/edición de usuario de sistema
type UsuarioInput struct {
	Username   string `json:"username" binding:"required"`
	Correo     string `json:"correo" binding:"required,email"`
	Nombre     string `json:"nombre" binding:"required"`
	Password   string `json:"password"`
	Rol        string `json:"rol" binding:"required"`
	HotelesIDs []uint `json:"hotelesIds"`
}

// sanitizarUsername minúsculas, sin espacios internos ni extremos. Se aplica
// igual al crear la cuenta y al intentar entrar, para que "Juan Perez " y
// "juanperez" resuelvan a la misma credencial.
func sanitizarUsername(texto string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(texto)), " ", "")
}

// GetActivoConHoteles carga el usuario vigente con sus membresías. Es la
// lectura que el middleware repite en cada petición: las membresías salen
// de la base, nunca del token. Los usuarios dados de baja no resuelven.
func (s *UsuarioSistemaService) GetActivoConHoteles(id uint) (*models.UsuarioSistema, error) {
	var usuario models.UsuarioSistema
	err := s.db.Preload("Hoteles").First(&usuario, id).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return &usuario, nil
}

// Login valida credenciales y emite el token. El identificador puede ser
// username o correo. Los intentos fallidos quedan auditados como LOGIN_FAIL.
func (s *UsuarioSistemaService) Login(input LoginInput) (string, *models.UsuarioSistema, error) {
	identificador := sanitizarUsername(input.Username)
	password := strings.TrimSpace(input.Password)

	var usuario models.UsuarioSistema
	err := s.db.Preload("Hoteles").
		Where("username = ? OR correo = ?", identificador, identificador).
		First(&usuario).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			s.auditarLoginFallido(identificador)
			return "", nil, apperrors.Unauthenticated("Credenciales inválidas")
		}
		return "", nil, apperrors.FromDB(err)
	}

	if !usuario.CheckPassword(password) {
		s.auditarLoginFallido(identificador)
		return "", nil, apperrors.Unauthenticated("Credenciales inválidas")
	}

	token, err := s.jwtMgr.GenerateToken(usuario.ID, usuario.Username)
	if err != nil {
		return "", nil, apperrors.Internal("no se pudo generar el token", err)
	}

	return token, &usuario, nil
}

func (s *UsuarioSistemaService) auditarLoginFallido(identificador string) {
	s.auditoria.Registrar(EntradaAuditoria{
		Accion:   models.AccionLoginFail,
		Entidad:  "Auth",
		Detalles: fmt.Sprintf("Intento de login fallido para: %s", identificador),
	})
}

// GetUsers lista usuarios administrables. ROOT ve todos; el resto solo ve
// usuarios que comparten al menos un hotel con sus membresías.
func (s *UsuarioSistemaService) GetUsers(params *pagination.Params, search string, p *models.Principal) ([]models.UsuarioSistema, int64, error) {
	var usuarios []models.UsuarioSistema
	var total int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.UsuarioSistema{})

		if search != "" {
			patron := fmt.Sprintf("%%%s%%", search)
			query = query.Where(
				"usuarios_sistema.nombre ILIKE ? OR usuarios_sistema.username ILIKE ? OR usuarios_sistema.correo ILIKE ?",
				patron, patron, patron,
			)
		}

		if p.Rol != models.RolRoot {
			ids := p.HotelIDs()
			if len(ids) == 0 {
				ids = []uint{hotelImposible}
			}
			query = query.Where(
				"usuarios_sistema.id IN (SELECT usuario_sistema_id FROM usuario_sistema_hoteles WHERE hotel_id IN ?)",
				ids,
			)
		}

		if err := query.Count(&total).Error; err != nil {
			return err
		}

		return query.Preload("Hoteles").
			Order("username ASC").
			Offset(params.GetOffset()).
			Limit(params.GetLimit()).
			Find(&usuarios).Error
	})
	if err != nil {
		return nil, 0, apperrors.FromDB(err)
	}

	return usuarios, total, nil
}

func (s *UsuarioSistemaService) GetByID(id uint, p *models.Principal) (*models.UsuarioSistema, error) {
	var usuario models.UsuarioSistema
	err := s.db.Preload("Hoteles").First(&usuario, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("Usuario no encontrado o sin permisos.")
		}
		return nil, apperrors.FromDB(err)
	}

	if p.Rol != models.RolRoot && !s.compartenHotel(&usuario, p) {
		return nil, apperrors.NotFound("Usuario no encontrado o sin permisos.")
	}

	return &usuario, nil
}

func (s *UsuarioSistemaService) compartenHotel(usuario *models.UsuarioSistema, p *models.Principal) bool {
	for _, h := range usuario.Hoteles {
		if p.EsMiembro(h.ID) {
			return true
		}
	}
	return false
}

// Create registra un usuario de sistema y conecta sus membresías
func (s *UsuarioSistemaService) Create(input UsuarioInput, p *models.Principal) (*models.UsuarioSistema, error) {
	rol := models.Rol(input.Rol)
	if !rol.EsValido() {
		return nil, apperrors.Validation("Rol inválido")
	}

	username := sanitizarUsername(input.Username)
	if len(username) < 3 {
		return nil, apperrors.Validation("El usuario debe tener al menos 3 caracteres.")
	}

	password := strings.TrimSpace(input.Password)
	if password == "" {
		return nil, apperrors.Validation("La contraseña es obligatoria")
	}

	usuario := models.UsuarioSistema{
		Username: username,
		Correo:   strings.TrimSpace(input.Correo),
		Nombre:   input.Nombre,
		Rol:      rol,
	}
	if err := usuario.SetPassword(password); err != nil {
		return nil, apperrors.Internal("no se pudo cifrar la contraseña", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&usuario).Error; err != nil {
			return err
		}
		if len(input.HotelesIDs) > 0 {
			var hoteles []models.Hotel
			if err := tx.Find(&hoteles, input.HotelesIDs).Error; err != nil {
				return err
			}
			return tx.Model(&usuario).Association("Hoteles").Replace(hoteles)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionCreate,
		Entidad:   "UsuarioSistema",
		EntidadID: usuario.ID,
		Despues:   &usuario,
		Principal: p,
		Detalles:  fmt.Sprintf("Usuario de sistema creado: %s", usuario.Username),
	})

	return &usuario, nil
}

// Update edita usuario y reemplaza membresías de forma atómica. El rol del
// superadministrador no se puede tocar.
func (s *UsuarioSistemaService) Update(id uint, input UsuarioInput, p *models.Principal) (*models.UsuarioSistema, error) {
	anterior, err := s.GetByID(id, p)
	if err != nil {
		return nil, err
	}

	rol := models.Rol(input.Rol)
	if !rol.EsValido() {
		return nil, apperrors.Validation("Rol inválido")
	}
	if anterior.Username == models.UsernameRoot && rol != anterior.Rol {
		return nil, apperrors.Validation("No se puede cambiar el rol del superadministrador")
	}

	usuario := *anterior
	usuario.Username = sanitizarUsername(input.Username)
	usuario.Correo = strings.TrimSpace(input.Correo)
	usuario.Nombre = input.Nombre
	usuario.Rol = rol
	if password := strings.TrimSpace(input.Password); password != "" {
		if err := usuario.SetPassword(password); err != nil {
			return nil, apperrors.Internal("no se pudo cifrar la contraseña", err)
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&usuario).Error; err != nil {
			return err
		}
		var hoteles []models.Hotel
		if len(input.HotelesIDs) > 0 {
			if err := tx.Find(&hoteles, input.HotelesIDs).Error; err != nil {
				return err
			}
		}
		return tx.Model(&usuario).Association("Hoteles").Replace(hoteles)
	})
	if err != nil {
		return nil, apperrors.FromDB(err)
	}

	usuario.Hoteles = nil
	if err := s.db.Preload("Hoteles").First(&usuario, id).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionUpdate,
		Entidad:   "UsuarioSistema",
		EntidadID: id,
		Antes:     anterior,
		Despues:   &usuario,
		Principal: p,
		Detalles:  fmt.Sprintf("Usuario de sistema actualizado: %s", usuario.Username),
	})

	return &usuario, nil
}

// UpdatePassword cambia la contraseña de una cuenta. Cualquier usuario puede
// cambiar la propia; las ajenas solo ROOT o HOTEL_ADMIN y únicamente sobre
// cuentas dentro de su alcance. La contraseña del root solo la cambia root.
func (s *UsuarioSistemaService) UpdatePassword(id uint, password string, p *models.Principal) error {
	password = strings.TrimSpace(password)
	if password == "" {
		return apperrors.Validation("Contraseña requerida")
	}

	var usuario models.UsuarioSistema
	if p.UsuarioID() == id {
		if err := s.db.First(&usuario, id).Error; err != nil {
			return apperrors.FromDB(err)
		}
	} else {
		if p.Rol != models.RolRoot && p.Rol != models.RolHotelAdmin {
			return apperrors.PermissionDenied("No tienes permisos para esta acción")
		}
		// Mismo alcance que cualquier lectura de cuentas: un admin solo
		// alcanza usuarios con los que comparte hotel
		encontrado, err := s.GetByID(id, p)
		if err != nil {
			return err
		}
		if encontrado.Username == models.UsernameRoot && p.Rol != models.RolRoot {
			return apperrors.PermissionDenied("No se puede cambiar la contraseña del superadministrador")
		}
		usuario = *encontrado
	}

	if err := usuario.SetPassword(password); err != nil {
		return apperrors.Internal("no se pudo cifrar la contraseña", err)
	}

	err := s.db.Model(&models.UsuarioSistema{}).Where("id = ?", id).
		Update("password_hash", usuario.PasswordHash).Error
	if err != nil {
		return apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionUpdate,
		Entidad:   "UsuarioSistema",
		EntidadID: id,
		Principal: p,
		Detalles:  fmt.Sprintf("Contraseña actualizada para el usuario %s", usuario.Username),
	})

	return nil
}

// ListAll usuarios vigentes con membresías, para exportación
func (s *UsuarioSistemaService) ListAll(p *models.Principal) ([]models.UsuarioSistema, error) {
	var usuarios []models.UsuarioSistema
	query := s.db.Preload("Hoteles").Order("username ASC")
	if p.Rol != models.RolRoot {
		ids := p.HotelIDs()
		if len(ids) == 0 {
			ids = []uint{hotelImposible}
		}
		query = query.Where(
			"usuarios_sistema.id IN (SELECT usuario_sistema_id FROM usuario_sistema_hoteles WHERE hotel_id IN ?)",
			ids,
		)
	}
	if err := query.Find(&usuarios).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return usuarios, nil
}

// Delete baja lógica del usuario de sistema
func (s *UsuarioSistemaService) Delete(id uint, p *models.Principal) (*models.UsuarioSistema, error) {
	anterior, err := s.GetByID(id, p)
	if err != nil {
		return nil, err
	}
	if anterior.Username == models.UsernameRoot {
		return nil, apperrors.Validation("No se puede eliminar al superadministrador")
	}

	if err := s.db.Delete(&models.UsuarioSistema{}, id).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	s.auditoria.Registrar(EntradaAuditoria{
		Accion:    models.AccionDelete,
		Entidad:   "UsuarioSistema",
		EntidadID: id,
		Antes:     anterior,
		Principal: p,
		Detalles:  fmt.Sprintf("Usuario de sistema eliminado: %s", anterior.Username),
	})

	return anterior, nil
}
