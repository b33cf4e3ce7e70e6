package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind clasifica los errores de dominio. La capa HTTP mapea cada clase a un
// único código de estado y un mensaje seguro para el cliente.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindPermissionDenied
	KindNotFound
	KindConflict
	KindReferentialConflict
	KindValidation
)

// Error error de dominio con clase y mensaje apto para el usuario
type Error struct {
	Kind    Kind
	Message string
	Err     error // causa interna, solo para el log del servidor
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Unauthenticated(message string) *Error   { return New(KindUnauthenticated, message) }
func Forbidden(message string) *Error         { return New(KindForbidden, message) }
func PermissionDenied(message string) *Error  { return New(KindPermissionDenied, message) }
func NotFound(message string) *Error          { return New(KindNotFound, message) }
func Conflict(message string) *Error          { return New(KindConflict, message) }
func Validation(message string) *Error        { return New(KindValidation, message) }
func Internal(message string, err error) *Error {
	return Wrap(KindInternal, message, err)
}

// KindOf devuelve la clase de un error; los no clasificados son internos.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf devuelve el mensaje apto para el cliente. Los errores sin
// clasificar nunca exponen detalle interno.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Ocurrió un problema inesperado en el servidor. Por favor intenta más tarde o contacta a soporte."
}

// Mensajes por restricción de unicidad. La restricción que disparó la
// violación llega como descriptor estructurado del driver (nombre de la
// constraint), nunca se inspecciona el texto del error.
var uniqueConstraintMessages = []struct {
	fragment string
	message  string
}{
	{"correo", "Este correo electrónico ya está registrado en el sistema."},
	{"email", "Este correo electrónico ya está registrado en el sistema."},
	{"username", "Este nombre de usuario ya está en uso. Intenta con otro."},
	{"usuario_login", "Este nombre de usuario ya está en uso. Intenta con otro."},
	{"numero_serie", "Ya existe un equipo registrado con este Número de Serie en este hotel."},
	{"etiqueta", "Ya existe un equipo con esta Etiqueta."},
	{"codigo", "Ya existe un hotel con este código."},
	{"nombre", "Ya existe un registro con este Nombre (probablemente Área o Departamento)."},
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const genericDuplicateMessage = "Este registro ya existe en el sistema (dato duplicado)."

const referentialMessage = "No se puede eliminar o modificar este registro porque está siendo utilizado en otra parte del sistema (ej. tiene equipos, usuarios o historial asignado)."

// FromDB traduce errores del almacenamiento a errores de dominio. Las
// violaciones de unicidad son el árbitro final de las carreras
// «verificar y crear»: el segundo escritor concurrente recibe Conflict.
func FromDB(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Wrap(KindNotFound, "La información solicitada no existe o ya fue eliminada.", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return Wrap(KindConflict, uniqueMessage(pgErr.ConstraintName), err)
		case pgForeignKeyViolation:
			return &Error{Kind: KindReferentialConflict, Message: referentialMessage, Err: err}
		}
	}

	// gorm también normaliza duplicados de algunos drivers
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return Wrap(KindConflict, genericDuplicateMessage, err)
	}

	return Internal("Ocurrió un problema inesperado en el servidor. Por favor intenta más tarde o contacta a soporte.", err)
}

// uniqueMessage busca el mensaje por el nombre de la constraint violada
func uniqueMessage(constraint string) string {
	for _, entry := range uniqueConstraintMessages {
		if strings.Contains(constraint, entry.fragment) {
			return entry.message
		}
	}
	return genericDuplicateMessage
}
