package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"hotelops/internal/models"
	"hotelops/pkg/apperrors"

	"gorm.io/gorm"
)

// ResultadoImportacion resumen de una carga masiva. Una fila fallida no
// detiene al resto: el resultado reporta éxito parcial.
type ResultadoImportacion struct {
	SuccessCount int      `json:"successCount"`
	Errors       []string `json:"errors"`
}

// hotelParaImportar la carga masiva exige un destino inequívoco: el hotel
// activo o la única membresía del actor.
func hotelParaImportar(p *models.Principal) (uint, error) {
	if p.HotelActivo != nil {
		return *p.HotelActivo, nil
	}
	if len(p.Hoteles) == 1 {
		return p.Hoteles[0].ID, nil
	}
	return 0, apperrors.PermissionDenied("Acceso denegado: Solo administradores de una única propiedad pueden realizar importaciones masivas.")
}

// tablaImportada archivo tabular ya leído: cabeceras normalizadas -> índice
// de columna, más las filas de datos.
type tablaImportada struct {
	columnas map[string]int
	filas    [][]string
}

func leerTabla(r io.Reader) (*tablaImportada, error) {
	lector := csv.NewReader(r)
	lector.FieldsPerRecord = -1
	lector.TrimLeadingSpace = true

	registros, err := lector.ReadAll()
	if err != nil {
		return nil, apperrors.Validation("El archivo no se pudo leer como tabla. Verifica el formato.")
	}
	if len(registros) == 0 {
		return nil, apperrors.Validation("El archivo está vacío.")
	}

	columnas := make(map[string]int, len(registros[0]))
	for i, encabezado := range registros[0] {
		columnas[Normalizar(encabezado)] = i
	}

	return &tablaImportada{columnas: columnas, filas: registros[1:]}, nil
}

// valor busca la primera columna cuyo encabezado coincida con algún sinónimo
func (t *tablaImportada) valor(fila []string, sinonimos ...string) string {
	for _, s := range sinonimos {
		if idx, ok := t.columnas[Normalizar(s)]; ok && idx < len(fila) {
			return fila[idx]
		}
	}
	return ""
}

func (t *tablaImportada) tieneColumna(sinonimos ...string) bool {
	for _, s := range sinonimos {
		if _, ok := t.columnas[Normalizar(s)]; ok {
			return true
		}
	}
	return false
}

// contextoAreas índice de áreas del hotel destino para el cruce por nombre
type contextoAreas struct {
	porClave map[string]uint // "area|departamento" normalizado -> id
	lista    []models.Area
}

func cargarContextoAreas(db *gorm.DB, hotelID uint) (*contextoAreas, error) {
	var areas []models.Area
	err := db.Preload("Departamento").Where("hotel_id = ?", hotelID).Find(&areas).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}

	ctx := &contextoAreas{porClave: make(map[string]uint, len(areas)), lista: areas}
	for _, a := range areas {
		depto := ""
		if a.Departamento != nil {
			depto = a.Departamento.Nombre
		}
		ctx.porClave[Normalizar(a.Nombre)+"|"+Normalizar(depto)] = a.ID
	}
	return ctx, nil
}

// resolverArea cruza área y departamento por clave normalizada. Si la clave
// compuesta no existe, recurre al nombre de área solo cuando es único en el
// hotel.
func (ctx *contextoAreas) resolverArea(areaNombre, deptoNombre string) *uint {
	if areaNombre == "" || deptoNombre == "" {
		return nil
	}

	if id, ok := ctx.porClave[Normalizar(areaNombre)+"|"+Normalizar(deptoNombre)]; ok {
		return &id
	}

	var candidatas []uint
	objetivo := Normalizar(areaNombre)
	for _, a := range ctx.lista {
		if Normalizar(a.Nombre) == objetivo {
			candidatas = append(candidatas, a.ID)
		}
	}
	if len(candidatas) == 1 {
		return &candidatas[0]
	}
	return nil
}

func esAfirmativo(valor string) bool {
	switch Normalizar(valor) {
	case "si", "yes", "verdadero", "true":
		return true
	}
	return false
}

type filaEmpleado struct {
	Nombre       string
	Correo       *string
	UsuarioLogin *string
	EsJefeDeArea bool
	AreaID       *uint
}

// Importar carga masiva de staff desde un archivo tabular. Las filas se
// concilian por nombre exacto dentro del hotel: las existentes se actualizan
// y reviven si estaban dadas de baja, las nuevas se crean.
func (s *EmpleadoService) Importar(r io.Reader, p *models.Principal) (*ResultadoImportacion, error) {
	hotelID, err := hotelParaImportar(p)
	if err != nil {
		return nil, err
	}

	tabla, err := leerTabla(r)
	if err != nil {
		return nil, err
	}

	if !tabla.tieneColumna("nombre", "nombre completo", "empleado") {
		return nil, apperrors.Validation("El archivo no es válido: Falta la columna 'Nombre' en el encabezado.")
	}
	if !tabla.tieneColumna("correo", "email", "área", "area", "departamento", "usuario", "login") {
		return nil, apperrors.Validation("El archivo no parece ser un reporte de Staff válido. Faltan columnas clave como 'Correo', 'Área' o 'Departamento'.")
	}

	ctx, err := cargarContextoAreas(s.db, hotelID)
	if err != nil {
		return nil, err
	}

	var porCrear []filaEmpleado
	for _, fila := range tabla.filas {
		nombre := trimCampo(tabla.valor(fila, "nombre", "nombre completo", "empleado"))
		if nombre == "" {
			continue
		}

		registro := filaEmpleado{
			Nombre:       nombre,
			Correo:       campoOpcional(tabla.valor(fila, "correo", "email", "e-mail")),
			UsuarioLogin: campoOpcional(tabla.valor(fila, "usuario de login", "usuario", "login", "user", "usuario login")),
			EsJefeDeArea: esAfirmativo(tabla.valor(fila, "es jefe", "jefe", "es jefe de area", "jefe area")),
			AreaID: ctx.resolverArea(
				trimCampo(tabla.valor(fila, "área", "area", "nombre area")),
				trimCampo(tabla.valor(fila, "departamento", "depto", "dept")),
			),
		}
		porCrear = append(porCrear, registro)
	}

	if len(porCrear) == 0 {
		return nil, apperrors.Validation("No se encontraron registros válidos para importar en el archivo.")
	}

	resultado := &ResultadoImportacion{Errors: []string{}}

	for _, fila := range porCrear {
		if err := s.conciliarFila(fila, hotelID); err != nil {
			resultado.Errors = append(resultado.Errors, fmt.Sprintf("Error BD en fila '%s': %v", fila.Nombre, err))
			continue
		}
		resultado.SuccessCount++
	}

	if resultado.SuccessCount > 0 {
		s.auditoria.Registrar(EntradaAuditoria{
			Accion:    models.AccionImport,
			Entidad:   "Empleado",
			Principal: p,
			Detalles:  fmt.Sprintf("Importación masiva de Staff: %d registros procesados en Hotel ID: %d.", resultado.SuccessCount, hotelID),
		})
	}

	return resultado, nil
}

// conciliarFila upsert por nombre. Unscoped para encontrar también filas
// soft-borradas y revivirlas.
func (s *EmpleadoService) conciliarFila(fila filaEmpleado, hotelID uint) error {
	var existente models.Empleado
	err := s.db.Unscoped().
		Where("nombre = ? AND hotel_id = ?", fila.Nombre, hotelID).
		First(&existente).Error

	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		nuevo := models.Empleado{
			Nombre:       fila.Nombre,
			Correo:       fila.Correo,
			UsuarioLogin: fila.UsuarioLogin,
			EsJefeDeArea: fila.EsJefeDeArea,
			AreaID:       fila.AreaID,
			HotelID:      hotelID,
		}
		return s.db.Create(&nuevo).Error
	}

	return s.db.Unscoped().Model(&existente).Updates(map[string]interface{}{
		"nombre":          fila.Nombre,
		"correo":          fila.Correo,
		"usuario_login":   fila.UsuarioLogin,
		"es_jefe_de_area": fila.EsJefeDeArea,
		"area_id":         fila.AreaID,
		"deleted_at":      nil,
	}).Error
}
