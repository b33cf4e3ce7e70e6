package services

import (
	"fmt"
	"io"

	"hotelops/internal/models"
	"hotelops/pkg/apperrors"

	"gorm.io/gorm"
)

// catalogoIndice índice nombre normalizado -> id de un catálogo global
type catalogoIndice map[string]uint

func (s *DispositivoService) cargarCatalogos() (tipos, sistemas, estados catalogoIndice, err error) {
	var listaTipos []models.TipoDispositivo
	var listaSistemas []models.SistemaOperativo
	var listaEstados []models.EstadoDispositivo

	if err = s.db.Find(&listaTipos).Error; err != nil {
		return nil, nil, nil, apperrors.FromDB(err)
	}
	if err = s.db.Find(&listaSistemas).Error; err != nil {
		return nil, nil, nil, apperrors.FromDB(err)
	}
	if err = s.db.Find(&listaEstados).Error; err != nil {
		return nil, nil, nil, apperrors.FromDB(err)
	}

	tipos = make(catalogoIndice, len(listaTipos))
	for _, t := range listaTipos {
		tipos[Normalizar(t.Nombre)] = t.ID
	}
	sistemas = make(catalogoIndice, len(listaSistemas))
	for _, so := range listaSistemas {
		sistemas[Normalizar(so.Nombre)] = so.ID
	}
	estados = make(catalogoIndice, len(listaEstados))
	for _, e := range listaEstados {
		estados[Normalizar(e.Nombre)] = e.ID
	}
	return tipos, sistemas, estados, nil
}

func (idx catalogoIndice) resolver(nombre string) *uint {
	if nombre == "" {
		return nil
	}
	if id, ok := idx[Normalizar(nombre)]; ok {
		return &id
	}
	return nil
}

type filaDispositivo struct {
	Nombre             string
	NumeroSerie        *string
	Etiqueta           *string
	TipoID             *uint
	SistemaOperativoID *uint
	EstadoID           *uint
	AreaID             *uint
}

// Importar carga masiva de equipos. La conciliación usa el número de serie
// cuando existe y el nombre exacto en su defecto; las filas soft-borradas
// reviven.
func (s *DispositivoService) Importar(r io.Reader, p *models.Principal) (*ResultadoImportacion, error) {
	hotelID, err := hotelParaImportar(p)
	if err != nil {
		return nil, err
	}

	tabla, err := leerTabla(r)
	if err != nil {
		return nil, err
	}

	if !tabla.tieneColumna("nombre", "equipo", "dispositivo", "nombre equipo") {
		return nil, apperrors.Validation("El archivo no es válido: Falta la columna 'Nombre' en el encabezado.")
	}
	if !tabla.tieneColumna("numero de serie", "número de serie", "serie", "serial", "etiqueta", "tipo", "estado") {
		return nil, apperrors.Validation("El archivo no parece ser un inventario válido. Faltan columnas clave como 'Número de Serie', 'Etiqueta' o 'Tipo'.")
	}

	ctxAreas, err := cargarContextoAreas(s.db, hotelID)
	if err != nil {
		return nil, err
	}
	tipos, sistemas, estados, err := s.cargarCatalogos()
	if err != nil {
		return nil, err
	}

	var porCrear []filaDispositivo
	for _, fila := range tabla.filas {
		nombre := trimCampo(tabla.valor(fila, "nombre", "equipo", "dispositivo", "nombre equipo"))
		if nombre == "" {
			continue
		}

		registro := filaDispositivo{
			Nombre:             nombre,
			NumeroSerie:        campoOpcional(tabla.valor(fila, "numero de serie", "número de serie", "serie", "serial")),
			Etiqueta:           campoOpcional(tabla.valor(fila, "etiqueta", "tag")),
			TipoID:             tipos.resolver(tabla.valor(fila, "tipo", "tipo de equipo")),
			SistemaOperativoID: sistemas.resolver(tabla.valor(fila, "sistema operativo", "so", "os")),
			EstadoID:           estados.resolver(tabla.valor(fila, "estado", "estatus", "status")),
			AreaID: ctxAreas.resolverArea(
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
			Entidad:   "Dispositivo",
			Principal: p,
			Detalles:  fmt.Sprintf("Importación masiva de Inventario: %d registros procesados en Hotel ID: %d.", resultado.SuccessCount, hotelID),
		})
	}

	return resultado, nil
}

func (s *DispositivoService) conciliarFila(fila filaDispositivo, hotelID uint) error {
	var existente models.Dispositivo

	query := s.db.Unscoped().Where("hotel_id = ?", hotelID)
	if fila.NumeroSerie != nil {
		query = query.Where("numero_serie = ?", *fila.NumeroSerie)
	} else {
		query = query.Where("nombre = ?", fila.Nombre)
	}

	err := query.First(&existente).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		nuevo := models.Dispositivo{
			Nombre:             fila.Nombre,
			NumeroSerie:        fila.NumeroSerie,
			Etiqueta:           fila.Etiqueta,
			TipoID:             fila.TipoID,
			SistemaOperativoID: fila.SistemaOperativoID,
			EstadoID:           fila.EstadoID,
			AreaID:             fila.AreaID,
			HotelID:            hotelID,
		}
		return s.db.Create(&nuevo).Error
	}

	return s.db.Unscoped().Model(&existente).Updates(map[string]interface{}{
		"nombre":               fila.Nombre,
		"numero_serie":         fila.NumeroSerie,
		"etiqueta":             fila.Etiqueta,
		"tipo_id":              fila.TipoID,
		"sistema_operativo_id": fila.SistemaOperativoID,
		"estado_id":            fila.EstadoID,
		"area_id":              fila.AreaID,
		"deleted_at":           nil,
	}).Error
}
