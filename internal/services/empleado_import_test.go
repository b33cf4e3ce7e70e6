package services

import (
	"strings"
	"testing"

	"hotelops/internal/models"
	"hotelops/pkg/apperrors"
)

func TestHotelParaImportar(t *testing.T) {
	activo := uint(3)

	tests := []struct {
		name      string
		principal *models.Principal
		wantID    uint
		wantErr   bool
	}{
		{
			name:      "hotel activo manda",
			principal: &models.Principal{HotelActivo: &activo, Hoteles: []models.HotelResumen{{ID: 1}, {ID: 2}}},
			wantID:    3,
		},
		{
			name:      "única membresía sin hotel activo",
			principal: &models.Principal{Hoteles: []models.HotelResumen{{ID: 7}}},
			wantID:    7,
		},
		{
			name:      "varias membresías sin selección",
			principal: &models.Principal{Hoteles: []models.HotelResumen{{ID: 1}, {ID: 2}}},
			wantErr:   true,
		},
		{
			name:      "sin membresías",
			principal: &models.Principal{},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := hotelParaImportar(tt.principal)
			if tt.wantErr {
				if err == nil {
					t.Fatal("se esperaba error")
				}
				if apperrors.KindOf(err) != apperrors.KindPermissionDenied {
					t.Errorf("kind = %v, se esperaba PermissionDenied", apperrors.KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("error inesperado: %v", err)
			}
			if id != tt.wantID {
				t.Errorf("hotel = %d, se esperaba %d", id, tt.wantID)
			}
		})
	}
}

func TestLeerTabla(t *testing.T) {
	csv := "Nombre,Correo,Área,Departamento\nAna Pérez,ana@hotel.mx,Recepción,Front Desk\nLuis,,Cocina,A&B\n"

	tabla, err := leerTabla(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("leerTabla: %v", err)
	}

	if len(tabla.filas) != 2 {
		t.Fatalf("filas = %d, se esperaban 2", len(tabla.filas))
	}

	// Las cabeceras se indexan por su forma normalizada
	if !tabla.tieneColumna("area") {
		t.Error("'Área' debe encontrarse preguntando por 'area'")
	}
	if tabla.tieneColumna("etiqueta") {
		t.Error("no debe reportar columnas inexistentes")
	}

	if got := tabla.valor(tabla.filas[0], "email", "correo"); got != "ana@hotel.mx" {
		t.Errorf("correo de la fila 0 = %q", got)
	}
	if got := tabla.valor(tabla.filas[1], "correo"); got != "" {
		t.Errorf("celda vacía debe dar cadena vacía, dio %q", got)
	}
	if got := tabla.valor(tabla.filas[0], "serie", "serial"); got != "" {
		t.Errorf("sinónimos ausentes deben dar cadena vacía, dio %q", got)
	}
}

func TestLeerTablaVacia(t *testing.T) {
	if _, err := leerTabla(strings.NewReader("")); err == nil {
		t.Error("un archivo vacío debe rechazarse")
	}
}

func TestLeerTablaFilasIrregulares(t *testing.T) {
	// Filas con distinto número de celdas no deben tirar la carga
	csv := "Nombre,Correo\nAna,ana@hotel.mx,extra\nLuis\n"

	tabla, err := leerTabla(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("leerTabla: %v", err)
	}
	if len(tabla.filas) != 2 {
		t.Fatalf("filas = %d, se esperaban 2", len(tabla.filas))
	}
	if got := tabla.valor(tabla.filas[1], "correo"); got != "" {
		t.Errorf("una fila corta debe dar cadena vacía en columnas faltantes, dio %q", got)
	}
}

func contextoDePrueba() *contextoAreas {
	area := func(id uint, nombre, depto string) models.Area {
		a := models.Area{Nombre: nombre}
		a.ID = id
		if depto != "" {
			a.Departamento = &models.Departamento{Nombre: depto}
		}
		return a
	}

	areas := []models.Area{
		area(1, "Recepción", "Front Desk"),
		area(2, "Cocina", "A&B"),
		area(3, "Cocina", "Banquetes"),
		area(4, "Lavandería", "Ama de Llaves"),
	}

	ctx := &contextoAreas{porClave: make(map[string]uint), lista: areas}
	for _, a := range areas {
		depto := ""
		if a.Departamento != nil {
			depto = a.Departamento.Nombre
		}
		ctx.porClave[Normalizar(a.Nombre)+"|"+Normalizar(depto)] = a.ID
	}
	return ctx
}

func TestResolverArea(t *testing.T) {
	ctx := contextoDePrueba()

	tests := []struct {
		name   string
		area   string
		depto  string
		wantID *uint
	}{
		{"clave compuesta exacta", "Recepción", "Front Desk", ptrID(1)},
		{"clave compuesta sin acentos", "recepcion", "front desk", ptrID(1)},
		{"departamento equivocado pero área única", "Lavandería", "Otro Depto", ptrID(4)},
		{"departamento equivocado y área ambigua", "Cocina", "Otro Depto", nil},
		{"área desconocida", "Spa", "Front Desk", nil},
		{"área vacía", "", "Front Desk", nil},
		{"departamento vacío", "Recepción", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ctx.resolverArea(tt.area, tt.depto)
			if (got == nil) != (tt.wantID == nil) {
				t.Fatalf("resolverArea = %v, se esperaba %v", got, tt.wantID)
			}
			if got != nil && *got != *tt.wantID {
				t.Errorf("id = %d, se esperaba %d", *got, *tt.wantID)
			}
		})
	}
}

func TestEsAfirmativo(t *testing.T) {
	afirmativos := []string{"Si", "sí", "SI", "yes", "Verdadero", "true", " si "}
	for _, v := range afirmativos {
		if !esAfirmativo(v) {
			t.Errorf("esAfirmativo(%q) = false", v)
		}
	}

	negativos := []string{"", "no", "false", "0", "jefe"}
	for _, v := range negativos {
		if esAfirmativo(v) {
			t.Errorf("esAfirmativo(%q) = true", v)
		}
	}
}

func ptrID(v uint) *uint {
	return &v
}
