package services

import "testing"

func TestNormalizar(t *testing.T) {
	tests := []struct {
		entrada string
		want    string
	}{
		{"Recepción", "recepcion"},
		{"  ÁREA TÉCNICA  ", "area tecnica"},
		{"Baño", "bano"},
		{"aüeio", "aueio"},
		{"sin-acentos", "sin-acentos"},
		{"", ""},
		{"   ", ""},
		{"Mantenimiento", "mantenimiento"},
	}

	for _, tt := range tests {
		if got := Normalizar(tt.entrada); got != tt.want {
			t.Errorf("Normalizar(%q) = %q, se esperaba %q", tt.entrada, got, tt.want)
		}
	}
}

func TestCampoOpcional(t *testing.T) {
	if campoOpcional("") != nil {
		t.Error("una celda vacía debe dar nil")
	}
	if campoOpcional("   ") != nil {
		t.Error("una celda con solo espacios debe dar nil")
	}
	if got := campoOpcional("  ana@hotel.mx "); got == nil || *got != "ana@hotel.mx" {
		t.Errorf("campoOpcional recortó mal: %v", got)
	}
}
