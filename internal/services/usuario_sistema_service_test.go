package services

import "testing"

func TestSanitizarUsername(t *testing.T) {
	tests := []struct {
		entrada string
		want    string
	}{
		{"Juan Perez", "juanperez"},
		{"  ROOT  ", "root"},
		{"ana.garcia", "ana.garcia"},
		{"ana@hotel.mx", "ana@hotel.mx"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := sanitizarUsername(tt.entrada); got != tt.want {
			t.Errorf("sanitizarUsername(%q) = %q, se esperaba %q", tt.entrada, got, tt.want)
		}
	}
}
