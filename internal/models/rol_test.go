package models

import "testing"

func TestRolSetContains(t *testing.T) {
	set := NewRolSet(RolRoot, RolHotelAdmin)

	if !set.Contains(RolRoot) {
		t.Error("el conjunto debería contener ROOT")
	}
	if !set.Contains(RolHotelAdmin) {
		t.Error("el conjunto debería contener HOTEL_ADMIN")
	}
	if set.Contains(RolHotelGuest) {
		t.Error("el conjunto no debería contener HOTEL_GUEST")
	}
	if set.Contains(Rol("INVENTADO")) {
		t.Error("el conjunto no debería contener roles desconocidos")
	}
}

func TestRolSetVacio(t *testing.T) {
	set := NewRolSet()
	if set.Contains(RolRoot) {
		t.Error("un conjunto vacío no contiene ningún rol")
	}
}

func TestEsGlobal(t *testing.T) {
	tests := []struct {
		rol  Rol
		want bool
	}{
		{RolRoot, true},
		{RolCorpViewer, true},
		{RolHotelAdmin, false},
		{RolHotelAux, false},
		{RolHotelGuest, false},
	}
	for _, tt := range tests {
		if got := tt.rol.EsGlobal(); got != tt.want {
			t.Errorf("%s.EsGlobal() = %v, se esperaba %v", tt.rol, got, tt.want)
		}
	}
}

func TestEsValido(t *testing.T) {
	for _, rol := range []Rol{RolRoot, RolCorpViewer, RolHotelAdmin, RolHotelAux, RolHotelGuest} {
		if !rol.EsValido() {
			t.Errorf("%s debería ser válido", rol)
		}
	}
	if Rol("ADMIN").EsValido() {
		t.Error("un rol desconocido no debería ser válido")
	}
	if Rol("").EsValido() {
		t.Error("el rol vacío no debería ser válido")
	}
}

func TestPrincipalEsMiembro(t *testing.T) {
	p := &Principal{
		Hoteles: []HotelResumen{{ID: 1, Nombre: "Uno"}, {ID: 7, Nombre: "Siete"}},
	}

	if !p.EsMiembro(1) || !p.EsMiembro(7) {
		t.Error("EsMiembro debería reconocer las membresías")
	}
	if p.EsMiembro(3) {
		t.Error("EsMiembro no debería aceptar hoteles ajenos")
	}
}

func TestPrincipalHotelIDs(t *testing.T) {
	p := &Principal{Hoteles: []HotelResumen{{ID: 2}, {ID: 5}}}
	ids := p.HotelIDs()
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 5 {
		t.Errorf("HotelIDs() = %v, se esperaba [2 5]", ids)
	}

	vacio := &Principal{}
	if len(vacio.HotelIDs()) != 0 {
		t.Error("sin membresías HotelIDs debería estar vacío")
	}
}
