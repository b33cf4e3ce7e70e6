package models

import "testing"

func TestSetYCheckPassword(t *testing.T) {
	var u UsuarioSistema

	if err := u.SetPassword("Secreta@123"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if u.PasswordHash == "Secreta@123" {
		t.Fatal("la contraseña no debe guardarse en claro")
	}

	if !u.CheckPassword("Secreta@123") {
		t.Error("la contraseña correcta debe verificar")
	}
	if u.CheckPassword("otra") {
		t.Error("una contraseña incorrecta no debe verificar")
	}
}

func TestCheckPasswordSinHash(t *testing.T) {
	var u UsuarioSistema
	if u.CheckPassword("cualquiera") {
		t.Error("sin hash almacenado nada debe verificar")
	}
}

func TestHotelesResumen(t *testing.T) {
	h := Hotel{Nombre: "Crown Paradise Cancún", Codigo: "CPC"}
	h.ID = 3

	u := UsuarioSistema{Hoteles: []Hotel{h}}
	resumen := u.HotelesResumen()

	if len(resumen) != 1 {
		t.Fatalf("len = %d, se esperaba 1", len(resumen))
	}
	if resumen[0].ID != 3 || resumen[0].Codigo != "CPC" {
		t.Errorf("resumen inesperado: %+v", resumen[0])
	}

	var vacio UsuarioSistema
	if got := vacio.HotelesResumen(); len(got) != 0 {
		t.Errorf("sin membresías se esperaba resumen vacío, hay %d", len(got))
	}
}
