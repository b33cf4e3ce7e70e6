package jwt

import (
	"testing"
	"time"
)

func TestGenerateYVerify(t *testing.T) {
	manager := NewManager("clave-de-prueba", time.Hour)

	token, err := manager.GenerateToken(7, "carlos")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := manager.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, se esperaba 7", claims.UserID)
	}
	if claims.Subject != "carlos" {
		t.Errorf("Subject = %q, se esperaba carlos", claims.Subject)
	}
}

func TestVerifyTokenExpirado(t *testing.T) {
	manager := NewManager("clave-de-prueba", -time.Minute)

	token, err := manager.GenerateToken(7, "carlos")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := manager.VerifyToken(token); err == nil {
		t.Error("un token vencido debe rechazarse")
	}
}

func TestVerifyTokenOtraClave(t *testing.T) {
	emisor := NewManager("clave-a", time.Hour)
	receptor := NewManager("clave-b", time.Hour)

	token, err := emisor.GenerateToken(7, "carlos")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := receptor.VerifyToken(token); err == nil {
		t.Error("un token firmado con otra clave debe rechazarse")
	}
}

func TestVerifyTokenBasura(t *testing.T) {
	manager := NewManager("clave-de-prueba", time.Hour)

	for _, token := range []string{"", "no-es-un-jwt", "a.b.c"} {
		if _, err := manager.VerifyToken(token); err == nil {
			t.Errorf("VerifyToken(%q) debió fallar", token)
		}
	}
}
