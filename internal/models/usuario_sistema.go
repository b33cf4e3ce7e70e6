package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UsuarioSistema cuenta de acceso al sistema. La relación muchos-a-muchos
// con Hotel define las membresías que acotan su alcance de datos.
type UsuarioSistema struct {
	BaseModel
	Username     string         `json:"username" gorm:"not null;size:100;uniqueIndex:uni_usuarios_sistema_username"`
	Correo       string         `json:"email" gorm:"not null;size:150;uniqueIndex:uni_usuarios_sistema_correo"`
	PasswordHash string         `json:"-" gorm:"not null;size:255"`
	Nombre       string         `json:"nombre" gorm:"not null;size:150"`
	Rol          Rol            `json:"rol" gorm:"not null;size:30;default:'HOTEL_GUEST'"`
	DeletedAt    gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Hoteles []Hotel `json:"hotels,omitempty" gorm:"many2many:usuario_sistema_hoteles;"`
}

func (u *UsuarioSistema) TableName() string {
	return "usuarios_sistema"
}

// UsernameRoot cuenta reservada del superadministrador; su rol es inmutable
const UsernameRoot = "root"

// SetPassword guarda el hash bcrypt de la contraseña
func (u *UsuarioSistema) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword verifica la contraseña contra el hash almacenado
func (u *UsuarioSistema) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// HotelesResumen devuelve las membresías en forma resumida
func (u *UsuarioSistema) HotelesResumen() []HotelResumen {
	resumen := make([]HotelResumen, 0, len(u.Hoteles))
	for _, h := range u.Hoteles {
		resumen = append(resumen, HotelResumen{ID: h.ID, Nombre: h.Nombre, Codigo: h.Codigo})
	}
	return resumen
}
