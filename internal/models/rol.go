package models

// Rol rol de un usuario del sistema, ordenado por privilegio
type Rol string

const (
	RolRoot       Rol = "ROOT"
	RolCorpViewer Rol = "CORP_VIEWER"
	RolHotelAdmin Rol = "HOTEL_ADMIN"
	RolHotelAux   Rol = "HOTEL_AUX"
	RolHotelGuest Rol = "HOTEL_GUEST"
)

// RolSet conjunto inmutable de roles permitidos. Se construye una sola vez
// al armar las rutas y se pasa explícitamente a la verificación de rol;
// nunca se muta en tiempo de ejecución.
type RolSet struct {
	roles map[Rol]struct{}
}

func NewRolSet(roles ...Rol) RolSet {
	set := make(map[Rol]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return RolSet{roles: set}
}

// Contains indica si el rol pertenece al conjunto
func (s RolSet) Contains(rol Rol) bool {
	_, ok := s.roles[rol]
	return ok
}

// EsGlobal indica si el rol tiene vista irrestricta sobre todos los hoteles
func (r Rol) EsGlobal() bool {
	return r == RolRoot || r == RolCorpViewer
}

// EsValido indica si el valor corresponde a un rol conocido
func (r Rol) EsValido() bool {
	switch r {
	case RolRoot, RolCorpViewer, RolHotelAdmin, RolHotelAux, RolHotelGuest:
		return true
	default:
		return false
	}
}
