package models

// Principal identidad resuelta del llamador. Se reconstruye en cada petición
// a partir de la credencial firmada más una lectura viva de membresías; nunca
// sobrevive a la petición ni se comparte entre peticiones.
type Principal struct {
	Usuario *UsuarioSistema
	Rol     Rol
	Hoteles []HotelResumen
	// HotelActivo hotel al que queda acotada la petición. nil significa
	// vista global (solo alcanzable por roles globales o por membresías
	// múltiples sin selección).
	HotelActivo *uint
}

// HotelIDs ids de las membresías del principal
func (p *Principal) HotelIDs() []uint {
	ids := make([]uint, 0, len(p.Hoteles))
	for _, h := range p.Hoteles {
		ids = append(ids, h.ID)
	}
	return ids
}

// EsMiembro indica si el hotel pertenece a las membresías
func (p *Principal) EsMiembro(hotelID uint) bool {
	for _, h := range p.Hoteles {
		if h.ID == hotelID {
			return true
		}
	}
	return false
}

// UsuarioID id del usuario, 0 si no hay usuario (no debería ocurrir tras
// resolver la sesión)
func (p *Principal) UsuarioID() uint {
	if p == nil || p.Usuario == nil {
		return 0
	}
	return p.Usuario.ID
}
