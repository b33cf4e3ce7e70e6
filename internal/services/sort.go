package services

import (
	"strings"

	"gorm.io/gorm"
)

// sortKey destino de ordenamiento permitido. Join se agrega a la consulta
// solo cuando la clave atraviesa una relación (un nivel, "relacion.campo").
type sortKey struct {
	join   string
	column string
}

// sortMap lista cerrada de claves de ordenamiento reconocidas por recurso.
// Las claves del cliente nunca llegan a la consulta: una clave desconocida
// cae al orden por defecto.
type sortMap map[string]sortKey

// aplicarOrden resuelve sortBy/order contra la lista permitida
func aplicarOrden(db *gorm.DB, claves sortMap, sortBy, order, defecto string) *gorm.DB {
	direccion := "asc"
	if strings.EqualFold(order, "desc") {
		direccion = "desc"
	}

	key, ok := claves[sortBy]
	if !ok {
		return db.Order(defecto)
	}

	if key.join != "" {
		db = db.Joins(key.join)
	}
	return db.Order(key.column + " " + direccion)
}
