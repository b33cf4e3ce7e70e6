package handlers

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"hotelops/pkg/response"

	"github.com/gin-gonic/gin"
)

// parseID lee el parámetro :id; responde 400 y devuelve false si no es un
// entero positivo
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "ID inválido")
		return 0, false
	}
	return uint(id), true
}

// escribirCSV emite una descarga tabular
func escribirCSV(c *gin.Context, nombreArchivo string, encabezados []string, filas [][]string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", nombreArchivo))

	w := csv.NewWriter(c.Writer)
	_ = w.Write(encabezados)
	for _, fila := range filas {
		_ = w.Write(fila)
	}
	w.Flush()
}

// texto desreferencia cadenas opcionales para las exportaciones
func texto(valor *string) string {
	if valor == nil {
		return ""
	}
	return *valor
}
