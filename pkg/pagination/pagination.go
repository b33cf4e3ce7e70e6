package pagination

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Params parámetros de paginación de una petición
type Params struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// Envelope formato de respuesta paginada
type Envelope struct {
	Data        interface{} `json:"data"`
	TotalCount  int64       `json:"totalCount"`
	CurrentPage int         `json:"currentPage"`
	TotalPages  int         `json:"totalPages"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 20
	AuditLimit   = 10
	MaxLimit     = 200
)

// Parse lee page y limit del query string. Valores no numéricos o no
// positivos caen al valor por defecto indicado.
func Parse(c *gin.Context, defaultLimit int) *Params {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return &Params{Page: page, Limit: limit}
}

// NewEnvelope calcula la envolvente: totalPages = ceil(totalCount/limit)
func NewEnvelope(data interface{}, total int64, params *Params) *Envelope {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))

	return &Envelope{
		Data:        data,
		TotalCount:  total,
		CurrentPage: params.Page,
		TotalPages:  totalPages,
	}
}

// GetOffset calcula el offset (skip)
func (p *Params) GetOffset() int {
	return (p.Page - 1) * p.Limit
}

// GetLimit calcula el limit (take)
func (p *Params) GetLimit() int {
	return p.Limit
}
