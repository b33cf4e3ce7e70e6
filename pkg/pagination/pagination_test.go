package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func contextoConQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		defecto   int
		wantPage  int
		wantLimit int
	}{
		{"valores válidos", "page=3&limit=50", DefaultLimit, 3, 50},
		{"sin parámetros", "", DefaultLimit, 1, DefaultLimit},
		{"page no numérico", "page=abc&limit=10", DefaultLimit, 1, 10},
		{"page cero", "page=0", DefaultLimit, 1, DefaultLimit},
		{"page negativo", "page=-5", DefaultLimit, 1, DefaultLimit},
		{"limit no numérico", "page=2&limit=banana", DefaultLimit, 2, DefaultLimit},
		{"limit cero cae al defecto", "limit=0", AuditLimit, 1, AuditLimit},
		{"limit negativo", "limit=-1", DefaultLimit, 1, DefaultLimit},
		{"limit excesivo se recorta", "limit=99999", DefaultLimit, 1, MaxLimit},
		{"defecto de auditoría", "", AuditLimit, 1, AuditLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := Parse(contextoConQuery(tt.query), tt.defecto)
			if params.Page != tt.wantPage {
				t.Errorf("Page = %d, se esperaba %d", params.Page, tt.wantPage)
			}
			if params.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, se esperaba %d", params.Limit, tt.wantLimit)
			}
		})
	}
}

func TestNewEnvelope(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		limit      int
		page       int
		wantPages  int
	}{
		{"división exacta", 40, 20, 1, 2},
		{"con residuo", 41, 20, 3, 3},
		{"sin resultados", 0, 20, 1, 0},
		{"un solo registro", 1, 10, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnvelope(nil, tt.total, &Params{Page: tt.page, Limit: tt.limit})
			if env.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, se esperaba %d", env.TotalPages, tt.wantPages)
			}
			if env.TotalCount != tt.total {
				t.Errorf("TotalCount = %d, se esperaba %d", env.TotalCount, tt.total)
			}
			if env.CurrentPage != tt.page {
				t.Errorf("CurrentPage = %d, se esperaba %d", env.CurrentPage, tt.page)
			}
		})
	}
}

func TestGetOffset(t *testing.T) {
	params := &Params{Page: 3, Limit: 20}
	if got := params.GetOffset(); got != 40 {
		t.Errorf("GetOffset() = %d, se esperaba 40", got)
	}
}
