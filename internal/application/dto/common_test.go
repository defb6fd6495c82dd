package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
)

// Normalize aplica defaults y recorta limit al rango [1,100].
func TestPageRequest_Normalize(t *testing.T) {
	cases := []struct {
		name      string
		in        dto.PageRequest
		wantPage  int
		wantLimit int
	}{
		{"vacío usa defaults", dto.PageRequest{}, 1, 20},
		{"limit cero usa default", dto.PageRequest{Page: 3, Limit: 0}, 3, 20},
		{"limit negativo usa default", dto.PageRequest{Page: 1, Limit: -5}, 1, 20},
		{"página negativa vuelve a 1", dto.PageRequest{Page: -2, Limit: 10}, 1, 10},
		{"limit 100 se respeta", dto.PageRequest{Page: 2, Limit: 100}, 2, 100},
		{"limit 101 se recorta a 100", dto.PageRequest{Page: 2, Limit: 101}, 2, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.in
			p.Normalize()
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantLimit, p.Limit)
		})
	}
}

// Offset es (page-1)*limit sobre valores ya normalizados.
func TestPageRequest_Offset(t *testing.T) {
	p := dto.PageRequest{Page: 3, Limit: 25}
	p.Normalize()
	assert.Equal(t, 50, p.Offset())

	first := dto.PageRequest{}
	first.Normalize()
	assert.Equal(t, 0, first.Offset())
}
