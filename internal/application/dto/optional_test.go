package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
)

type patchExample struct {
	Name   dto.Optional[string]   `json:"name"`
	Amount dto.Optional[float64]  `json:"amount"`
	Routes dto.Optional[[]string] `json:"routes"`
}

// Campo omitido, campo en null y campo con valor son tres estados distintos.
func TestOptional_DistingueOmitidoNullYValor(t *testing.T) {
	var p patchExample
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Caja chica","amount":null}`), &p))

	assert.True(t, p.Name.Set)
	assert.True(t, p.Name.Valid)
	assert.Equal(t, "Caja chica", p.Name.Value)

	assert.True(t, p.Amount.Set, "amount llegó explícitamente en null")
	assert.False(t, p.Amount.Valid)

	assert.False(t, p.Routes.Set, "routes no vino en el payload")
}

func TestOptional_Ptr(t *testing.T) {
	var p patchExample
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","amount":null}`), &p))

	require.NotNil(t, p.Name.Ptr())
	assert.Equal(t, "x", *p.Name.Ptr())
	assert.Nil(t, p.Amount.Ptr(), "null no produce puntero")
	assert.Nil(t, p.Routes.Ptr(), "omitido no produce puntero")
}

func TestOptional_SliceConValor(t *testing.T) {
	var p patchExample
	require.NoError(t, json.Unmarshal([]byte(`{"routes":["dashboard","expenses"]}`), &p))
	assert.True(t, p.Routes.Set)
	assert.True(t, p.Routes.Valid)
	assert.Equal(t, []string{"dashboard", "expenses"}, p.Routes.Value)
}
