package dto

import "encoding/json"

// Optional distingue tres estados de un campo en un PATCH parcial:
// ausente (Set=false), presente con null (Set=true, Valid=false) y presente
// con valor (Set=true, Valid=true). encoding/json solo invoca UnmarshalJSON
// para claves presentes, así que "omitido" y "null" no se confunden.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON marca el campo como presente y distingue null de valor.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr devuelve &Value si el campo llegó con valor, nil en cualquier otro caso.
func (o Optional[T]) Ptr() *T {
	if o.Set && o.Valid {
		v := o.Value
		return &v
	}
	return nil
}
