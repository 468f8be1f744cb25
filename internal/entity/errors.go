package entity

import "errors"

// ErrNotFound es un resultado normal (ej: login con celular no registrado),
// no una falla del Store. La capa HTTP decide cómo presentarlo.
var ErrNotFound = errors.New("record not found")
