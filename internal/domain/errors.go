package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrNotFound     = errors.New("recurso no encontrado")

	// ErrConfiguration agrupa los errores de configuración de impuestos: el motor
	// no calcula nada y no devuelve totales parciales.
	ErrConfiguration = errors.New("configuración de impuestos inválida")

	ErrUnknownComputation      = fmt.Errorf("%w: tipo de cálculo desconocido", ErrConfiguration)
	ErrDegenerateDivision      = fmt.Errorf("%w: impuesto de división con base indefinida (100%%)", ErrConfiguration)
	ErrUnsupportedRounding     = fmt.Errorf("%w: método de redondeo no soportado", ErrConfiguration)
	ErrUnsupportedCashRounding = fmt.Errorf("%w: estrategia de redondeo de efectivo no soportada", ErrConfiguration)
	ErrInvalidCashRounding     = fmt.Errorf("%w: incremento de redondeo de efectivo inválido", ErrConfiguration)
	ErrUnknownTaxGroup         = fmt.Errorf("%w: grupo de impuestos no definido", ErrConfiguration)
)
