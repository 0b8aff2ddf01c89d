// Package production contiene servicios de dominio puros del motor de
// producción: aritmética de rendimiento y numeración de lotes/ventas.
package production

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// YieldPercentage calcula actual_yield / batch_size * 100.
// No se recorta: un rendimiento puede superar legítimamente el 100%.
// Con batch_size cero devuelve 100 (lote sin tamaño esperado).
func YieldPercentage(actualYield, batchSize decimal.Decimal) decimal.Decimal {
	if !batchSize.IsPositive() {
		return hundred
	}
	return actualYield.Div(batchSize).Mul(hundred)
}

// ProductionHours calcula las horas entre inicio y fin con dos decimales.
// Un reloj que retrocede (fin antes de inicio) reporta cero.
func ProductionHours(start, end time.Time) decimal.Decimal {
	if end.Before(start) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(end.Sub(start).Hours()).Round(2)
}
