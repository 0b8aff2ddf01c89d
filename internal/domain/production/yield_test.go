package production_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Fermentario-api/internal/domain/production"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestYieldPercentage_ValorExacto(t *testing.T) {
	// 1.8 kg reales sobre 2.0 kg planificados = 90% exacto, sin redondeo flotante.
	got := production.YieldPercentage(dec("1.8"), dec("2.0"))
	assert.True(t, got.Equal(dec("90")), "1.8/2.0 debe dar exactamente 90, dio %s", got)
}

func TestYieldPercentage_SuperaElCien(t *testing.T) {
	// Una fermentación puede rendir más de lo planificado; no se recorta.
	got := production.YieldPercentage(dec("2.5"), dec("2.0"))
	assert.True(t, got.Equal(dec("125")), "2.5/2.0 debe dar 125, dio %s", got)
}

func TestYieldPercentage_TamanoCero(t *testing.T) {
	got := production.YieldPercentage(dec("3"), decimal.Zero)
	assert.True(t, got.Equal(dec("100")), "con batch_size cero se reporta 100, dio %s", got)
}

func TestYieldPercentage_TamanoNegativo(t *testing.T) {
	got := production.YieldPercentage(dec("3"), dec("-1"))
	assert.True(t, got.Equal(dec("100")), "con batch_size negativo se reporta 100, dio %s", got)
}

func TestProductionHours_NoventaMinutos(t *testing.T) {
	start := time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	got := production.ProductionHours(start, end)
	assert.True(t, got.Equal(dec("1.5")), "90 minutos son 1.5 horas, dio %s", got)
}

func TestProductionHours_RelojRetrocede(t *testing.T) {
	start := time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC)
	got := production.ProductionHours(start, start.Add(-time.Hour))
	assert.True(t, got.IsZero(), "fin antes de inicio debe reportar cero, dio %s", got)
}

func TestProductionHours_DosDecimales(t *testing.T) {
	start := time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC)
	end := start.Add(100 * time.Minute) // 1.666... horas
	got := production.ProductionHours(start, end)
	assert.True(t, got.Equal(dec("1.67")), "debe redondear a dos decimales, dio %s", got)
}
