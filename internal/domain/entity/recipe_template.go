package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RecipeTemplate es un plano de producción reutilizable. Los documentos de
// ingredientes y recordatorios se guardan como JSONB y se reemplazan completos
// en cada update (sin patch parcial). El motor de producción solo los consulta
// para pre-llenar el formulario de creación y sembrar recordatorios: las
// cantidades reales consumidas las aporta siempre el caller.
type RecipeTemplate struct {
	ID                     string
	TemplateName           string
	Description            *string
	ProductInventoryID     *string // NULL: receta intermedia o experimental sin producto
	DefaultBatchSize       *decimal.Decimal
	DefaultUnit            *string
	EstimatedDurationHours *decimal.Decimal
	IngredientTemplate     json.RawMessage // [{"inventory_id", "quantity_per_batch", "unit"}]
	ReminderSchedule       json.RawMessage // [{"reminder_type", "message", "after_minutes"|"after_hours"|"after_days"}]
	Instructions           *string
	IsActive               bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// RecipeIngredient es una entrada del documento de ratios de ingredientes.
type RecipeIngredient struct {
	InventoryID      string          `json:"inventory_id"`
	QuantityPerBatch decimal.Decimal `json:"quantity_per_batch"`
	Unit             string          `json:"unit"`
}

// Unidades del offset de un recordatorio.
const (
	OffsetMinutes = "minutes"
	OffsetHours   = "hours"
	OffsetDays    = "days"
)

// ReminderOffset es la variante etiquetada (unidad + valor) del desfase de un
// recordatorio respecto al inicio del lote. Cada entrada del cronograma lleva
// exactamente una unidad; el unmarshal lo garantiza.
type ReminderOffset struct {
	Kind  string
	Value int
}

// Duration convierte el offset a time.Duration.
func (o ReminderOffset) Duration() time.Duration {
	switch o.Kind {
	case OffsetMinutes:
		return time.Duration(o.Value) * time.Minute
	case OffsetHours:
		return time.Duration(o.Value) * time.Hour
	case OffsetDays:
		return time.Duration(o.Value) * 24 * time.Hour
	}
	return 0
}

// DueAt calcula el vencimiento absoluto a partir del inicio del lote.
func (o ReminderOffset) DueAt(start time.Time) time.Time {
	return start.Add(o.Duration())
}

// ScheduleEntry es una entrada del cronograma de recordatorios de una receta.
type ScheduleEntry struct {
	ReminderType string
	Message      string
	Offset       ReminderOffset
}

// scheduleEntryJSON es la forma en el documento JSONB: tres campos opcionales
// de los que exactamente uno debe estar presente.
type scheduleEntryJSON struct {
	ReminderType string `json:"reminder_type"`
	Message      string `json:"message"`
	AfterMinutes *int   `json:"after_minutes,omitempty"`
	AfterHours   *int   `json:"after_hours,omitempty"`
	AfterDays    *int   `json:"after_days,omitempty"`
}

// UnmarshalJSON valida que la entrada tenga exactamente una unidad de offset.
func (e *ScheduleEntry) UnmarshalJSON(data []byte) error {
	var raw scheduleEntryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ReminderType == "" {
		return fmt.Errorf("entrada de cronograma sin reminder_type")
	}

	set := 0
	var off ReminderOffset
	if raw.AfterMinutes != nil {
		set++
		off = ReminderOffset{Kind: OffsetMinutes, Value: *raw.AfterMinutes}
	}
	if raw.AfterHours != nil {
		set++
		off = ReminderOffset{Kind: OffsetHours, Value: *raw.AfterHours}
	}
	if raw.AfterDays != nil {
		set++
		off = ReminderOffset{Kind: OffsetDays, Value: *raw.AfterDays}
	}
	if set != 1 {
		return fmt.Errorf("entrada %q: debe llevar exactamente un offset (after_minutes, after_hours o after_days)", raw.ReminderType)
	}
	if off.Value < 0 {
		return fmt.Errorf("entrada %q: el offset no puede ser negativo", raw.ReminderType)
	}

	e.ReminderType = raw.ReminderType
	e.Message = raw.Message
	e.Offset = off
	return nil
}

// MarshalJSON serializa la entrada con el campo de unidad que corresponda.
func (e ScheduleEntry) MarshalJSON() ([]byte, error) {
	raw := scheduleEntryJSON{ReminderType: e.ReminderType, Message: e.Message}
	v := e.Offset.Value
	switch e.Offset.Kind {
	case OffsetMinutes:
		raw.AfterMinutes = &v
	case OffsetHours:
		raw.AfterHours = &v
	case OffsetDays:
		raw.AfterDays = &v
	default:
		return nil, fmt.Errorf("offset con unidad desconocida %q", e.Offset.Kind)
	}
	return json.Marshal(raw)
}

// ParseReminderSchedule decodifica y valida el documento de cronograma de una receta.
// Un documento vacío o nulo devuelve nil sin error.
func ParseReminderSchedule(doc json.RawMessage) ([]ScheduleEntry, error) {
	if len(doc) == 0 || string(doc) == "null" {
		return nil, nil
	}
	var entries []ScheduleEntry
	if err := json.Unmarshal(doc, &entries); err != nil {
		return nil, fmt.Errorf("cronograma de recordatorios inválido: %w", err)
	}
	return entries, nil
}

// ParseIngredientTemplate decodifica el documento de ratios de ingredientes.
func ParseIngredientTemplate(doc json.RawMessage) ([]RecipeIngredient, error) {
	if len(doc) == 0 || string(doc) == "null" {
		return nil, nil
	}
	var list []RecipeIngredient
	if err := json.Unmarshal(doc, &list); err != nil {
		return nil, fmt.Errorf("plantilla de ingredientes inválida: %w", err)
	}
	return list, nil
}
