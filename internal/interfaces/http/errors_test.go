package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/domain"
)

// respondError es la única puerta por la que los errores de dominio salen a
// HTTP; este test fija el contrato código-de-error por sentinela.
func TestRespondError_MapeoDeSentinelas(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"entrada inválida", fmt.Errorf("cantidad negativa: %w", domain.ErrInvalidInput), fiber.StatusBadRequest, "VALIDATION"},
		{"no encontrado", fmt.Errorf("ítem x: %w", domain.ErrNotFound), fiber.StatusNotFound, "NOT_FOUND"},
		{"duplicado", fmt.Errorf("nombre repetido: %w", domain.ErrDuplicate), fiber.StatusConflict, "DUPLICATE"},
		{"conflicto", fmt.Errorf("lotes en curso: %w", domain.ErrConflict), fiber.StatusConflict, "CONFLICT"},
		{"stock insuficiente", fmt.Errorf("faltan 2 kg: %w", domain.ErrInsufficientStock), fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{"estado inválido", fmt.Errorf("lote ya cerrado: %w", domain.ErrInvalidState), fiber.StatusConflict, "INVALID_STATE"},
		{"error interno", fmt.Errorf("la base de datos se cayó"), fiber.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(c *fiber.Ctx) error {
				return respondError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var payload dto.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &payload))
			assert.False(t, payload.Success)
			assert.Equal(t, tc.wantCode, payload.Code)
			assert.Equal(t, tc.err.Error(), payload.Message, "el mensaje enriquecido viaja tal cual")
		})
	}
}
