package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/application/usecase"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	apphttp "github.com/jhoicas/atelier-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeSettingsRepo repo en memoria para el handler de configuración.
type fakeSettingsRepo struct {
	stored *entity.Settings
}

func (f *fakeSettingsRepo) Get() (*entity.Settings, error) { return f.stored, nil }
func (f *fakeSettingsRepo) Upsert(s *entity.Settings) error {
	f.stored = s
	return nil
}

// buildTestApp construye una aplicación Fiber con las rutas de unidades y
// configuración, sin base de datos.
func buildTestApp() *fiber.App {
	app := fiber.New()

	units := app.Group("/api/units")
	unitsHandler := apphttp.NewUnitsHandler()
	units.Get("/", unitsHandler.List)
	units.Get("/compatible", unitsHandler.Compatible)
	units.Post("/convert", unitsHandler.Convert)

	settings := app.Group("/api/settings")
	settingsHandler := apphttp.NewSettingsHandler(usecase.NewSettingsUseCase(&fakeSettingsRepo{}))
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Upsert)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests unidades
// ──────────────────────────────────────────────────────────────────────────────

func TestUnits_ListaCompletaConEtiquetas(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/api/units/", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	items := body["items"].([]interface{})
	assert.Len(t, items, 9, "deben listarse las 9 unidades soportadas")

	first := items[0].(map[string]interface{})
	assert.Equal(t, "cm", first["unit"])
	assert.Equal(t, "cm (centímetros)", first["label"])
}

func TestUnits_CompatibleDevuelveFamiliaMenorPrimero(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/api/units/compatible?unit=m", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	items := body["items"].([]interface{})
	require.Len(t, items, 2)
	assert.Equal(t, "cm", items[0].(map[string]interface{})["unit"])
	assert.Equal(t, "m", items[1].(map[string]interface{})["unit"])
}

func TestUnits_CompatibleUnidadDesconocida_Retorna400(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/api/units/compatible?unit=pulgadas", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnits_ConvertMetrosACentimetros(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/units/convert",
		`{"value": "2.5", "from": "m", "to": "cm"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "250", body["converted"], "2.5 m deben ser 250 cm")
}

func TestUnits_ConvertEntreFamilias_DevuelveValorSinCambios(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/units/convert",
		`{"value": "7", "from": "kg", "to": "l"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "7", body["converted"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests configuración
// ──────────────────────────────────────────────────────────────────────────────

func TestSettings_GetSinGuardar_DevuelveDefectosConTarifas(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/api/settings/", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "3000", body["pro_labore"])
	assert.Equal(t, "160", body["hours_per_month"])
	assert.Equal(t, "18.75", body["hourly_rate"], "3000 / 160")
	assert.Equal(t, "6.25", body["fixed_cost_per_hour"], "(800 + 200) / 160")
}

func TestSettings_UpsertYRelectura(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPut, "/api/settings/",
		`{"pro_labore": "4000", "hours_per_month": "100", "fixed_costs": "500", "depreciation": "100"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "40", body["hourly_rate"], "4000 / 100")
	assert.Equal(t, "6", body["fixed_cost_per_hour"], "(500 + 100) / 100")
}

func TestSettings_HorasNoPositivas_Retorna400(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPut, "/api/settings/",
		`{"pro_labore": "3000", "hours_per_month": "0", "fixed_costs": "0", "depreciation": "0"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
