//go:build api

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:9090"

// TestAPI_FullFlow walks the whole reservation flow end to end against
// a running instance: alta de hotel, habitaciones y cliente, búsqueda
// de disponibles, creación de reservas y listado con joins.
func TestAPI_FullFlow(t *testing.T) {
	waitForService(t)

	var hotelID, habitacion101, habitacion102, clienteID float64

	t.Run("Step1_CreateHotel", func(t *testing.T) {
		resp := post(t, baseURL+"/api/hotel", map[string]interface{}{
			"nombre":    "Hotel Guaraní",
			"direccion": "Oliva 401",
		})
		assert.Equal(t, 201, resp.StatusCode)

		var body map[string]interface{}
		decodeJSON(t, resp, &body)
		hotelID = body["id"].(float64)
		assert.Equal(t, "Hotel Guaraní", body["nombre"])
	})

	t.Run("Step2_CreateHabitaciones", func(t *testing.T) {
		resp := post(t, baseURL+"/api/habitacion", map[string]interface{}{
			"numero":    101,
			"hotelId":   hotelID,
			"piso":      "1",
			"capacidad": 2,
		})
		assert.Equal(t, 201, resp.StatusCode)
		var body map[string]interface{}
		decodeJSON(t, resp, &body)
		habitacion101 = body["id"].(float64)

		resp = post(t, baseURL+"/api/habitacion", map[string]interface{}{
			"numero":    102,
			"hotelId":   hotelID,
			"piso":      "1",
			"capacidad": 3,
		})
		assert.Equal(t, 201, resp.StatusCode)
		decodeJSON(t, resp, &body)
		habitacion102 = body["id"].(float64)
	})

	t.Run("Step3_CreateCliente", func(t *testing.T) {
		resp := post(t, baseURL+"/api/cliente", map[string]interface{}{
			"cedula":   "1234567",
			"nombre":   "Juan",
			"apellido": "Benítez",
		})
		assert.Equal(t, 201, resp.StatusCode)

		var body map[string]interface{}
		decodeJSON(t, resp, &body)
		clienteID = body["id"].(float64)
	})

	t.Run("Step4_BuscarDisponibles_TodasLibres", func(t *testing.T) {
		resp := post(t, baseURL+"/api/reserva/buscarDisponibles", map[string]interface{}{
			"fecha_ingreso": "2024-03-10",
			"fecha_salida":  "2024-03-15",
		})
		assert.Equal(t, 200, resp.StatusCode)

		var body []map[string]interface{}
		decodeJSON(t, resp, &body)
		assert.Len(t, body, 2)
	})

	t.Run("Step5_CreateReserva", func(t *testing.T) {
		resp := post(t, baseURL+"/api/reserva", map[string]interface{}{
			"id_hotel":          hotelID,
			"id_habitacion":     habitacion101,
			"fecha_ingreso":     "2024-03-10",
			"fecha_salida":      "2024-03-15",
			"id_cliente":        clienteID,
			"cantidad_personas": 2,
		})
		assert.Equal(t, 201, resp.StatusCode)

		var body map[string]interface{}
		decodeJSON(t, resp, &body)
		assert.Equal(t, "2024-03-10", body["fecha_ingreso"])
		assert.Equal(t, "2024-03-15", body["fecha_salida"])
	})

	t.Run("Step6_ReservaSolapada_Rechazada", func(t *testing.T) {
		resp := post(t, baseURL+"/api/reserva", map[string]interface{}{
			"id_hotel":      hotelID,
			"id_habitacion": habitacion101,
			"fecha_ingreso": "2024-03-12",
			"fecha_salida":  "2024-03-18",
			"id_cliente":    clienteID,
		})
		assert.Equal(t, 400, resp.StatusCode)

		var body map[string]string
		decodeJSON(t, resp, &body)
		assert.Contains(t, body["message"], "reservada")
	})

	t.Run("Step7_BuscarDisponibles_ExcluyeOcupada", func(t *testing.T) {
		resp := post(t, baseURL+"/api/reserva/buscarDisponibles", map[string]interface{}{
			"fecha_ingreso": "2024-03-12",
			"fecha_salida":  "2024-03-14",
		})
		assert.Equal(t, 200, resp.StatusCode)

		var body []map[string]interface{}
		decodeJSON(t, resp, &body)
		require.Len(t, body, 1)
		assert.Equal(t, habitacion102, body[0]["id"])
	})

	t.Run("Step8_ReservaContigua_Aceptada", func(t *testing.T) {
		resp := post(t, baseURL+"/api/reserva", map[string]interface{}{
			"id_hotel":      hotelID,
			"id_habitacion": habitacion101,
			"fecha_ingreso": "2024-03-15",
			"fecha_salida":  "2024-03-20",
			"id_cliente":    clienteID,
		})
		assert.Equal(t, 201, resp.StatusCode, "checkout day should admit the next check-in")
	})

	t.Run("Step9_ListReservas", func(t *testing.T) {
		url := fmt.Sprintf("%s/api/reserva/listReservas?id_hotel=%.0f&fecha_ingreso=2024-03-10", baseURL, hotelID)
		resp := get(t, url)
		assert.Equal(t, 200, resp.StatusCode)

		var body []map[string]interface{}
		decodeJSON(t, resp, &body)
		require.Len(t, body, 1)
		assert.Equal(t, "2024-03-10", body[0]["fecha_ingreso"])
		assert.NotNil(t, body[0]["Hotel"])
		assert.NotNil(t, body[0]["Habitacion"])
		assert.NotNil(t, body[0]["Cliente"])
	})

	t.Run("Step10_ListReservas_SinResultados", func(t *testing.T) {
		url := fmt.Sprintf("%s/api/reserva/listReservas?id_hotel=%.0f&fecha_ingreso=2030-01-01", baseURL, hotelID)
		resp := get(t, url)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

// Helper functions

func waitForService(t *testing.T) {
	maxRetries := 30
	for i := 0; i < maxRetries; i++ {
		resp, err := http.Get(baseURL + "/health")
		if err == nil && resp.StatusCode == 200 {
			resp.Body.Close()
			return
		}
		time.Sleep(1 * time.Second)
	}
	t.Fatal("service did not become ready in time")
}

func get(t *testing.T, url string) *http.Response {
	resp, err := http.Get(url)
	require.NoError(t, err)
	return resp
}

func post(t *testing.T, url string, body interface{}) *http.Response {
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(jsonBody))
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, target interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(target)
	if err != nil && resp.StatusCode >= 400 {
		return
	}
	require.NoError(t, err)
}

func TestMain(m *testing.M) {
	fmt.Println("Make sure the service is running: make docker-up")
	code := m.Run()
	os.Exit(code)
}
