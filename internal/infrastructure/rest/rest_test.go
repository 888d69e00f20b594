package rest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/movilog-app/internal/domain"
	"github.com/jhoicas/movilog-app/internal/domain/entity"
	"github.com/jhoicas/movilog-app/internal/domain/gateway"
	"github.com/jhoicas/movilog-app/internal/infrastructure/rest"
	"github.com/jhoicas/movilog-app/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// newServer levanta el servidor remoto falso y devuelve el cliente apuntado
// a él.
func newServer(t *testing.T, handler http.Handler) (*httptest.Server, *rest.Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, rest.NewClient(srv.URL, 5*time.Second, testLogger())
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos: creación
// ──────────────────────────────────────────────────────────────────────────────

// El POST de creación lleva los cuatro campos numéricos como enteros JSON
// (no strings del formulario).
func TestCreate_CamposNumericosComoEnteros(t *testing.T) {
	var captured map[string]json.RawMessage
	_, client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/movements", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": 15, "status": "created"}`)
	}))

	gw := rest.NewMovementGateway(client)
	mov, err := gw.Create(context.Background(), gateway.CreateMovementInput{
		OriginBranchID:      1,
		DestinationBranchID: 2,
		ProductID:           42,
		Quantity:            5,
		Observations:        "frágil",
	})
	require.NoError(t, err)
	assert.Equal(t, 15, mov.ID)

	// enteros JSON crudos, sin comillas
	assert.Equal(t, "1", string(captured["originBranchId"]))
	assert.Equal(t, "2", string(captured["destinationBranchId"]))
	assert.Equal(t, "42", string(captured["productId"]))
	assert.Equal(t, "5", string(captured["quantity"]))
	assert.Equal(t, `"frágil"`, string(captured["observations"]))
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos: listado y normalización de estados
// ──────────────────────────────────────────────────────────────────────────────

// El gateway acepta la forma anidada en portugués con historico y normaliza
// los literales de estado de todas las revisiones observadas del servidor.
func TestList_FormaAnidadaYEstadosNormalizados(t *testing.T) {
	payload := `[
		{"id": 1, "origem": {"id": 1, "nome": "Centro", "latitude": -23.5, "longitude": -46.6},
		 "destino": {"id": 2, "nome": "Norte", "latitude": -22.9, "longitude": -43.1},
		 "produto": {"id": 42, "nome": "Caja térmica"},
		 "quantidade": 5, "status": "created",
		 "historico": [{"descricao": "Movimentação criada", "data": "2024-11-02T10:15:00Z"}]},
		{"id": 2, "origem": {"nome": "Centro"}, "destino": {"nome": "Sur"},
		 "produto": {"nome": "Pallet"}, "quantidade": 2, "status": "Em Trânsito"},
		{"id": 3, "origem": {"nome": "Centro"}, "destino": {"nome": "Sur"},
		 "produto": {"nome": "Pallet"}, "quantidade": 2, "status": "Coleta finalizada"},
		{"id": 4, "origem": {"nome": "Centro"}, "destino": {"nome": "Sur"},
		 "produto": {"nome": "Pallet"}, "quantidade": 1, "status": "em transito"}
	]`
	_, client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/movements", r.URL.Path)
		fmt.Fprint(w, payload)
	}))

	gw := rest.NewMovementGateway(client)
	list, err := gw.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 4)

	first := list[0]
	assert.Equal(t, entity.StatusCreated, first.Status)
	assert.Equal(t, "Centro", first.Origin.Name)
	assert.InDelta(t, -23.5, first.Origin.Latitude, 1e-9)
	assert.Equal(t, 42, first.ProductID)
	assert.Equal(t, "Caja térmica", first.ProductName)
	assert.Equal(t, 5, first.Quantity)
	require.Len(t, first.History, 1)
	assert.Equal(t, "Movimentação criada", first.History[0].Description)
	assert.Equal(t, 2024, first.History[0].Timestamp.Year())

	assert.Equal(t, entity.StatusInTransit, list[1].Status, "Em Trânsito se normaliza")
	assert.Equal(t, entity.StatusCompleted, list[2].Status, "Coleta finalizada se normaliza")
	assert.Equal(t, entity.StatusInTransit, list[3].Status, "em transito se normaliza")
}

// También se acepta la forma plana con ids sueltos y history en inglés.
func TestList_FormaPlana(t *testing.T) {
	payload := `[
		{"id": 8, "originBranchId": 1, "destinationBranchId": 2, "productId": 42,
		 "quantity": 3, "status": "in_transit",
		 "history": [{"description": "started", "timestamp": "2024-11-02T10:15:00Z"}]}
	]`
	_, client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, payload)
	}))

	gw := rest.NewMovementGateway(client)
	list, err := gw.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	m := list[0]
	assert.Equal(t, 1, m.Origin.ID)
	assert.Equal(t, 2, m.Destination.ID)
	assert.Equal(t, 42, m.ProductID)
	assert.Equal(t, 3, m.Quantity)
	assert.Equal(t, entity.StatusInTransit, m.Status)
	require.Len(t, m.History, 1)
	assert.Equal(t, "started", m.History[0].Description)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos: transición con prueba fotográfica
// ──────────────────────────────────────────────────────────────────────────────

// StartTransit sube multipart {file, motorista} a PUT /movements/{id}/start.
func TestStartTransit_MultipartConFileYMotorista(t *testing.T) {
	_, client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/movements/7/start", r.URL.Path)
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Alexandro Oliveira", r.FormValue("motorista"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "entrega.jpg", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("jpgdata"), content)

		fmt.Fprint(w, `{"id": 7, "status": "em transito", "quantidade": 3,
			"origem": {"nome": "Centro"}, "destino": {"nome": "Norte"}, "produto": {"nome": "Caja"}}`)
	}))

	gw := rest.NewMovementGateway(client)
	photo := entity.Photo{Name: "entrega.jpg", MIME: "image/jpeg", Content: []byte("jpgdata")}
	mov, err := gw.StartTransit(context.Background(), 7, photo, "Alexandro Oliveira")
	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.Equal(t, entity.StatusInTransit, mov.Status)
}

// FinishTransit golpea el endpoint de cierre; un 200 sin cuerpo útil deja el
// parche de estado en manos del llamador (movimiento nil, sin error).
func TestFinishTransit_EndpointDeCierre(t *testing.T) {
	_, client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/movements/7/end", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	gw := rest.NewMovementGateway(client)
	photo := entity.Photo{Content: []byte("jpg")}
	mov, err := gw.FinishTransit(context.Background(), 7, photo, "Ana")
	require.NoError(t, err)
	assert.Nil(t, mov)
}

// Un fallo del upload se traduce a error de dominio: no hay transición.
func TestStartTransit_RechazoDelServidor(t *testing.T) {
	_, client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": "foto ilegible"}`)
	}))

	gw := rest.NewMovementGateway(client)
	_, err := gw.StartTransit(context.Background(), 7, entity.Photo{Content: []byte("x")}, "Ana")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServerRejection)
	assert.Contains(t, err.Error(), "foto ilegible", "el mensaje del servidor se conserva")
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_ListadoDeOpciones(t *testing.T) {
	_, client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/branches/options":
			fmt.Fprint(w, `[{"id": 1, "name": "Centro", "latitude": -23.5, "longitude": -46.6}]`)
		case "/products/options":
			fmt.Fprint(w, `[{"branch_id": 1, "product_id": 42, "product_name": "Caja térmica",
				"quantity": 5, "branch_name": "Centro"}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	gw := rest.NewCatalogGateway(client)

	branches, err := gw.ListBranches(context.Background())
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.Equal(t, "Centro", branches[0].Name)
	assert.InDelta(t, -46.6, branches[0].Longitude, 1e-9)

	products, err := gw.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 42, products[0].ProductID)
	assert.Equal(t, 5, products[0].Quantity)
	assert.Equal(t, "Centro", products[0].BranchName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth y usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ExitosoY401(t *testing.T) {
	_, client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "secreta" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"name": "Alexandro Oliveira", "profile": "motorista"}`)
	}))

	gw := rest.NewAuthGateway(client)

	res, err := gw.Login(context.Background(), "alex@filial.com", "secreta")
	require.NoError(t, err)
	assert.Equal(t, "Alexandro Oliveira", res.Name)
	assert.Equal(t, "motorista", res.Profile)

	_, err = gw.Login(context.Background(), "alex@filial.com", "equivocada")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestToggleStatus_DevuelveEstado(t *testing.T) {
	_, client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/users/3/toggle-status", r.URL.Path)
		fmt.Fprint(w, `{"status": false}`)
	}))

	gw := rest.NewUserGateway(client)
	status, err := gw.ToggleStatus(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Taxonomía de errores del cliente base
// ──────────────────────────────────────────────────────────────────────────────

// Un servidor inalcanzable es un fallo de transporte, no un rechazo.
func TestClient_FalloDeTransporte(t *testing.T) {
	srv, client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // el cliente queda apuntando a un puerto cerrado

	gw := rest.NewMovementGateway(client)
	_, err := gw.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestClient_NotFound(t *testing.T) {
	_, client := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	gw := rest.NewMovementGateway(client)
	_, err := gw.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
