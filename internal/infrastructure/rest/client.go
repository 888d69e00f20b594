// Package rest implementa los puertos gateway contra el servicio remoto de
// movimientos. Usa net/http de la stdlib; no requiere librerías de terceros.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/movilog-app/internal/domain"
	"github.com/jhoicas/movilog-app/internal/domain/entity"
	"github.com/jhoicas/movilog-app/pkg/logger"
)

// Client cliente HTTP base: URL del servicio, timeout único y mapeo uniforme
// de errores (transporte vs. rechazo del servidor).
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente REST. El timeout aplica a cada petición
// completa (el cliente no reintenta: todo fallo es terminal para la acción
// de usuario en curso).
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("rest"),
	}
}

// errorBody forma habitual del cuerpo de error del servidor.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do ejecuta la petición y decodifica la respuesta JSON en out (si out no es
// nil). Códigos fuera de 2xx se convierten en errores de dominio.
func (c *Client) do(req *http.Request, out any) error {
	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("url", req.URL.String()).Msg("fallo de transporte")
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("petición completada")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.asDomainError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			// 2xx sin cuerpo: el servidor confirmó sin payload
			return nil
		}
		return fmt.Errorf("%w: decodificar respuesta: %v", domain.ErrTransport, err)
	}
	return nil
}

// asDomainError traduce un código no-2xx al error de dominio correspondiente
// conservando el mensaje del servidor cuando existe.
func (c *Client) asDomainError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var body errorBody
	_ = json.Unmarshal(raw, &body)
	msg := body.Error
	if msg == "" {
		msg = body.Message
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrInvalidCredentials
	case http.StatusNotFound:
		return domain.ErrNotFound
	}
	if msg != "" {
		return fmt.Errorf("%w: %s", domain.ErrServerRejection, msg)
	}
	return fmt.Errorf("%w: HTTP %d", domain.ErrServerRejection, resp.StatusCode)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	return c.do(req, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: codificar petición: %v", domain.ErrTransport, err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// putMultipart sube la prueba fotográfica como multipart {file, motorista}
// al endpoint de transición indicado.
func (c *Client) putMultipart(ctx context.Context, path string, photo entity.Photo, motorista string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	name := photo.Name
	if name == "" {
		name = "entrega.jpg"
	}
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return fmt.Errorf("%w: armar multipart: %v", domain.ErrTransport, err)
	}
	if _, err := part.Write(photo.Content); err != nil {
		return fmt.Errorf("%w: armar multipart: %v", domain.ErrTransport, err)
	}
	if err := w.WriteField("motorista", motorista); err != nil {
		return fmt.Errorf("%w: armar multipart: %v", domain.ErrTransport, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: armar multipart: %v", domain.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, out)
}
