// Package api es el cliente HTTP de la API REST de logística.
//
// Todas las llamadas pasan por Client.do, que inyecta el bearer del Store de la
// sesión y trata el 401 de forma centralizada: borra el token y devuelve un *Error
// que envuelve domain.ErrUnauthorized, sea cual sea el cliente de dominio que hizo
// la llamada. No hay reintentos.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/logistica-console/pkg/logger"
)

// Límite de lectura del cuerpo de respuesta.
const maxResponseBytes = 4 << 20

// TokenStore la parte del almacenamiento de sesión que usa el cliente.
type TokenStore interface {
	Token() (string, error)
	Clear() error
}

// rejecter lo implementan las envolturas {success, message} de dto.
type rejecter interface {
	Rejected() (string, bool)
}

// Connector configuración compartida por todos los clientes: URL base, transporte y logger.
// Es seguro para uso concurrente; cada petición de la consola obtiene su Client con For.
type Connector struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewConnector construye el conector. baseURL incluye el prefijo de la API (p.ej. http://host:3000/api).
func NewConnector(baseURL string, timeout time.Duration, log zerolog.Logger) *Connector {
	return &Connector{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With().Str("component", "api").Logger(),
	}
}

// For devuelve un Client ligado al store de una sesión.
func (c *Connector) For(store TokenStore) *Client {
	return &Client{conn: c, store: store}
}

// Client cliente ligado a una sesión. Sus clientes de dominio comparten el store.
type Client struct {
	conn  *Connector
	store TokenStore
}

func (c *Client) Auth() *AuthClient                 { return &AuthClient{c: c} }
func (c *Client) Estoque() *EstoqueClient           { return &EstoqueClient{c: c} }
func (c *Client) Movimentacao() *MovimentacaoClient { return &MovimentacaoClient{c: c} }
func (c *Client) Vendas() *VendasClient             { return &VendasClient{c: c} }
func (c *Client) Relatorios() *RelatoriosClient     { return &RelatoriosClient{c: c} }

type requestIDKey struct{}

// WithRequestID propaga el id de la petición entrante como X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// do ejecuta method path con query e in (JSON) y decodifica la respuesta en out.
// in y out pueden ser nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint, err := url.JoinPath(c.conn.baseURL, path)
	if err != nil {
		return fmt.Errorf("api: url %q: %w", path, err)
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: serializar %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("api: crear request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := requestID(ctx)
	req.Header.Set("X-Request-ID", reqID)

	token, err := c.store.Token()
	if err != nil {
		c.conn.log.Warn().Err(err).Msg("no se pudo leer el token de sesión")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.conn.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("api: %s %s: timeout o cancelación: %w", method, path, ctx.Err())
		}
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("api: %s %s: leer respuesta: %w", method, path, err)
	}

	c.conn.log.Debug().
		Str(logger.FieldRequestID, reqID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("api")

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.store.Clear(); err != nil {
			c.conn.log.Warn().Err(err).Msg("401: no se pudo borrar el token")
		}
		return newError(resp.StatusCode, raw)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: %s %s: decodificar respuesta: %w", method, path, err)
	}
	if r, ok := out.(rejecter); ok {
		if msg, rejected := r.Rejected(); rejected {
			return &Error{Status: resp.StatusCode, Message: msg}
		}
	}
	return nil
}
