// Package backend implementa el cliente HTTP hacia el API REST de
// planillas. Toda pantalla habla con el backend a través de este
// paquete: arma la URL completa desde la base configurada, reenvía los
// query params, adjunta el bearer token a las rutas no públicas y
// traduce los códigos de error a mensajes de la UI. Un solo intento por
// llamada: sin retries, sin caché.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Mauricio62/planilla-web/internal/shared/apperror"
	"github.com/Mauricio62/planilla-web/internal/shared/contextutil"
	"go.uber.org/zap"
)

// Rutas que nunca llevan Authorization, exista o no un token.
var publicPaths = []string{"/auth/login", "/auth/register", "/auth/roles"}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger

	// Peticiones en vuelo; la UI lo consulta para el spinner global.
	inflight atomic.Int64
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.Named("backend"),
	}
}

// InFlight devuelve cuántas llamadas al backend siguen pendientes.
func (c *Client) InFlight() int64 {
	return c.inflight.Load()
}

// Params arma url.Values omitiendo valores nil, igual que hacía el
// wrapper original con HttpParams.
func Params(kv map[string]any) url.Values {
	values := url.Values{}
	for k, v := range kv {
		if v == nil {
			continue
		}
		values.Set(k, fmt.Sprintf("%v", v))
	}
	return values
}

func (c *Client) Get(ctx context.Context, endpoint string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, endpoint, query, nil, out)
}

func (c *Client) Post(ctx context.Context, endpoint string, body any, out any) error {
	return c.doJSON(ctx, http.MethodPost, endpoint, nil, body, out)
}

func (c *Client) Put(ctx context.Context, endpoint string, body any, out any) error {
	return c.doJSON(ctx, http.MethodPut, endpoint, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, endpoint string, body any, out any) error {
	return c.doJSON(ctx, http.MethodPatch, endpoint, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, endpoint string) error {
	return c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil, nil)
}

// Blob es el resultado de una descarga binaria (excel de asistencias).
type Blob struct {
	ContentType string
	Data        []byte
}

// GetBlob descarga el cuerpo crudo de la respuesta sin interpretarlo.
func (c *Client) GetBlob(ctx context.Context, endpoint string, query url.Values) (Blob, error) {
	resp, err := c.do(ctx, http.MethodGet, endpoint, query, nil, "")
	if err != nil {
		return Blob{}, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return Blob{}, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Blob{}, apperror.Wrap(err, apperror.CodeServiceUnavailable,
			apperror.ErrBackendUnavailable.Message, http.StatusServiceUnavailable)
	}

	return Blob{
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// PostMultipart sube un archivo como multipart/form-data junto con
// campos simples (año, mes). El archivo pasa tal cual al backend.
func (c *Client) PostMultipart(
	ctx context.Context,
	endpoint string,
	fields map[string]string,
	fileField, fileName string,
	file io.Reader,
	out any,
) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return apperror.Wrap(err, apperror.CodeInternalError,
				apperror.ErrInternal.Message, http.StatusInternalServerError)
		}
	}

	fw, err := mw.CreateFormFile(fileField, fileName)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError,
			apperror.ErrInternal.Message, http.StatusInternalServerError)
	}
	if _, err := io.Copy(fw, file); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError,
			apperror.ErrInternal.Message, http.StatusInternalServerError)
	}
	if err := mw.Close(); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError,
			apperror.ErrInternal.Message, http.StatusInternalServerError)
	}

	resp, err := c.do(ctx, http.MethodPost, endpoint, nil, &buf, mw.FormDataContentType())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}
	return decodeInto(resp.Body, out)
}

func (c *Client) doJSON(
	ctx context.Context,
	method, endpoint string,
	query url.Values,
	body any,
	out any,
) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInternalError,
				apperror.ErrInternal.Message, http.StatusInternalServerError)
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, endpoint, query, reader, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}
	return decodeInto(resp.Body, out)
}

func (c *Client) do(
	ctx context.Context,
	method, endpoint string,
	query url.Values,
	body io.Reader,
	contentType string,
) (*http.Response, error) {
	fullURL := c.baseURL + endpoint
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError,
			apperror.ErrInternal.Message, http.StatusInternalServerError)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	// Interceptor de auth: el token viaja en el context de la sesión y
	// no se adjunta jamás a los endpoints públicos.
	if token := contextutil.GetToken(ctx); token != "" && !isPublicEndpoint(endpoint) {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.inflight.Add(1)
	resp, err := c.http.Do(req)
	c.inflight.Add(-1)

	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil, apperror.Wrap(err, apperror.CodeServiceUnavailable,
			apperror.ErrBackendUnavailable.Message, http.StatusServiceUnavailable)
	}

	return resp, nil
}

func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := extractMessage(raw)

	c.logger.Warn("backend returned error status",
		zap.Int("status", resp.StatusCode),
		zap.String("url", resp.Request.URL.Path),
	)

	return apperror.FromBackendStatus(resp.StatusCode, msg)
}

func decodeInto(body io.Reader, out any) error {
	if out == nil {
		io.Copy(io.Discard, body)
		return nil
	}
	if err := json.NewDecoder(body).Decode(out); err != nil && err != io.EOF {
		return apperror.Wrap(err, apperror.CodeInternalError,
			apperror.ErrInternal.Message, http.StatusInternalServerError)
	}
	return nil
}

func extractMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return ""
}

func isPublicEndpoint(endpoint string) bool {
	lower := strings.ToLower(endpoint)
	for _, p := range publicPaths {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
