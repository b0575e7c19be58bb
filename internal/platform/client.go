// Package platform talks to the hosted backend: every business operation is an
// edge function invoked over HTTP with the caller's session token.
package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GlebRadaev/fuelstation/internal/config"
	"github.com/GlebRadaev/fuelstation/internal/metrics"
	"github.com/GlebRadaev/fuelstation/pkg/auth"
	"github.com/GlebRadaev/fuelstation/pkg/clients"
)

const (
	functionsPath = "/functions/v1/"
	healthPath    = "/auth/v1/health"
)

var (
	ErrOffline = errors.New("no internet connection")
	ErrNetwork = errors.New("network error, check your connection")
)

// Error is a structured rejection returned by a platform function.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("platform error %d: %s", e.Status, e.Message)
}

func IsUnauthorized(err error) bool {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Status == http.StatusUnauthorized || perr.Status == http.StatusForbidden
	}
	return false
}

func IsNotFound(err error) bool {
	var perr *Error
	return errors.As(err, &perr) && perr.Status == http.StatusNotFound
}

type Connectivity interface {
	Online() bool
	Recheck()
}

type InvokeOptions struct {
	Method string
	Body   any
	Query  url.Values
}

type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	client     clients.HTTPClientI
	limiter    *rate.Limiter
	conn       Connectivity
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	limit := rate.Inf
	burst := 1
	if cfg.PlatformRPS > 0 {
		limit = rate.Limit(cfg.PlatformRPS)
		burst = int(cfg.PlatformRPS)
		if burst < 1 {
			burst = 1
		}
	}
	return &Client{
		baseURL:    cfg.PlatformAddress,
		anonKey:    cfg.PlatformKey,
		serviceKey: cfg.ServiceKey,
		client:     client,
		limiter:    rate.NewLimiter(limit, burst),
	}
}

// SetConnectivity wires the monitor consulted before each call.
func (c *Client) SetConnectivity(conn Connectivity) {
	c.conn = conn
}

// Invoke calls functionPath and decodes a successful body into out, which may
// be nil. Offline short-circuits before anything is sent.
func (c *Client) Invoke(ctx context.Context, functionPath string, opts InvokeOptions, out any) error {
	fn := functionLabel(functionPath)
	if c.conn != nil && !c.conn.Online() {
		metrics.PlatformCalls.WithLabelValues(fn, "offline").Inc()
		return ErrOffline
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body []byte
	if opts.Body != nil {
		var err error
		body, err = json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("can't encode %s payload: %w", fn, err)
		}
	}

	u := c.baseURL + functionsPath + strings.TrimLeft(functionPath, "/")
	if len(opts.Query) > 0 {
		u += "?" + opts.Query.Encode()
	}

	status, respBody, err := c.client.Send(ctx, method, u, c.headers(ctx), body)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		metrics.PlatformCalls.WithLabelValues(fn, "network").Inc()
		zap.L().Error("platform call failed", zap.String("function", fn), zap.String("method", method), zap.Error(err))
		if c.conn != nil {
			c.conn.Recheck()
		}
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		metrics.PlatformCalls.WithLabelValues(fn, "rejected").Inc()
		perr := decodeError(status, respBody)
		zap.L().Warn("platform rejected call", zap.String("function", fn), zap.Int("status", status), zap.String("message", perr.Message))
		return perr
	}
	metrics.PlatformCalls.WithLabelValues(fn, "ok").Inc()

	if out == nil || status == http.StatusNoContent || len(respBody) == 0 {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], respBody...)
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("can't decode %s response: %w", fn, err)
	}
	return nil
}

// Probe checks that the platform answers at all.
func (c *Client) Probe(ctx context.Context) error {
	headers := http.Header{}
	if c.anonKey != "" {
		headers.Set("apikey", c.anonKey)
	}
	status, _, err := c.client.Get(ctx, c.baseURL+healthPath, headers)
	if err != nil {
		return err
	}
	if status >= http.StatusInternalServerError {
		return fmt.Errorf("platform health returned %d", status)
	}
	return nil
}

func (c *Client) headers(ctx context.Context) http.Header {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")
	if c.anonKey != "" {
		headers.Set("apikey", c.anonKey)
	}

	token := auth.TokenFromContext(ctx)
	if token == "" {
		token = c.serviceKey
	}
	if token == "" {
		token = c.anonKey
	}
	if token != "" {
		headers.Set("Authorization", "Bearer "+token)
	}
	return headers
}

func decodeError(status int, body []byte) *Error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = payload.Error
		if msg == "" {
			msg = payload.Message
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{Status: status, Message: msg}
}

// functionLabel keeps metric cardinality low by hiding record ids.
func functionLabel(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, p := range parts {
		if _, err := uuid.Parse(p); err == nil {
			parts[i] = "{id}"
		} else if _, err := strconv.ParseUint(p, 10, 64); err == nil {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}
