// Package recordservice forwards CRUD calls for the station's reference and
// ledger entities to the matching platform functions.
package recordservice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sort"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelstation/internal/platform"
)

type Invoker interface {
	Invoke(ctx context.Context, functionPath string, opts platform.InvokeOptions, out any) error
}

var (
	ErrUnknownEntity = errors.New("unknown entity")
	ErrReadOnly      = errors.New("entity is read-only")
	ErrEmptyID       = errors.New("record id is required")
	ErrInvalidBody   = errors.New("record body must be a JSON object")
)

type Entity struct {
	Name     string
	ReadOnly bool
}

var entities = map[string]Entity{
	"sales":            {Name: "sales"},
	"fuel-supplies":    {Name: "fuel-supplies"},
	"tanks":            {Name: "tanks"},
	"petrol-providers": {Name: "petrol-providers"},
	"fuel-types":       {Name: "fuel-types"},
	"filling-systems":  {Name: "filling-systems"},
	"employees":        {Name: "employees"},
	"expenses":         {Name: "expenses"},
	"reports":          {Name: "reports", ReadOnly: true},
	"dashboard":        {Name: "dashboard", ReadOnly: true},
}

// Entities lists the supported entity names in order.
func Entities() []string {
	names := make([]string, 0, len(entities))
	for name := range entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Service struct {
	invoker Invoker
}

func New(invoker Invoker) *Service {
	return &Service{
		invoker: invoker,
	}
}

func (s *Service) List(ctx context.Context, entity string, query url.Values) (json.RawMessage, error) {
	e, err := lookup(entity, false)
	if err != nil {
		return nil, err
	}
	return s.call(ctx, e.Name, platform.InvokeOptions{Method: http.MethodGet, Query: query})
}

func (s *Service) Get(ctx context.Context, entity, id string) (json.RawMessage, error) {
	e, err := lookup(entity, false)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrEmptyID
	}
	return s.call(ctx, e.Name+"/"+url.PathEscape(id), platform.InvokeOptions{Method: http.MethodGet})
}

func (s *Service) Create(ctx context.Context, entity string, body json.RawMessage) (json.RawMessage, error) {
	e, err := lookup(entity, true)
	if err != nil {
		return nil, err
	}
	if !isObject(body) {
		return nil, ErrInvalidBody
	}
	return s.call(ctx, e.Name, platform.InvokeOptions{Method: http.MethodPost, Body: body})
}

func (s *Service) Update(ctx context.Context, entity, id string, body json.RawMessage) (json.RawMessage, error) {
	e, err := lookup(entity, true)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrEmptyID
	}
	if !isObject(body) {
		return nil, ErrInvalidBody
	}
	return s.call(ctx, e.Name+"/"+url.PathEscape(id), platform.InvokeOptions{Method: http.MethodPatch, Body: body})
}

func (s *Service) Delete(ctx context.Context, entity, id string) error {
	e, err := lookup(entity, true)
	if err != nil {
		return err
	}
	if id == "" {
		return ErrEmptyID
	}
	_, err = s.call(ctx, e.Name+"/"+url.PathEscape(id), platform.InvokeOptions{Method: http.MethodDelete})
	return err
}

func (s *Service) call(ctx context.Context, path string, opts platform.InvokeOptions) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.invoker.Invoke(ctx, path, opts, &raw); err != nil {
		zap.L().Error("record call failed", zap.String("function", path), zap.String("method", opts.Method), zap.Error(err))
		return nil, err
	}
	return raw, nil
}

func lookup(name string, write bool) (Entity, error) {
	e, ok := entities[name]
	if !ok {
		return Entity{}, ErrUnknownEntity
	}
	if write && e.ReadOnly {
		return Entity{}, ErrReadOnly
	}
	return e, nil
}

func isObject(body json.RawMessage) bool {
	var obj map[string]json.RawMessage
	return json.Unmarshal(body, &obj) == nil && obj != nil
}
