package tools

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	errx "github.com/GreenNest-storefront/server/internal/core/error"

	"github.com/GreenNest-storefront/server/internal/shop/catalog"
	"github.com/GreenNest-storefront/server/internal/shop/session"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
)

var ErrUnknownTool = errors.New("unknown tool")

// Registry holds the storefront tools an assistant may call, by name.
type Registry struct {
	infos []*schema.ToolInfo
	byN   map[string]tool.InvokableTool
}

// GetStorefrontTools returns every tool bound to cat and sessions.
func GetStorefrontTools(cat *catalog.Catalog, sessions *session.Manager) []tool.InvokableTool {
	return []tool.InvokableTool{
		createSearchProductTool(cat),
		createGetProductDetailsTool(cat),
		createAddToCartTool(cat, sessions),
		createViewCartTool(sessions),
	}
}

func NewRegistry(ctx context.Context, tools ...tool.InvokableTool) (*Registry, error) {
	r := &Registry{byN: make(map[string]tool.InvokableTool, len(tools))}
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("tool info: %w", err)
		}
		if _, dup := r.byN[info.Name]; dup {
			return nil, fmt.Errorf("duplicate tool %q", info.Name)
		}
		r.byN[info.Name] = t
		r.infos = append(r.infos, info)
	}
	return r, nil
}

// Infos lists the tool descriptions in registration order.
func (r *Registry) Infos() []*schema.ToolInfo {
	return r.infos
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (tool.InvokableTool, bool) {
	t, ok := r.byN[name]
	return t, ok
}

// Invoke runs the named tool with JSON arguments and returns its JSON result.
func (r *Registry) Invoke(ctx context.Context, name, argumentsInJSON string) (string, error) {
	t, ok := r.byN[name]
	if !ok {
		return "", errx.New(ErrUnknownTool, http.StatusNotFound, fmt.Sprintf("unknown tool %q", name))
	}
	return t.InvokableRun(ctx, argumentsInJSON)
}
