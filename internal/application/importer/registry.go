package importer

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/plugin"
)

// Registry mapa id -> plugin de importación. Seguro para uso concurrente.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]plugin.Plugin
}

// NewRegistry construye el registro con los plugins indicados.
// Falla si dos plugins comparten id.
func NewRegistry(plugins ...plugin.Plugin) (*Registry, error) {
	r := &Registry{plugins: make(map[string]plugin.Plugin, len(plugins))}
	for _, p := range plugins {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register agrega un plugin. Un id repetido devuelve ErrDuplicatePlugin.
func (r *Registry) Register(p plugin.Plugin) error {
	if p == nil {
		return fmt.Errorf("registrar plugin: %w", domain.ErrInvalidInput)
	}
	id := p.Metadata().ID
	if id == "" {
		return fmt.Errorf("registrar plugin sin id: %w", domain.ErrInvalidInput)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plugins[id]; ok {
		return fmt.Errorf("plugin %q: %w", id, domain.ErrDuplicatePlugin)
	}
	r.plugins[id] = p
	return nil
}

// Unregister elimina el plugin; devuelve false si no existía.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plugins[id]; !ok {
		return false
	}
	delete(r.plugins, id)
	return true
}

func (r *Registry) Get(id string) (plugin.Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[id]
	return p, ok
}

func (r *Registry) Exists(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// List devuelve la metadata de todos los plugins ordenada por id.
func (r *Registry) List() []plugin.Metadata {
	r.mu.RLock()
	out := make([]plugin.Metadata, 0, len(r.plugins))
	for _, p := range r.plugins {
		out = append(out, p.Metadata())
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
