package usecase

import "sync"

// ImportGate candado de un solo escritor para el proceso: una importación a la vez
// (lado de escritura) y análisis concurrentes entre sí (lado de lectura).
// Los análisis esperan a que termine la importación en curso; una segunda importación
// no espera y falla con domain.ErrImportInProgress.
type ImportGate struct {
	mu sync.RWMutex
}

// NewImportGate construye el candado.
func NewImportGate() *ImportGate {
	return &ImportGate{}
}

// tryWrite toma el lado de escritura sin bloquear.
func (g *ImportGate) tryWrite() (release func(), ok bool) {
	if !g.mu.TryLock() {
		return nil, false
	}
	return g.mu.Unlock, true
}

// read toma el lado de lectura; bloquea mientras haya una importación en curso.
func (g *ImportGate) read() (release func()) {
	g.mu.RLock()
	return g.mu.RUnlock
}
