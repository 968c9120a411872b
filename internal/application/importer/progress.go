package importer

import (
	"sync"

	"github.com/jhoicas/bodega-wms/internal/domain/plugin"
)

// progressReporter reenvía el avance al callback del llamador garantizando porcentajes
// no decrecientes. Los retrocesos se descartan; un panic del callback se ignora.
type progressReporter struct {
	mu   sync.Mutex
	last float64
	fn   plugin.ProgressFunc
}

func newProgressReporter(fn plugin.ProgressFunc) *progressReporter {
	return &progressReporter{fn: fn, last: -1}
}

func (p *progressReporter) report(percent float64, message string) {
	if p == nil || p.fn == nil {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if percent < p.last {
		return
	}
	p.last = percent
	func() {
		defer func() { _ = recover() }()
		p.fn(percent, message)
	}()
}

// band devuelve un ProgressFunc que reescala 0-100 al rango [from, to].
func (p *progressReporter) band(from, to float64) plugin.ProgressFunc {
	return func(percent float64, message string) {
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
		p.report(from+(to-from)*percent/100, message)
	}
}
