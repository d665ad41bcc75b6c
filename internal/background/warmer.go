package background

import (
	"context"
	"sync"
	"time"

	"karriarsparet-gateway/internal/catalog"
	"karriarsparet-gateway/internal/config"
	"karriarsparet-gateway/internal/logging"
)

// Warmer keeps the cached reference lists fresh by refreshing them on a fixed
// interval. A failed refresh is logged and retried on the next tick; the
// previously cached lists stay served in the meantime.
type Warmer struct {
	catalog  *catalog.CachedCatalog
	interval time.Duration
	logger   logging.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewWarmer creates a cache warmer with the configured refresh interval
func NewWarmer(cached *catalog.CachedCatalog, cfg *config.Config) *Warmer {
	interval := cfg.Cache.RefreshInterval
	if interval <= 0 {
		interval = time.Hour
	}
	return &Warmer{
		catalog:  cached,
		interval: interval,
		logger:   logging.GetGlobalLogger(),
	}
}

// Start begins the refresh loop. The first refresh runs immediately so the
// caches are warm before the server takes traffic.
func (w *Warmer) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.ctx, w.cancel = context.WithCancel(ctx)
	w.running = true

	w.wg.Add(1)
	go w.run()

	w.logger.Info("Cache warmer started", map[string]interface{}{
		"interval": w.interval.String(),
	})
}

// Stop cancels the refresh loop and waits for it to finish
func (w *Warmer) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.cancel()
	w.mu.Unlock()

	w.wg.Wait()
	w.logger.Info("Cache warmer stopped")
}

func (w *Warmer) run() {
	defer w.wg.Done()

	w.refresh()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.refresh()
		}
	}
}

func (w *Warmer) refresh() {
	if err := w.catalog.Refresh(w.ctx); err != nil {
		w.logger.Warn("Cache refresh failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	w.logger.Debug("Reference caches refreshed")
}
