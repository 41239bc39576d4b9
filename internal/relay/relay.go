// Package relay carries settings-change notifications across the process
// boundary. The main app and the extension share one preferences store
// but each has its own in-process change bus; the relay tells the other
// process which key changed so it can re-read the shared store.
package relay

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nnonaka/KeePassium/internal/settings"
)

// changeFrame is the wire format for one settings change. Only the key's
// stable string identifier crosses the wire; values always come from the
// shared store.
type changeFrame struct {
	Key string `json:"key"`
}

// decodeFrame parses a frame and resolves its key. A key identifier this
// build does not know (persisted by a newer app version) is reported as
// an error so the caller can drop it with a diagnostic.
func decodeFrame(raw []byte) (settings.Key, error) {
	var f changeFrame
	if err := json.Unmarshal(raw, &f); err != nil {
		return "", fmt.Errorf("invalid frame: %w", err)
	}
	key, ok := settings.KeyFromString(f.Key)
	if !ok {
		return "", fmt.Errorf("unknown setting key %q", f.Key)
	}
	return key, nil
}

// injectGuard suppresses echo: a change just received from the wire is
// published on the local bus, and the endpoint's own bus subscription
// must not send it back out.
type injectGuard struct {
	mu   sync.Mutex
	keys map[settings.Key]int
}

func newInjectGuard() *injectGuard {
	return &injectGuard{keys: make(map[settings.Key]int)}
}

// run publishes via fn with key marked as wire-originated for the
// duration of the synchronous fan-out.
func (g *injectGuard) run(key settings.Key, fn func()) {
	g.mu.Lock()
	g.keys[key]++
	g.mu.Unlock()

	fn()

	g.mu.Lock()
	g.keys[key]--
	if g.keys[key] <= 0 {
		delete(g.keys, key)
	}
	g.mu.Unlock()
}

// active reports whether key is currently being injected from the wire.
func (g *injectGuard) active(key settings.Key) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.keys[key] > 0
}
