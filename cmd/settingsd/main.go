// settingsd hosts the shared settings store for the app suite: it opens
// the preferences database, logs every change, and serves the relay the
// extension process connects to for change notifications.
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/nnonaka/KeePassium/internal/config"
	"github.com/nnonaka/KeePassium/internal/relay"
	"github.com/nnonaka/KeePassium/internal/settings"
	"github.com/nnonaka/KeePassium/internal/store"
)

func main() {
	cfg := config.Load()

	backing, err := store.OpenSQLite(cfg.StorePath)
	if err != nil {
		log.Fatal(err)
	}
	defer backing.Close()
	fmt.Printf("✅ Preferences store opened (%s)\n", cfg.StorePath)

	s := settings.Open(backing, settings.Options{})
	if s.IsFirstLaunch() {
		log.Printf("👋 First launch, recorded at %s", s.FirstLaunchTimestamp())
	}

	sub := s.Subscribe(func(k settings.Key) {
		log.Printf("⚙️  Setting changed: %s", k)
	})
	defer sub.Unsubscribe()

	hub := relay.NewHub(s.Notifier())
	hub.Start()
	defer hub.Stop()

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Settings host is online"))
	})

	mux.HandleFunc("/relay", hub.HandleConnection)

	fmt.Printf("Settings relay listening on %s...\n", cfg.RelayAddr)
	if err := http.ListenAndServe(cfg.RelayAddr, mux); err != nil {
		log.Fatal(err)
	}
}
