package stream

import (
	"log/slog"
	"net/http"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

// Handler upgrades HTTP connections and streams broker payloads as text
// frames. The stream is write-only: clients are not expected to send
// frames, and a failed write drops the client.
func Handler(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			slog.Debug("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
			return
		}
		defer func() {
			if err := conn.Close(); err != nil {
				slog.Debug("websocket close failed", "error", err)
			}
		}()

		id, ch := broker.Subscribe()
		defer broker.Unsubscribe(id)
		slog.Debug("price stream client connected", "id", id, "remote", r.RemoteAddr)

		for payload := range ch {
			if err := wsutil.WriteServerText(conn, payload); err != nil {
				slog.Debug("price stream write failed", "id", id, "error", err)
				return
			}
		}
	}
}
