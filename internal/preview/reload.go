package preview

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ReloadPath is the websocket endpoint browsers connect to.
const ReloadPath = "/_dataviewer/reload"

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is sent to browsers via WebSocket.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
}

// writeWait bounds a single websocket write so a stalled browser cannot
// hold up a broadcast.
const writeWait = 5 * time.Second

// reloadClient is one connected browser. gorilla/websocket allows a single
// concurrent writer per connection, so writes go through mu.
type reloadClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *reloadClient) send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// ReloadServer tracks the browsers showing the preview and pushes reload
// and error messages to them.
type ReloadServer struct {
	mu       sync.RWMutex
	clients  map[*reloadClient]struct{}
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewReloadServer creates a reload server. A nil logger uses slog.Default().
func NewReloadServer(logger *slog.Logger) *ReloadServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReloadServer{
		clients: make(map[*reloadClient]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The preview binds to a local address and only ever sends.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// HandleWebSocket upgrades the request and holds the connection until the
// browser goes away. Incoming messages are discarded.
func (r *ReloadServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Debug("reload upgrade failed", "error", err)
		return
	}

	c := &reloadClient{conn: conn}
	r.mu.Lock()
	r.clients[c] = struct{}{}
	r.mu.Unlock()
	r.logger.Debug("reload client connected", "remote", req.RemoteAddr)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	r.drop(c)
}

// NotifyReload asks every browser to reload the page.
func (r *ReloadServer) NotifyReload() int {
	return r.broadcast(ReloadMessage{Type: ReloadTypeFull})
}

// NotifyError shows errMsg in an overlay on every browser.
func (r *ReloadServer) NotifyError(errMsg string) int {
	return r.broadcast(ReloadMessage{Type: ReloadTypeError, Error: errMsg})
}

// ClearError removes the error overlay.
func (r *ReloadServer) ClearError() int {
	return r.broadcast(ReloadMessage{Type: ReloadTypeClear})
}

// broadcast sends msg to every client and returns how many received it.
// Clients that fail to receive are dropped.
func (r *ReloadServer) broadcast(msg ReloadMessage) int {
	data, err := json.Marshal(msg)
	if err != nil {
		return 0
	}

	r.mu.RLock()
	clients := make([]*reloadClient, 0, len(r.clients))
	for c := range r.clients {
		clients = append(clients, c)
	}
	r.mu.RUnlock()

	sent := 0
	for _, c := range clients {
		if err := c.send(data); err != nil {
			r.logger.Debug("reload client dropped", "error", err)
			r.drop(c)
			continue
		}
		sent++
	}
	return sent
}

func (r *ReloadServer) drop(c *reloadClient) {
	r.mu.Lock()
	_, ok := r.clients[c]
	delete(r.clients, c)
	r.mu.Unlock()
	if ok {
		c.conn.Close()
	}
}

// ClientCount returns the number of connected clients.
func (r *ReloadServer) ClientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Close disconnects every client.
func (r *ReloadServer) Close() {
	r.mu.Lock()
	clients := r.clients
	r.clients = make(map[*reloadClient]struct{})
	r.mu.Unlock()

	for c := range clients {
		c.conn.Close()
	}
}

// ClientScript connects the page to the reload endpoint. It is added to
// the head of every previewed page.
const ClientScript = `<script>
(function () {
  'use strict';
  var delay = 500, maxDelay = 10000, overlayID = 'dataviewer-error-overlay';

  function overlay(text) {
    clear();
    var box = document.createElement('div');
    box.id = overlayID;
    box.style.cssText = 'position:fixed;inset:0;z-index:999999;overflow:auto;padding:24px;' +
      'background:rgba(17,24,39,.92);color:#f9fafb;font:13px/1.5 ui-monospace,monospace;';
    var head = document.createElement('div');
    head.style.cssText = 'display:flex;justify-content:space-between;margin-bottom:16px;';
    var title = document.createElement('strong');
    title.style.color = '#f87171';
    title.textContent = 'dataviewer: document error';
    var close = document.createElement('button');
    close.textContent = 'dismiss';
    close.style.cssText = 'color:inherit;background:none;border:1px solid #6b7280;border-radius:4px;padding:0 8px;';
    close.onclick = clear;
    head.appendChild(title);
    head.appendChild(close);
    var pre = document.createElement('pre');
    pre.style.cssText = 'white-space:pre-wrap;margin:0;';
    pre.textContent = text;
    box.appendChild(head);
    box.appendChild(pre);
    document.body.appendChild(box);
  }

  function clear() {
    var box = document.getElementById(overlayID);
    if (box) box.remove();
  }

  function connect() {
    var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(scheme + location.host + '` + ReloadPath + `');
    ws.onopen = function () { delay = 500; };
    ws.onmessage = function (e) {
      var msg;
      try { msg = JSON.parse(e.data); } catch (_) { return; }
      if (msg.type === 'reload') location.reload();
      else if (msg.type === 'error') overlay(msg.error);
      else if (msg.type === 'clear') clear();
    };
    ws.onclose = function () {
      setTimeout(connect, delay);
      delay = Math.min(delay * 2, maxDelay);
    };
  }

  if (document.readyState === 'loading') document.addEventListener('DOMContentLoaded', connect);
  else connect();
})();
</script>`
