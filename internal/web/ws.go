package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Type string `json:"type"` // "rewrite"
	submitRequest
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type    string           `json:"type"` // "pending", "result" or "error"
	Content string           `json:"content,omitempty"`
	Result  *rewriteResponse `json:"result,omitempty"`
}

// handleWebSocket lets the form show a spinner: every submission is answered
// with a "pending" frame right away and a "result" frame once the completion
// call returns. Submissions on one connection are handled one at a time.
func (h *Web) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("web: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("web: websocket read: %v", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			h.send(conn, wsResponse{Type: "error", Content: "invalid message format"})
			continue
		}

		if req.Type != "rewrite" {
			h.send(conn, wsResponse{Type: "error", Content: "unknown message type: " + req.Type})
			continue
		}

		h.handleRewriteMessage(conn, r, req.submitRequest)
	}
}

func (h *Web) handleRewriteMessage(conn *websocket.Conn, r *http.Request, in submitRequest) {
	req, err := h.toRequest(in)
	if err != nil {
		h.send(conn, wsResponse{Type: "error", Content: err.Error()})
		return
	}

	if h.service == nil {
		h.send(conn, wsResponse{Type: "error", Content: errNoProvider.Error()})
		return
	}

	h.send(conn, wsResponse{Type: "pending", Content: "Shining your email..."})

	out, err := h.submit(r, req)
	if err != nil {
		h.send(conn, wsResponse{Type: "error", Content: err.Error()})
		return
	}
	h.send(conn, wsResponse{Type: "result", Result: &out})
}

func (h *Web) send(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("web: websocket write: %v", err)
	}
}
