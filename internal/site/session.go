package site

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/docbrowser/internal/browser"
	"github.com/ziadkadry99/docbrowser/internal/catalog"
	"github.com/ziadkadry99/docbrowser/internal/prefs"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Incoming message types.
const (
	msgNavigate = "navigate"
	msgHash     = "hash"
	msgSidebar  = "sidebar"
	msgEscape   = "escape"
	msgResize   = "resize"
	msgTheme    = "theme"
)

// Outgoing message types.
const (
	replyContent = "content"
	replyHome    = "home"
	replyError   = "error"
	replyAnchor  = "anchor"
	replyState   = "state"
	replyTheme   = "theme"
)

// sessionRequest is the incoming WebSocket message format.
type sessionRequest struct {
	Type      string `json:"type"`
	ModuleID  string `json:"module_id,omitempty"`
	FileIndex int    `json:"file_index,omitempty"`
	Hash      string `json:"hash,omitempty"`
	Width     int    `json:"width,omitempty"`
}

// sessionReply is the outgoing WebSocket message format.
type sessionReply struct {
	Type   string          `json:"type"`
	State  browser.State   `json:"state"`
	Page   *browser.Page   `json:"page,omitempty"`
	Anchor *anchorResponse `json:"anchor,omitempty"`
	Error  *errorResponse  `json:"error,omitempty"`
	Theme  prefs.Theme     `json:"theme,omitempty"`
}

// session is one reader's connection. Navigation runs off the read loop so a
// newer request can cancel a slow one; writes are serialised.
type session struct {
	srv  *Server
	conn *websocket.Conn
	nav  *browser.Navigator

	writeMu sync.Mutex
	wg      sync.WaitGroup
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", "err", err)
		return
	}

	sess := &session{srv: s, conn: conn, nav: browser.NewNavigator(s.svc)}
	ctx, cancel := context.WithCancel(r.Context())
	defer func() {
		cancel()
		sess.nav.Close()
		sess.wg.Wait()
		conn.Close()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read", "err", err)
			}
			return
		}

		var req sessionRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			sess.sendError(errorResponse{Error: "invalid message format", Kind: "request"})
			continue
		}
		sess.dispatch(ctx, req)
	}
}

func (sess *session) dispatch(ctx context.Context, req sessionRequest) {
	switch req.Type {
	case msgNavigate:
		sess.wg.Add(1)
		go func() {
			defer sess.wg.Done()
			sess.navigate(ctx, req.ModuleID, req.FileIndex)
		}()
	case msgHash:
		sess.hash(req.Hash)
	case msgSidebar:
		sess.nav.ToggleSidebar()
		sess.sendState()
	case msgEscape:
		sess.nav.Escape()
		sess.sendState()
	case msgResize:
		sess.nav.Resize(req.Width)
		sess.sendState()
	case msgTheme:
		sess.toggleTheme(ctx)
	default:
		sess.sendError(errorResponse{Error: "unknown message type: " + req.Type, Kind: "request"})
	}
}

func (sess *session) navigate(ctx context.Context, id string, file int) {
	page, err := sess.nav.Navigate(ctx, id, file)
	switch {
	case errors.Is(err, browser.ErrSuperseded), errors.Is(err, context.Canceled):
		return
	case errors.Is(err, catalog.ErrModuleNotRegistered):
		// The view is unchanged, only the state is echoed.
		sess.sendState()
	case err != nil:
		body := errorBody(id, err)
		sess.send(sessionReply{Type: replyError, State: sess.nav.State(), Error: &body})
	case page == nil:
		sess.send(sessionReply{Type: replyHome, State: sess.nav.State()})
	default:
		sess.send(sessionReply{Type: replyContent, State: sess.nav.State(), Page: page})
	}
}

func (sess *session) hash(fragment string) {
	res, ok := sess.nav.Hash(fragment)
	body := newAnchorResponse(fragment, res, ok)
	sess.send(sessionReply{Type: replyAnchor, State: sess.nav.State(), Anchor: &body})
}

func (sess *session) toggleTheme(ctx context.Context) {
	theme, err := sess.srv.prefs.ToggleTheme(ctx)
	if err != nil {
		sess.srv.logger.Error("toggling theme", "err", err)
		sess.sendError(errorResponse{Error: err.Error(), Kind: "storage"})
		return
	}
	sess.send(sessionReply{Type: replyTheme, State: sess.nav.State(), Theme: theme})
}

func (sess *session) sendState() {
	sess.send(sessionReply{Type: replyState, State: sess.nav.State()})
}

func (sess *session) sendError(body errorResponse) {
	sess.send(sessionReply{Type: replyError, State: sess.nav.State(), Error: &body})
}

func (sess *session) send(reply sessionReply) {
	sess.writeMu.Lock()
	defer sess.writeMu.Unlock()
	if err := sess.conn.WriteJSON(reply); err != nil {
		sess.srv.logger.Warn("websocket write", "err", err)
	}
}
