package input

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"padnav/focus"
)

// RemoteSource feeds commands from a websocket peer, e.g. a companion app or
// a switch-access device. Messages are JSON, one per frame:
//
//	{"op":"navigate","dir":"up"}
//	{"op":"activate"}
//	{"op":"back"}
//
// Read or parse failures close the source silently; the rest of the input
// pipeline is unaffected.
type RemoteSource struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	inCh   chan Command
	closed bool
}

type remoteMsg struct {
	Op  string `json:"op"`
	Dir string `json:"dir,omitempty"`
}

func (m remoteMsg) command() (Command, bool) {
	switch m.Op {
	case "activate":
		return Command{Kind: CmdActivate}, true
	case "back":
		return Command{Kind: CmdBack}, true
	case "next":
		return Command{Kind: CmdFocusNext}, true
	case "prev":
		return Command{Kind: CmdFocusPrev}, true
	case "navigate":
		switch m.Dir {
		case "up":
			return Command{Kind: CmdNavigate, Dir: focus.DirUp}, true
		case "down":
			return Command{Kind: CmdNavigate, Dir: focus.DirDown}, true
		case "left":
			return Command{Kind: CmdNavigate, Dir: focus.DirLeft}, true
		case "right":
			return Command{Kind: CmdNavigate, Dir: focus.DirRight}, true
		}
	}
	return Command{}, false
}

// DialRemote connects to a remote command feed.
func DialRemote(wsURL string, hdr http.Header) (*RemoteSource, error) {
	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	c, resp, err := dialer.Dial(wsURL, hdr)
	if err != nil {
		if resp != nil {
			body, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			log.Printf("remote dial failed: %s\n%s", resp.Status, string(body))
		} else {
			log.Printf("remote dial failed: %v", err)
		}
		return nil, err
	}
	return NewRemoteSource(c), nil
}

// NewRemoteSource wraps an established websocket connection and starts its
// reader.
func NewRemoteSource(c *websocket.Conn) *RemoteSource {
	r := &RemoteSource{conn: c, inCh: make(chan Command, 32)}
	go r.reader()
	return r
}

func (r *RemoteSource) reader() {
	for {
		r.mu.Lock()
		c := r.conn
		r.mu.Unlock()
		if c == nil {
			return
		}
		_, data, err := c.ReadMessage()
		if err != nil {
			r.mu.Lock()
			alreadyClosed := r.closed
			r.closed = true
			r.conn = nil
			r.mu.Unlock()
			if !alreadyClosed {
				log.Println("remote read:", err)
			}
			close(r.inCh)
			return
		}
		var m remoteMsg
		if err := json.Unmarshal(data, &m); err != nil {
			continue
		}
		cmd, ok := m.command()
		if !ok {
			continue
		}
		select {
		case r.inCh <- cmd:
		default:
			// Consumer fell behind; drop rather than queue.
		}
	}
}

// Pending returns the commands received since the last tick without
// blocking.
func (r *RemoteSource) Pending() []Command {
	var out []Command
	for {
		select {
		case cmd, ok := <-r.inCh:
			if !ok {
				return out
			}
			out = append(out, cmd)
		default:
			return out
		}
	}
}

// IsClosed reports whether Close was called or the connection was torn down.
func (r *RemoteSource) IsClosed() bool {
	if r == nil {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Close closes the websocket and marks the source as closed.
func (r *RemoteSource) Close() error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	if r.closed || r.conn == nil {
		r.closed = true
		r.mu.Unlock()
		return nil
	}
	c := r.conn
	r.conn = nil
	r.closed = true
	r.mu.Unlock()
	return c.Close()
}
