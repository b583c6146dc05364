package input

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"padnav/focus"
)

// remoteServer upgrades one connection and sends each payload as a text
// frame.
func remoteServer(t *testing.T, payloads ...string) *httptest.Server {
	t.Helper()
	up := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := up.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		for _, p := range payloads {
			if err := c.WriteMessage(websocket.TextMessage, []byte(p)); err != nil {
				return
			}
		}
		// Keep the connection open until the client closes it.
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func waitPending(t *testing.T, r *RemoteSource, n int) []Command {
	t.Helper()
	var got []Command
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out with %d/%d commands", len(got), n)
		}
		got = append(got, r.Pending()...)
		time.Sleep(5 * time.Millisecond)
	}
	return got
}

func TestRemoteSourceCommands(t *testing.T) {
	srv := remoteServer(t,
		`{"op":"navigate","dir":"down"}`,
		`{"op":"activate"}`,
		`not json at all`,
		`{"op":"navigate","dir":"sideways"}`,
		`{"op":"back"}`,
	)
	defer srv.Close()

	r, err := DialRemote(wsURL(srv), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer r.Close()

	got := waitPending(t, r, 3)
	want := []Command{
		navCmd(focus.DirDown),
		{Kind: CmdActivate},
		{Kind: CmdBack},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("command %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRemoteSourceDrivesSession(t *testing.T) {
	srv := remoteServer(t, `{"op":"navigate","dir":"down"}`)
	defer srv.Close()

	r, err := DialRemote(wsURL(srv), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer r.Close()

	s := gridSession(t)
	d := &Driver{Gamepad: &scriptedPad{}, Remote: r}

	deadline := time.Now().Add(2 * time.Second)
	for s.FocusedID() != "b" {
		if time.Now().After(deadline) {
			t.Fatalf("remote navigate never landed, focused %q", s.FocusedID())
		}
		d.Update(s)
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRemoteSourceClose(t *testing.T) {
	srv := remoteServer(t)
	defer srv.Close()

	r, err := DialRemote(wsURL(srv), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if r.IsClosed() {
		t.Fatalf("fresh source must be open")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !r.IsClosed() {
		t.Fatalf("source must report closed")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("double close: %v", err)
	}
	var nilSrc *RemoteSource
	if !nilSrc.IsClosed() {
		t.Fatalf("nil source reads closed")
	}
}

func TestRemoteSourceDialFailure(t *testing.T) {
	if _, err := DialRemote("ws://127.0.0.1:1/nowhere", nil); err == nil {
		t.Fatalf("dial to a dead endpoint must fail")
	}
}
