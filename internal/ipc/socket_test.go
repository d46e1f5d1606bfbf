package ipc

import (
	"context"
	"encoding/binary"
	"io"
	"net"
	"path/filepath"
	"strings"
	"testing"
)

// fakeSwayServer accepts one connection per request, records the payload and
// answers with a framed reply of the same message type.
type fakeSwayServer struct {
	listener net.Listener
	requests chan string
}

func startFakeSway(t *testing.T, replies map[uint32][]byte) *fakeSwayServer {
	t.Helper()
	socketPath := filepath.Join(t.TempDir(), "sway-ipc.sock")
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { listener.Close() })
	setEnv(t, "SWAYSOCK", socketPath)

	srv := &fakeSwayServer{listener: listener, requests: make(chan string, 8)}
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go srv.serve(conn, replies)
		}
	}()
	return srv
}

func (s *fakeSwayServer) serve(conn net.Conn, replies map[uint32][]byte) {
	defer conn.Close()
	header := make([]byte, len(ipcMagic)+8)
	if _, err := io.ReadFull(conn, header); err != nil {
		return
	}
	length := binary.LittleEndian.Uint32(header[len(ipcMagic):])
	msgType := binary.LittleEndian.Uint32(header[len(ipcMagic)+4:])
	payload := make([]byte, length)
	if _, err := io.ReadFull(conn, payload); err != nil {
		return
	}
	s.requests <- string(payload)

	body := replies[msgType]
	reply := make([]byte, len(ipcMagic)+8)
	copy(reply, ipcMagic)
	binary.LittleEndian.PutUint32(reply[len(ipcMagic):], uint32(len(body)))
	binary.LittleEndian.PutUint32(reply[len(ipcMagic)+4:], msgType)
	conn.Write(append(reply, body...))
}

func TestSocketClientTree(t *testing.T) {
	tree := []byte(`{"type": "root", "nodes": []}`)
	startFakeSway(t, map[uint32][]byte{msgGetTree: tree})

	sock, err := newSocketClient()
	if err != nil {
		t.Fatalf("newSocketClient: %v", err)
	}
	got, err := sock.Tree(context.Background())
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if string(got) != string(tree) {
		t.Fatalf("tree payload = %q", got)
	}
}

func TestSocketClientCommandSuccess(t *testing.T) {
	srv := startFakeSway(t, map[uint32][]byte{msgRunCommand: []byte(`[{"success": true}]`)})

	sock, err := newSocketClient()
	if err != nil {
		t.Fatalf("newSocketClient: %v", err)
	}
	if err := sock.Focus(context.Background(), `[app_id="obsidian"]`); err != nil {
		t.Fatalf("Focus: %v", err)
	}
	if got := <-srv.requests; got != `[app_id="obsidian"] focus` {
		t.Fatalf("request payload = %q", got)
	}

	if err := sock.MoveToScratchpad(context.Background(), `[title="fish-term"]`); err != nil {
		t.Fatalf("MoveToScratchpad: %v", err)
	}
	if got := <-srv.requests; got != `[title="fish-term"] move scratchpad` {
		t.Fatalf("request payload = %q", got)
	}

	if err := sock.Exec(context.Background(), "obsidian"); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if got := <-srv.requests; got != "exec obsidian" {
		t.Fatalf("request payload = %q", got)
	}
}

func TestSocketClientCommandFailure(t *testing.T) {
	startFakeSway(t, map[uint32][]byte{
		msgRunCommand: []byte(`[{"success": false, "error": "no matching window"}]`),
	})

	sock, err := newSocketClient()
	if err != nil {
		t.Fatalf("newSocketClient: %v", err)
	}
	err = sock.Focus(context.Background(), `[app_id="missing"]`)
	if err == nil || !strings.Contains(err.Error(), "no matching window") {
		t.Fatalf("expected rejection error, got %v", err)
	}
}

func TestSocketClientRequiresEnv(t *testing.T) {
	unsetEnv(t, "SWAYSOCK")
	if _, err := newSocketClient(); err == nil {
		t.Fatalf("expected error without SWAYSOCK")
	}
}

func TestNewConnFallback(t *testing.T) {
	unsetEnv(t, "SWAYSOCK")
	conn, strategy, err := NewConn(nil, StrategySocket)
	if err != nil {
		t.Fatalf("NewConn: %v", err)
	}
	if strategy != StrategySwaymsg {
		t.Fatalf("strategy = %v, want swaymsg fallback", strategy)
	}
	if conn.socket != nil {
		t.Fatalf("expected no socket backend after fallback")
	}

	if _, _, err := NewConn(nil, Strategy("carrier-pigeon")); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}

func TestNewConnSocket(t *testing.T) {
	startFakeSway(t, map[uint32][]byte{msgGetTree: []byte(`{"type": "root"}`)})
	conn, strategy, err := NewConn(nil, StrategySocket)
	if err != nil {
		t.Fatalf("NewConn: %v", err)
	}
	if strategy != StrategySocket || conn.socket == nil {
		t.Fatalf("expected socket strategy, got %v", strategy)
	}
	if _, err := conn.Tree(context.Background()); err != nil {
		t.Fatalf("Tree over socket: %v", err)
	}
}
