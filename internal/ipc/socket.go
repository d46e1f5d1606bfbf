package ipc

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
)

// sway speaks the i3 IPC protocol: a 6-byte magic, then payload length and
// message type as little-endian uint32, then the payload.
const ipcMagic = "i3-ipc"

const (
	msgRunCommand uint32 = 0
	msgGetTree    uint32 = 4
)

type socketClient struct {
	path string
}

func newSocketClient() (*socketClient, error) {
	path := os.Getenv("SWAYSOCK")
	if path == "" {
		return nil, fmt.Errorf("SWAYSOCK not set")
	}
	return &socketClient{path: path}, nil
}

func (c *socketClient) SocketPath() string {
	return c.path
}

func (c *socketClient) roundTrip(ctx context.Context, msgType uint32, payload []byte) ([]byte, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "unix", c.path)
	if err != nil {
		return nil, fmt.Errorf("connect sway socket: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("set socket deadline: %w", err)
		}
	}

	header := make([]byte, len(ipcMagic)+8)
	copy(header, ipcMagic)
	binary.LittleEndian.PutUint32(header[len(ipcMagic):], uint32(len(payload)))
	binary.LittleEndian.PutUint32(header[len(ipcMagic)+4:], msgType)
	if _, err := conn.Write(append(header, payload...)); err != nil {
		return nil, fmt.Errorf("write ipc message: %w", err)
	}

	reply := make([]byte, len(ipcMagic)+8)
	if _, err := io.ReadFull(conn, reply); err != nil {
		return nil, fmt.Errorf("read ipc header: %w", err)
	}
	if string(reply[:len(ipcMagic)]) != ipcMagic {
		return nil, fmt.Errorf("read ipc header: bad magic %q", reply[:len(ipcMagic)])
	}
	length := binary.LittleEndian.Uint32(reply[len(ipcMagic):])
	replyType := binary.LittleEndian.Uint32(reply[len(ipcMagic)+4:])
	if replyType != msgType {
		return nil, fmt.Errorf("read ipc header: reply type %d for request %d", replyType, msgType)
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(conn, body); err != nil {
		return nil, fmt.Errorf("read ipc payload: %w", err)
	}
	return body, nil
}

// command sends a RUN_COMMAND message and surfaces any per-command failure.
func (c *socketClient) command(ctx context.Context, command string) error {
	body, err := c.roundTrip(ctx, msgRunCommand, []byte(command))
	if err != nil {
		return err
	}
	var results []struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return fmt.Errorf("decode command reply: %w", err)
	}
	for _, res := range results {
		if !res.Success {
			return fmt.Errorf("sway rejected %q: %s", command, res.Error)
		}
	}
	return nil
}

func (c *socketClient) Tree(ctx context.Context) ([]byte, error) {
	return c.roundTrip(ctx, msgGetTree, nil)
}

func (c *socketClient) Exec(ctx context.Context, command string) error {
	return c.command(ctx, "exec "+command)
}

func (c *socketClient) Focus(ctx context.Context, criteria string) error {
	return c.command(ctx, criteria+" focus")
}

func (c *socketClient) MoveToScratchpad(ctx context.Context, criteria string) error {
	return c.command(ctx, criteria+" move scratchpad")
}
