package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/creachadair/chirp"
	"github.com/creachadair/chirp/channel"

	"nexus/pkg/nexustypes"
)

// Client is the shell's handle on a connected daemon. It is safe for
// concurrent use: chirp multiplexes concurrent calls over one connection,
// which is what lets a completer call run while the interactive loop owns
// the same client.
type Client struct {
	peer *chirp.Peer
}

// NewClient wraps an already-started peer. Used directly by tests running
// over an in-memory peer pair.
func NewClient(peer *chirp.Peer) *Client {
	return &Client{peer: peer}
}

// Dial connects to the daemon at the given endpoint address and starts the
// client peer on the connection.
func Dial(ctx context.Context, addr string) (*Client, error) {
	conn, err := DialEndpoint(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", addr, err)
	}
	peer := chirp.NewPeer()
	peer.Start(channel.IO(conn, conn))
	return &Client{peer: peer}, nil
}

// Close stops the client peer and closes the underlying connection.
func (c *Client) Close() error {
	c.peer.Stop()
	return nil
}

// ListServices fetches the full catalog. It must be called once at session
// start before completion or dispatch use the catalog.
func (c *Client) ListServices(ctx context.Context) (nexustypes.Catalog, error) {
	rsp, err := c.peer.Call(ctx, methodListServices, nil)
	if err != nil {
		return nexustypes.Catalog{}, fmt.Errorf("list services: %w", err)
	}
	var catalog nexustypes.Catalog
	if err := json.Unmarshal(rsp.Data, &catalog); err != nil {
		return nexustypes.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	return catalog, nil
}

// Execute runs one command on the daemon. The returned result reports
// application-level failures with Success false; the error return is
// reserved for transport failure.
func (c *Client) Execute(ctx context.Context, service, action string, args []string) (nexustypes.ExecResult, error) {
	payload, err := json.Marshal(executeRequest{Service: service, Action: action, Args: args})
	if err != nil {
		return nexustypes.ExecResult{}, err
	}
	rsp, err := c.peer.Call(ctx, methodExecute, payload)
	if err != nil {
		return nexustypes.ExecResult{}, fmt.Errorf("execute %s %s: %w", service, action, err)
	}
	var result nexustypes.ExecResult
	if err := json.Unmarshal(rsp.Data, &result); err != nil {
		return nexustypes.ExecResult{}, fmt.Errorf("decode result: %w", err)
	}
	return result, nil
}
