package rpc

import (
	"context"
	"net"
	"os"
	"strings"
)

// DefaultEndpoint is the unix socket the daemon binds when no address is given.
const DefaultEndpoint = "/tmp/nexus.sock"

// network classifies an endpoint address: anything containing ':' is a TCP
// socket address (e.g. "[::1]:7420"), otherwise it is a unix socket path
// (e.g. "/tmp/nexus.sock").
func network(addr string) string {
	if strings.Contains(addr, ":") {
		return "tcp"
	}
	return "unix"
}

// Listen opens a listener on the given endpoint address. A stale unix socket
// file left by a previous daemon run is removed before binding.
func Listen(addr string) (net.Listener, error) {
	netw := network(addr)
	if netw == "unix" {
		_ = os.Remove(addr)
	}
	return net.Listen(netw, addr)
}

// DialEndpoint connects to the daemon at the given endpoint address.
func DialEndpoint(ctx context.Context, addr string) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, network(addr), addr)
}
