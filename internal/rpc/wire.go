// Package rpc implements the nexus wire contract: two methods, ListServices
// and Execute, carried as JSON payloads over the chirp protocol. Application
// failures (unknown service, unknown command, missing argument, handler
// failure) ride inside the ExecResult envelope; only transport failure
// surfaces as an error to callers.
package rpc

// Method IDs of the nexus chirp contract. Both peers must agree on these;
// they are fixed for the protocol, not negotiated.
const (
	methodListServices = "1"
	methodExecute      = "2"
)

// executeRequest is the wire form of an Execute call.
type executeRequest struct {
	Service string   `json:"service"`
	Action  string   `json:"action"`
	Args    []string `json:"args,omitempty"`
}
