package nexustypes

import "context"

// Service defines the interface every daemon-side service implements.
// A service declares its own metadata and executes its commands by name with
// positional string arguments. Implementations must be safe for concurrent
// Execute calls; the registry makes no ordering guarantee between them, so a
// service holding mutable state is responsible for its own synchronization.
type Service interface {
	// Name is the service name used for dispatch (e.g. "volume"). It is the
	// first token a user types in the shell.
	Name() string

	// Description is a human-readable description of the service.
	Description() string

	// Commands lists the commands this service supports, in display order.
	Commands() []CommandSpec

	// Execute runs a command by action name. Positional argument binding and
	// arity validation happen in the registry before Execute is invoked.
	Execute(ctx context.Context, action string, args []string) (string, error)
}
