// Package nexustypes defines the catalog data model and core interfaces shared
// by the nexus daemon and the interactive shell. Catalog values are built once
// on the server at startup, transferred over the wire at connection time, and
// treated as read-only by the client for the lifetime of the session.
package nexustypes

// ArgSpec describes one positional argument of a command.
type ArgSpec struct {
	// Name is the parameter identifier, unique within its command.
	Name string `json:"name"`

	// Hint is the display label shown to the user (e.g. "volume name").
	// Falls back to Name when empty.
	Hint string `json:"hint,omitempty"`

	// Completer optionally names a zero-argument command in
	// "service.command" form whose result supplies completion candidates.
	Completer string `json:"completer,omitempty"`

	// Description is free text describing this argument.
	Description string `json:"description,omitempty"`
}

// Label returns the display label for the argument: Hint when set, otherwise Name.
func (a ArgSpec) Label() string {
	if a.Hint != "" {
		return a.Hint
	}
	return a.Name
}

// CommandSpec describes one command on a service. The Args order defines the
// required positional argument order; there are no optional or variadic
// arguments.
type CommandSpec struct {
	Name        string    `json:"name"`
	Args        []ArgSpec `json:"args,omitempty"`
	Description string    `json:"description,omitempty"`
}

// ServiceSpec describes one service and its commands.
type ServiceSpec struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Commands    []CommandSpec `json:"commands,omitempty"`
}

// FindCommand returns the command with the given name, or false if the
// service declares no such command.
func (s ServiceSpec) FindCommand(name string) (CommandSpec, bool) {
	for _, cmd := range s.Commands {
		if cmd.Name == name {
			return cmd, true
		}
	}
	return CommandSpec{}, false
}

// Catalog is the full set of services returned by ListServices. It is
// immutable for the session; a changed server-side catalog is only observed
// on reconnect.
type Catalog struct {
	Services []ServiceSpec `json:"services"`
}

// FindService returns the service with the given name, or false if the
// catalog contains no such service.
func (c Catalog) FindService(name string) (ServiceSpec, bool) {
	for _, svc := range c.Services {
		if svc.Name == name {
			return svc, true
		}
	}
	return ServiceSpec{}, false
}

// ExecResult is the outcome of executing a command. Application-level
// failures (unknown service, unknown command, missing argument, handler
// failure) are reported with Success false and a human-readable Message;
// they are never transport faults.
type ExecResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
