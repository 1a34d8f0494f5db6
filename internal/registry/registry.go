// Package registry manages service registration and command dispatch for the
// nexus daemon. Registration follows a build-then-freeze pattern: services are
// registered on a Builder before the daemon starts serving, then sealed into
// an immutable Registry handed to the RPC layer. A sealed registry holds no
// mutable state of its own, so concurrent Execute calls proceed independently.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"nexus/pkg/nexustypes"
)

// Builder collects services before the daemon starts serving.
type Builder struct {
	mu       sync.Mutex
	services map[string]nexustypes.Service
	sealed   bool
}

// NewBuilder creates an empty registry builder.
func NewBuilder() *Builder {
	return &Builder{
		services: make(map[string]nexustypes.Service),
	}
}

// Register adds a service to the builder, returning an error if the name is
// already registered or the builder has been sealed.
func (b *Builder) Register(service nexustypes.Service) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sealed {
		return fmt.Errorf("registry already sealed, cannot register service %s", service.Name())
	}

	name := service.Name()
	if _, exists := b.services[name]; exists {
		return fmt.Errorf("service %s already registered", name)
	}

	b.services[name] = service
	return nil
}

// Seal freezes the builder into an immutable Registry. The catalog snapshot
// is built once here; services are sorted by name so catalog and help output
// are deterministic. Further Register calls fail.
func (b *Builder) Seal() *Registry {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.sealed = true

	services := make(map[string]nexustypes.Service, len(b.services))
	specs := make([]nexustypes.ServiceSpec, 0, len(b.services))
	for name, svc := range b.services {
		services[name] = svc
		specs = append(specs, nexustypes.ServiceSpec{
			Name:        name,
			Description: svc.Description(),
			Commands:    svc.Commands(),
		})
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })

	return &Registry{
		services: services,
		catalog:  nexustypes.Catalog{Services: specs},
	}
}

// Registry is a sealed, read-only set of services. It is safe for concurrent
// use by multiple simultaneous Execute calls.
type Registry struct {
	services map[string]nexustypes.Service
	catalog  nexustypes.Catalog
}

// Catalog returns the catalog snapshot built at seal time. Repeated calls
// return the identical catalog; the registry never mutates it.
func (r *Registry) Catalog() nexustypes.Catalog {
	return r.catalog
}

// Execute resolves a (service, action) pair and invokes the handler with the
// given positional arguments. Unknown names and missing arguments are plain
// errors whose text becomes the wire message. Extra trailing arguments beyond
// the declared count are passed through to the handler unchanged.
func (r *Registry) Execute(ctx context.Context, service, action string, args []string) (string, error) {
	impl, exists := r.services[service]
	if !exists {
		return "", fmt.Errorf("unknown service '%s'", service)
	}

	spec, ok := r.catalog.FindService(service)
	if !ok {
		return "", fmt.Errorf("unknown service '%s'", service)
	}

	cmd, ok := spec.FindCommand(action)
	if !ok {
		return "", fmt.Errorf("unknown command '%s'", action)
	}

	if len(args) < len(cmd.Args) {
		missing := cmd.Args[len(args)]
		return "", fmt.Errorf("missing argument '%s' (expected %d args)", missing.Name, len(cmd.Args))
	}

	return impl.Execute(ctx, action, args)
}
