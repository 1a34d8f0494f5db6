package rpc

import (
	"context"
	"testing"

	"github.com/creachadair/chirp/peers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus/internal/registry"
	"nexus/internal/services"
)

// newLocalPair serves the full example registry over an in-memory peer pair
// and returns a connected client.
func newLocalPair(t *testing.T) (*Client, *peers.Local) {
	t.Helper()

	builder := registry.NewBuilder()
	require.NoError(t, builder.Register(services.NewBlockService()))
	require.NoError(t, builder.Register(services.NewVolumeService()))
	require.NoError(t, builder.Register(services.NewPoolService()))
	require.NoError(t, builder.Register(services.NewNetworkService()))
	reg := builder.Seal()

	loc := peers.NewLocal()
	t.Cleanup(func() { loc.Stop() })

	NewServer(reg).Bind(loc.A)
	return NewClient(loc.B), loc
}

func TestClient_ListServicesRoundTrip(t *testing.T) {
	client, _ := newLocalPair(t)

	catalog, err := client.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog.Services, 4)

	// Services arrive sorted by name.
	names := []string{}
	for _, svc := range catalog.Services {
		names = append(names, svc.Name)
	}
	assert.Equal(t, []string{"block", "network", "pool", "volume"}, names)

	// Every piece of metadata survives the wire intact.
	volume, ok := catalog.FindService("volume")
	require.True(t, ok)
	assert.Equal(t, "Manage logical volumes", volume.Description)

	create, ok := volume.FindCommand("create")
	require.True(t, ok)
	assert.Equal(t, "Create a new volume on the specified disk.", create.Description)
	require.Len(t, create.Args, 2)
	assert.Equal(t, "volume name", create.Args[0].Hint)
	assert.Equal(t, "device", create.Args[1].Hint)
	assert.Equal(t, "block.list", create.Args[1].Completer)
	assert.Equal(t, "Target block device", create.Args[1].Description)

	// Repeated calls within a session return identical catalogs.
	again, err := client.ListServices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog, again)
}

func TestClient_Execute(t *testing.T) {
	client, _ := newLocalPair(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		service     string
		action      string
		args        []string
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "successful execution",
			service:     "volume",
			action:      "create",
			args:        []string{"vol0", "sda"},
			wantSuccess: true,
			wantMessage: "Volume 'vol0' created on disk 'sda'",
		},
		{
			name:        "zero-arg completer command",
			service:     "block",
			action:      "list",
			wantSuccess: true,
			wantMessage: "sda, sdb, sdc, nvme0n1",
		},
		{
			name:        "unknown service",
			service:     "tape",
			action:      "list",
			wantSuccess: false,
			wantMessage: "unknown service 'tape'",
		},
		{
			name:        "unknown command",
			service:     "volume",
			action:      "resize",
			wantSuccess: false,
			wantMessage: "unknown command 'resize'",
		},
		{
			name:        "missing argument",
			service:     "volume",
			action:      "create",
			args:        []string{"vol0"},
			wantSuccess: false,
			wantMessage: "missing argument 'disk' (expected 2 args)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := client.Execute(ctx, tt.service, tt.action, tt.args)
			require.NoError(t, err, "application failures must not be transport errors")
			assert.Equal(t, tt.wantSuccess, result.Success)
			assert.Equal(t, tt.wantMessage, result.Message)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	client, loc := newLocalPair(t)
	loc.Stop()

	_, err := client.Execute(context.Background(), "volume", "list", nil)
	assert.Error(t, err)

	_, err = client.ListServices(context.Background())
	assert.Error(t, err)
}

func TestNetworkClassification(t *testing.T) {
	assert.Equal(t, "tcp", network("[::1]:7420"))
	assert.Equal(t, "tcp", network("localhost:7420"))
	assert.Equal(t, "unix", network("/tmp/nexus.sock"))
	assert.Equal(t, "unix", network(DefaultEndpoint))
}
