package completion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus/pkg/nexustypes"
)

func testCatalog() nexustypes.Catalog {
	return nexustypes.Catalog{
		Services: []nexustypes.ServiceSpec{
			{
				Name:        "block",
				Description: "Query block devices",
				Commands: []nexustypes.CommandSpec{
					{Name: "list"},
					{Name: "info", Args: []nexustypes.ArgSpec{{Name: "device"}}},
				},
			},
			{
				Name:        "volume",
				Description: "Manage logical volumes",
				Commands: []nexustypes.CommandSpec{
					{
						Name: "create",
						Args: []nexustypes.ArgSpec{
							{Name: "name", Hint: "volume name"},
							{Name: "disk", Hint: "device", Completer: "block.list"},
						},
					},
					{Name: "delete", Args: []nexustypes.ArgSpec{{Name: "name"}}},
					{Name: "list"},
				},
			},
		},
	}
}

// recordingFetcher captures completer calls and plays back a fixed message.
type recordingFetcher struct {
	service string
	action  string
	message string
	err     error
	calls   int
}

func (f *recordingFetcher) fetch(_ context.Context, service, action string) (string, error) {
	f.calls++
	f.service = service
	f.action = action
	return f.message, f.err
}

func TestComplete_ServiceNames(t *testing.T) {
	engine := NewEngine(testCatalog(), nil)

	tests := []struct {
		name       string
		line       string
		wantPrefix string
		wantCands  []string
	}{
		{
			name:      "empty line lists services then builtins",
			line:      "",
			wantCands: []string{"block", "volume", "exit", "help", "quit"},
		},
		{
			name:       "prefix filters services",
			line:       "vol",
			wantPrefix: "vol",
			wantCands:  []string{"volume"},
		},
		{
			name:       "prefix filters builtins too",
			line:       "qu",
			wantPrefix: "qu",
			wantCands:  []string{"quit"},
		},
		{
			name:       "no match",
			line:       "zfs",
			wantPrefix: "zfs",
			wantCands:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, cands := engine.Complete(tt.line)
			assert.Equal(t, tt.wantPrefix, prefix)
			assert.Equal(t, tt.wantCands, cands)
		})
	}
}

func TestComplete_HelpCompletesServiceNames(t *testing.T) {
	engine := NewEngine(testCatalog(), nil)

	prefix, cands := engine.Complete("help ")
	assert.Empty(t, prefix)
	assert.Equal(t, []string{"block", "volume"}, cands)

	prefix, cands = engine.Complete("help b")
	assert.Equal(t, "b", prefix)
	assert.Equal(t, []string{"block"}, cands)
}

func TestComplete_CommandNames(t *testing.T) {
	engine := NewEngine(testCatalog(), nil)

	tests := []struct {
		name       string
		line       string
		wantPrefix string
		wantCands  []string
	}{
		{
			name:      "fresh second token lists sorted commands",
			line:      "volume ",
			wantCands: []string{"create", "delete", "list"},
		},
		{
			name:       "prefix filters commands",
			line:       "volume cr",
			wantPrefix: "cr",
			wantCands:  []string{"create"},
		},
		{
			name:      "unknown service yields nothing",
			line:      "tape ",
			wantCands: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, cands := engine.Complete(tt.line)
			assert.Equal(t, tt.wantPrefix, prefix)
			assert.Equal(t, tt.wantCands, cands)
		})
	}
}

func TestComplete_RemoteCompleter(t *testing.T) {
	fetcher := &recordingFetcher{message: "sda, sdb , sdc,, nvme0n1"}
	engine := NewEngine(testCatalog(), fetcher.fetch)

	// Second argument of volume create carries completer "block.list".
	prefix, cands := engine.Complete("volume create myvol ")
	assert.Empty(t, prefix)
	assert.Equal(t, []string{"sda", "sdb", "sdc", "nvme0n1"}, cands, "server order preserved, entries trimmed, empties dropped")
	assert.Equal(t, "block", fetcher.service)
	assert.Equal(t, "list", fetcher.action)

	// A typed prefix filters the remote values.
	prefix, cands = engine.Complete("volume create myvol sd")
	assert.Equal(t, "sd", prefix)
	assert.Equal(t, []string{"sda", "sdb", "sdc"}, cands)
}

func TestComplete_RemoteCompleterFailure(t *testing.T) {
	fetcher := &recordingFetcher{err: errors.New("connection refused")}
	engine := NewEngine(testCatalog(), fetcher.fetch)

	prefix, cands := engine.Complete("volume create myvol ")
	assert.Empty(t, prefix)
	assert.Nil(t, cands, "an unreachable server yields no suggestions, not an error")
	assert.Equal(t, 1, fetcher.calls)
}

func TestComplete_ArgumentEdgeCases(t *testing.T) {
	fetcher := &recordingFetcher{message: "sda"}
	engine := NewEngine(testCatalog(), fetcher.fetch)

	tests := []struct {
		name string
		line string
	}{
		{name: "argument without completer", line: "volume create "},
		{name: "argument index out of range", line: "volume create myvol sda "},
		{name: "unknown command", line: "volume resize "},
		{name: "unknown service at argument position", line: "tape rewind "},
		{name: "nil fetcher engine", line: "volume delete "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cands := engine.Complete(tt.line)
			assert.Nil(t, cands)
		})
	}
	assert.Zero(t, fetcher.calls, "no completer call for non-completer positions")
}

func TestDo_ReadlineAdapter(t *testing.T) {
	engine := NewEngine(testCatalog(), nil)

	line := []rune("vol")
	suggestions, length := engine.Do(line, len(line))
	require.Len(t, suggestions, 1)
	assert.Equal(t, "ume", string(suggestions[0]))
	assert.Equal(t, 3, length)

	// Cursor mid-line completes against the sliced prefix only.
	line = []rune("vol extra")
	suggestions, length = engine.Do(line, 3)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "ume", string(suggestions[0]))
	assert.Equal(t, 3, length)
}
