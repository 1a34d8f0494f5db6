package nexustypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgSpec_Label(t *testing.T) {
	tests := []struct {
		name     string
		arg      ArgSpec
		expected string
	}{
		{
			name:     "hint takes precedence",
			arg:      ArgSpec{Name: "disk", Hint: "device"},
			expected: "device",
		},
		{
			name:     "falls back to name",
			arg:      ArgSpec{Name: "disk"},
			expected: "disk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.arg.Label())
		})
	}
}

func TestCatalog_FindService(t *testing.T) {
	catalog := Catalog{
		Services: []ServiceSpec{
			{Name: "block"},
			{Name: "volume"},
		},
	}

	svc, ok := catalog.FindService("volume")
	assert.True(t, ok)
	assert.Equal(t, "volume", svc.Name)

	_, ok = catalog.FindService("missing")
	assert.False(t, ok)
}

func TestServiceSpec_FindCommand(t *testing.T) {
	svc := ServiceSpec{
		Name: "volume",
		Commands: []CommandSpec{
			{Name: "create", Args: []ArgSpec{{Name: "name"}, {Name: "disk"}}},
			{Name: "delete"},
		},
	}

	cmd, ok := svc.FindCommand("create")
	assert.True(t, ok)
	assert.Len(t, cmd.Args, 2)

	_, ok = svc.FindCommand("resize")
	assert.False(t, ok)
}
