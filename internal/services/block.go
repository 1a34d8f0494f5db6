// Package services contains the example services the nexus daemon registers.
// They are trivial stand-ins exercising the catalog, dispatch, and completer
// machinery; a real daemon would replace them with its own implementations.
package services

import (
	"context"
	"fmt"

	"nexus/pkg/nexustypes"
)

// BlockService exposes block device queries. Its list command doubles as a
// completer source for other services' device arguments.
type BlockService struct{}

// NewBlockService creates a new BlockService instance.
func NewBlockService() *BlockService {
	return &BlockService{}
}

// Name returns the service name "block" for dispatch.
func (s *BlockService) Name() string {
	return "block"
}

// Description returns the human-readable service description.
func (s *BlockService) Description() string {
	return "Query block devices"
}

// Commands lists the commands this service supports.
func (s *BlockService) Commands() []nexustypes.CommandSpec {
	return []nexustypes.CommandSpec{
		{
			Name:        "list",
			Description: "List all block devices.",
		},
		{
			Name:        "info",
			Args:        []nexustypes.ArgSpec{{Name: "device"}},
			Description: "Show info for a block device.",
		},
	}
}

// Execute runs a block command by action name.
func (s *BlockService) Execute(_ context.Context, action string, args []string) (string, error) {
	switch action {
	case "list":
		return "sda, sdb, sdc, nvme0n1", nil
	case "info":
		return fmt.Sprintf("Block device '%s': size=500G, type=SSD", args[0]), nil
	default:
		return "", fmt.Errorf("unknown command '%s'", action)
	}
}
