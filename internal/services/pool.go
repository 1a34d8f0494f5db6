package services

import (
	"context"
	"fmt"

	"nexus/pkg/nexustypes"
)

// PoolService manages storage pools.
type PoolService struct{}

// NewPoolService creates a new PoolService instance.
func NewPoolService() *PoolService {
	return &PoolService{}
}

// Name returns the service name "pool" for dispatch.
func (s *PoolService) Name() string {
	return "pool"
}

// Description returns the human-readable service description.
func (s *PoolService) Description() string {
	return "Manage storage pools"
}

// Commands lists the commands this service supports.
func (s *PoolService) Commands() []nexustypes.CommandSpec {
	return []nexustypes.CommandSpec{
		{
			Name:        "create",
			Args:        []nexustypes.ArgSpec{{Name: "name"}},
			Description: "Create a new storage pool.",
		},
		{
			Name:        "destroy",
			Args:        []nexustypes.ArgSpec{{Name: "name"}},
			Description: "Destroy a storage pool.",
		},
	}
}

// Execute runs a pool command by action name.
func (s *PoolService) Execute(_ context.Context, action string, args []string) (string, error) {
	switch action {
	case "create":
		return fmt.Sprintf("Pool '%s' created", args[0]), nil
	case "destroy":
		return fmt.Sprintf("Pool '%s' destroyed", args[0]), nil
	default:
		return "", fmt.Errorf("unknown command '%s'", action)
	}
}
