package services

import (
	"context"
	"fmt"

	"nexus/pkg/nexustypes"
)

// VolumeService manages logical volumes.
type VolumeService struct{}

// NewVolumeService creates a new VolumeService instance.
func NewVolumeService() *VolumeService {
	return &VolumeService{}
}

// Name returns the service name "volume" for dispatch.
func (s *VolumeService) Name() string {
	return "volume"
}

// Description returns the human-readable service description.
func (s *VolumeService) Description() string {
	return "Manage logical volumes"
}

// Commands lists the commands this service supports. The disk argument of
// create completes from the block service's device listing.
func (s *VolumeService) Commands() []nexustypes.CommandSpec {
	return []nexustypes.CommandSpec{
		{
			Name: "create",
			Args: []nexustypes.ArgSpec{
				{Name: "name", Hint: "volume name"},
				{Name: "disk", Hint: "device", Completer: "block.list", Description: "Target block device"},
			},
			Description: "Create a new volume on the specified disk.",
		},
		{
			Name:        "delete",
			Args:        []nexustypes.ArgSpec{{Name: "name"}},
			Description: "Delete an existing volume.",
		},
		{
			Name:        "list",
			Description: "List all volumes.",
		},
	}
}

// Execute runs a volume command by action name.
func (s *VolumeService) Execute(_ context.Context, action string, args []string) (string, error) {
	switch action {
	case "create":
		return fmt.Sprintf("Volume '%s' created on disk '%s'", args[0], args[1]), nil
	case "delete":
		return fmt.Sprintf("Volume '%s' deleted", args[0]), nil
	case "list":
		return "vol0, vol1, vol2", nil
	default:
		return "", fmt.Errorf("unknown command '%s'", action)
	}
}
