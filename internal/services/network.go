package services

import (
	"context"
	"fmt"

	"nexus/pkg/nexustypes"
)

// NetworkService manages network interfaces.
type NetworkService struct{}

// NewNetworkService creates a new NetworkService instance.
func NewNetworkService() *NetworkService {
	return &NetworkService{}
}

// Name returns the service name "network" for dispatch.
func (s *NetworkService) Name() string {
	return "network"
}

// Description returns the human-readable service description.
func (s *NetworkService) Description() string {
	return "Manage network interfaces"
}

// Commands lists the commands this service supports. The interface arguments
// of up and down complete from this service's own list command.
func (s *NetworkService) Commands() []nexustypes.CommandSpec {
	return []nexustypes.CommandSpec{
		{
			Name:        "list",
			Description: "List all network interfaces.",
		},
		{
			Name: "up",
			Args: []nexustypes.ArgSpec{
				{Name: "interface", Completer: "network.list"},
			},
			Description: "Bring a network interface up.",
		},
		{
			Name: "down",
			Args: []nexustypes.ArgSpec{
				{Name: "interface", Completer: "network.list"},
			},
			Description: "Bring a network interface down.",
		},
	}
}

// Execute runs a network command by action name.
func (s *NetworkService) Execute(_ context.Context, action string, args []string) (string, error) {
	switch action {
	case "list":
		return "eth0, eth1, wlan0", nil
	case "up":
		return fmt.Sprintf("Interface '%s' is up", args[0]), nil
	case "down":
		return fmt.Sprintf("Interface '%s' is down", args[0]), nil
	default:
		return "", fmt.Errorf("unknown command '%s'", action)
	}
}
