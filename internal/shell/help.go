package shell

import (
	"fmt"
	"strings"

	"nexus/pkg/nexustypes"
)

// renderHelp prints the full catalog: every service, its commands, argument
// placeholders, and descriptions.
func (s *Shell) renderHelp() {
	fmt.Fprintln(s.out, "Available commands:")
	for _, svc := range s.catalog.Services {
		if svc.Description == "" {
			fmt.Fprintf(s.out, "  %s:\n", svc.Name)
		} else {
			fmt.Fprintf(s.out, "  %s: %s\n", svc.Name, svc.Description)
		}
		for _, cmd := range svc.Commands {
			desc := ""
			if cmd.Description != "" {
				desc = " - " + cmd.Description
			}
			fmt.Fprintf(s.out, "    %s %s%s\n", cmd.Name, argPlaceholders(cmd), desc)
		}
	}
}

// renderServiceHelp prints one service's detail, including per-argument
// descriptions and completer sources.
func (s *Shell) renderServiceHelp(name string) {
	svc, ok := s.catalog.FindService(name)
	if !ok {
		fmt.Fprintf(s.out, "Unknown service '%s'. Type 'help' to list all services.\n", name)
		return
	}

	if svc.Description == "" {
		fmt.Fprintf(s.out, "%s:\n", svc.Name)
	} else {
		fmt.Fprintf(s.out, "%s: %s\n", svc.Name, svc.Description)
	}
	fmt.Fprintln(s.out)

	for _, cmd := range svc.Commands {
		fmt.Fprintf(s.out, "  %s %s\n", cmd.Name, argPlaceholders(cmd))
		if cmd.Description != "" {
			fmt.Fprintf(s.out, "    %s\n", cmd.Description)
		}
		for _, arg := range cmd.Args {
			if arg.Description == "" && arg.Completer == "" {
				continue
			}
			parts := []string{fmt.Sprintf("    <%s>", arg.Label())}
			if arg.Description != "" {
				parts = append(parts, arg.Description)
			}
			if arg.Completer != "" {
				parts = append(parts, fmt.Sprintf("(completions from %s)", arg.Completer))
			}
			fmt.Fprintln(s.out, strings.Join(parts, " - "))
		}
		fmt.Fprintln(s.out)
	}
}

// argPlaceholders renders a command's arguments as space-joined "<label>"
// placeholders.
func argPlaceholders(cmd nexustypes.CommandSpec) string {
	labels := make([]string, 0, len(cmd.Args))
	for _, arg := range cmd.Args {
		labels = append(labels, "<"+arg.Label()+">")
	}
	return strings.Join(labels, " ")
}
