// Package shell provides the interactive nexus shell: a readline loop with
// catalog-driven tab completion and inline hints, dispatching completed lines
// to the daemon over RPC. One line is read, fully resolved, and rendered
// before the next is read; the only overlap with the loop is the completer
// round trip, which runs on the bridge during keystroke handling.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"nexus/internal/bridge"
	"nexus/internal/completion"
	"nexus/internal/logger"
	"nexus/pkg/nexustypes"
)

// Executor issues commands to the daemon. Satisfied by *rpc.Client.
type Executor interface {
	Execute(ctx context.Context, service, action string, args []string) (nexustypes.ExecResult, error)
}

// Shell is one interactive session over a fetched catalog.
type Shell struct {
	catalog nexustypes.Catalog
	exec    Executor
	engine  *completion.Engine
	bridge  *bridge.Bridge
	out     io.Writer
	log     *log.Logger
	prompt  string
}

// New creates a shell over an already-fetched catalog. The catalog is cached
// read-only for the lifetime of the session; a changed server-side catalog is
// only observed on reconnect.
func New(catalog nexustypes.Catalog, exec Executor, out io.Writer) *Shell {
	s := &Shell{
		catalog: catalog,
		exec:    exec,
		bridge:  bridge.New(bridge.DefaultTimeout),
		out:     out,
		log:     logger.NewStyledLogger("Shell"),
		prompt:  "cli> ",
	}
	s.engine = completion.NewEngine(catalog, s.fetchCompletions)
	return s
}

// fetchCompletions runs a zero-argument completer command on the daemon. The
// completion callback is synchronous, so the call is handed to the bridge
// worker and awaited; a failed execution comes back as an error the engine
// swallows into "no suggestions".
func (s *Shell) fetchCompletions(_ context.Context, service, action string) (string, error) {
	return s.bridge.Do(func(ctx context.Context) (string, error) {
		result, err := s.exec.Execute(ctx, service, action, nil)
		if err != nil {
			return "", err
		}
		if !result.Success {
			return "", errors.New(result.Message)
		}
		return result.Message, nil
	})
}

// Run drives the interactive loop until quit, exit, or EOF.
func (s *Shell) Run() error {
	defer s.bridge.Close()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt,
		HistoryFile:     historyPath(),
		AutoComplete:    s.engine,
		Painter:         completion.NewHintPainter(s.engine),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("init readline: %w", err)
	}
	defer func() { _ = rl.Close() }()

	fmt.Fprintln(s.out, "Connected. Type 'help' for available commands, 'quit' to exit.")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if s.HandleLine(context.Background(), line) {
			return nil
		}
	}
}

// HandleLine processes one submitted line and reports whether the session
// should terminate. Application-level failures are rendered and never abort
// the loop.
func (s *Shell) HandleLine(ctx context.Context, line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if line == "quit" || line == "exit" {
		return true
	}

	parts := strings.Fields(line)

	if parts[0] == "help" {
		if len(parts) >= 2 {
			s.renderServiceHelp(parts[1])
		} else {
			s.renderHelp()
		}
		return false
	}

	if len(parts) < 2 {
		fmt.Fprintln(s.out, "Usage: <service> <command> [args...]")
		return false
	}

	service, action, args := parts[0], parts[1], parts[2:]
	result, err := s.exec.Execute(ctx, service, action, args)
	if err != nil {
		// Transport failure; the session is not recoverable.
		s.log.Error("Execute failed", "service", service, "action", action, "error", err)
		fmt.Fprintf(s.out, "Error: %s\n", err)
		return true
	}

	if result.Success {
		fmt.Fprintln(s.out, result.Message)
	} else {
		fmt.Fprintf(s.out, "Error: %s\n", result.Message)
	}
	return false
}

// historyPath returns the readline history location, or empty (history
// disabled) when the home directory cannot be resolved.
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nexus_history")
}
