// Package completion turns a partially-typed input line into tab-completion
// candidates and inline argument hints, driven by the catalog fetched at
// session start. Service and command completion is answered locally from the
// cached catalog; argument completion may require executing the argument's
// completer command on the daemon, which callers supply as a Fetcher.
package completion

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"nexus/internal/logger"
	"nexus/pkg/nexustypes"
)

// Builtin verbs handled entirely client-side. Completed alongside service
// names at the first token position, never sent over the wire.
var builtins = []string{"exit", "help", "quit"}

// Fetcher executes a zero-argument command remotely and returns its message.
// The completion engine treats any error as "no suggestions".
type Fetcher func(ctx context.Context, service, action string) (string, error)

type argKey struct {
	service string
	command string
}

// Engine answers completion and hint queries against one immutable catalog.
// It holds no per-keystroke state; every query is computed from scratch.
type Engine struct {
	commands map[string][]string
	args     map[argKey][]nexustypes.ArgSpec
	fetch    Fetcher
}

// NewEngine indexes a catalog for completion. fetch may be nil, in which case
// arguments with completer references simply produce no candidates.
func NewEngine(catalog nexustypes.Catalog, fetch Fetcher) *Engine {
	commands := make(map[string][]string, len(catalog.Services))
	args := make(map[argKey][]nexustypes.ArgSpec)
	for _, svc := range catalog.Services {
		names := make([]string, 0, len(svc.Commands))
		for _, cmd := range svc.Commands {
			names = append(names, cmd.Name)
			args[argKey{service: svc.Name, command: cmd.Name}] = cmd.Args
		}
		sort.Strings(names)
		commands[svc.Name] = names
	}
	return &Engine{
		commands: commands,
		args:     args,
		fetch:    fetch,
	}
}

// Complete computes candidates for the token under the cursor. The given line
// must already be cut at the cursor position. It returns the partially-typed
// prefix being replaced (empty when the cursor sits on a fresh token) and the
// candidate list; accepting a candidate replaces exactly the prefix.
func (e *Engine) Complete(line string) (prefix string, candidates []string) {
	parts := strings.Fields(line)
	trailing := endsInSpace(line)

	// Still typing the first word (or empty line): service names + builtins.
	if len(parts) == 0 || (len(parts) == 1 && !trailing) {
		if len(parts) == 1 {
			prefix = parts[0]
		}
		candidates = e.serviceNames(prefix)
		candidates = append(candidates, filterPrefix(builtins, prefix)...)
		return prefix, candidates
	}

	// Second word after "help": service names only.
	if (len(parts) == 1 || (len(parts) == 2 && !trailing)) && parts[0] == "help" {
		if len(parts) == 2 {
			prefix = parts[1]
		}
		return prefix, e.serviceNames(prefix)
	}

	// Second word: command names for the given service.
	if len(parts) == 1 || (len(parts) == 2 && !trailing) {
		if len(parts) == 2 {
			prefix = parts[1]
		}
		if cmds, ok := e.commands[parts[0]]; ok {
			return prefix, filterPrefix(cmds, prefix)
		}
	}

	// Argument position: run the declared completer, if any.
	if len(parts) >= 2 {
		specs, ok := e.args[argKey{service: parts[0], command: parts[1]}]
		if !ok {
			return "", nil
		}

		argIndex := len(parts) - 2
		if !trailing {
			argIndex = len(parts) - 3
			prefix = parts[len(parts)-1]
		}
		if argIndex < 0 || argIndex >= len(specs) {
			return "", nil
		}

		spec := specs[argIndex]
		if spec.Completer == "" {
			return "", nil
		}
		// Server order is preserved; no sort on remote candidates.
		return prefix, filterPrefix(e.remoteCandidates(spec.Completer), prefix)
	}

	return "", nil
}

// Do implements the readline.AutoCompleter interface. Candidates come back as
// the suffixes to append after the current word, paired with its rune length.
func (e *Engine) Do(line []rune, pos int) (newLine [][]rune, length int) {
	if pos > len(line) {
		pos = len(line)
	}
	prefix, candidates := e.Complete(string(line[:pos]))

	var suggestions [][]rune
	for _, candidate := range candidates {
		suggestions = append(suggestions, []rune(strings.TrimPrefix(candidate, prefix)))
	}
	return suggestions, len([]rune(prefix))
}

// remoteCandidates executes a "service.command" completer reference and
// parses its message as a comma-separated candidate list. Any failure (bad
// reference, transport error, timeout) degrades to no suggestions; a broken
// completer must never crash the shell.
func (e *Engine) remoteCandidates(ref string) []string {
	service, action, ok := strings.Cut(ref, ".")
	if !ok || e.fetch == nil {
		return nil
	}

	logger.CompleterCall(ref)
	message, err := e.fetch(context.Background(), service, action)
	if err != nil {
		logger.Debug("Completer failed", "completer", ref, "error", err)
		return nil
	}

	var values []string
	for _, field := range strings.Split(message, ",") {
		if v := strings.TrimSpace(field); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func (e *Engine) serviceNames(prefix string) []string {
	var names []string
	for name := range e.commands {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func filterPrefix(values []string, prefix string) []string {
	var out []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			out = append(out, v)
		}
	}
	return out
}

func endsInSpace(line string) bool {
	runes := []rune(line)
	return len(runes) > 0 && unicode.IsSpace(runes[len(runes)-1])
}
