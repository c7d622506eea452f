package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// execIface is the command surface the REPL dispatches to. *App satisfies it;
// tests use a lightweight stub.
type execIface interface {
	Help() string
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Go(ctx context.Context, target string) error
	Back(ctx context.Context) error
	Classify(ctx context.Context, text string) error
	Logs(ctx context.Context) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	SetLimit(ctx context.Context, arg string) error
	SetSort(ctx context.Context, key, dir string) error
	Systems(ctx context.Context) error
	AddSystem(ctx context.Context, name string) error
	DeleteSystem(ctx context.Context, name string) error
	Refresh(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL reads commands from in until EOF, "exit" or "quit" and dispatches
// them to a. The prompt shows statusFn(). Prompts, usage hints and help go
// through say, which must write to the same stream as a.
//
// Handlers report their own failures to the operator; the errors they
// return are ignored here so one failed command never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader, say func(args ...any)) {
	for {
		if ctx.Err() != nil {
			return
		}
		say(fmt.Sprintf("llmpid %s> ", statusFn()))
		line, err := readLine(in)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		rest := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		switch cmd {
		case "help", "?":
			say(a.Help())

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "go":
			if len(args) != 1 {
				say("Usage: go <dashboard|systems|change|login>")
				continue
			}
			_ = a.Go(ctx, args[0])

		case "back":
			_ = a.Back(ctx)

		case "classify":
			_ = a.Classify(ctx, rest)

		case "logs", "l":
			_ = a.Logs(ctx)

		case "next", "n":
			_ = a.NextPage(ctx)

		case "prev", "p":
			_ = a.PrevPage(ctx)

		case "limit":
			if len(args) != 1 {
				say("Usage: limit <n>")
				continue
			}
			_ = a.SetLimit(ctx, args[0])

		case "sort":
			if len(args) != 2 {
				say("Usage: sort <time|source> <asc|desc>")
				continue
			}
			_ = a.SetSort(ctx, args[0], args[1])

		case "systems":
			_ = a.Systems(ctx)

		case "addsystem":
			_ = a.AddSystem(ctx, rest)

		case "delsystem":
			if rest == "" {
				say("Usage: delsystem <name>")
				continue
			}
			_ = a.DeleteSystem(ctx, rest)

		case "refresh":
			_ = a.Refresh(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			say("Bye!")
			return

		default:
			say("Unknown command:", cmd)
		}
	}
}
