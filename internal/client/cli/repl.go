package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Select(ctx context.Context, path string) error
	Upload(ctx context.Context, release string) error
	Releases(ctx context.Context) error
	History(ctx context.Context) error
	Status(ctx context.Context) error
}

func newScanner(r io.Reader) *bufio.Scanner {
	return bufio.NewScanner(r)
}

// runREPL starts a simple read–eval–print loop for the releasedrop CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands
//
//	help               show available commands
//	select <path>      choose the file to upload (paths may contain spaces)
//	upload [release]   upload the selected file, prompting for the password
//	releases           list the releases a password may upload to
//	history            show recent uploads
//	status             show the upload state and the selected file
//	exit | quit        leave the program
//
// Errors returned by command handlers are ignored here; the handlers and the
// presenter report them to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rd %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		rest := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		switch cmd {
		case "help":
			printlnFn("Available commands: select <path>, upload [release], releases, history, status, exit")

		case "select":
			if rest == "" {
				printlnFn("Usage: select <path>")
				continue
			}
			_ = a.Select(ctx, rest)

		case "upload":
			release := ""
			if len(parts) > 1 {
				release = parts[1]
			}
			_ = a.Upload(ctx, release)

		case "releases":
			_ = a.Releases(ctx)

		case "history":
			_ = a.History(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
