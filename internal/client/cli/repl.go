package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dkozlov/stylist/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	ShowCloset(ctx context.Context, slot string) error
	ShowOutfits(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	AddItem(ctx context.Context, path string, mode services.UploadMode) error
	RemoveItem(ctx context.Context, id string) error
	Discover(ctx context.Context) error
	Regenerate(ctx context.Context) error
	SaveOutfit(ctx context.Context) error
	CloseOutfit()
	RemoveOutfit(ctx context.Context, id string) error
	RenameOutfit(ctx context.Context, id, name string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the stylist CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help               — show available commands
//	  - signup             — create an account
//	  - login              — authenticate
//	  - exit | quit        — leave the program
//
//	Logged in:
//	  - help               — show available commands
//	  - closet [slot]      — show the closet tab, optionally filtered by slot
//	  - outfits            — show the saved-outfits tab
//	  - profile            — show the profile tab
//	  - additem <path>     — upload one item photo
//	  - addphoto <path>    — upload a full-outfit photo
//	  - rmitem <id>        — delete a closet item
//	  - discover           — generate an outfit
//	  - regen              — regenerate with the same filters
//	  - saveoutfit         — save the generated outfit
//	  - back               — close the outfit view
//	  - rmoutfit <id>      — delete a saved outfit
//	  - rename <id> [name] — rename a saved outfit (prompts when name omitted)
//	  - logout             — log out
//	  - exit | quit        — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("stylist> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: closet [slot], outfits, profile, additem <path>, addphoto <path>, rmitem <id>, discover, regen, saveoutfit, back, rmoutfit <id>, rename <id> [name], logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "closet":
			slot := ""
			if len(parts) > 1 {
				slot = parts[1]
			}
			_ = a.ShowCloset(ctx, slot)

		case "outfits":
			_ = a.ShowOutfits(ctx)

		case "profile":
			_ = a.ShowProfile(ctx)

		case "additem":
			if len(parts) < 2 {
				printlnFn("Usage: additem <path>")
				continue
			}
			_ = a.AddItem(ctx, parts[1], services.UploadSingle)

		case "addphoto":
			if len(parts) < 2 {
				printlnFn("Usage: addphoto <path>")
				continue
			}
			_ = a.AddItem(ctx, parts[1], services.UploadOutfitPhoto)

		case "rmitem":
			if len(parts) < 2 {
				printlnFn("Usage: rmitem <id>")
				continue
			}
			_ = a.RemoveItem(ctx, parts[1])

		case "discover":
			_ = a.Discover(ctx)

		case "regen":
			_ = a.Regenerate(ctx)

		case "saveoutfit":
			_ = a.SaveOutfit(ctx)

		case "back":
			a.CloseOutfit()

		case "rmoutfit":
			if len(parts) < 2 {
				printlnFn("Usage: rmoutfit <id>")
				continue
			}
			_ = a.RemoveOutfit(ctx, parts[1])

		case "rename":
			if len(parts) < 2 {
				printlnFn("Usage: rename <id> [name]")
				continue
			}
			name := strings.Join(parts[2:], " ")
			_ = a.RenameOutfit(ctx, parts[1], name)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
