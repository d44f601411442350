package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App satisfies it; tests
// use a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Users(ctx context.Context) error
	UserAction(ctx context.Context, action string, ids []string) error
	Templates(ctx context.Context) error
	Template(ctx context.Context, id string) error
	Tags(ctx context.Context) error
	Forms(ctx context.Context, templateID string) error
	Comments(ctx context.Context, templateID string) error
	Comment(ctx context.Context, templateID, text string) error
	Like(ctx context.Context, templateID string) error
	Open(ctx context.Context, path string) error
}

var userActionCommands = map[string]string{
	"block":       actionBlock,
	"unblock":     actionUnblock,
	"makeadmin":   actionMakeAdmin,
	"makeuser":    actionMakeUser,
	"deleteusers": actionDelete,
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	Not logged in:
//	  help, register, login, open <path>, exit
//
//	Logged in:
//	  help, whoami, users, block|unblock|makeadmin|makeuser|deleteusers <ids...>,
//	  templates, template <id>, tags, forms <templateId>, comments <templateId>,
//	  comment <templateId> <text...>, like <templateId>, open <path>, logout, exit
//
// Command errors are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("forms %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, users, block, unblock, makeadmin, makeuser, deleteusers, templates, template, tags, forms, comments, comment, like, open, logout, exit")
			} else {
				printlnFn("Available commands: register, login, open, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)
		case "users":
			cmdErr = a.Users(ctx)
		case "block", "unblock", "makeadmin", "makeuser", "deleteusers":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <id> [id...]", cmd))
				continue
			}
			cmdErr = a.UserAction(ctx, userActionCommands[cmd], args)
		case "templates":
			cmdErr = a.Templates(ctx)
		case "template":
			if len(args) != 1 {
				printlnFn("Usage: template <id>")
				continue
			}
			cmdErr = a.Template(ctx, args[0])
		case "tags":
			cmdErr = a.Tags(ctx)
		case "forms":
			if len(args) != 1 {
				printlnFn("Usage: forms <templateId>")
				continue
			}
			cmdErr = a.Forms(ctx, args[0])
		case "comments":
			if len(args) != 1 {
				printlnFn("Usage: comments <templateId>")
				continue
			}
			cmdErr = a.Comments(ctx, args[0])
		case "comment":
			if len(args) < 2 {
				printlnFn("Usage: comment <templateId> <text>")
				continue
			}
			cmdErr = a.Comment(ctx, args[0], strings.Join(args[1:], " "))
		case "like":
			if len(args) != 1 {
				printlnFn("Usage: like <templateId>")
				continue
			}
			cmdErr = a.Like(ctx, args[0])
		case "open":
			if len(args) != 1 {
				printlnFn("Usage: open <path>")
				continue
			}
			cmdErr = a.Open(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr.Error())
		}
	}
}
