package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	Status(ctx context.Context) error
	Go(ctx context.Context, args []string) error
	Back(ctx context.Context) error
	Forward(ctx context.Context) error
	Articles(ctx context.Context, args []string) error
	Article(ctx context.Context, args []string) error
	NewArticle(ctx context.Context) error
	EditArticle(ctx context.Context, args []string) error
	DeleteArticle(ctx context.Context, args []string) error
	Categories(ctx context.Context) error
	Category(ctx context.Context, args []string) error
	Tags(ctx context.Context) error
	Tag(ctx context.Context, args []string) error
	Comments(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	DeleteComment(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
}

const (
	helpGuest = "Available commands: register, login, status, go <path>, back, forward, " +
		"articles [page], article <id>, newarticle, categories, category <id|slug>, " +
		"tags, tag <id|slug>, comments <articleID>, exit"
	helpUser = "Available commands: me, status, logout, go <path>, back, forward, " +
		"articles [page], article <id>, newarticle, editarticle <id>, delarticle <id>, " +
		"categories, category <id|slug>, tags, tag <id|slug>, comments <articleID>, " +
		"comment <articleID> [parentID], like <commentID>, delcomment <id>, upload <file>, exit"
)

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers log their
// own errors, and request failures were already shown by the notifier.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "blog %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, helpUser)
			} else {
				fmt.Fprintln(out, helpGuest)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "me":
			_ = a.Me(ctx)
		case "status":
			_ = a.Status(ctx)

		case "go":
			_ = a.Go(ctx, args)
		case "back":
			_ = a.Back(ctx)
		case "forward":
			_ = a.Forward(ctx)

		case "articles", "l":
			_ = a.Articles(ctx, args)
		case "article":
			_ = a.Article(ctx, args)
		case "newarticle":
			_ = a.NewArticle(ctx)
		case "editarticle":
			_ = a.EditArticle(ctx, args)
		case "delarticle":
			_ = a.DeleteArticle(ctx, args)

		case "categories":
			_ = a.Categories(ctx)
		case "category":
			_ = a.Category(ctx, args)
		case "tags":
			_ = a.Tags(ctx)
		case "tag":
			_ = a.Tag(ctx, args)

		case "comments":
			_ = a.Comments(ctx, args)
		case "comment":
			_ = a.Comment(ctx, args)
		case "like":
			_ = a.Like(ctx, args)
		case "delcomment":
			_ = a.DeleteComment(ctx, args)

		case "upload":
			_ = a.Upload(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
