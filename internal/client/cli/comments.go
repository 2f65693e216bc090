package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogcli/internal/client/api"
)

func (a *App) Comments(ctx context.Context, args []string) error {
	articleID, err := idArg(a.out, args, 0, "comments <articleID>")
	if err != nil {
		return err
	}
	page, err := a.api.Comments.List(ctx, articleID, api.CommentListParams{Page: 1, PageSize: 50})
	if err != nil {
		a.log.Error(ctx, "list comments failed", "article", articleID, "error", err)
		return err
	}
	printComments(a.out, page.Items, 0)
	return nil
}

// Comment posts a comment on an article, or a reply when a parent id is
// given.
func (a *App) Comment(ctx context.Context, args []string) error {
	const usage = "comment <articleID> [parentID]"
	articleID, err := idArg(a.out, args, 0, usage)
	if err != nil {
		return err
	}
	parentID, err := optionalID(a.out, args, 1, usage)
	if err != nil {
		return err
	}
	if !a.session.IsLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first (type 'login').")
		return ErrLoginRequired
	}

	text, err := getMultiline(a.reader, "Comment", a.out)
	if err != nil {
		return err
	}
	if text == "" {
		fmt.Fprintln(a.out, "Empty comment, nothing sent.")
		return errUsage
	}

	in := api.CommentInput{Content: text}
	if parentID != 0 {
		in.ParentID = &parentID
	}
	c, err := a.api.Comments.Create(ctx, articleID, in)
	if err != nil {
		a.log.Error(ctx, "create comment failed", "article", articleID, "error", err)
		return err
	}
	fmt.Fprintf(a.out, "Comment #%d posted\n", c.ID)
	return nil
}

func (a *App) Like(ctx context.Context, args []string) error {
	id, err := idArg(a.out, args, 0, "like <commentID>")
	if err != nil {
		return err
	}
	res, err := a.api.Comments.ToggleLike(ctx, id)
	if err != nil {
		a.log.Error(ctx, "toggle like failed", "comment", id, "error", err)
		return err
	}
	if res.IsLiked {
		fmt.Fprintf(a.out, "Liked comment #%d\n", id)
	} else {
		fmt.Fprintf(a.out, "Unliked comment #%d\n", id)
	}
	return nil
}

func (a *App) DeleteComment(ctx context.Context, args []string) error {
	id, err := idArg(a.out, args, 0, "delcomment <id>")
	if err != nil {
		return err
	}
	if !confirm(a.reader, fmt.Sprintf("Delete comment #%d?", id), a.out) {
		return nil
	}
	if err := a.api.Comments.Delete(ctx, id); err != nil {
		a.log.Error(ctx, "delete comment failed", "comment", id, "error", err)
		return err
	}
	fmt.Fprintf(a.out, "Comment #%d deleted\n", id)
	return nil
}
