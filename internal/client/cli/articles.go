package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/blogcli/internal/client/api"
	"github.com/dmitrijs2005/blogcli/internal/client/router"
)

const articlesPageSize = 10

// Articles shows the home page: the published article list.
func (a *App) Articles(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintln(a.out, "Usage: articles [page]")
			return errUsage
		}
		page = n
	}

	if _, err := a.enter(ctx, router.HomePath, router.Home); err != nil {
		return err
	}

	res, err := a.api.Articles.List(ctx, api.ArticleListParams{Page: page, PageSize: articlesPageSize, Status: "published"})
	if err != nil {
		a.log.Error(ctx, "list articles failed", "page", page, "error", err)
		return err
	}
	printArticles(a.out, res)
	return nil
}

func (a *App) Article(ctx context.Context, args []string) error {
	id, err := idArg(a.out, args, 0, "article <id>")
	if err != nil {
		return err
	}
	path, err := a.router.PathFor(router.ArticleDetail, "id", strconv.FormatUint(id, 10))
	if err != nil {
		return err
	}
	if ok, err := a.enter(ctx, path, router.ArticleDetail); !ok {
		return err
	}

	art, err := a.api.Articles.Get(ctx, id)
	if err != nil {
		a.log.Error(ctx, "get article failed", "id", id, "error", err)
		return err
	}
	printArticle(a.out, art)
	return nil
}

// NewArticle opens the editor page, which requires a session, and posts
// the article typed in by the user.
func (a *App) NewArticle(ctx context.Context) error {
	if ok, err := a.enter(ctx, "/article/new", router.ArticleCreate); !ok {
		return err
	}

	in, err := a.readArticle(api.ArticleInput{})
	if err != nil {
		return err
	}
	if in.Title == "" || in.Content == "" {
		fmt.Fprintln(a.out, "Title and content are required.")
		return errUsage
	}

	art, err := a.api.Articles.Create(ctx, in)
	if err != nil {
		a.log.Error(ctx, "create article failed", "error", err)
		return err
	}
	fmt.Fprintf(a.out, "Article #%d created\n", art.ID)

	path, err := a.router.PathFor(router.ArticleDetail, "id", strconv.FormatUint(art.ID, 10))
	if err != nil {
		return err
	}
	return a.router.Replace(path)
}

// EditArticle updates an article. Empty answers are left out of the
// request (ArticleInput fields are omitempty), so the server keeps the
// current value; a field cannot be cleared from here.
func (a *App) EditArticle(ctx context.Context, args []string) error {
	id, err := idArg(a.out, args, 0, "editarticle <id>")
	if err != nil {
		return err
	}
	if !a.session.IsLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first (type 'login').")
		return ErrLoginRequired
	}

	in, err := a.readArticle(api.ArticleInput{})
	if err != nil {
		return err
	}

	art, err := a.api.Articles.Update(ctx, id, in)
	if err != nil {
		a.log.Error(ctx, "update article failed", "id", id, "error", err)
		return err
	}
	fmt.Fprintf(a.out, "Article #%d updated\n", art.ID)
	return nil
}

func (a *App) DeleteArticle(ctx context.Context, args []string) error {
	id, err := idArg(a.out, args, 0, "delarticle <id>")
	if err != nil {
		return err
	}
	if !a.session.IsLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first (type 'login').")
		return ErrLoginRequired
	}
	if !confirm(a.reader, fmt.Sprintf("Delete article #%d?", id), a.out) {
		return nil
	}

	if err := a.api.Articles.Delete(ctx, id); err != nil {
		a.log.Error(ctx, "delete article failed", "id", id, "error", err)
		return err
	}
	fmt.Fprintf(a.out, "Article #%d deleted\n", id)
	return nil
}

// readArticle prompts for the editable fields of an article.
func (a *App) readArticle(in api.ArticleInput) (api.ArticleInput, error) {
	var err error
	if in.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return in, err
	}
	if in.Summary, err = getSimpleText(a.reader, "Summary (optional)", a.out); err != nil {
		return in, err
	}
	if in.Content, err = getMultiline(a.reader, "Content (markdown)", a.out); err != nil {
		return in, err
	}

	cats, err := getSimpleText(a.reader, "Category ids, comma separated (optional)", a.out)
	if err != nil {
		return in, err
	}
	if in.CategoryIDs, err = parseIDList(cats); err != nil {
		fmt.Fprintln(a.out, err)
		return in, errUsage
	}

	tags, err := getSimpleText(a.reader, "Tag ids, comma separated (optional)", a.out)
	if err != nil {
		return in, err
	}
	if in.TagIDs, err = parseIDList(tags); err != nil {
		fmt.Fprintln(a.out, err)
		return in, errUsage
	}

	status, err := getSimpleText(a.reader, "Status: draft or published (optional)", a.out)
	if err != nil {
		return in, err
	}
	in.Status = strings.ToLower(status)
	return in, nil
}

func parseIDList(s string) ([]uint64, error) {
	var ids []uint64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		id, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", f)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
