package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/blogcli/internal/client/api"
	"github.com/dmitrijs2005/blogcli/internal/client/router"
)

func (a *App) Categories(ctx context.Context) error {
	if _, err := a.enter(ctx, "/categories", router.CategoryList); err != nil {
		return err
	}
	cats, err := a.api.Categories.List(ctx, api.CategoryListParams{Tree: true})
	if err != nil {
		a.log.Error(ctx, "list categories failed", "error", err)
		return err
	}
	printCategories(a.out, cats, 0)
	return nil
}

// Category shows one category, looked up by numeric id or by slug.
func (a *App) Category(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: category <id|slug>")
		return errUsage
	}

	var (
		c   *api.Category
		err error
	)
	if id, perr := strconv.ParseUint(args[0], 10, 64); perr == nil {
		c, err = a.api.Categories.Get(ctx, id)
	} else {
		c, err = a.api.Categories.GetBySlug(ctx, args[0])
	}
	if err != nil {
		a.log.Error(ctx, "get category failed", "key", args[0], "error", err)
		return err
	}
	printCategory(a.out, c)
	return nil
}

func (a *App) Tags(ctx context.Context) error {
	if _, err := a.enter(ctx, "/tags", router.TagList); err != nil {
		return err
	}
	tags, err := a.api.Tags.List(ctx, api.TagListParams{Sort: "article_count", Order: "desc"})
	if err != nil {
		a.log.Error(ctx, "list tags failed", "error", err)
		return err
	}
	printTags(a.out, tags)
	return nil
}

func (a *App) Tag(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: tag <id|slug>")
		return errUsage
	}

	var (
		t   *api.Tag
		err error
	)
	if id, perr := strconv.ParseUint(args[0], 10, 64); perr == nil {
		t, err = a.api.Tags.Get(ctx, id)
	} else {
		t, err = a.api.Tags.GetBySlug(ctx, args[0])
	}
	if err != nil {
		a.log.Error(ctx, "get tag failed", "key", args[0], "error", err)
		return err
	}
	printTags(a.out, []api.Tag{*t})
	return nil
}
