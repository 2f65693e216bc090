package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/blogcli/internal/client/api"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printUser(w io.Writer, u *api.User) {
	fmt.Fprintf(w, "#%d %s", u.ID, u.Username)
	if u.Nickname != "" {
		fmt.Fprintf(w, " (%s)", u.Nickname)
	}
	fmt.Fprintf(w, " role=%s\n", u.Role)
	if u.Bio != "" {
		fmt.Fprintln(w, u.Bio)
	}
}

func printArticles(w io.Writer, p *api.Page[api.Article]) {
	if len(p.Items) == 0 {
		fmt.Fprintln(w, "No articles.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tVIEWS\tCOMMENTS")
	for _, art := range p.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", art.ID, art.Title, art.Author.Username, art.ViewCount, art.CommentCount)
	}
	_ = tw.Flush()
	pg := p.Pagination
	fmt.Fprintf(w, "page %d/%d, %d total\n", pg.Page, pg.TotalPages, pg.Total)
}

func printArticle(w io.Writer, art *api.Article) {
	fmt.Fprintf(w, "#%d %s\n", art.ID, art.Title)
	fmt.Fprintf(w, "by %s, %s, %d views, %d likes\n", art.Author.Username, art.Status, art.ViewCount, art.LikeCount)
	if len(art.Categories) > 0 {
		names := make([]string, 0, len(art.Categories))
		for _, c := range art.Categories {
			names = append(names, c.Name)
		}
		fmt.Fprintln(w, "categories:", strings.Join(names, ", "))
	}
	if len(art.Tags) > 0 {
		names := make([]string, 0, len(art.Tags))
		for _, t := range art.Tags {
			names = append(names, "#"+t.Name)
		}
		fmt.Fprintln(w, "tags:", strings.Join(names, " "))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, art.Content)
}

func printCategories(w io.Writer, cats []api.Category, depth int) {
	if depth == 0 && len(cats) == 0 {
		fmt.Fprintln(w, "No categories.")
		return
	}
	for _, c := range cats {
		fmt.Fprintf(w, "%s#%d %s (%s)\n", strings.Repeat("  ", depth), c.ID, c.Name, c.Slug)
		printCategories(w, c.Children, depth+1)
	}
}

func printCategory(w io.Writer, c *api.Category) {
	fmt.Fprintf(w, "#%d %s (%s)\n", c.ID, c.Name, c.Slug)
	if c.Description != "" {
		fmt.Fprintln(w, c.Description)
	}
	if c.ArticleCount != nil {
		fmt.Fprintf(w, "%d articles\n", *c.ArticleCount)
	}
}

func printTags(w io.Writer, tags []api.Tag) {
	if len(tags) == 0 {
		fmt.Fprintln(w, "No tags.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tSLUG\tARTICLES")
	for _, t := range tags {
		count := "-"
		if t.ArticleCount != nil {
			count = fmt.Sprint(*t.ArticleCount)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", t.ID, t.Name, t.Slug, count)
	}
	_ = tw.Flush()
}

func printComments(w io.Writer, comments []api.Comment, depth int) {
	if depth == 0 && len(comments) == 0 {
		fmt.Fprintln(w, "No comments.")
		return
	}
	indent := strings.Repeat("  ", depth)
	for _, c := range comments {
		fmt.Fprintf(w, "%s#%d %s (%d likes): %s\n", indent, c.ID, c.User.Username, c.LikeCount, c.Content)
		printComments(w, c.Replies, depth+1)
	}
}
