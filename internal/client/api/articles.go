package api

import (
	"context"

	"github.com/dmitrijs2005/blogcli/internal/client/transport"
)

type ArticlesAPI struct {
	c *transport.Client
}

func (a *ArticlesAPI) List(ctx context.Context, params ArticleListParams) (*Page[Article], error) {
	p, err := transport.Get[Page[Article]](ctx, a.c, "/articles", params.Values())
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *ArticlesAPI) Get(ctx context.Context, id uint64) (*Article, error) {
	art, err := transport.Get[Article](ctx, a.c, idPath("/articles", id), nil)
	if err != nil {
		return nil, err
	}
	return &art, nil
}

func (a *ArticlesAPI) Create(ctx context.Context, in ArticleInput) (*Article, error) {
	art, err := transport.Post[Article](ctx, a.c, "/articles", in)
	if err != nil {
		return nil, err
	}
	return &art, nil
}

func (a *ArticlesAPI) Update(ctx context.Context, id uint64, in ArticleInput) (*Article, error) {
	art, err := transport.Put[Article](ctx, a.c, idPath("/articles", id), in)
	if err != nil {
		return nil, err
	}
	return &art, nil
}

func (a *ArticlesAPI) Delete(ctx context.Context, id uint64) error {
	return transport.Delete(ctx, a.c, idPath("/articles", id))
}
