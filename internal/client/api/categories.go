package api

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/blogcli/internal/client/transport"
)

type CategoriesAPI struct {
	c *transport.Client
}

func (a *CategoriesAPI) List(ctx context.Context, params CategoryListParams) ([]Category, error) {
	return transport.Get[[]Category](ctx, a.c, "/categories", params.Values())
}

func (a *CategoriesAPI) Get(ctx context.Context, id uint64) (*Category, error) {
	cat, err := transport.Get[Category](ctx, a.c, idPath("/categories", id), nil)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (a *CategoriesAPI) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	cat, err := transport.Get[Category](ctx, a.c, "/categories/slug/"+url.PathEscape(slug), nil)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (a *CategoriesAPI) Create(ctx context.Context, in CategoryInput) (*Category, error) {
	cat, err := transport.Post[Category](ctx, a.c, "/categories", in)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (a *CategoriesAPI) Update(ctx context.Context, id uint64, in CategoryInput) (*Category, error) {
	cat, err := transport.Put[Category](ctx, a.c, idPath("/categories", id), in)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (a *CategoriesAPI) Delete(ctx context.Context, id uint64) error {
	return transport.Delete(ctx, a.c, idPath("/categories", id))
}
