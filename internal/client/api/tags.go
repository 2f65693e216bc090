package api

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/blogcli/internal/client/transport"
)

type TagsAPI struct {
	c *transport.Client
}

func (a *TagsAPI) List(ctx context.Context, params TagListParams) ([]Tag, error) {
	return transport.Get[[]Tag](ctx, a.c, "/tags", params.Values())
}

func (a *TagsAPI) Get(ctx context.Context, id uint64) (*Tag, error) {
	tag, err := transport.Get[Tag](ctx, a.c, idPath("/tags", id), nil)
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (a *TagsAPI) GetBySlug(ctx context.Context, slug string) (*Tag, error) {
	tag, err := transport.Get[Tag](ctx, a.c, "/tags/slug/"+url.PathEscape(slug), nil)
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (a *TagsAPI) Create(ctx context.Context, in TagInput) (*Tag, error) {
	tag, err := transport.Post[Tag](ctx, a.c, "/tags", in)
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (a *TagsAPI) Update(ctx context.Context, id uint64, in TagInput) (*Tag, error) {
	tag, err := transport.Put[Tag](ctx, a.c, idPath("/tags", id), in)
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (a *TagsAPI) Delete(ctx context.Context, id uint64) error {
	return transport.Delete(ctx, a.c, idPath("/tags", id))
}
