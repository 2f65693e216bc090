package api

import (
	"context"

	"github.com/dmitrijs2005/blogcli/internal/client/transport"
)

type CommentsAPI struct {
	c *transport.Client
}

// List returns the comments of an article.
func (a *CommentsAPI) List(ctx context.Context, articleID uint64, params CommentListParams) (*Page[Comment], error) {
	p, err := transport.Get[Page[Comment]](ctx, a.c, idPath("/articles", articleID)+"/comments", params.Values())
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *CommentsAPI) Create(ctx context.Context, articleID uint64, in CommentInput) (*Comment, error) {
	cm, err := transport.Post[Comment](ctx, a.c, idPath("/articles", articleID)+"/comments", in)
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

func (a *CommentsAPI) Update(ctx context.Context, id uint64, content string) (*Comment, error) {
	cm, err := transport.Put[Comment](ctx, a.c, idPath("/comments", id), CommentInput{Content: content})
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

func (a *CommentsAPI) Delete(ctx context.Context, id uint64) error {
	return transport.Delete(ctx, a.c, idPath("/comments", id))
}

// ToggleLike flips the caller's like on a comment.
func (a *CommentsAPI) ToggleLike(ctx context.Context, id uint64) (*LikeResult, error) {
	res, err := transport.Post[LikeResult](ctx, a.c, idPath("/comments", id)+"/like", nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
