// Package api maps each blog resource operation to one HTTP verb and path
// on the transport pipeline. Functions return the unwrapped envelope data;
// errors come straight from transport and are already shown to the user.
package api

import (
	"fmt"

	"github.com/dmitrijs2005/blogcli/internal/client/transport"
)

// API groups the resource modules over one pipeline.
type API struct {
	Auth       *AuthAPI
	Articles   *ArticlesAPI
	Categories *CategoriesAPI
	Tags       *TagsAPI
	Comments   *CommentsAPI
	Files      *FilesAPI
}

func New(c *transport.Client) *API {
	return &API{
		Auth:       &AuthAPI{c: c},
		Articles:   &ArticlesAPI{c: c},
		Categories: &CategoriesAPI{c: c},
		Tags:       &TagsAPI{c: c},
		Comments:   &CommentsAPI{c: c},
		Files:      &FilesAPI{c: c},
	}
}

func idPath(prefix string, id uint64) string {
	return fmt.Sprintf("%s/%d", prefix, id)
}
