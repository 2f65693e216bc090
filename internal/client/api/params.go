package api

import (
	"net/url"
	"strconv"
)

type ArticleListParams struct {
	Page       int
	PageSize   int
	CategoryID uint64
	TagID      uint64
	AuthorID   uint64
	Status     string
	Keyword    string
	Sort       string
	Order      string
}

// Values encodes the non-zero fields as query parameters.
func (p ArticleListParams) Values() url.Values {
	v := url.Values{}
	setInt(v, "page", int64(p.Page))
	setInt(v, "page_size", int64(p.PageSize))
	setUint(v, "category_id", p.CategoryID)
	setUint(v, "tag_id", p.TagID)
	setUint(v, "author_id", p.AuthorID)
	setString(v, "status", p.Status)
	setString(v, "keyword", p.Keyword)
	setString(v, "sort", p.Sort)
	setString(v, "order", p.Order)
	return v
}

type CategoryListParams struct {
	ParentID *uint64
	IsActive *bool
	Tree     bool
}

func (p CategoryListParams) Values() url.Values {
	v := url.Values{}
	if p.ParentID != nil {
		v.Set("parent_id", strconv.FormatUint(*p.ParentID, 10))
	}
	if p.IsActive != nil {
		v.Set("is_active", strconv.FormatBool(*p.IsActive))
	}
	if p.Tree {
		v.Set("tree", "true")
	}
	return v
}

type TagListParams struct {
	Keyword string
	Sort    string
	Order   string
	Limit   int
}

func (p TagListParams) Values() url.Values {
	v := url.Values{}
	setString(v, "keyword", p.Keyword)
	setString(v, "sort", p.Sort)
	setString(v, "order", p.Order)
	setInt(v, "limit", int64(p.Limit))
	return v
}

type CommentListParams struct {
	Page     int
	PageSize int
}

func (p CommentListParams) Values() url.Values {
	v := url.Values{}
	setInt(v, "page", int64(p.Page))
	setInt(v, "page_size", int64(p.PageSize))
	return v
}

func setString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setInt(v url.Values, key string, value int64) {
	if value != 0 {
		v.Set(key, strconv.FormatInt(value, 10))
	}
}

func setUint(v url.Values, key string, value uint64) {
	if value != 0 {
		v.Set(key, strconv.FormatUint(value, 10))
	}
}
