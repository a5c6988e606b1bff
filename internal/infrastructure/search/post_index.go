// Package search mirrors posts into Elasticsearch for full-text queries.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"go-blog-graphql/internal/application"
	"go-blog-graphql/internal/domain/entity"
)

type PostIndex struct {
	Client *elasticsearch.Client
	IndexName string
}

func NewPostIndex(client *elasticsearch.Client, index string) *PostIndex {
	return &PostIndex{Client: client, IndexName: index}
}

type postDoc struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	AuthorID  int64  `json:"author_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (x *PostIndex) Index(ctx context.Context, p *entity.Post) error {
	rec := p.Record()
	doc := postDoc{
		ID:        rec.ID,
		Title:     rec.Title,
		Content:   rec.Content,
		AuthorID:  rec.AuthorID,
		Status:    string(rec.Status),
		CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      x.IndexName,
		DocumentID: strconv.FormatInt(rec.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, x.Client)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index post %d: %s", rec.ID, res.Status())
	}
	return nil
}

func (x *PostIndex) Remove(ctx context.Context, id int64) error {
	req := esapi.DeleteRequest{
		Index:      x.IndexName,
		DocumentID: strconv.FormatInt(id, 10),
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, x.Client)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	// 404 means the post was never indexed; nothing to remove
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("remove post %d: %s", id, res.Status())
	}
	return nil
}

// Search runs a multi_match over title and content, title weighted higher.
func (x *PostIndex) Search(ctx context.Context, q string, size int) ([]*entity.Post, error) {
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "content"},
			},
		},
		"size": size,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := x.Client.Search(
		x.Client.Search.WithContext(c),
		x.Client.Search.WithIndex(x.IndexName),
		x.Client.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search posts: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source postDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]*entity.Post, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		src := h.Source
		created, _ := time.Parse(time.RFC3339Nano, src.CreatedAt)
		updated, _ := time.Parse(time.RFC3339Nano, src.UpdatedAt)
		out = append(out, entity.RestorePost(entity.PostRecord{
			ID:        src.ID,
			Title:     src.Title,
			Content:   src.Content,
			AuthorID:  src.AuthorID,
			Status:    entity.PostStatus(src.Status),
			CreatedAt: created,
			UpdatedAt: updated,
		}, entity.SystemClock))
	}
	return out, nil
}

var _ application.PostIndexer = (*PostIndex)(nil)
