package graphql

import (
	"time"

	"go-blog-graphql/internal/domain/entity"
)

// Flat view models returned by resolvers. The default resolver walks json
// tags, so the tag names are the GraphQL field names.

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AuthPayload struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"authorId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	PostID    int64     `json:"postId"`
	AuthorID  int64     `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toUser(u *entity.User) User {
	return User{
		ID:        u.ID(),
		Username:  u.Name(),
		Email:     u.Email(),
		Role:      string(u.Role()),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func toPost(p *entity.Post) Post {
	return Post{
		ID:        p.ID(),
		Title:     p.Title(),
		Content:   p.Content(),
		AuthorID:  p.AuthorID(),
		Status:    string(p.Status()),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func toPosts(ps []*entity.Post) []Post {
	out := make([]Post, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPost(p))
	}
	return out
}

func toComment(c *entity.Comment) Comment {
	return Comment{
		ID:        c.ID(),
		Content:   c.Content(),
		PostID:    c.PostID(),
		AuthorID:  c.AuthorID(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func toComments(cs []*entity.Comment) []Comment {
	out := make([]Comment, 0, len(cs))
	for _, c := range cs {
		out = append(out, toComment(c))
	}
	return out
}

func toCategory(c *entity.Category) Category {
	return Category{ID: c.ID(), Name: c.Name()}
}

func toCategories(cs []*entity.Category) []Category {
	out := make([]Category, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCategory(c))
	}
	return out
}
