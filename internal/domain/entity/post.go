package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// PostStatus is the publication state of a post.
type PostStatus string

const (
	StatusDraft     PostStatus = "DRAFT"
	StatusPublished PostStatus = "PUBLISHED"
)

func (s PostStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Post is the aggregate root for articles. Its status is a two-state machine
// with directed edges only: Publish moves DRAFT to PUBLISHED, Unpublish
// moves PUBLISHED back, and repeating either is a domain error.
type Post struct {
	id        int64
	title     string
	content   string
	authorID  int64
	status    PostStatus
	createdAt time.Time
	updatedAt time.Time

	clock Clock
}

type PostProps struct {
	Title    string
	Content  string
	AuthorID int64
}

// NewPost validates title, content and author id in order and constructs a
// DRAFT post with clock-derived timestamps.
func NewPost(props PostProps, clk Clock) (*Post, error) {
	if clk == nil {
		clk = SystemClock
	}
	if err := validatePostTitle(props.Title); err != nil {
		return nil, err
	}
	if err := validatePostContent(props.Content); err != nil {
		return nil, err
	}
	if err := validateAuthorID("post", props.AuthorID); err != nil {
		return nil, err
	}

	now := clk.Now()
	return &Post{
		id:        newID(),
		title:     props.Title,
		content:   props.Content,
		authorID:  props.AuthorID,
		status:    StatusDraft,
		createdAt: now,
		updatedAt: now,
		clock:     clk,
	}, nil
}

type PostRecord struct {
	ID        int64
	Title     string
	Content   string
	AuthorID  int64
	Status    PostStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestorePost rehydrates a post from persistence without re-validation.
func RestorePost(rec PostRecord, clk Clock) *Post {
	if clk == nil {
		clk = SystemClock
	}
	return &Post{
		id:        rec.ID,
		title:     rec.Title,
		content:   rec.Content,
		authorID:  rec.AuthorID,
		status:    rec.Status,
		createdAt: rec.CreatedAt,
		updatedAt: rec.UpdatedAt,
		clock:     clk,
	}
}

func (p *Post) ID() int64            { return p.id }
func (p *Post) Title() string        { return p.title }
func (p *Post) Content() string      { return p.content }
func (p *Post) AuthorID() int64      { return p.authorID }
func (p *Post) Status() PostStatus   { return p.status }
func (p *Post) CreatedAt() time.Time { return p.createdAt }
func (p *Post) UpdatedAt() time.Time { return p.updatedAt }

func (p *Post) Record() PostRecord {
	return PostRecord{
		ID:        p.id,
		Title:     p.title,
		Content:   p.content,
		AuthorID:  p.authorID,
		Status:    p.status,
		CreatedAt: p.createdAt,
		UpdatedAt: p.updatedAt,
	}
}

// UpdateDetails replaces title and content, re-running creation validators.
func (p *Post) UpdateDetails(title, content string) error {
	if err := validatePostTitle(title); err != nil {
		return err
	}
	if err := validatePostContent(content); err != nil {
		return err
	}
	p.title = title
	p.content = content
	p.touch()
	return nil
}

// Publish transitions DRAFT -> PUBLISHED.
func (p *Post) Publish() error {
	if p.status == StatusPublished {
		return newPostError(fmt.Sprintf("Post %d is already published", p.id))
	}
	p.status = StatusPublished
	p.touch()
	return nil
}

// Unpublish transitions PUBLISHED -> DRAFT.
func (p *Post) Unpublish() error {
	if p.status == StatusDraft {
		return newPostError(fmt.Sprintf("Post %d is already drafted", p.id))
	}
	p.status = StatusDraft
	p.touch()
	return nil
}

func (p *Post) touch() {
	p.updatedAt = p.clock.Now()
}

func validatePostTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return newPostError("Title is required")
	}
	if utf8.RuneCountInString(title) > 255 {
		return newPostError("Title must be less than 255 characters")
	}
	return nil
}

func validatePostContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return newPostError("Content is required")
	}
	return nil
}

func validateAuthorID(aggregate string, authorID int64) error {
	if authorID == 0 {
		return &DomainError{Aggregate: aggregate, Message: "Author ID is required"}
	}
	if authorID < 0 {
		return &DomainError{Aggregate: aggregate, Message: "Author ID must be greater than 0"}
	}
	return nil
}
