package entity

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Comment is attached to a post by foreign key only; no object references
// are held across aggregates.
type Comment struct {
	id        int64
	content   string
	postID    int64
	authorID  int64
	createdAt time.Time
	updatedAt time.Time

	clock Clock
}

type CommentProps struct {
	Content  string
	PostID   int64
	AuthorID int64
}

// NewComment validates content, post id and author id in order.
func NewComment(props CommentProps, clk Clock) (*Comment, error) {
	if clk == nil {
		clk = SystemClock
	}
	if err := validateCommentContent(props.Content); err != nil {
		return nil, err
	}
	if err := validateCommentPostID(props.PostID); err != nil {
		return nil, err
	}
	if err := validateAuthorID("comment", props.AuthorID); err != nil {
		return nil, err
	}

	now := clk.Now()
	return &Comment{
		id:        newID(),
		content:   props.Content,
		postID:    props.PostID,
		authorID:  props.AuthorID,
		createdAt: now,
		updatedAt: now,
		clock:     clk,
	}, nil
}

type CommentRecord struct {
	ID        int64
	Content   string
	PostID    int64
	AuthorID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func RestoreComment(rec CommentRecord, clk Clock) *Comment {
	if clk == nil {
		clk = SystemClock
	}
	return &Comment{
		id:        rec.ID,
		content:   rec.Content,
		postID:    rec.PostID,
		authorID:  rec.AuthorID,
		createdAt: rec.CreatedAt,
		updatedAt: rec.UpdatedAt,
		clock:     clk,
	}
}

func (c *Comment) ID() int64            { return c.id }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) PostID() int64        { return c.postID }
func (c *Comment) AuthorID() int64      { return c.authorID }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
func (c *Comment) UpdatedAt() time.Time { return c.updatedAt }

func (c *Comment) Record() CommentRecord {
	return CommentRecord{
		ID:        c.id,
		Content:   c.content,
		PostID:    c.postID,
		AuthorID:  c.authorID,
		CreatedAt: c.createdAt,
		UpdatedAt: c.updatedAt,
	}
}

// UpdateDetails replaces the content.
func (c *Comment) UpdateDetails(content string) error {
	if err := validateCommentContent(content); err != nil {
		return err
	}
	c.content = content
	c.touch()
	return nil
}

func (c *Comment) touch() {
	c.updatedAt = c.clock.Now()
}

func validateCommentContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return newCommentError("Content is required")
	}
	if utf8.RuneCountInString(trimmed) < 3 {
		return newCommentError("Content must be at least 3 characters long")
	}
	if utf8.RuneCountInString(trimmed) > 1000 {
		return newCommentError("Content must be less than 1000 characters long")
	}
	return nil
}

func validateCommentPostID(postID int64) error {
	if postID == 0 {
		return newCommentError("Post ID is required")
	}
	if postID < 0 {
		return newCommentError("Post ID must be greater than 0")
	}
	return nil
}
