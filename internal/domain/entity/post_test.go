package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validPostProps() PostProps {
	return PostProps{
		Title:    "Hello",
		Content:  "first post",
		AuthorID: 42,
	}
}

func TestNewPostStartsAsDraft(t *testing.T) {
	p, err := NewPost(validPostProps(), nil)
	require.NoError(t, err)
	require.Equal(t, StatusDraft, p.Status())
	require.Positive(t, p.ID())
}

func TestNewPostValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*PostProps)
		want   string
	}{
		{"blank title", func(p *PostProps) { p.Title = " " }, "Title is required"},
		{"long title", func(p *PostProps) { p.Title = strings.Repeat("t", 256) }, "Title must be less than 255 characters"},
		{"blank content", func(p *PostProps) { p.Content = "" }, "Content is required"},
		{"zero author", func(p *PostProps) { p.AuthorID = 0 }, "Author ID is required"},
		{"negative author", func(p *PostProps) { p.AuthorID = -3 }, "Author ID must be greater than 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			props := validPostProps()
			tc.mutate(&props)
			_, err := NewPost(props, nil)
			require.Error(t, err)
			require.True(t, IsDomainError(err))
			require.Equal(t, tc.want, err.Error())
		})
	}
}

func TestNewPostAcceptsTitleAtLimit(t *testing.T) {
	props := validPostProps()
	props.Title = strings.Repeat("t", 255)
	_, err := NewPost(props, nil)
	require.NoError(t, err)
}

func TestPostTitleLengthCountsRunes(t *testing.T) {
	props := validPostProps()
	props.Title = strings.Repeat("博", 255)
	_, err := NewPost(props, nil)
	require.NoError(t, err)

	props.Title = strings.Repeat("博", 256)
	_, err = NewPost(props, nil)
	require.EqualError(t, err, "Title must be less than 255 characters")
}

func TestPublishUnpublishCycle(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	p, err := NewPost(validPostProps(), fixedClock(&at))
	require.NoError(t, err)

	at = at.Add(time.Minute)
	require.NoError(t, p.Publish())
	require.Equal(t, StatusPublished, p.Status())
	require.Equal(t, p.CreatedAt().Add(time.Minute), p.UpdatedAt())

	err = p.Publish()
	require.Error(t, err)
	require.Contains(t, err.Error(), "is already published")

	require.NoError(t, p.Unpublish())
	require.Equal(t, StatusDraft, p.Status())
}

func TestUnpublishFreshDraftFails(t *testing.T) {
	p, err := NewPost(validPostProps(), nil)
	require.NoError(t, err)

	err = p.Unpublish()
	require.Error(t, err)
	require.Contains(t, err.Error(), "is already drafted")
}

func TestPostUpdateDetails(t *testing.T) {
	p, err := NewPost(validPostProps(), nil)
	require.NoError(t, err)

	require.NoError(t, p.UpdateDetails("New title", "new content"))
	require.Equal(t, "New title", p.Title())
	require.Equal(t, "new content", p.Content())

	require.EqualError(t, p.UpdateDetails("", "x"), "Title is required")
	require.Equal(t, "New title", p.Title())
}

func TestRestorePostRoundTrip(t *testing.T) {
	p, err := NewPost(validPostProps(), nil)
	require.NoError(t, err)
	require.NoError(t, p.Publish())

	restored := RestorePost(p.Record(), nil)
	require.Equal(t, p.Record(), restored.Record())
	require.Equal(t, StatusPublished, restored.Status())
}
