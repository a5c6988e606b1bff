package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"go-blog-graphql/internal/domain/entity"
	"go-blog-graphql/pkg/apperr"
)

type memPostRepo struct {
	mu        sync.Mutex
	posts     map[int64]*entity.Post
	saveErr   error
	lastLimit int
	saves     int
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: map[int64]*entity.Post{}}
}

func (r *memPostRepo) FindByID(_ context.Context, id int64) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.posts[id], nil
}

func (r *memPostRepo) List(_ context.Context, limit, _ int) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLimit = limit
	out := make([]*entity.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p)
	}
	return out, nil
}

func (r *memPostRepo) Save(_ context.Context, p *entity.Post) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	r.saves++
	r.posts[p.ID()] = p
	return p, nil
}

func (r *memPostRepo) Update(_ context.Context, p *entity.Post) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[p.ID()] = p
	return p, nil
}

func (r *memPostRepo) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, id)
	return nil
}

type fakeIndexer struct {
	indexed []int64
	removed []int64
	hits    []*entity.Post
}

func (f *fakeIndexer) Index(_ context.Context, p *entity.Post) error {
	f.indexed = append(f.indexed, p.ID())
	return nil
}

func (f *fakeIndexer) Remove(_ context.Context, id int64) error {
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeIndexer) Search(_ context.Context, _ string, _ int) ([]*entity.Post, error) {
	return f.hits, nil
}

func seedAuthor(t *testing.T, users *memUserRepo) *entity.User {
	t.Helper()
	u, err := entity.NewUser(entity.UserProps{
		Name:     "author",
		Email:    "author@example.com",
		Password: "hash",
	}, nil)
	require.NoError(t, err)
	_, err = users.Save(context.Background(), u)
	require.NoError(t, err)
	return u
}

func newPostService(repo *memPostRepo, users *memUserRepo, index PostIndexer) *PostService {
	return NewPostService(repo, users, index, nil, nil)
}

func TestCreatePostHappyPath(t *testing.T) {
	repo := newMemPostRepo()
	users := newMemUserRepo()
	author := seedAuthor(t, users)
	svc := newPostService(repo, users, nil)

	p, err := svc.CreatePost(context.Background(), CreatePostInput{
		Title:    "  Hello  ",
		Content:  "  first post  ",
		AuthorID: author.ID(),
	})
	require.NoError(t, err)
	require.Equal(t, "Hello", p.Title())
	require.Equal(t, "first post", p.Content())
	require.Equal(t, entity.StatusDraft, p.Status())
	require.Equal(t, 1, repo.saves)
}

func TestCreatePostValidation(t *testing.T) {
	svc := newPostService(newMemPostRepo(), newMemUserRepo(), nil)

	cases := []struct {
		name string
		in   CreatePostInput
		want string
	}{
		{"no title", CreatePostInput{Content: "c", AuthorID: 1}, "Post title cannot be empty"},
		{"no content", CreatePostInput{Title: "t", AuthorID: 1}, "Post content cannot be empty"},
		{"no author", CreatePostInput{Title: "t", Content: "c"}, "Author ID must be provided"},
		{"negative author", CreatePostInput{Title: "t", Content: "c", AuthorID: -1}, "Author ID must be a positive integer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreatePost(context.Background(), tc.in)
			require.EqualError(t, err, tc.want)
			require.True(t, apperr.IsValidation(err))
		})
	}
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	repo := newMemPostRepo()
	svc := newPostService(repo, newMemUserRepo(), nil)

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		Title:    "t",
		Content:  "c",
		AuthorID: 7,
	})
	require.EqualError(t, err, "Author with ID 7 not found")
	require.True(t, apperr.IsNotFound(err))
	require.Zero(t, repo.saves)
}

func TestCreatePostWrapsPersistenceFailure(t *testing.T) {
	repo := newMemPostRepo()
	repo.saveErr = errors.New("connection refused")
	users := newMemUserRepo()
	author := seedAuthor(t, users)
	svc := newPostService(repo, users, nil)

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		Title:    "t",
		Content:  "c",
		AuthorID: author.ID(),
	})
	require.EqualError(t, err, "Failed to save the post due to a persistence issue")
	require.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}

func TestCreatePostMirrorsIntoIndex(t *testing.T) {
	repo := newMemPostRepo()
	users := newMemUserRepo()
	author := seedAuthor(t, users)
	index := &fakeIndexer{}
	svc := newPostService(repo, users, index)

	p, err := svc.CreatePost(context.Background(), CreatePostInput{
		Title:    "t",
		Content:  "c",
		AuthorID: author.ID(),
	})
	require.NoError(t, err)
	require.Equal(t, []int64{p.ID()}, index.indexed)
}

func TestPublishUnpublishPost(t *testing.T) {
	repo := newMemPostRepo()
	users := newMemUserRepo()
	author := seedAuthor(t, users)
	svc := newPostService(repo, users, nil)

	p, err := svc.CreatePost(context.Background(), CreatePostInput{
		Title:    "t",
		Content:  "c",
		AuthorID: author.ID(),
	})
	require.NoError(t, err)

	published, err := svc.PublishPost(context.Background(), p.ID())
	require.NoError(t, err)
	require.Equal(t, entity.StatusPublished, published.Status())

	_, err = svc.PublishPost(context.Background(), p.ID())
	require.Error(t, err)
	require.True(t, apperr.IsValidation(err))
	require.Contains(t, err.Error(), "is already published")

	draft, err := svc.UnpublishPost(context.Background(), p.ID())
	require.NoError(t, err)
	require.Equal(t, entity.StatusDraft, draft.Status())
}

func TestPublishPostNotFound(t *testing.T) {
	svc := newPostService(newMemPostRepo(), newMemUserRepo(), nil)

	_, err := svc.PublishPost(context.Background(), 404)
	require.EqualError(t, err, "Post not found")
	require.True(t, apperr.IsNotFound(err))
}

func TestListPostsClampsLimit(t *testing.T) {
	repo := newMemPostRepo()
	svc := newPostService(repo, newMemUserRepo(), nil)

	_, err := svc.ListPosts(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Equal(t, 20, repo.lastLimit)

	_, err = svc.ListPosts(context.Background(), 1000, -5)
	require.NoError(t, err)
	require.Equal(t, 20, repo.lastLimit)

	_, err = svc.ListPosts(context.Background(), 5, 0)
	require.NoError(t, err)
	require.Equal(t, 5, repo.lastLimit)
}

func TestDeletePostRemovesIndexEntry(t *testing.T) {
	repo := newMemPostRepo()
	users := newMemUserRepo()
	author := seedAuthor(t, users)
	index := &fakeIndexer{}
	svc := newPostService(repo, users, index)

	p, err := svc.CreatePost(context.Background(), CreatePostInput{
		Title:    "t",
		Content:  "c",
		AuthorID: author.ID(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(context.Background(), p.ID()))
	require.Equal(t, []int64{p.ID()}, index.removed)

	err = svc.DeletePost(context.Background(), p.ID())
	require.True(t, apperr.IsNotFound(err))
}

func TestSearchPostsRequiresQuery(t *testing.T) {
	svc := newPostService(newMemPostRepo(), newMemUserRepo(), &fakeIndexer{})

	_, err := svc.SearchPosts(context.Background(), "   ", 10)
	require.EqualError(t, err, "Search query is required")
	require.True(t, apperr.IsValidation(err))
}

func TestSearchPostsWithoutIndexReturnsEmpty(t *testing.T) {
	svc := newPostService(newMemPostRepo(), newMemUserRepo(), nil)

	hits, err := svc.SearchPosts(context.Background(), "go", 10)
	require.NoError(t, err)
	require.NotNil(t, hits)
	require.Empty(t, hits)
}

func TestSearchPostsReturnsIndexHits(t *testing.T) {
	users := newMemUserRepo()
	author := seedAuthor(t, users)
	p, err := entity.NewPost(entity.PostProps{Title: "go", Content: "post", AuthorID: author.ID()}, nil)
	require.NoError(t, err)

	index := &fakeIndexer{hits: []*entity.Post{p}}
	svc := newPostService(newMemPostRepo(), users, index)

	hits, err := svc.SearchPosts(context.Background(), "go", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Equal(t, p.ID(), hits[0].ID())
}
