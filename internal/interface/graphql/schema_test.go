package graphql

import (
	"context"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/require"

	"go-blog-graphql/internal/application"
	"go-blog-graphql/internal/domain/entity"
	"go-blog-graphql/pkg/helpers"
)

type memUsers struct {
	users map[int64]*entity.User
}

func (r *memUsers) FindByID(_ context.Context, id int64) (*entity.User, error) {
	return r.users[id], nil
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUsers) Save(_ context.Context, u *entity.User) (*entity.User, error) {
	r.users[u.ID()] = u
	return u, nil
}

func (r *memUsers) Update(_ context.Context, u *entity.User) (*entity.User, error) {
	r.users[u.ID()] = u
	return u, nil
}

func (r *memUsers) DeleteByID(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

type memPosts struct {
	posts map[int64]*entity.Post
}

func (r *memPosts) FindByID(_ context.Context, id int64) (*entity.Post, error) {
	return r.posts[id], nil
}

func (r *memPosts) List(_ context.Context, _, _ int) ([]*entity.Post, error) {
	out := []*entity.Post{}
	for _, p := range r.posts {
		out = append(out, p)
	}
	return out, nil
}

func (r *memPosts) Save(_ context.Context, p *entity.Post) (*entity.Post, error) {
	r.posts[p.ID()] = p
	return p, nil
}

func (r *memPosts) Update(_ context.Context, p *entity.Post) (*entity.Post, error) {
	r.posts[p.ID()] = p
	return p, nil
}

func (r *memPosts) DeleteByID(_ context.Context, id int64) error {
	delete(r.posts, id)
	return nil
}

type memComments struct {
	comments map[int64]*entity.Comment
}

func (r *memComments) FindByID(_ context.Context, id int64) (*entity.Comment, error) {
	return r.comments[id], nil
}

func (r *memComments) ListByPost(_ context.Context, postID int64) ([]*entity.Comment, error) {
	out := []*entity.Comment{}
	for _, c := range r.comments {
		if c.PostID() == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memComments) Save(_ context.Context, c *entity.Comment) (*entity.Comment, error) {
	r.comments[c.ID()] = c
	return c, nil
}

func (r *memComments) Update(_ context.Context, c *entity.Comment) (*entity.Comment, error) {
	r.comments[c.ID()] = c
	return c, nil
}

func (r *memComments) DeleteByID(_ context.Context, id int64) error {
	delete(r.comments, id)
	return nil
}

type memCategories struct {
	categories map[int64]*entity.Category
}

func (r *memCategories) FindByID(_ context.Context, id int64) (*entity.Category, error) {
	return r.categories[id], nil
}

func (r *memCategories) List(_ context.Context) ([]*entity.Category, error) {
	out := []*entity.Category{}
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCategories) Save(_ context.Context, c *entity.Category) (*entity.Category, error) {
	r.categories[c.ID()] = c
	return c, nil
}

func (r *memCategories) Update(_ context.Context, c *entity.Category) (*entity.Category, error) {
	r.categories[c.ID()] = c
	return c, nil
}

func (r *memCategories) DeleteByID(_ context.Context, id int64) error {
	delete(r.categories, id)
	return nil
}

type staticHasher struct{}

func (staticHasher) Hash(_ context.Context, plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (staticHasher) Compare(_ context.Context, plain, hash string) (bool, error) {
	return "hashed:"+plain == hash, nil
}

type staticTokens struct{}

func (staticTokens) Generate(u *entity.User) (string, time.Time, error) {
	return "token-" + u.Email(), time.Now().Add(time.Hour), nil
}

func testSchema(t *testing.T) (graphql.Schema, *memUsers, *memPosts) {
	t.Helper()
	users := &memUsers{users: map[int64]*entity.User{}}
	posts := &memPosts{posts: map[int64]*entity.Post{}}
	comments := &memComments{comments: map[int64]*entity.Comment{}}
	categories := &memCategories{categories: map[int64]*entity.Category{}}

	schema, err := NewSchema(&Services{
		Users:      application.NewUserService(users, staticHasher{}, staticTokens{}, entity.PresencePolicy{}, nil, nil, nil, nil),
		Posts:      application.NewPostService(posts, users, nil, nil, nil),
		Comments:   application.NewCommentService(comments, posts, nil),
		Categories: application.NewCategoryService(categories),
	})
	require.NoError(t, err)
	return schema, users, posts
}

func run(schema graphql.Schema, ctx context.Context, query string, vars map[string]interface{}) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        ctx,
	})
}

func adminCtx() context.Context {
	return WithUser(context.Background(), &helpers.Claims{UserID: 1, Role: "ADMIN"})
}

func userCtx() context.Context {
	return WithUser(context.Background(), &helpers.Claims{UserID: 2, Role: "USER"})
}

func TestCreateUserMutation(t *testing.T) {
	schema, _, _ := testSchema(t)

	res := run(schema, context.Background(), `
		mutation {
			createUser(username: "alice", email: "alice@example.com", password: "secret") {
				username
				email
				role
			}
		}`, nil)
	require.Empty(t, res.Errors)

	data := res.Data.(map[string]interface{})["createUser"].(map[string]interface{})
	require.Equal(t, "alice", data["username"])
	require.Equal(t, "USER", data["role"])
}

func TestCreateUserMutationSurfacesValidation(t *testing.T) {
	schema, _, _ := testSchema(t)

	res := run(schema, context.Background(), `
		mutation {
			createUser(username: "alice", email: "invalid-email", password: "secret") { id }
		}`, nil)
	require.Len(t, res.Errors, 1)
	require.Equal(t, "Invalid email format", res.Errors[0].Message)
	require.Equal(t, "validation", res.Errors[0].Extensions["code"])
}

func TestLoginMutation(t *testing.T) {
	schema, _, _ := testSchema(t)

	res := run(schema, context.Background(), `
		mutation {
			createUser(username: "alice", email: "alice@example.com", password: "secret") { id }
		}`, nil)
	require.Empty(t, res.Errors)

	res = run(schema, context.Background(), `
		mutation {
			login(email: "alice@example.com", password: "secret") {
				token
				user { email }
			}
		}`, nil)
	require.Empty(t, res.Errors)

	payload := res.Data.(map[string]interface{})["login"].(map[string]interface{})
	require.Equal(t, "token-alice@example.com", payload["token"])

	res = run(schema, context.Background(), `
		mutation {
			login(email: "alice@example.com", password: "wrong") { token }
		}`, nil)
	require.Len(t, res.Errors, 1)
	require.Equal(t, "Invalid credentials", res.Errors[0].Message)
	require.Equal(t, "authentication", res.Errors[0].Extensions["code"])
}

func TestAdminOnlyMutationsAreGuarded(t *testing.T) {
	schema, _, _ := testSchema(t)

	res := run(schema, context.Background(), `
		mutation { createCategory(name: "golang") { id } }`, nil)
	require.Len(t, res.Errors, 1)
	require.Equal(t, "Authentication required", res.Errors[0].Message)

	res = run(schema, userCtx(), `
		mutation { createCategory(name: "golang") { id } }`, nil)
	require.Len(t, res.Errors, 1)
	require.Equal(t, "You do not have permission to perform this action", res.Errors[0].Message)
	require.Equal(t, "authorization", res.Errors[0].Extensions["code"])

	res = run(schema, adminCtx(), `
		mutation { createCategory(name: "golang") { id name } }`, nil)
	require.Empty(t, res.Errors)
}

func TestPostLifecycleThroughSchema(t *testing.T) {
	schema, users, _ := testSchema(t)

	author, err := entity.NewUser(entity.UserProps{Name: "author", Email: "author@example.com", Password: "hash"}, nil)
	require.NoError(t, err)
	_, err = users.Save(context.Background(), author)
	require.NoError(t, err)

	res := run(schema, userCtx(), `
		mutation ($authorId: Int!) {
			createPost(title: "Hello", content: "first post", authorId: $authorId) {
				id
				status
			}
		}`, map[string]interface{}{"authorId": int(author.ID())})
	require.Empty(t, res.Errors)

	created := res.Data.(map[string]interface{})["createPost"].(map[string]interface{})
	require.Equal(t, "DRAFT", created["status"])
	postID := created["id"]

	res = run(schema, userCtx(), `
		mutation ($id: Int!) {
			publishPost(id: $id) { status }
		}`, map[string]interface{}{"id": postID})
	require.Empty(t, res.Errors)
	require.Equal(t, "PUBLISHED", res.Data.(map[string]interface{})["publishPost"].(map[string]interface{})["status"])

	res = run(schema, context.Background(), `
		query ($id: Int!) {
			getPostById(id: $id) {
				title
				author { username }
			}
		}`, map[string]interface{}{"id": postID})
	require.Empty(t, res.Errors)

	got := res.Data.(map[string]interface{})["getPostById"].(map[string]interface{})
	require.Equal(t, "Hello", got["title"])
	require.Equal(t, "author", got["author"].(map[string]interface{})["username"])
}

func TestContentMutationsRequireAuthentication(t *testing.T) {
	schema, _, _ := testSchema(t)

	res := run(schema, context.Background(), `
		mutation { deletePost(id: 1) }`, nil)
	require.Len(t, res.Errors, 1)
	require.Equal(t, "Authentication required", res.Errors[0].Message)
	require.Equal(t, 401, res.Errors[0].Extensions["status"])
}

func TestQueryNotFoundCarriesExtensions(t *testing.T) {
	schema, _, _ := testSchema(t)

	res := run(schema, context.Background(), `
		query { getUserById(id: 12345) { id } }`, nil)
	require.Len(t, res.Errors, 1)
	require.Equal(t, "User not found", res.Errors[0].Message)
	require.Equal(t, "not_found", res.Errors[0].Extensions["code"])
	require.Equal(t, 404, res.Errors[0].Extensions["status"])
}
