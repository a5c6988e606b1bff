package graphql

import (
	"github.com/graphql-go/graphql"

	"go-blog-graphql/internal/application"
	"go-blog-graphql/internal/domain/entity"
)

// Services bundles the use-case layer consumed by the resolvers.
type Services struct {
	Users      *application.UserService
	Posts      *application.PostService
	Comments   *application.CommentService
	Categories *application.CategoryService
}

func intArg(p graphql.ResolveParams, name string) int64 {
	v, _ := p.Args[name].(int)
	return int64(v)
}

func strArg(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}

func nonNullInt() *graphql.NonNull    { return graphql.NewNonNull(graphql.Int) }
func nonNullString() *graphql.NonNull { return graphql.NewNonNull(graphql.String) }

// NewSchema builds the executable schema over the given services. Mutations
// on users and categories require the ADMIN role, content mutations any
// authenticated caller.
func NewSchema(s *Services) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: nonNullInt()},
			"username":  &graphql.Field{Type: nonNullString()},
			"email":     &graphql.Field{Type: nonNullString()},
			"role":      &graphql.Field{Type: nonNullString()},
			"createdAt": &graphql.Field{Type: graphql.DateTime},
			"updatedAt": &graphql.Field{Type: graphql.DateTime},
		},
	})

	commentType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Comment",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: nonNullInt()},
			"content":   &graphql.Field{Type: nonNullString()},
			"postId":    &graphql.Field{Type: nonNullInt()},
			"authorId":  &graphql.Field{Type: nonNullInt()},
			"createdAt": &graphql.Field{Type: graphql.DateTime},
			"updatedAt": &graphql.Field{Type: graphql.DateTime},
		},
	})

	postType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: nonNullInt()},
			"title":     &graphql.Field{Type: nonNullString()},
			"content":   &graphql.Field{Type: nonNullString()},
			"authorId":  &graphql.Field{Type: nonNullInt()},
			"status":    &graphql.Field{Type: nonNullString()},
			"createdAt": &graphql.Field{Type: graphql.DateTime},
			"updatedAt": &graphql.Field{Type: graphql.DateTime},
		},
	})

	// Relations resolved lazily so a flat post query stays a single read.
	postType.AddFieldConfig("author", &graphql.Field{
		Type: userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			post, ok := p.Source.(Post)
			if !ok {
				return nil, nil
			}
			u, err := s.Users.GetUserByID(p.Context, post.AuthorID)
			if err != nil {
				return nil, asResolverError(err)
			}
			return toUser(u), nil
		},
	})
	postType.AddFieldConfig("comments", &graphql.Field{
		Type: graphql.NewList(graphql.NewNonNull(commentType)),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			post, ok := p.Source.(Post)
			if !ok {
				return nil, nil
			}
			cs, err := s.Comments.ListCommentsByPost(p.Context, post.ID)
			if err != nil {
				return nil, asResolverError(err)
			}
			return toComments(cs), nil
		},
	})

	categoryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: nonNullInt()},
			"name": &graphql.Field{Type: nonNullString()},
		},
	})

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token":     &graphql.Field{Type: nonNullString()},
			"expiresAt": &graphql.Field{Type: graphql.DateTime},
			"user":      &graphql.Field{Type: graphql.NewNonNull(userType)},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getUserById": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: nonNullInt()},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := s.Users.GetUserByID(p.Context, intArg(p, "id"))
					if err != nil {
						return nil, asResolverError(err)
					}
					return toUser(u), nil
				},
			},
			"getUserByEmail": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"email": &graphql.ArgumentConfig{Type: nonNullString()},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := s.Users.GetUserByEmail(p.Context, strArg(p, "email"))
					if err != nil {
						return nil, asResolverError(err)
					}
					return toUser(u), nil
				},
			},
			"getPostById": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: nonNullInt()},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					post, err := s.Posts.GetPostByID(p.Context, intArg(p, "id"))
					if err != nil {
						return nil, asResolverError(err)
					}
					return toPost(post), nil
				},
			},
			"listPosts": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(postType)),
				Args: graphql.FieldConfigArgument{
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int},
					"offset": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					posts, err := s.Posts.ListPosts(p.Context, int(intArg(p, "limit")), int(intArg(p, "offset")))
					if err != nil {
						return nil, asResolverError(err)
					}
					return toPosts(posts), nil
				},
			},
			"searchPosts": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(postType)),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: nonNullString()},
					"limit": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					posts, err := s.Posts.SearchPosts(p.Context, strArg(p, "query"), int(intArg(p, "limit")))
					if err != nil {
						return nil, asResolverError(err)
					}
					return toPosts(posts), nil
				},
			},
			"listCommentsByPost": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(commentType)),
				Args: graphql.FieldConfigArgument{
					"postId": &graphql.ArgumentConfig{Type: nonNullInt()},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					cs, err := s.Comments.ListCommentsByPost(p.Context, intArg(p, "postId"))
					if err != nil {
						return nil, asResolverError(err)
					}
					return toComments(cs), nil
				},
			},
			"getCategoryById": &graphql.Field{
				Type: categoryType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: nonNullInt()},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					cat, err := s.Categories.GetCategoryByID(p.Context, intArg(p, "id"))
					if err != nil {
						return nil, asResolverError(err)
					}
					return toCategory(cat), nil
				},
			},
			"listCategories": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(categoryType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					cats, err := s.Categories.ListCategories(p.Context)
					if err != nil {
						return nil, asResolverError(err)
					}
					return toCategories(cats), nil
				},
			},
		},
	})

	admin := NewRoleGuard(string(entity.RoleAdmin))

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: nonNullString()},
					"password": &graphql.ArgumentConfig{Type: nonNullString()},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, err := s.Users.Login(p.Context, strArg(p, "email"), strArg(p, "password"))
					if err != nil {
						return nil, asResolverError(err)
					}
					return AuthPayload{Token: res.Token, ExpiresAt: res.ExpiresAt, User: toUser(res.User)}, nil
				},
			},
			"createUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: nonNullString()},
					"email":    &graphql.ArgumentConfig{Type: nonNullString()},
					"password": &graphql.ArgumentConfig{Type: nonNullString()},
					"role":     &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := s.Users.CreateUser(p.Context, application.CreateUserInput{
						Name:     strArg(p, "username"),
						Email:    strArg(p, "email"),
						Password: strArg(p, "password"),
						Role:     strArg(p, "role"),
					})
					if err != nil {
						return nil, asResolverError(err)
					}
					return toUser(u), nil
				},
			},
			"updateUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"id":       &graphql.ArgumentConfig{Type: nonNullInt()},
					"username": &graphql.ArgumentConfig{Type: graphql.String},
					"password": &graphql.ArgumentConfig{Type: graphql.String},
					"role":     &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: admin.Wrap(func(p graphql.ResolveParams) (interface{}, error) {
					u, err := s.Users.UpdateUser(p.Context, application.UpdateUserInput{
						ID:       intArg(p, "id"),
						Name:     strArg(p, "username"),
						Password: strArg(p, "password"),
						Role:     strArg(p, "role"),
					})
					if err != nil {
						return nil, asResolverError(err)
					}
					return toUser(u), nil
				}),
			},
			"deleteUser": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: nonNullInt()},
				},
				Resolve: admin.Wrap(func(p graphql.ResolveParams) (interface{}, error) {
					if err := s.Users.DeleteUser(p.Context, intArg(p, "id")); err != nil {
						return nil, asResolverError(err)
					}
					return true, nil
				}),
			},
			"createPost": &graphql.Field{
				Type: graphql.NewNonNull(postType),
				Args: graphql.FieldConfigArgument{
					"title":    &graphql.ArgumentConfig{Type: nonNullString()},
					"content":  &graphql.ArgumentConfig{Type: nonNullString()},
					"authorId": &graphql.ArgumentConfig{Type: nonNullInt()},
				},
				Resolve: authenticated(func(p graphql.ResolveParams) (interface{}, error) {
					post, err := s.Posts.CreatePost(p.Context, application.CreatePostInput{
						Title:    strArg(p, "title"),
						Content:  strArg(p, "content"),
						AuthorID: intArg(p, "authorId"),
					})
					if err != nil {
						return nil, asResolverError(err)
					}
					return toPost(post), nil
				}),
			},
			"updatePost": &graphql.Field{
				Type: graphql.NewNonNull(postType),
				Args: graphql.FieldConfigArgument{
					"id":      &graphql.ArgumentConfig{Type: nonNullInt()},
					"title":   &graphql.ArgumentConfig{Type: nonNullString()},
					"content": &graphql.ArgumentConfig{Type: nonNullString()},
				},
				Resolve: authenticated(func(p graphql.ResolveParams) (interface{}, error) {
					post, err := s.Posts.UpdatePost(p.Context, application.UpdatePostInput{
						ID:      intArg(p, "id"),
						Title:   strArg(p, "title"),
						Content: strArg(p, "content"),
					})
					if err != nil {
						return nil, asResolverError(err)
					}
					return toPost(post), nil
				}),
			},
			"publishPost": &graphql.Field{
				Type: graphql.NewNonNull(postType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: nonNullInt()},
				},
				Resolve: authenticated(func(p graphql.ResolveParams) (interface{}, error) {
					post, err := s.Posts.PublishPost(p.Context, intArg(p, "id"))
					if err != nil {
						return nil, asResolverError(err)
					}
					return toPost(post), nil
				}),
			},
			"unpublishPost": &graphql.Field{
				Type: graphql.NewNonNull(postType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: nonNullInt()},
				},
				Resolve: authenticated(func(p graphql.ResolveParams) (interface{}, error) {
					post, err := s.Posts.UnpublishPost(p.Context, intArg(p, "id"))
					if err != nil {
						return nil, asResolverError(err)
					}
					return toPost(post), nil
				}),
			},
			"deletePost": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: nonNullInt()},
				},
				Resolve: authenticated(func(p graphql.ResolveParams) (interface{}, error) {
					if err := s.Posts.DeletePost(p.Context, intArg(p, "id")); err != nil {
						return nil, asResolverError(err)
					}
					return true, nil
				}),
			},
			"createComment": &graphql.Field{
				Type: graphql.NewNonNull(commentType),
				Args: graphql.FieldConfigArgument{
					"content":  &graphql.ArgumentConfig{Type: nonNullString()},
					"postId":   &graphql.ArgumentConfig{Type: nonNullInt()},
					"authorId": &graphql.ArgumentConfig{Type: nonNullInt()},
				},
				Resolve: authenticated(func(p graphql.ResolveParams) (interface{}, error) {
					c, err := s.Comments.CreateComment(p.Context, application.CreateCommentInput{
						Content:  strArg(p, "content"),
						PostID:   intArg(p, "postId"),
						AuthorID: intArg(p, "authorId"),
					})
					if err != nil {
						return nil, asResolverError(err)
					}
					return toComment(c), nil
				}),
			},
			"updateComment": &graphql.Field{
				Type: graphql.NewNonNull(commentType),
				Args: graphql.FieldConfigArgument{
					"id":      &graphql.ArgumentConfig{Type: nonNullInt()},
					"content": &graphql.ArgumentConfig{Type: nonNullString()},
				},
				Resolve: authenticated(func(p graphql.ResolveParams) (interface{}, error) {
					c, err := s.Comments.UpdateComment(p.Context, application.UpdateCommentInput{
						ID:      intArg(p, "id"),
						Content: strArg(p, "content"),
					})
					if err != nil {
						return nil, asResolverError(err)
					}
					return toComment(c), nil
				}),
			},
			"deleteComment": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: nonNullInt()},
				},
				Resolve: authenticated(func(p graphql.ResolveParams) (interface{}, error) {
					if err := s.Comments.DeleteComment(p.Context, intArg(p, "id")); err != nil {
						return nil, asResolverError(err)
					}
					return true, nil
				}),
			},
			"createCategory": &graphql.Field{
				Type: graphql.NewNonNull(categoryType),
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: nonNullString()},
				},
				Resolve: admin.Wrap(func(p graphql.ResolveParams) (interface{}, error) {
					cat, err := s.Categories.CreateCategory(p.Context, application.CreateCategoryInput{
						Name: strArg(p, "name"),
					})
					if err != nil {
						return nil, asResolverError(err)
					}
					return toCategory(cat), nil
				}),
			},
			"updateCategory": &graphql.Field{
				Type: graphql.NewNonNull(categoryType),
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: nonNullInt()},
					"name": &graphql.ArgumentConfig{Type: nonNullString()},
				},
				Resolve: admin.Wrap(func(p graphql.ResolveParams) (interface{}, error) {
					cat, err := s.Categories.UpdateCategory(p.Context, application.UpdateCategoryInput{
						ID:   intArg(p, "id"),
						Name: strArg(p, "name"),
					})
					if err != nil {
						return nil, asResolverError(err)
					}
					return toCategory(cat), nil
				}),
			},
			"deleteCategory": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: nonNullInt()},
				},
				Resolve: admin.Wrap(func(p graphql.ResolveParams) (interface{}, error) {
					if err := s.Categories.DeleteCategory(p.Context, intArg(p, "id")); err != nil {
						return nil, asResolverError(err)
					}
					return true, nil
				}),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}
