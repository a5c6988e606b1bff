package router

import (
	"go-blog-graphql/internal/application"
	"go-blog-graphql/internal/container"
	"go-blog-graphql/internal/domain/entity"
	"go-blog-graphql/internal/infrastructure/postgres"
	"go-blog-graphql/internal/infrastructure/search"
	gql "go-blog-graphql/internal/interface/graphql"
	"go-blog-graphql/internal/router/modules"
	"go-blog-graphql/pkg/helpers"
)

func buildServices() *gql.Services {
	cfg := container.GetConfig()
	pool := container.GetPGPool()
	logger := container.GetLogger()

	userRepo := postgres.NewUserRepository(pool)
	postRepo := postgres.NewPostRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)

	var policy entity.PasswordPolicy = entity.StrengthPolicy{}
	if cfg.PasswordPolicy == "presence" {
		policy = entity.PresencePolicy{}
	}

	// Optional collaborators stay nil when their backend is not configured.
	var index application.PostIndexer
	if es := container.GetES(); es != nil {
		index = search.NewPostIndex(es, cfg.ESPostsIndex)
	}
	var jobs application.JobPublisher
	if pub := container.GetRabbitPub(); pub != nil {
		jobs = pub
	}

	return &gql.Services{
		Users: application.NewUserService(
			userRepo,
			helpers.BcryptHasher{},
			container.GetJWT(),
			policy,
			entity.SystemClock,
			container.GetRedis(),
			jobs,
			logger,
		),
		Posts:      application.NewPostService(postRepo, userRepo, index, entity.SystemClock, logger),
		Comments:   application.NewCommentService(commentRepo, postRepo, entity.SystemClock),
		Categories: application.NewCategoryService(categoryRepo),
	}
}

// InitModules wires the use-case services into the GraphQL schema and
// registers all feature modules. Called once during startup.
func InitModules(r *Registry) error {
	services := buildServices()

	schema, err := gql.NewSchema(services)
	if err != nil {
		return err
	}
	handler := gql.NewHandler(schema, container.GetLogger())

	r.Add(modules.NewGraphQLModule(handler, container.GetJWT()))
	r.Add(modules.NewHealthModule(container.GetPGPool(), container.GetRedis()))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
	return nil
}
