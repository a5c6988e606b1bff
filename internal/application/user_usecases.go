package application

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"go-blog-graphql/internal/domain/entity"
	"go-blog-graphql/internal/domain/repository"
	"go-blog-graphql/pkg/apperr"
	"go-blog-graphql/pkg/mailer"
)

// UserService hosts the user use-cases. Every method follows the same
// contract: fail fast on missing input before any I/O, read preconditions
// through the port, delegate invariants to the entity, persist, and wrap
// unexpected failures exactly once.
type UserService struct {
	Repo      repository.UserRepository
	Hasher    PasswordHasher
	Tokens    TokenService
	Passwords entity.PasswordPolicy
	Clock     entity.Clock
	Redis     *redis.Client
	Jobs      JobPublisher
	Logger    *logrus.Logger
}

func NewUserService(repo repository.UserRepository, hasher PasswordHasher, tokens TokenService, passwords entity.PasswordPolicy, clk entity.Clock, rdb *redis.Client, jobs JobPublisher, logger *logrus.Logger) *UserService {
	if passwords == nil {
		passwords = entity.StrengthPolicy{}
	}
	if clk == nil {
		clk = entity.SystemClock
	}
	return &UserService{
		Repo:      repo,
		Hasher:    hasher,
		Tokens:    tokens,
		Passwords: passwords,
		Clock:     clk,
		Redis:     rdb,
		Jobs:      jobs,
		Logger:    logger,
	}
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// CreateUser registers a new account. The email must be unused, the
// plaintext password must satisfy the configured policy and is hashed before
// it reaches the entity, and the role defaults to USER when absent.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Validation("Username is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, apperr.Validation("Email is required")
	}
	if strings.TrimSpace(in.Password) == "" {
		return nil, apperr.Validation("Password is required")
	}

	role := entity.RoleUser
	if in.Role != "" {
		parsed, err := entity.ParseUserRole(in.Role)
		if err != nil {
			return nil, apperr.Validation("Invalid user role")
		}
		role = parsed
	}

	existing, err := s.Repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to create user")
	}
	if existing != nil {
		return nil, apperr.Validation("User with this email already exists")
	}

	if err := s.Passwords.Validate(in.Password); err != nil {
		return nil, domainToApp(err)
	}
	hash, err := s.Hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to hash password")
	}

	u, err := entity.NewUser(entity.UserProps{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     role,
	}, s.Clock)
	if err != nil {
		return nil, domainToApp(err)
	}

	saved, err := s.Repo.Save(ctx, u)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to create user")
	}

	s.enqueueWelcomeMail(ctx, saved)
	return saved, nil
}

func (s *UserService) enqueueWelcomeMail(ctx context.Context, u *entity.User) {
	if s.Jobs == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email(),
		Subject:  "Welcome to the blog",
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"Name": u.Name()},
	}
	if err := s.Jobs.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID()).Warn("enqueue welcome mail failed")
	}
}

type UpdateUserInput struct {
	ID       int64
	Name     string
	Password string
	Role     string
}

// UpdateUser applies only the fields present in the input, re-hashing the
// password when provided and routing every change through entity mutators.
func (s *UserService) UpdateUser(ctx context.Context, in UpdateUserInput) (*entity.User, error) {
	if in.ID == 0 {
		return nil, apperr.Validation("User ID is required")
	}

	u, err := s.Repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to update user")
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}

	if in.Name != "" {
		if err := u.UpdateProfile(in.Name); err != nil {
			return nil, domainToApp(err)
		}
	}
	if in.Password != "" {
		if err := s.Passwords.Validate(in.Password); err != nil {
			return nil, domainToApp(err)
		}
		hash, err := s.Hasher.Hash(ctx, in.Password)
		if err != nil {
			return nil, apperr.Wrap(err, "Failed to hash password")
		}
		if err := u.ChangePassword(hash); err != nil {
			return nil, domainToApp(err)
		}
	}
	if in.Role != "" {
		role, err := entity.ParseUserRole(in.Role)
		if err != nil {
			return nil, apperr.Validation("Invalid user role")
		}
		if role != u.Role() {
			if err := u.UpdateRole(role); err != nil {
				return nil, domainToApp(err)
			}
		}
	}

	updated, err := s.Repo.Update(ctx, u)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to update user")
	}
	return updated, nil
}

// DeleteUser removes an existing user by id. It returns only an error; the
// caller already holds the id it asked to delete.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if id == 0 {
		return apperr.Validation("User ID is required")
	}

	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Wrap(err, "Failed to delete user")
	}
	if u == nil {
		return apperr.NotFound("User not found")
	}

	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return apperr.Wrap(err, "Failed to delete user")
	}
	return nil
}

// GetUserByID resolves a user or reports not found.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*entity.User, error) {
	if id == 0 {
		return nil, apperr.Validation("User ID is required")
	}

	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to get user")
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

// GetUserByEmail resolves a user by email or reports not found.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperr.Validation("Email is required")
	}

	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to get user")
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

// LoginResult carries the issued token alongside the authenticated user.
type LoginResult struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// Login verifies credentials, issues a token and records a session hash in
// Redis when a client is wired.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperr.Validation("Email is required")
	}
	if strings.TrimSpace(password) == "" {
		return nil, apperr.Validation("Password is required")
	}

	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to log in")
	}
	if u == nil {
		return nil, apperr.Authentication("Invalid credentials")
	}
	ok, err := s.Hasher.Compare(ctx, password, u.PasswordHash())
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to log in")
	}
	if !ok {
		return nil, apperr.Authentication("Invalid credentials")
	}

	token, exp, err := s.Tokens.Generate(u)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to issue token")
	}

	s.recordSession(ctx, u, exp)
	return &LoginResult{User: u, Token: token, ExpiresAt: exp}, nil
}

func sessionKey(userID int64) string {
	return "user:session:" + strconv.FormatInt(userID, 10)
}

func (s *UserService) recordSession(ctx context.Context, u *entity.User, exp time.Time) {
	if s.Redis == nil {
		return
	}
	key := sessionKey(u.ID())
	pipe := s.Redis.Pipeline()
	pipe.HSet(ctx, key, map[string]any{
		"user_id":   u.ID(),
		"email":     u.Email(),
		"name":      u.Name(),
		"role":      string(u.Role()),
		"logged_in": true,
	})
	if ttl := time.Until(exp); ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("key", key).Warn("redis pipeline failed")
	}
}
