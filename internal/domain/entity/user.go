package entity

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// UserRole is the authorization role carried by a user.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// ParseUserRole maps an external role string onto the valid set.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", newUserError("Invalid user role")
	}
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)*\.[a-zA-Z]{2,}$`)

// User is the aggregate root for accounts. Password holds an opaque hash;
// the aggregate never sees plaintext. Construction goes through NewUser or
// RestoreUser only.
type User struct {
	id        int64
	name      string
	email     string
	password  string
	role      UserRole
	createdAt time.Time
	updatedAt time.Time

	clock Clock
}

// UserProps carries the caller-supplied fields for NewUser. Password must
// already be hashed.
type UserProps struct {
	Name     string
	Email    string
	Password string
	Role     UserRole
}

// NewUser validates props in a fixed order (name, email, password, role)
// and short-circuits on the first violation. A nil clock falls back to the
// system clock.
func NewUser(props UserProps, clk Clock) (*User, error) {
	if clk == nil {
		clk = SystemClock
	}
	if err := validateUserName(props.Name); err != nil {
		return nil, err
	}
	if err := validateUserEmail(props.Email); err != nil {
		return nil, err
	}
	if err := validateUserPassword(props.Password); err != nil {
		return nil, err
	}
	role := props.Role
	if role == "" {
		role = RoleUser
	}
	if !role.Valid() {
		return nil, newUserError("Invalid user role")
	}

	now := clk.Now()
	return &User{
		id:        newID(),
		name:      props.Name,
		email:     props.Email,
		password:  props.Password,
		role:      role,
		createdAt: now,
		updatedAt: now,
		clock:     clk,
	}, nil
}

// UserRecord is the persisted shape of a user.
type UserRecord struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreUser rehydrates a user from persistence. The record already passed
// the invariants when it was created, so no validation is re-run and the id
// and timestamps are preserved as stored.
func RestoreUser(rec UserRecord, clk Clock) *User {
	if clk == nil {
		clk = SystemClock
	}
	return &User{
		id:        rec.ID,
		name:      rec.Name,
		email:     rec.Email,
		password:  rec.Password,
		role:      rec.Role,
		createdAt: rec.CreatedAt,
		updatedAt: rec.UpdatedAt,
		clock:     clk,
	}
}

func (u *User) ID() int64            { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.password }
func (u *User) Role() UserRole       { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Record returns the persistable snapshot of the user.
func (u *User) Record() UserRecord {
	return UserRecord{
		ID:        u.id,
		Name:      u.name,
		Email:     u.email,
		Password:  u.password,
		Role:      u.role,
		CreatedAt: u.createdAt,
		UpdatedAt: u.updatedAt,
	}
}

// UpdateDetails replaces name, email and password hash together, re-running
// the creation validators for each field.
func (u *User) UpdateDetails(name, email, passwordHash string) error {
	if err := validateUserName(name); err != nil {
		return err
	}
	if err := validateUserEmail(email); err != nil {
		return err
	}
	if err := validateUserPassword(passwordHash); err != nil {
		return err
	}
	u.name = name
	u.email = email
	u.password = passwordHash
	u.touch()
	return nil
}

// UpdateProfile changes the display name only.
func (u *User) UpdateProfile(name string) error {
	if err := validateUserName(name); err != nil {
		return err
	}
	u.name = name
	u.touch()
	return nil
}

// ChangePassword stores a new password hash.
func (u *User) ChangePassword(passwordHash string) error {
	if err := validateUserPassword(passwordHash); err != nil {
		return err
	}
	u.password = passwordHash
	u.touch()
	return nil
}

// UpdateRole moves the user to the given role through the strict transition
// methods, so assigning the current role is rejected as a no-op.
func (u *User) UpdateRole(role UserRole) error {
	if !role.Valid() {
		return newUserError("Invalid user role")
	}
	if role == RoleAdmin {
		return u.PromoteToAdmin()
	}
	return u.DemoteToUser()
}

// PromoteToAdmin transitions USER -> ADMIN.
func (u *User) PromoteToAdmin() error {
	if u.role == RoleAdmin {
		return newUserError("User is already an admin")
	}
	u.role = RoleAdmin
	u.touch()
	return nil
}

// DemoteToUser transitions ADMIN -> USER.
func (u *User) DemoteToUser() error {
	if u.role == RoleUser {
		return newUserError("User is already a user")
	}
	u.role = RoleUser
	u.touch()
	return nil
}

func (u *User) touch() {
	u.updatedAt = u.clock.Now()
}

func validateUserName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return newUserError("Name is required")
	}
	if utf8.RuneCountInString(trimmed) < 2 {
		return newUserError("Name must be at least 2 characters long")
	}
	return nil
}

func validateUserEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return newUserError("Email is required")
	}
	if !emailPattern.MatchString(strings.ToLower(email)) {
		return newUserError("Invalid email format")
	}
	return nil
}

func validateUserPassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return newUserError("Password is required")
	}
	return nil
}
