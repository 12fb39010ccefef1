package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRole is returned when a role name does not match a known role.
var ErrInvalidRole = errors.New("invalid role")

// Role indicates the user's authorization level within the system.
// It serializes as its name ("Admin", "User"), never as a number.
type Role int

const (
	RoleUser Role = iota
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleUser:
		return "User"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// ParseRole converts a role name into a Role.
func ParseRole(name string) (Role, error) {
	switch name {
	case "Admin":
		return RoleAdmin, nil
	case "User":
		return RoleUser, nil
	default:
		return RoleUser, fmt.Errorf("%w: %q", ErrInvalidRole, name)
	}
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseRole(name)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value stores the role name, keeping rows readable.
func (r Role) Value() (driver.Value, error) {
	return r.String(), nil
}

func (r *Role) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseRole(v)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	case []byte:
		parsed, err := ParseRole(string(v))
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan role from %T", src)
	}
}

// User represents an account in the system.
// It contains identity, role, and audit metadata.
type User struct {
	// ID is the unique identifier of the user, assigned by the store.
	ID int `json:"id" db:"id"`

	// Title is an optional salutation ("Mr", "Mrs", ...).
	Title string `json:"title" db:"title"`

	// FirstName and LastName are display names.
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`

	// Email is the user's email address. Exactly one user may hold a
	// given email at any time.
	Email string `json:"email" db:"email"`

	// Role indicates the user's authorization level.
	Role Role `json:"role" db:"role"`

	// PasswordHash stores the hashed representation of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the user account.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Title           string `json:"title"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// UpdateUserRequest is the payload for partially updating a user.
// Every field is optional; a nil field is left untouched, an empty
// string is applied as-is.
type UpdateUserRequest struct {
	Title     *string `json:"title"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
	Password  *string `json:"password"`
}

// NewUser builds a User from a create request. The role defaults to
// User when the request leaves it empty. PasswordHash is not set here;
// hashing is the service's job.
func NewUser(req CreateUserRequest) (User, error) {
	role := RoleUser
	if req.Role != "" {
		parsed, err := ParseRole(req.Role)
		if err != nil {
			return User{}, err
		}
		role = parsed
	}
	return User{
		Title:     req.Title,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      role,
	}, nil
}

// ApplyTo copies the fields present in the request onto the user.
// Nil fields are skipped, so an omitted JSON field never overwrites
// stored data. Password is deliberately not handled here.
func (req UpdateUserRequest) ApplyTo(user *User) error {
	if req.Title != nil {
		user.Title = *req.Title
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		parsed, err := ParseRole(*req.Role)
		if err != nil {
			return err
		}
		user.Role = parsed
	}
	return nil
}
