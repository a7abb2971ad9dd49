package model

// User is a row of the users table.
type User struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// UserInput holds every mutable user field. Create and Update both
// overwrite all four.
type UserInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

type CreateUserRequest struct {
	UserInput
}

func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateUserRequest struct {
	ID int64 `param:"id" json:"-"`
	UserInput
}

func (r *UpdateUserRequest) Validate() error {
	return validate.Struct(r)
}

// UserIDRequest addresses a single user by path id. Any integer is
// accepted; one that matches no row resolves to not found.
type UserIDRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *UserIDRequest) Validate() error {
	return validate.Struct(r)
}
