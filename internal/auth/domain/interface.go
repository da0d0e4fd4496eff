package domain

import "context"

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	Insert(ctx context.Context, user *User) error
	UpdateLoginInfo(ctx context.Context, user *User) error

	// InTx runs fn against a repository bound to one transaction. An error
	// from fn rolls every write back; nil commits them as a unit.
	InTx(ctx context.Context, fn func(UserRepository) error) error
}

// Mailer delivers verification emails. Implementations may send
// asynchronously; a delivery failure after dispatch is not surfaced to the
// original caller.
type Mailer interface {
	SendVerificationCode(ctx context.Context, to, code, purpose string) error
}
