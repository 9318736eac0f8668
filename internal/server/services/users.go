package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/common"
	"github.com/dmitrijs2005/fittrack/internal/dbx"
	"github.com/dmitrijs2005/fittrack/internal/server/auth"
	"github.com/dmitrijs2005/fittrack/internal/server/authz"
	"github.com/dmitrijs2005/fittrack/internal/server/config"
	"github.com/dmitrijs2005/fittrack/internal/server/models"
	"github.com/dmitrijs2005/fittrack/internal/server/repositories/repomanager"
)

// UserService handles signup, login and account management.
type UserService struct {
	db                    *sql.DB
	repos                 repomanager.RepositoryManager
	resolver              *authz.Resolver
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bcryptCost            int
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repos:                 m,
		resolver:              authz.NewResolver(db, m),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		bcryptCost:            cfg.BcryptCost,
	}
}

// uniqueUserError maps a duplicate-key failure on the users table to a
// validation error naming the colliding field. Any other store error passes
// through and surfaces as a server fault.
func uniqueUserError(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return err
	}
	if strings.Contains(constraint, "email") {
		return invalidf("email must be unique")
	}
	return invalidf("username must be unique")
}

func validateCredentials(username, email, password string) error {
	if username == "" {
		return invalidf("username is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return invalidf("email is not valid")
	}
	if len(password) < 6 {
		return invalidf("password must be at least 6 characters")
	}
	return nil
}

// Register creates an account and returns it together with a signed access
// token, so signup doubles as login.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	if err := validateCredentials(username, email, password); err != nil {
		return nil, "", err
	}

	digest, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:       username,
		Email:          email,
		PasswordDigest: digest,
	}

	user, err = s.repos.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, "", uniqueUserError(err)
	}

	token, err := auth.GenerateToken(user.ID, user.Admin, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %w", err)
	}

	return user, token, nil
}

// Login verifies the credentials and returns a signed access token. A wrong
// email and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repos.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", fmt.Errorf("%w: invalid email or password", common.ErrorInvalid)
		}
		return "", err
	}

	if !auth.CheckPassword(user.PasswordDigest, password) {
		return "", fmt.Errorf("%w: invalid email or password", common.ErrorInvalid)
	}

	token, err := auth.GenerateToken(user.ID, user.Admin, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}

// Me returns the authenticated caller's account.
func (s *UserService) Me(ctx context.Context, p *authz.Principal) (*models.User, error) {
	if out := authz.DecideAccess(p, authz.Check{}); out != authz.Allow {
		return nil, out.Err()
	}
	return s.repos.Users(s.db).Get(ctx, p.UserID)
}

// UpdateMe changes the caller's own username and email.
func (s *UserService) UpdateMe(ctx context.Context, p *authz.Principal, username, email string) (*models.User, error) {
	if out := authz.DecideAccess(p, authz.Check{}); out != authz.Allow {
		return nil, out.Err()
	}
	if username == "" {
		return nil, invalidf("username is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, invalidf("email is not valid")
	}

	user, err := s.repos.Users(s.db).Get(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	user.Username = username
	user.Email = email
	user, err = s.repos.Users(s.db).Update(ctx, user)
	if err != nil {
		return nil, uniqueUserError(err)
	}
	return user, nil
}

// List returns all accounts. Admin only.
func (s *UserService) List(ctx context.Context, p *authz.Principal) ([]*models.User, error) {
	if out := authz.DecideAccess(p, authz.Check{RequireAdmin: true}); out != authz.Allow {
		return nil, out.Err()
	}
	return s.repos.Users(s.db).List(ctx)
}

// Delete removes an account by id. Admin only; read-then-delete so the
// caller gets the removed entity back and a dead id yields NotFound. The
// whole owned hierarchy goes with the account, children first in one
// transaction: the grandchild foreign keys are RESTRICT, so the rows must be
// gone before their parents.
func (s *UserService) Delete(ctx context.Context, p *authz.Principal, id int64) (*models.User, error) {
	if out := authz.DecideAccess(p, authz.Check{RequireAdmin: true}); out != authz.Allow {
		return nil, out.Err()
	}

	user, err := s.repos.Users(s.db).Get(ctx, id)
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		workouts, err := s.repos.Workouts(tx).ListByUser(ctx, id)
		if err != nil {
			return err
		}
		for _, w := range workouts {
			if err := s.repos.TargetExercises(tx).DeleteByWorkout(ctx, w.ID); err != nil {
				return err
			}
			if err := s.repos.Workouts(tx).Delete(ctx, w.ID); err != nil {
				return err
			}
		}

		completed, err := s.repos.CompletedWorkouts(tx).ListByUser(ctx, id)
		if err != nil {
			return err
		}
		for _, cw := range completed {
			if err := s.repos.CompletedExercises(tx).DeleteByCompletedWorkout(ctx, cw.ID); err != nil {
				return err
			}
			if err := s.repos.CompletedWorkouts(tx).Delete(ctx, cw.ID); err != nil {
				return err
			}
		}

		return s.repos.Users(tx).Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
