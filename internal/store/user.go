package store

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/bookpulse/bookpulse-server/internal/domain"
)

// UpsertUserInput carries the identity fields resolved from a request.
type UpsertUserInput struct {
	OpenID      string
	Name        string
	Email       string
	LoginMethod string
	Role        domain.Role // Optional; empty preserves the existing role
}

// UpsertUser creates or updates a user keyed by OpenID.
// On update, non-empty input fields overwrite the stored record and
// LastSignedIn advances. The existing role is preserved unless the input
// carries an explicit role.
func (s *Store) UpsertUser(ctx context.Context, input UpsertUserInput) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user domain.User

	err := s.db.Update(func(txn *badger.Txn) error {
		now := time.Now()
		openIDKey := []byte(userByOpenIDPrefix + input.OpenID)

		item, err := txn.Get(openIDKey)
		if err == nil {
			// Existing user: merge.
			var id int64
			if verr := item.Value(func(val []byte) error {
				n, perr := strconv.ParseInt(string(val), 10, 64)
				id = n
				return perr
			}); verr != nil {
				return verr
			}

			if err := getJSON(txn, idKey(userPrefix, id), &user); err != nil {
				return err
			}

			if input.Name != "" {
				user.Name = input.Name
			}
			if input.Email != "" {
				user.Email = input.Email
			}
			if input.LoginMethod != "" {
				user.LoginMethod = input.LoginMethod
			}
			if input.Role != "" {
				user.Role = input.Role
			}
			user.LastSignedIn = now
			user.UpdatedAt = now

			return setJSON(txn, idKey(userPrefix, id), &user)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		// New user.
		id, err := nextID(txn, "user")
		if err != nil {
			return err
		}

		role := input.Role
		if role == "" {
			role = domain.RoleUser
		}

		user = domain.User{
			ID:           id,
			OpenID:       input.OpenID,
			Name:         input.Name,
			Email:        input.Email,
			LoginMethod:  input.LoginMethod,
			Role:         role,
			CreatedAt:    now,
			UpdatedAt:    now,
			LastSignedIn: now,
		}

		if err := setJSON(txn, idKey(userPrefix, id), &user); err != nil {
			return err
		}
		return txn.Set(openIDKey, []byte(strconv.FormatInt(id, 10)))
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user domain.User
	err := s.db.View(func(txn *badger.Txn) error {
		err := getJSON(txn, idKey(userPrefix, id), &user)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrUserNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByOpenID retrieves a user by external identity.
func (s *Store) GetUserByOpenID(ctx context.Context, openID string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user domain.User
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userByOpenIDPrefix + openID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		var id int64
		if verr := item.Value(func(val []byte) error {
			n, perr := strconv.ParseInt(string(val), 10, 64)
			id = n
			return perr
		}); verr != nil {
			return verr
		}

		err = getJSON(txn, idKey(userPrefix, id), &user)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrUserNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
