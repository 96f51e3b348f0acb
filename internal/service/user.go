package service

import (
	"context"
	"fmt"

	"contaspro-backend/internal/domain"
	"contaspro-backend/internal/logger"
	"contaspro-backend/internal/store"
)

type userService struct {
	store store.Store
}

func NewUserService(s store.Store) UserService {
	return &userService{store: s}
}

func (s *userService) EnsureSeeded(ctx context.Context) error {
	users := s.store.Users()
	if len(users) == 0 {
		users = domain.InitialUsers()
		if err := s.store.SetUsers(users); err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		logger.Info("Seeded initial user roster", "count", len(users))
	}

	if s.store.CurrentUser() == nil {
		for _, u := range users {
			if u.Role == domain.UserRoleAdmin {
				if err := s.store.SetCurrentUser(u); err != nil {
					return fmt.Errorf("failed to set current user: %w", err)
				}
				logger.Info("Selected default current user", "user_id", u.ID)
				break
			}
		}
	}
	return nil
}

func (s *userService) ListUsers(ctx context.Context) []domain.User {
	return s.store.Users()
}

func (s *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range s.store.Users() {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *userService) CurrentUser(ctx context.Context) (*domain.User, error) {
	if u := s.store.CurrentUser(); u != nil {
		return u, nil
	}
	return nil, ErrUserNotFound
}

func (s *userService) SetCurrentUser(ctx context.Context, id string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.SetCurrentUser(*user); err != nil {
		return fmt.Errorf("failed to set current user: %w", err)
	}
	return nil
}

func (s *userService) UpdateAccessibleUnits(ctx context.Context, actorID, targetID string, units []string) error {
	actor, err := s.GetUser(ctx, actorID)
	if err != nil {
		return fmt.Errorf("actor: %w", err)
	}
	if actor.Role != domain.UserRoleAdmin {
		return ErrPermissionDenied
	}

	for _, id := range units {
		if !domain.KnownCompany(id) {
			return fmt.Errorf("%w: %s", ErrUnknownCompany, id)
		}
	}

	users := s.store.Users()
	found := false
	for i := range users {
		if users[i].ID == targetID {
			users[i].AccessibleUnits = units
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("target: %w", ErrUserNotFound)
	}

	if err := s.store.SetUsers(users); err != nil {
		return fmt.Errorf("failed to persist user permissions: %w", err)
	}

	// Keep the current-user pointer in sync with the roster
	if cur := s.store.CurrentUser(); cur != nil && cur.ID == targetID {
		cur.AccessibleUnits = units
		if err := s.store.SetCurrentUser(*cur); err != nil {
			return fmt.Errorf("failed to refresh current user: %w", err)
		}
	}

	logger.Info("Updated accessible units", "actor_id", actorID,
		"target_id", targetID, "units", units)
	return nil
}

func (s *userService) Companies(ctx context.Context) []domain.Company {
	return domain.Companies
}
