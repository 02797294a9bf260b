package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/ophelieturenne/cloud-bookshelf/internal/errs"
	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
)

func (s *Service) RegisterUser(ctx context.Context, req model.UserCreateRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "hash password")
	}
	return s.repo.CreateUser(ctx, model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		PhoneNumber:  req.Phone,
	})
}

// Authenticate verifies the credentials and returns the user. The handler
// issues the token; credential protocol details stay out of the ledger.
func (s *Service) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return model.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, errs.ErrNotFound
	}
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, username string) (model.User, error) {
	return s.repo.GetUserByUsername(ctx, username)
}

// CreateLibrary generates the library's unique id and enrolls the creator as
// its admin.
func (s *Service) CreateLibrary(ctx context.Context, name string, creatorID int) (model.Library, error) {
	return s.repo.CreateLibrary(ctx, name, uuid.NewString(), creatorID)
}

func (s *Service) GetLibrary(ctx context.Context, libraryID int) (model.Library, error) {
	return s.repo.GetLibrary(ctx, libraryID)
}

func (s *Service) GetLibraries(ctx context.Context, userID int) ([]model.Library, error) {
	return s.repo.ListLibrariesForUser(ctx, userID)
}

// AccessLibrary joins the user to the library identified by its unique id.
func (s *Service) AccessLibrary(ctx context.Context, uniqueID string, userID int) (model.Library, error) {
	lib, err := s.repo.GetLibraryByUniqueID(ctx, uniqueID)
	if err != nil {
		return model.Library{}, err
	}
	if err := s.repo.AddMember(ctx, lib.ID, userID, false); err != nil {
		return model.Library{}, err
	}
	return lib, nil
}

// IsMember reports whether the user belongs to the library. Site-wide admins
// are handled by the caller, not here.
func (s *Service) IsMember(ctx context.Context, libraryID, userID int) (bool, error) {
	_, err := s.repo.Membership(ctx, libraryID, userID)
	if errors.Is(err, errs.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// IsLibraryAdmin reports per-library admin membership, independent of the
// site-wide admin flag.
func (s *Service) IsLibraryAdmin(ctx context.Context, libraryID, userID int) (bool, error) {
	member, err := s.repo.Membership(ctx, libraryID, userID)
	if errors.Is(err, errs.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return member.IsAdmin, nil
}
