package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/tailyapp/taily-api/internal/models"
	"github.com/tailyapp/taily-api/internal/repo/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.User, error)
	UpdateUserRole(ctx context.Context, id string, role models.Role) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type userUsecase struct {
	userRepo mongodb.UserRepository
}

func NewUserUsecase(userRepo mongodb.UserRepository) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
	}
}

func parseUserID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.NewInvalidArgument("Invalid user ID")
	}
	return oid, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc *userUsecase) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for _, user := range users {
		user.ComputeFullName()
	}
	return users, nil
}

func (uc *userUsecase) GetUser(ctx context.Context, id string) (*models.User, error) {
	oid, err := parseUserID(id)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, oid)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("User")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user.ComputeFullName()
	return user, nil
}

func (uc *userUsecase) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("User")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	user.ComputeFullName()
	return user, nil
}

func (uc *userUsecase) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:          normalizeEmail(req.Email),
		Password:       string(hash),
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Phone:          strings.TrimSpace(req.Phone),
		ProfilePicture: req.ProfilePicture,
		DateOfBirth:    req.DateOfBirth,
		IsActive:       true,
		Role:           models.RoleUser,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Role != "" {
		user.Role = req.Role
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Infow(ctx, "user created", "user_id", user.ID.Hex())
	user.ComputeFullName()
	return user, nil
}

func (uc *userUsecase) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.User, error) {
	oid, err := parseUserID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Email != nil {
		set["email"] = normalizeEmail(*req.Email)
	}
	if req.FirstName != nil {
		set["firstName"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		set["lastName"] = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		set["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.ProfilePicture != nil {
		set["profilePicture"] = *req.ProfilePicture
	}
	if req.DateOfBirth != nil {
		set["dateOfBirth"] = *req.DateOfBirth
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}
	if req.LastLogin != nil {
		set["lastLogin"] = *req.LastLogin
	}

	user, err := uc.userRepo.Update(ctx, oid, set)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("User")
	}
	if err != nil {
		return nil, err
	}
	user.ComputeFullName()
	return user, nil
}

func (uc *userUsecase) UpdateUserRole(ctx context.Context, id string, role models.Role) (*models.User, error) {
	oid, err := parseUserID(id)
	if err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, models.NewInvalidArgument("Invalid role")
	}

	user, err := uc.userRepo.Update(ctx, oid, bson.M{"role": role})
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("User")
	}
	if err != nil {
		return nil, err
	}

	log.Infow(ctx, "user role updated", "user_id", user.ID.Hex(), "role", role)
	user.ComputeFullName()
	return user, nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, id string) error {
	oid, err := parseUserID(id)
	if err != nil {
		return err
	}

	err = uc.userRepo.Delete(ctx, oid)
	if errors.Is(err, models.ErrNotFound) {
		return models.NewNotFound("User")
	}
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	log.Infow(ctx, "user deleted", "user_id", id)
	return nil
}
