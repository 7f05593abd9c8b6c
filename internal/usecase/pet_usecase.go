package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/tailyapp/taily-api/internal/models"
	"github.com/tailyapp/taily-api/internal/repo/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

type PetUsecase interface {
	ListPets(ctx context.Context) ([]*models.Pet, error)
	ListPetsByOwner(ctx context.Context, userID string) ([]*models.Pet, error)
	GetPet(ctx context.Context, id string) (*models.Pet, error)
	CreatePet(ctx context.Context, req models.CreatePetRequest) (*models.Pet, error)
	UpdatePet(ctx context.Context, id string, req models.UpdatePetRequest) (*models.Pet, error)
	DeletePet(ctx context.Context, id string) (*models.Pet, error)

	AddSchedule(ctx context.Context, petID string, req models.ScheduleRequest) (*models.Schedule, error)
	UpdateSchedule(ctx context.Context, petID, scheduleID string, req models.ScheduleRequest) (*models.Pet, error)
	DeleteSchedule(ctx context.Context, petID, scheduleID string) (*models.Pet, error)

	AddCareRecord(ctx context.Context, petID string, req models.CareRecordRequest) (*models.CareRecord, error)
	UpdateCareRecord(ctx context.Context, petID, careID string, req models.CareRecordRequest) (*models.Pet, error)
	DeleteCareRecord(ctx context.Context, petID, careID string) (*models.Pet, error)

	AddMedicalRecord(ctx context.Context, petID string, req models.MedicalRecordRequest) (*models.MedicalRecord, error)
	UpdateMedicalRecord(ctx context.Context, petID, recordID string, req models.MedicalRecordRequest) (*models.Pet, error)
	DeleteMedicalRecord(ctx context.Context, petID, recordID string) (*models.Pet, error)

	AddPetIDRecord(ctx context.Context, petID string, req models.PetIDRecordRequest) (*models.Pet, error)
	UpdatePetIDRecord(ctx context.Context, petID, recordID string, req models.PetIDRecordRequest) (*models.Pet, error)
	DeletePetIDRecord(ctx context.Context, petID, recordID string) (*models.Pet, error)
}

type petUsecase struct {
	petRepo  mongodb.PetRepository
	userRepo mongodb.UserRepository
}

func NewPetUsecase(petRepo mongodb.PetRepository, userRepo mongodb.UserRepository) PetUsecase {
	return &petUsecase{
		petRepo:  petRepo,
		userRepo: userRepo,
	}
}

func parsePetID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.NewInvalidArgument("Invalid pet ID")
	}
	return oid, nil
}

func parseEntryID(id, resource string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.NewInvalidArgument("Invalid " + resource + " ID")
	}
	return oid, nil
}

// resolveOwner attaches the owner projection to a single pet. A dangling
// owner reference is left unresolved rather than failing the read; the store
// enforces no referential integrity between pets and users.
func (uc *petUsecase) resolveOwner(ctx context.Context, pet *models.Pet) error {
	user, err := uc.userRepo.GetByID(ctx, pet.OwnerID)
	if errors.Is(err, models.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to resolve owner: %w", err)
	}
	user.ComputeFullName()
	pet.Owner = &models.OwnerSummary{
		ID:    user.ID,
		Name:  user.FullName,
		Email: user.Email,
	}
	return nil
}

// resolveOwners resolves owner projections for a list of pets, fetching each
// distinct owner once.
func (uc *petUsecase) resolveOwners(ctx context.Context, pets []*models.Pet) error {
	ownerIDs := make(map[primitive.ObjectID]struct{})
	for _, pet := range pets {
		ownerIDs[pet.OwnerID] = struct{}{}
	}

	var mu sync.Mutex
	owners := make(map[primitive.ObjectID]*models.OwnerSummary, len(ownerIDs))
	group, ctx := errgroup.WithContext(ctx)
	for id := range ownerIDs {
		group.Go(func() error {
			user, err := uc.userRepo.GetByID(ctx, id)
			if errors.Is(err, models.ErrNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to resolve owner: %w", err)
			}
			user.ComputeFullName()
			mu.Lock()
			owners[id] = &models.OwnerSummary{
				ID:    user.ID,
				Name:  user.FullName,
				Email: user.Email,
			}
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for _, pet := range pets {
		pet.Owner = owners[pet.OwnerID]
	}
	return nil
}

func (uc *petUsecase) ListPets(ctx context.Context) ([]*models.Pet, error) {
	pets, err := uc.petRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	if err := uc.resolveOwners(ctx, pets); err != nil {
		return nil, err
	}
	return pets, nil
}

func (uc *petUsecase) ListPetsByOwner(ctx context.Context, userID string) ([]*models.Pet, error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, models.NewInvalidArgument("Invalid user ID")
	}

	pets, err := uc.petRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets by owner: %w", err)
	}
	if err := uc.resolveOwners(ctx, pets); err != nil {
		return nil, err
	}
	return pets, nil
}

func (uc *petUsecase) GetPet(ctx context.Context, id string) (*models.Pet, error) {
	oid, err := parsePetID(id)
	if err != nil {
		return nil, err
	}

	pet, err := uc.petRepo.GetByID(ctx, oid)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("Pet")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}
	if err := uc.resolveOwner(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (uc *petUsecase) CreatePet(ctx context.Context, req models.CreatePetRequest) (*models.Pet, error) {
	ownerID, err := primitive.ObjectIDFromHex(req.OwnerID)
	if err != nil {
		return nil, models.NewInvalidArgument("Invalid owner ID")
	}

	pet := req.Pet(ownerID)
	if err := uc.petRepo.Create(ctx, pet); err != nil {
		return nil, err
	}

	log.Infow(ctx, "pet created", "pet_id", pet.ID.Hex(), "owner_id", req.OwnerID)
	if err := uc.resolveOwner(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (uc *petUsecase) UpdatePet(ctx context.Context, id string, req models.UpdatePetRequest) (*models.Pet, error) {
	oid, err := parsePetID(id)
	if err != nil {
		return nil, err
	}

	var ownerID *primitive.ObjectID
	if req.OwnerID != nil {
		parsed, err := primitive.ObjectIDFromHex(*req.OwnerID)
		if err != nil {
			return nil, models.NewInvalidArgument("Invalid owner ID")
		}
		ownerID = &parsed
	}

	pet, err := uc.petRepo.Update(ctx, oid, req.Updates(ownerID))
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("Pet")
	}
	if err != nil {
		return nil, err
	}
	if err := uc.resolveOwner(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (uc *petUsecase) DeletePet(ctx context.Context, id string) (*models.Pet, error) {
	oid, err := parsePetID(id)
	if err != nil {
		return nil, err
	}

	pet, err := uc.petRepo.Delete(ctx, oid)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("Pet")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete pet: %w", err)
	}

	log.Infow(ctx, "pet deleted", "pet_id", id)
	if err := uc.resolveOwner(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (uc *petUsecase) AddSchedule(ctx context.Context, petID string, req models.ScheduleRequest) (*models.Schedule, error) {
	oid, err := parsePetID(petID)
	if err != nil {
		return nil, err
	}

	entry := req.Entry(primitive.NewObjectID())
	if _, err := uc.petRepo.PushEmbedded(ctx, oid, mongodb.PathSchedules, entry); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.NewNotFound("Pet")
		}
		return nil, err
	}
	return &entry, nil
}

func (uc *petUsecase) UpdateSchedule(ctx context.Context, petID, scheduleID string, req models.ScheduleRequest) (*models.Pet, error) {
	oid, err := parsePetID(petID)
	if err != nil {
		return nil, err
	}
	entryID, err := parseEntryID(scheduleID, "schedule")
	if err != nil {
		return nil, err
	}

	pet, err := uc.petRepo.SetEmbedded(ctx, oid, entryID, mongodb.PathSchedules, req.Entry(entryID))
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("Pet or schedule")
	}
	if err != nil {
		return nil, err
	}
	if err := uc.resolveOwner(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (uc *petUsecase) DeleteSchedule(ctx context.Context, petID, scheduleID string) (*models.Pet, error) {
	oid, err := parsePetID(petID)
	if err != nil {
		return nil, err
	}
	entryID, err := parseEntryID(scheduleID, "schedule")
	if err != nil {
		return nil, err
	}

	pet, err := uc.petRepo.GetByID(ctx, oid)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("Pet")
	}
	if err != nil {
		return nil, err
	}

	found := false
	for _, s := range pet.Passport.Schedules {
		if s.ID == entryID {
			found = true
			break
		}
	}
	if !found {
		return nil, models.NewNotFound("Schedule")
	}

	updated, err := uc.petRepo.PullEmbedded(ctx, oid, entryID, mongodb.PathSchedules)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("Pet")
	}
	if err != nil {
		return nil, err
	}
	if err := uc.resolveOwner(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *petUsecase) AddCareRecord(ctx context.Context, petID string, req models.CareRecordRequest) (*models.CareRecord, error) {
	oid, err := parsePetID(petID)
	if err != nil {
		return nil, err
	}

	entry := req.Entry(primitive.NewObjectID())
	if _, err := uc.petRepo.PushEmbedded(ctx, oid, mongodb.PathPetCare, entry); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.NewNotFound("Pet")
		}
		return nil, err
	}
	return &entry, nil
}

func (uc *petUsecase) UpdateCareRecord(ctx context.Context, petID, careID string, req models.CareRecordRequest) (*models.Pet, error) {
	oid, err := parsePetID(petID)
	if err != nil {
		return nil, err
	}
	entryID, err := parseEntryID(careID, "care record")
	if err != nil {
		return nil, err
	}

	pet, err := uc.petRepo.SetEmbedded(ctx, oid, entryID, mongodb.PathPetCare, req.Entry(entryID))
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("Pet or care record")
	}
	if err != nil {
		return nil, err
	}
	if err := uc.resolveOwner(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (uc *petUsecase) DeleteCareRecord(ctx context.Context, petID, careID string) (*models.Pet, error) {
	oid, err := parsePetID(petID)
	if err != nil {
		return nil, err
	}
	entryID, err := parseEntryID(careID, "care record")
	if err != nil {
		return nil, err
	}

	pet, err := uc.petRepo.GetByID(ctx, oid)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("Pet")
	}
	if err != nil {
		return nil, err
	}

	found := false
	for _, c := range pet.PetCare {
		if c.ID == entryID {
			found = true
			break
		}
	}
	if !found {
		return nil, models.NewNotFound("Care record")
	}

	updated, err := uc.petRepo.PullEmbedded(ctx, oid, entryID, mongodb.PathPetCare)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("Pet")
	}
	if err != nil {
		return nil, err
	}
	if err := uc.resolveOwner(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *petUsecase) AddMedicalRecord(ctx context.Context, petID string, req models.MedicalRecordRequest) (*models.MedicalRecord, error) {
	oid, err := parsePetID(petID)
	if err != nil {
		return nil, err
	}

	entry := req.Entry(primitive.NewObjectID())
	if _, err := uc.petRepo.PushEmbedded(ctx, oid, mongodb.PathMedicalRecords, entry); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.NewNotFound("Pet")
		}
		return nil, err
	}
	return &entry, nil
}

func (uc *petUsecase) UpdateMedicalRecord(ctx context.Context, petID, recordID string, req models.MedicalRecordRequest) (*models.Pet, error) {
	oid, err := parsePetID(petID)
	if err != nil {
		return nil, err
	}
	entryID, err := parseEntryID(recordID, "medical record")
	if err != nil {
		return nil, err
	}

	pet, err := uc.petRepo.SetEmbedded(ctx, oid, entryID, mongodb.PathMedicalRecords, req.Entry(entryID))
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("Pet or medical record")
	}
	if err != nil {
		return nil, err
	}
	if err := uc.resolveOwner(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (uc *petUsecase) DeleteMedicalRecord(ctx context.Context, petID, recordID string) (*models.Pet, error) {
	oid, err := parsePetID(petID)
	if err != nil {
		return nil, err
	}
	entryID, err := parseEntryID(recordID, "medical record")
	if err != nil {
		return nil, err
	}

	pet, err := uc.petRepo.GetByID(ctx, oid)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("Pet")
	}
	if err != nil {
		return nil, err
	}

	found := false
	for _, m := range pet.MedicalRecords {
		if m.ID == entryID {
			found = true
			break
		}
	}
	if !found {
		return nil, models.NewNotFound("Medical record")
	}

	updated, err := uc.petRepo.PullEmbedded(ctx, oid, entryID, mongodb.PathMedicalRecords)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("Pet")
	}
	if err != nil {
		return nil, err
	}
	if err := uc.resolveOwner(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *petUsecase) AddPetIDRecord(ctx context.Context, petID string, req models.PetIDRecordRequest) (*models.Pet, error) {
	oid, err := parsePetID(petID)
	if err != nil {
		return nil, err
	}

	entry := req.Entry(primitive.NewObjectID())
	pet, err := uc.petRepo.PushEmbedded(ctx, oid, mongodb.PathPetIDs, entry)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("Pet")
	}
	if err != nil {
		return nil, err
	}
	if err := uc.resolveOwner(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (uc *petUsecase) UpdatePetIDRecord(ctx context.Context, petID, recordID string, req models.PetIDRecordRequest) (*models.Pet, error) {
	oid, err := parsePetID(petID)
	if err != nil {
		return nil, err
	}
	entryID, err := parseEntryID(recordID, "petId record")
	if err != nil {
		return nil, err
	}

	pet, err := uc.petRepo.SetEmbedded(ctx, oid, entryID, mongodb.PathPetIDs, req.Entry(entryID))
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("Pet or petId record")
	}
	if err != nil {
		return nil, err
	}
	if err := uc.resolveOwner(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (uc *petUsecase) DeletePetIDRecord(ctx context.Context, petID, recordID string) (*models.Pet, error) {
	oid, err := parsePetID(petID)
	if err != nil {
		return nil, err
	}
	entryID, err := parseEntryID(recordID, "petId record")
	if err != nil {
		return nil, err
	}

	pet, err := uc.petRepo.GetByID(ctx, oid)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("Pet")
	}
	if err != nil {
		return nil, err
	}

	found := false
	for _, p := range pet.PetIDs {
		if p.ID == entryID {
			found = true
			break
		}
	}
	if !found {
		return nil, models.NewNotFound("Pet ID record")
	}

	updated, err := uc.petRepo.PullEmbedded(ctx, oid, entryID, mongodb.PathPetIDs)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewNotFound("Pet")
	}
	if err != nil {
		return nil, err
	}
	if err := uc.resolveOwner(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
