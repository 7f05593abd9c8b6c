package usecase

import (
	"context"
	"time"

	"github.com/tailyapp/taily-api/internal/models"
	"github.com/tailyapp/taily-api/internal/repo/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	_ mongodb.UserRepository = (*fakeUserRepo)(nil)
	_ mongodb.PetRepository  = (*fakePetRepo)(nil)
)

// fakeUserRepo is an in-memory stand-in for the users collection, including
// the unique-email behavior of the real index.
type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return models.NewConflict("email", "Email already exists")
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*models.User, error) {
	out := []*models.User{}
	for _, u := range f.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if email, ok := set["email"].(string); ok {
		for oid, other := range f.users {
			if oid != id && other.Email == email {
				return nil, models.NewConflict("email", "Email already exists")
			}
		}
		u.Email = email
	}
	if v, ok := set["firstName"].(string); ok {
		u.FirstName = v
	}
	if v, ok := set["lastName"].(string); ok {
		u.LastName = v
	}
	if v, ok := set["phone"].(string); ok {
		u.Phone = v
	}
	if v, ok := set["isActive"].(bool); ok {
		u.IsActive = v
	}
	if v, ok := set["role"].(models.Role); ok {
		u.Role = v
	}
	u.UpdatedAt = time.Now()
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.users[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

// fakePetRepo is an in-memory stand-in for the pets collection with the same
// embedded-array semantics as the Mongo implementation.
type fakePetRepo struct {
	pets map[primitive.ObjectID]*models.Pet
}

func newFakePetRepo() *fakePetRepo {
	return &fakePetRepo{pets: make(map[primitive.ObjectID]*models.Pet)}
}

func (f *fakePetRepo) Create(ctx context.Context, pet *models.Pet) error {
	pet.ID = primitive.NewObjectID()
	pet.CreatedAt = time.Now()
	pet.UpdatedAt = time.Now()
	stored := *pet
	f.pets[pet.ID] = &stored
	return nil
}

func (f *fakePetRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Pet, error) {
	p, ok := f.pets[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePetRepo) List(ctx context.Context) ([]*models.Pet, error) {
	out := []*models.Pet{}
	for _, p := range f.pets {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakePetRepo) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Pet, error) {
	out := []*models.Pet{}
	for _, p := range f.pets {
		if p.OwnerID == ownerID {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakePetRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Pet, error) {
	p, ok := f.pets[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if v, ok := set["name"].(string); ok {
		p.Name = v
	}
	if v, ok := set["breed"].(string); ok {
		p.Breed = v
	}
	if v, ok := set["petType"].(string); ok {
		p.PetType = v
	}
	if v, ok := set["ownerId"].(primitive.ObjectID); ok {
		p.OwnerID = v
	}
	p.UpdatedAt = time.Now()
	copied := *p
	return &copied, nil
}

func (f *fakePetRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Pet, error) {
	p, ok := f.pets[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	delete(f.pets, id)
	return p, nil
}

func (f *fakePetRepo) PushEmbedded(ctx context.Context, petID primitive.ObjectID, path string, entry any) (*models.Pet, error) {
	p, ok := f.pets[petID]
	if !ok {
		return nil, models.ErrNotFound
	}
	switch path {
	case mongodb.PathSchedules:
		p.Passport.Schedules = append(p.Passport.Schedules, entry.(models.Schedule))
	case mongodb.PathPetCare:
		p.PetCare = append(p.PetCare, entry.(models.CareRecord))
	case mongodb.PathMedicalRecords:
		p.MedicalRecords = append(p.MedicalRecords, entry.(models.MedicalRecord))
	case mongodb.PathPetIDs:
		p.PetIDs = append(p.PetIDs, entry.(models.PetIDRecord))
	}
	p.UpdatedAt = time.Now()
	copied := *p
	return &copied, nil
}

func (f *fakePetRepo) SetEmbedded(ctx context.Context, petID, entryID primitive.ObjectID, path string, entry any) (*models.Pet, error) {
	p, ok := f.pets[petID]
	if !ok {
		return nil, models.ErrNotFound
	}
	matched := false
	switch path {
	case mongodb.PathSchedules:
		for i, s := range p.Passport.Schedules {
			if s.ID == entryID {
				p.Passport.Schedules[i] = entry.(models.Schedule)
				matched = true
			}
		}
	case mongodb.PathPetCare:
		for i, c := range p.PetCare {
			if c.ID == entryID {
				p.PetCare[i] = entry.(models.CareRecord)
				matched = true
			}
		}
	case mongodb.PathMedicalRecords:
		for i, m := range p.MedicalRecords {
			if m.ID == entryID {
				p.MedicalRecords[i] = entry.(models.MedicalRecord)
				matched = true
			}
		}
	case mongodb.PathPetIDs:
		for i, r := range p.PetIDs {
			if r.ID == entryID {
				p.PetIDs[i] = entry.(models.PetIDRecord)
				matched = true
			}
		}
	}
	if !matched {
		return nil, models.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	copied := *p
	return &copied, nil
}

func (f *fakePetRepo) PullEmbedded(ctx context.Context, petID, entryID primitive.ObjectID, path string) (*models.Pet, error) {
	p, ok := f.pets[petID]
	if !ok {
		return nil, models.ErrNotFound
	}
	switch path {
	case mongodb.PathSchedules:
		kept := p.Passport.Schedules[:0]
		for _, s := range p.Passport.Schedules {
			if s.ID != entryID {
				kept = append(kept, s)
			}
		}
		p.Passport.Schedules = kept
	case mongodb.PathPetCare:
		kept := p.PetCare[:0]
		for _, c := range p.PetCare {
			if c.ID != entryID {
				kept = append(kept, c)
			}
		}
		p.PetCare = kept
	case mongodb.PathMedicalRecords:
		kept := p.MedicalRecords[:0]
		for _, m := range p.MedicalRecords {
			if m.ID != entryID {
				kept = append(kept, m)
			}
		}
		p.MedicalRecords = kept
	case mongodb.PathPetIDs:
		kept := p.PetIDs[:0]
		for _, r := range p.PetIDs {
			if r.ID != entryID {
				kept = append(kept, r)
			}
		}
		p.PetIDs = kept
	}
	p.UpdatedAt = time.Now()
	copied := *p
	return &copied, nil
}
