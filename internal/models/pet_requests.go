package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WeightRequest struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit" validate:"omitempty,oneof=kg lbs g oz"`
}

func (r *WeightRequest) Weight() *Weight {
	if r == nil {
		return nil
	}
	return &Weight{Value: r.Value, Unit: r.Unit}
}

type IdentifiersRequest struct {
	MicrochipNumber    string   `json:"microchipNumber"`
	MicrochipLocation  string   `json:"microchipLocation"`
	ClipLocation       string   `json:"clipLocation"`
	Size               string   `json:"size"`
	ColorMarkings      string   `json:"colorMarkings"`
	IsNeuteredOrSpayed bool     `json:"isNeuteredOrSpayed"`
	Allergies          []string `json:"allergies"`
}

func (r *IdentifiersRequest) Identifiers() Identifiers {
	if r == nil {
		return Identifiers{Allergies: []string{}}
	}
	allergies := r.Allergies
	if allergies == nil {
		allergies = []string{}
	}
	return Identifiers{
		MicrochipNumber:    r.MicrochipNumber,
		MicrochipLocation:  r.MicrochipLocation,
		ClipLocation:       r.ClipLocation,
		Size:               r.Size,
		ColorMarkings:      r.ColorMarkings,
		IsNeuteredOrSpayed: r.IsNeuteredOrSpayed,
		Allergies:          allergies,
	}
}

type CreatePetRequest struct {
	Name        string               `json:"name" validate:"required"`
	PhotoURL    string               `json:"photoUrl" validate:"omitempty,url"`
	Gender      string               `json:"gender" validate:"required,oneof=Male Female"`
	DateOfBirth *time.Time           `json:"dateOfBirth"`
	PetType     string               `json:"petType" validate:"required"`
	Breed       string               `json:"breed"`
	Weight      *WeightRequest       `json:"weight"`
	OwnerID     string               `json:"ownerId" validate:"required"`
	Identifiers *IdentifiersRequest  `json:"identifiers"`
	PetIDs      []PetIDRecordRequest `json:"petIds" validate:"omitempty,dive"`
}

// Pet builds the document to persist. Embedded collections are always
// initialized to empty arrays so mutation paths never have to create them.
func (r CreatePetRequest) Pet(ownerID primitive.ObjectID) *Pet {
	petIDs := make([]PetIDRecord, 0, len(r.PetIDs))
	for _, id := range r.PetIDs {
		petIDs = append(petIDs, id.Entry(primitive.NewObjectID()))
	}
	return &Pet{
		Name:           r.Name,
		PhotoURL:       r.PhotoURL,
		Gender:         r.Gender,
		DateOfBirth:    r.DateOfBirth,
		PetType:        r.PetType,
		Breed:          r.Breed,
		Weight:         r.Weight.Weight(),
		OwnerID:        ownerID,
		Identifiers:    r.Identifiers.Identifiers(),
		Passport:       Passport{Schedules: []Schedule{}},
		PetCare:        []CareRecord{},
		MedicalRecords: []MedicalRecord{},
		PetIDs:         petIDs,
	}
}

type UpdatePetRequest struct {
	Name        *string             `json:"name" validate:"omitempty,min=1"`
	PhotoURL    *string             `json:"photoUrl" validate:"omitempty,url"`
	Gender      *string             `json:"gender" validate:"omitempty,oneof=Male Female"`
	DateOfBirth *time.Time          `json:"dateOfBirth"`
	PetType     *string             `json:"petType" validate:"omitempty,min=1"`
	Breed       *string             `json:"breed"`
	Weight      *WeightRequest      `json:"weight"`
	OwnerID     *string             `json:"ownerId"`
	Identifiers *IdentifiersRequest `json:"identifiers"`
}

// Updates builds the partial $set document from the fields that were present
// in the payload. The owner reference is resolved by the usecase and passed
// in separately when it changes.
func (r UpdatePetRequest) Updates(ownerID *primitive.ObjectID) bson.M {
	set := bson.M{}
	if r.Name != nil {
		set["name"] = *r.Name
	}
	if r.PhotoURL != nil {
		set["photoUrl"] = *r.PhotoURL
	}
	if r.Gender != nil {
		set["gender"] = *r.Gender
	}
	if r.DateOfBirth != nil {
		set["dateOfBirth"] = *r.DateOfBirth
	}
	if r.PetType != nil {
		set["petType"] = *r.PetType
	}
	if r.Breed != nil {
		set["breed"] = *r.Breed
	}
	if r.Weight != nil {
		set["weight"] = r.Weight.Weight()
	}
	if ownerID != nil {
		set["ownerId"] = *ownerID
	}
	if r.Identifiers != nil {
		set["identifiers"] = r.Identifiers.Identifiers()
	}
	return set
}

type GivenRequest struct {
	IsGiven       bool       `json:"isGiven"`
	Type          string     `json:"type"`
	DateTime      *time.Time `json:"dateTime"`
	ProofPhotoURL string     `json:"proofPhotoUrl" validate:"omitempty,url"`
}

type ScheduleRequest struct {
	VaccineType   string         `json:"vaccineType" validate:"required"`
	Hospital      string         `json:"hospital"`
	SchedDateTime time.Time      `json:"schedDateTime" validate:"required"`
	Notes         string         `json:"notes"`
	Given         *GivenRequest  `json:"given"`
	Weight        *WeightRequest `json:"weight"`
	VetName       string         `json:"vetName"`
}

func (r ScheduleRequest) Entry(id primitive.ObjectID) Schedule {
	entry := Schedule{
		ID:            id,
		VaccineType:   r.VaccineType,
		Hospital:      r.Hospital,
		SchedDateTime: r.SchedDateTime,
		Notes:         r.Notes,
		Weight:        r.Weight.Weight(),
		VetName:       r.VetName,
	}
	if r.Given != nil {
		entry.Given = GivenInfo{
			IsGiven:       r.Given.IsGiven,
			Type:          r.Given.Type,
			DateTime:      r.Given.DateTime,
			ProofPhotoURL: r.Given.ProofPhotoURL,
		}
	}
	return entry
}

type GroomedRequest struct {
	IsGroomed         bool       `json:"isGroomed"`
	DateTime          *time.Time `json:"dateTime"`
	ReferencePhotoURL string     `json:"referencePhotoUrl" validate:"omitempty,url"`
}

type CareRecordRequest struct {
	CareType      string          `json:"careType" validate:"required"`
	Clinic        string          `json:"clinic"`
	SchedDateTime time.Time       `json:"schedDateTime" validate:"required"`
	Notes         string          `json:"notes"`
	Groomed       *GroomedRequest `json:"groomed"`
	Weight        *WeightRequest  `json:"weight"`
	GroomerName   string          `json:"groomerName"`
}

func (r CareRecordRequest) Entry(id primitive.ObjectID) CareRecord {
	entry := CareRecord{
		ID:            id,
		CareType:      r.CareType,
		Clinic:        r.Clinic,
		SchedDateTime: r.SchedDateTime,
		Notes:         r.Notes,
		Weight:        r.Weight.Weight(),
		GroomerName:   r.GroomerName,
	}
	if r.Groomed != nil {
		entry.Groomed = GroomedInfo{
			IsGroomed:         r.Groomed.IsGroomed,
			DateTime:          r.Groomed.DateTime,
			ReferencePhotoURL: r.Groomed.ReferencePhotoURL,
		}
	}
	return entry
}

type DoneRequest struct {
	IsDone            bool       `json:"isDone"`
	DateTime          *time.Time `json:"dateTime"`
	ReferencePhotoURL string     `json:"referencePhotoUrl" validate:"omitempty,url"`
}

type MedicalRecordRequest struct {
	MedicalType  string         `json:"medicalType" validate:"required"`
	Clinic       string         `json:"clinic"`
	DateTime     time.Time      `json:"dateTime" validate:"required"`
	Diagnosis    string         `json:"diagnosis"`
	Prescription string         `json:"prescription"`
	Symptoms     string         `json:"symptoms"`
	Notes        string         `json:"notes"`
	Done         *DoneRequest   `json:"done"`
	Weight       *WeightRequest `json:"weight"`
	VetName      string         `json:"vetName"`
}

func (r MedicalRecordRequest) Entry(id primitive.ObjectID) MedicalRecord {
	entry := MedicalRecord{
		ID:           id,
		MedicalType:  r.MedicalType,
		Clinic:       r.Clinic,
		DateTime:     r.DateTime,
		Diagnosis:    r.Diagnosis,
		Prescription: r.Prescription,
		Symptoms:     r.Symptoms,
		Notes:        r.Notes,
		Weight:       r.Weight.Weight(),
		VetName:      r.VetName,
	}
	if r.Done != nil {
		entry.Done = DoneInfo{
			IsDone:            r.Done.IsDone,
			DateTime:          r.Done.DateTime,
			ReferencePhotoURL: r.Done.ReferencePhotoURL,
		}
	}
	return entry
}

type PetIDRecordRequest struct {
	PetID  string `json:"petId"`
	IDName string `json:"idName"`
	IDURL  string `json:"idUrl" validate:"omitempty,url"`
}

func (r PetIDRecordRequest) Entry(id primitive.ObjectID) PetIDRecord {
	return PetIDRecord{
		ID:     id,
		PetID:  strings.TrimSpace(r.PetID),
		IDName: strings.TrimSpace(r.IDName),
		IDURL:  r.IDURL,
	}
}
