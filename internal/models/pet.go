package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Weight struct {
	Value float64 `bson:"value,omitempty" json:"value,omitempty"`
	Unit  string  `bson:"unit,omitempty" json:"unit,omitempty"`
}

type Identifiers struct {
	MicrochipNumber    string   `bson:"microchipNumber,omitempty" json:"microchipNumber,omitempty"`
	MicrochipLocation  string   `bson:"microchipLocation,omitempty" json:"microchipLocation,omitempty"`
	ClipLocation       string   `bson:"clipLocation,omitempty" json:"clipLocation,omitempty"`
	Size               string   `bson:"size,omitempty" json:"size,omitempty"`
	ColorMarkings      string   `bson:"colorMarkings,omitempty" json:"colorMarkings,omitempty"`
	IsNeuteredOrSpayed bool     `bson:"isNeuteredOrSpayed" json:"isNeuteredOrSpayed"`
	Allergies          []string `bson:"allergies" json:"allergies"`
}

// GivenInfo records whether a planned vaccination was actually administered.
type GivenInfo struct {
	IsGiven       bool       `bson:"isGiven" json:"isGiven"`
	Type          string     `bson:"type,omitempty" json:"type,omitempty"`
	DateTime      *time.Time `bson:"dateTime,omitempty" json:"dateTime,omitempty"`
	ProofPhotoURL string     `bson:"proofPhotoUrl,omitempty" json:"proofPhotoUrl,omitempty"`
}

// Schedule is a vaccination plan entry embedded in the pet's passport.
type Schedule struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	VaccineType   string             `bson:"vaccineType" json:"vaccineType"`
	Hospital      string             `bson:"hospital,omitempty" json:"hospital,omitempty"`
	SchedDateTime time.Time          `bson:"schedDateTime" json:"schedDateTime"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Given         GivenInfo          `bson:"given" json:"given"`
	Weight        *Weight            `bson:"weight,omitempty" json:"weight,omitempty"`
	VetName       string             `bson:"vetName,omitempty" json:"vetName,omitempty"`
}

type Passport struct {
	Schedules []Schedule `bson:"schedules" json:"schedules"`
}

type GroomedInfo struct {
	IsGroomed         bool       `bson:"isGroomed" json:"isGroomed"`
	DateTime          *time.Time `bson:"dateTime,omitempty" json:"dateTime,omitempty"`
	ReferencePhotoURL string     `bson:"referencePhotoUrl,omitempty" json:"referencePhotoUrl,omitempty"`
}

// CareRecord is a grooming appointment embedded in the pet document.
type CareRecord struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	CareType      string             `bson:"careType" json:"careType"`
	Clinic        string             `bson:"clinic,omitempty" json:"clinic,omitempty"`
	SchedDateTime time.Time          `bson:"schedDateTime" json:"schedDateTime"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Groomed       GroomedInfo        `bson:"groomed" json:"groomed"`
	Weight        *Weight            `bson:"weight,omitempty" json:"weight,omitempty"`
	GroomerName   string             `bson:"groomerName,omitempty" json:"groomerName,omitempty"`
}

type DoneInfo struct {
	IsDone            bool       `bson:"isDone" json:"isDone"`
	DateTime          *time.Time `bson:"dateTime,omitempty" json:"dateTime,omitempty"`
	ReferencePhotoURL string     `bson:"referencePhotoUrl,omitempty" json:"referencePhotoUrl,omitempty"`
}

type MedicalRecord struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	MedicalType  string             `bson:"medicalType" json:"medicalType"`
	Clinic       string             `bson:"clinic,omitempty" json:"clinic,omitempty"`
	DateTime     time.Time          `bson:"dateTime" json:"dateTime"`
	Diagnosis    string             `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	Prescription string             `bson:"prescription,omitempty" json:"prescription,omitempty"`
	Symptoms     string             `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Done         DoneInfo           `bson:"done" json:"done"`
	Weight       *Weight            `bson:"weight,omitempty" json:"weight,omitempty"`
	VetName      string             `bson:"vetName,omitempty" json:"vetName,omitempty"`
}

// PetIDRecord links the pet to an identifier in an external registry.
type PetIDRecord struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	PetID  string             `bson:"petId,omitempty" json:"petId,omitempty"`
	IDName string             `bson:"idName,omitempty" json:"idName,omitempty"`
	IDURL  string             `bson:"idUrl,omitempty" json:"idUrl,omitempty"`
}

// OwnerSummary is the projection of the owning user attached to pet responses
// in place of the raw owner reference.
type OwnerSummary struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

type Pet struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	PhotoURL       string             `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Gender         string             `bson:"gender" json:"gender"`
	DateOfBirth    *time.Time         `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	PetType        string             `bson:"petType" json:"petType"`
	Breed          string             `bson:"breed,omitempty" json:"breed,omitempty"`
	Weight         *Weight            `bson:"weight,omitempty" json:"weight,omitempty"`
	OwnerID        primitive.ObjectID `bson:"ownerId" json:"-"`
	Owner          *OwnerSummary      `bson:"-" json:"ownerId,omitempty"`
	Identifiers    Identifiers        `bson:"identifiers" json:"identifiers"`
	Passport       Passport           `bson:"passport" json:"passport"`
	PetCare        []CareRecord       `bson:"petCare" json:"petCare"`
	MedicalRecords []MedicalRecord    `bson:"medicalRecords" json:"medicalRecords"`
	PetIDs         []PetIDRecord      `bson:"petIds" json:"petIds"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
