// internal/intents/find-pet/models.go
package findpet

import (
	"context"

	"petfinder-bot/internal/models"
)

const IntentName = "FindPet"

// Slot names on the FindPet intent.
const (
	SlotPetType    = "PetType"
	SlotSizeType   = "SizeType"
	SlotGenderType = "GenderType"
	SlotCity       = "City"
)

var (
	PetTypes    = []string{"dog", "cat"}
	SizeTypes   = []string{"small", "medium", "large", "extralarge"}
	GenderTypes = []string{"female", "male"}
)

// sizeCodes maps a size slot value to the directory's size code.
var sizeCodes = map[string]string{
	"small":      "S",
	"medium":     "M",
	"large":      "L",
	"extralarge": "XL",
}

const (
	DefaultSizeCode = "M"
	SexMale         = "M"
	SexFemale       = "F"
)

// ValidationResult is the outcome of slot validation. Message is nil when
// the slots are valid.
type ValidationResult struct {
	IsValid      bool
	ViolatedSlot string
	Message      *models.Message
}

// PetDirectory looks up adoptable pets.
type PetDirectory interface {
	FindRandomPet(ctx context.Context, criteria models.SearchCriteria) (*models.PetRecord, error)
}

// MatchRecorder keeps a history of fulfilled lookups per user.
type MatchRecorder interface {
	Record(ctx context.Context, record models.MatchRecord) error
}

// MatchPublisher announces fulfilled lookups.
type MatchPublisher interface {
	Publish(ctx context.Context, event models.MatchEvent) error
}
