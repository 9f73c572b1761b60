package findpet

import (
	"fmt"
	"strings"

	"petfinder-bot/internal/models"
)

// SexCode maps the gender slot to the directory's sex code. Anything other
// than "male" selects female.
func SexCode(genderType *string) string {
	if genderType != nil && strings.ToLower(*genderType) == "male" {
		return SexMale
	}
	return SexFemale
}

// SizeCode maps the size slot to S, M, L or XL, defaulting to M.
func SizeCode(sizeType *string) string {
	if sizeType == nil {
		return DefaultSizeCode
	}
	if code, ok := sizeCodes[strings.ToLower(*sizeType)]; ok {
		return code
	}
	return DefaultSizeCode
}

// BuildCriteria derives the lookup criteria from the intent slots.
func BuildCriteria(slots models.Slots) models.SearchCriteria {
	return models.SearchCriteria{
		Location: deref(slots.Get(SlotCity)),
		Animal:   deref(slots.Get(SlotPetType)),
		Size:     SizeCode(slots.Get(SlotSizeType)),
		Sex:      SexCode(slots.Get(SlotGenderType)),
	}
}

// LargestPhoto returns the last URL containing marker, or "".
func LargestPhoto(photos []string, marker string) string {
	largest := ""
	for _, url := range photos {
		if strings.Contains(url, marker) {
			largest = url
		}
	}
	return largest
}

// FormatPet renders the fulfillment message:
// "[id | name | sex | age | description] photo".
func FormatPet(pet *models.PetRecord, photo string) string {
	return fmt.Sprintf("[%s | %s | %s | %s | %s] %s",
		pet.ID, pet.Name, pet.Sex, pet.Age, pet.Description, photo)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
