package findpet

import (
	"fmt"
	"strings"

	"petfinder-bot/internal/dialog"
)

// Validate checks the optional PetType, SizeType and GenderType slots in that
// order. The first value outside its vocabulary is reported; later slots are
// not inspected. Nil and empty values are treated as not yet supplied.
func Validate(petType, sizeType, genderType *string) ValidationResult {
	if v, ok := unknown(petType, PetTypes); ok {
		return invalid(SlotPetType, fmt.Sprintf("We do not have %s, would you like a different kind of pet?  Our most popular pets are dogs", v))
	}
	if v, ok := unknown(sizeType, SizeTypes); ok {
		return invalid(SlotSizeType, fmt.Sprintf("We do not have %s, would you like a different size?  The sizes are small, medium, large and extralarge", v))
	}
	if v, ok := unknown(genderType, GenderTypes); ok {
		return invalid(SlotGenderType, fmt.Sprintf("We do not have %s.  The gender types are female and male", v))
	}
	return ValidationResult{IsValid: true}
}

func invalid(slot, content string) ValidationResult {
	return ValidationResult{
		IsValid:      false,
		ViolatedSlot: slot,
		Message:      dialog.PlainText(content),
	}
}

// unknown reports whether value is present and not in vocabulary.
func unknown(value *string, vocabulary []string) (string, bool) {
	if value == nil || *value == "" {
		return "", false
	}
	lower := strings.ToLower(*value)
	for _, allowed := range vocabulary {
		if lower == allowed {
			return "", false
		}
	}
	return *value, true
}
