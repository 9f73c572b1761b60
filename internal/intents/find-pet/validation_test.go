package findpet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AcceptsVocabularyCaseInsensitive(t *testing.T) {
	for _, pet := range []string{"DOG", "Dog", "dog", "CAT", "cat"} {
		assert.True(t, Validate(str(pet), nil, nil).IsValid, pet)
	}
	for _, size := range []string{"Small", "MEDIUM", "large", "ExtraLarge"} {
		assert.True(t, Validate(nil, str(size), nil).IsValid, size)
	}
	for _, gender := range []string{"Female", "MALE"} {
		assert.True(t, Validate(nil, nil, str(gender)).IsValid, gender)
	}
}

func TestValidate_AbsentSlotsAreValid(t *testing.T) {
	result := Validate(nil, nil, nil)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.ViolatedSlot)
	assert.Nil(t, result.Message)

	assert.True(t, Validate(str(""), str(""), str("")).IsValid)
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		name    string
		pet     *string
		size    *string
		gender  *string
		slot    string
		message string
	}{
		{
			name:    "pet",
			pet:     str("bird"),
			slot:    SlotPetType,
			message: "We do not have bird, would you like a different kind of pet?  Our most popular pets are dogs",
		},
		{
			name:    "size",
			size:    str("huge"),
			slot:    SlotSizeType,
			message: "We do not have huge, would you like a different size?  The sizes are small, medium, large and extralarge",
		},
		{
			name:    "gender",
			gender:  str("other"),
			slot:    SlotGenderType,
			message: "We do not have other.  The gender types are female and male",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.pet, tt.size, tt.gender)
			require.False(t, result.IsValid)
			assert.Equal(t, tt.slot, result.ViolatedSlot)
			require.NotNil(t, result.Message)
			assert.Equal(t, "PlainText", result.Message.ContentType)
			assert.Equal(t, tt.message, result.Message.Content)
		})
	}
}

func TestValidate_FirstViolationWins(t *testing.T) {
	result := Validate(str("bird"), str("huge"), str("other"))
	assert.Equal(t, SlotPetType, result.ViolatedSlot)

	result = Validate(str("dog"), str("huge"), str("other"))
	assert.Equal(t, SlotSizeType, result.ViolatedSlot)

	result = Validate(nil, nil, str("other"))
	assert.Equal(t, SlotGenderType, result.ViolatedSlot)
}

func TestValidate_KeepsOriginalCaseInMessage(t *testing.T) {
	result := Validate(str("Iguana"), nil, nil)
	assert.Contains(t, result.Message.Content, "We do not have Iguana,")
}

func TestValidate_Idempotent(t *testing.T) {
	first := Validate(str("dog"), str("small"), str("male"))
	second := Validate(str("dog"), str("small"), str("male"))
	assert.Equal(t, first, second)
	assert.True(t, second.IsValid)

	first = Validate(str("bird"), str("huge"), nil)
	second = Validate(str("bird"), str("huge"), nil)
	require.NotNil(t, second.Message)
	assert.Equal(t, first, second)
	assert.Equal(t, first.Message.Content, second.Message.Content)
	assert.Equal(t, SlotPetType, second.ViolatedSlot)
}
