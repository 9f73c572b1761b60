package findpet

import (
	"testing"

	"petfinder-bot/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSexCode(t *testing.T) {
	assert.Equal(t, "M", SexCode(str("male")))
	assert.Equal(t, "M", SexCode(str("MaLe")))
	assert.Equal(t, "F", SexCode(str("female")))
	assert.Equal(t, "F", SexCode(str("")))
	assert.Equal(t, "F", SexCode(str("unexpected")))
	assert.Equal(t, "F", SexCode(nil))
}

func TestSizeCode(t *testing.T) {
	tests := map[string]string{
		"small":      "S",
		"Medium":     "M",
		"LARGE":      "L",
		"extralarge": "XL",
		"gigantic":   "M",
		"":           "M",
	}
	for in, want := range tests {
		assert.Equal(t, want, SizeCode(str(in)), in)
	}
	assert.Equal(t, "M", SizeCode(nil))
}

func TestLargestPhoto(t *testing.T) {
	tests := []struct {
		name   string
		photos []string
		want   string
	}{
		{"first", []string{"a-x.jpg", "b-pn.jpg", "c-t.jpg"}, "a-x.jpg"},
		{"middle", []string{"a-pn.jpg", "b-x.jpg", "c-t.jpg"}, "b-x.jpg"},
		{"none", []string{"a-pn.jpg", "c-t.jpg"}, ""},
		{"last of several", []string{"1-x.jpg", "b-t.jpg", "2-x.jpg"}, "2-x.jpg"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LargestPhoto(tt.photos, DefaultPhotoMarker))
		})
	}
}

func TestBuildCriteria(t *testing.T) {
	got := BuildCriteria(models.Slots{
		SlotPetType:    str("cat"),
		SlotSizeType:   str("large"),
		SlotGenderType: str("male"),
		SlotCity:       str("Boston"),
	})
	assert.Equal(t, models.SearchCriteria{Location: "Boston", Animal: "cat", Size: "L", Sex: "M"}, got)

	assert.Equal(t, models.SearchCriteria{Size: "M", Sex: "F"}, BuildCriteria(nil))
}

func TestFormatPet(t *testing.T) {
	assert.Equal(t, "[123 | Rex | M | 2 | Friendly] a-x.jpg", FormatPet(rex(), "a-x.jpg"))
}
