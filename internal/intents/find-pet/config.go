// internal/intents/find-pet/config.go
package findpet

const DefaultPhotoMarker = "x.jpg"

type Config struct {
	// PhotoMarker identifies the largest rendition among a pet's photo URLs.
	PhotoMarker string
}

func LoadConfig() *Config {
	return &Config{
		PhotoMarker: DefaultPhotoMarker,
	}
}
