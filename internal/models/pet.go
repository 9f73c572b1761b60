// internal/models/pet.go
package models

import "time"

// PetRecord is a single pet returned by the pet directory.
type PetRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Sex         string   `json:"sex"`
	Age         string   `json:"age"`
	Description string   `json:"description"`
	Photos      []string `json:"photos,omitempty"`
}

// SearchCriteria are the query parameters of a random pet lookup.
type SearchCriteria struct {
	Location string `json:"location"`
	Animal   string `json:"animal"`
	Size     string `json:"size"`
	Sex      string `json:"sex"`
}

// MatchRecord is one fulfilled lookup kept in a user's history.
type MatchRecord struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Criteria  SearchCriteria `json:"criteria"`
	PetID     string         `json:"petId"`
	PetName   string         `json:"petName"`
	PhotoURL  string         `json:"photoUrl,omitempty"`
	MatchedAt time.Time      `json:"matchedAt"`
}

// MatchEvent is published when a FindPet request is fulfilled.
type MatchEvent struct {
	EventID    string         `json:"eventId"`
	IntentName string         `json:"intentName"`
	UserID     string         `json:"userId"`
	BotAlias   string         `json:"botAlias,omitempty"`
	Criteria   SearchCriteria `json:"criteria"`
	Pet        PetRecord      `json:"pet"`
	PhotoURL   string         `json:"photoUrl,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}
