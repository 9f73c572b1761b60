package petfinder

import (
	"bytes"
	"encoding/json"
)

// The v1 API wraps every scalar as {"$t": value} and collapses single
// element lists into a bare object.

type text struct {
	Value string
}

func (t *text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &t.Value)
	}
	var raw struct {
		T json.RawMessage `json:"$t"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.T) == 0 || bytes.Equal(raw.T, []byte("null")) {
		t.Value = ""
		return nil
	}
	if raw.T[0] == '"' {
		return json.Unmarshal(raw.T, &t.Value)
	}
	t.Value = string(raw.T)
	return nil
}

type photo struct {
	Size string `json:"@size"`
	ID   string `json:"@id"`
	URL  string `json:"$t"`
}

type photoList []photo

func (p *photoList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*p = nil
		return nil
	case data[0] == '[':
		var list []photo
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*p = list
		return nil
	default:
		var single photo
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*p = photoList{single}
		return nil
	}
}

type envelope struct {
	Petfinder struct {
		Header header `json:"header"`
		Pet    *pet   `json:"pet"`
	} `json:"petfinder"`
}

type header struct {
	Version text `json:"version"`
	Status  struct {
		Code    text `json:"code"`
		Message text `json:"message"`
	} `json:"status"`
}

type pet struct {
	ID          text `json:"id"`
	Name        text `json:"name"`
	Sex         text `json:"sex"`
	Age         text `json:"age"`
	Size        text `json:"size"`
	Animal      text `json:"animal"`
	Description text `json:"description"`
	Media       struct {
		Photos struct {
			Photo photoList `json:"photo"`
		} `json:"photos"`
	} `json:"media"`
}
