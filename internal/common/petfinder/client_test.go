package petfinder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petfinder-bot/internal/common/errors"
	httpclient "petfinder-bot/internal/common/http"
	"petfinder-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const randomPetResponse = `{
  "@encoding": "iso-8859-1",
  "@version": "1.0",
  "petfinder": {
    "header": {
      "version": {"$t": "0.1"},
      "status": {"code": {"$t": "100"}, "message": {}}
    },
    "pet": {
      "id": {"$t": "123"},
      "name": {"$t": "Rex"},
      "sex": {"$t": "M"},
      "age": {"$t": "Young"},
      "size": {"$t": "XL"},
      "animal": {"$t": "Cat"},
      "description": {"$t": "Friendly"},
      "media": {
        "photos": {
          "photo": [
            {"@size": "pnt", "$t": "http://photos.example/1-pnt.jpg", "@id": "1"},
            {"@size": "x", "$t": "http://photos.example/1-x.jpg", "@id": "1"},
            {"@size": "fpm", "$t": "http://photos.example/1-fpm.jpg", "@id": "1"}
          ]
        }
      }
    }
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClientWithHTTP(&Config{BaseURL: srv.URL + "/", APIKey: "secret"}, httpclient.NewClientWithHTTP(srv.Client()))
}

func TestFindRandomPet_Success(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	var gotAgent string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(randomPetResponse))
	})

	pet, err := client.FindRandomPet(context.Background(), models.SearchCriteria{
		Location: "Boston",
		Animal:   "cat",
		Size:     "XL",
		Sex:      "F",
	})

	require.NoError(t, err)
	assert.Equal(t, "/pet.getRandom", gotPath)
	assert.Equal(t, "petfinder-bot", gotAgent)
	assert.Equal(t, map[string][]string{
		"key":      {"secret"},
		"location": {"Boston"},
		"animal":   {"cat"},
		"size":     {"XL"},
		"sex":      {"F"},
		"output":   {"full"},
		"format":   {"json"},
	}, gotQuery)

	assert.Equal(t, &models.PetRecord{
		ID:          "123",
		Name:        "Rex",
		Sex:         "M",
		Age:         "Young",
		Description: "Friendly",
		Photos: []string{
			"http://photos.example/1-pnt.jpg",
			"http://photos.example/1-x.jpg",
			"http://photos.example/1-fpm.jpg",
		},
	}, pet)
}

func TestFindRandomPet_SinglePhotoObjectAndMissingFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"petfinder": {
		  "header": {"status": {"code": {"$t": "100"}}},
		  "pet": {
		    "id": {"$t": 77},
		    "name": {"$t": "Solo"},
		    "description": {},
		    "media": {"photos": {"photo": {"@size": "x", "$t": "http://p/solo-x.jpg"}}}
		  }
		}}`))
	})

	pet, err := client.FindRandomPet(context.Background(), models.SearchCriteria{Size: "M", Sex: "M"})

	require.NoError(t, err)
	assert.Equal(t, "77", pet.ID)
	assert.Equal(t, "", pet.Description)
	assert.Equal(t, []string{"http://p/solo-x.jpg"}, pet.Photos)
}

func TestFindRandomPet_NoMedia(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"petfinder": {"header": {"status": {"code": {"$t": "100"}}}, "pet": {"id": {"$t": "1"}, "media": {}}}}`))
	})

	pet, err := client.FindRandomPet(context.Background(), models.SearchCriteria{})

	require.NoError(t, err)
	assert.Empty(t, pet.Photos)
}

func TestFindRandomPet_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "api status",
			status:  http.StatusOK,
			body:    `{"petfinder": {"header": {"status": {"code": {"$t": "300"}, "message": {"$t": "unauthorized key"}}}}}`,
			wantMsg: "unauthorized key",
		},
		{
			name:    "http 500",
			status:  http.StatusInternalServerError,
			body:    "oops",
			wantMsg: "unexpected status 500",
		},
		{
			name:    "bad json",
			status:  http.StatusOK,
			body:    "<xml/>",
			wantMsg: "decode response",
		},
		{
			name:    "missing pet",
			status:  http.StatusOK,
			body:    `{"petfinder": {"header": {"status": {"code": {"$t": "100"}}}}}`,
			wantMsg: "no pet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			pet, err := client.FindRandomPet(context.Background(), models.SearchCriteria{})

			assert.Nil(t, pet)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeExternalLookupFailed, errors.CodeOf(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestFindRandomPet_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.FindRandomPet(ctx, models.SearchCriteria{})

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeExternalLookupTimeout, errors.CodeOf(err))
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient(&Config{APIKey: "k"})
	assert.Equal(t, "http://api.petfinder.com/pet.getRandom", c.endpoint("pet.getRandom"))
}

func TestNewClientWithHTTP_DefaultBaseURL(t *testing.T) {
	c := NewClientWithHTTP(&Config{APIKey: "k"}, httpclient.NewClientWithHTTP(http.DefaultClient))
	assert.Equal(t, "http://api.petfinder.com/pet.getRandom", c.endpoint("pet.getRandom"))
}
