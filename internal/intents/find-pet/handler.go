// internal/intents/find-pet/handler.go
package findpet

import (
	"context"
	"time"

	"petfinder-bot/internal/common/logger"
	"petfinder-bot/internal/common/metrics"
	"petfinder-bot/internal/dialog"
	"petfinder-bot/internal/models"
	"petfinder-bot/pkg/registry"

	"github.com/google/uuid"
)

type Handler struct {
	config    *Config
	directory PetDirectory
	recorder  MatchRecorder
	publisher MatchPublisher
	logger    logger.Logger
	now       func() time.Time
}

type HandlerOptions struct {
	Recorder  MatchRecorder
	Publisher MatchPublisher
}

// NewHandler builds the FindPet handler. Recorder and publisher are optional.
func NewHandler(config *Config, directory PetDirectory, log logger.Logger, opts HandlerOptions) *Handler {
	if config == nil {
		config = LoadConfig()
	}
	if config.PhotoMarker == "" {
		config.PhotoMarker = DefaultPhotoMarker
	}
	return &Handler{
		config:    config,
		directory: directory,
		recorder:  opts.Recorder,
		publisher: opts.Publisher,
		logger:    log.WithFields(map[string]interface{}{"intent": IntentName}),
		now:       time.Now,
	}
}

func (h *Handler) Handle(ctx context.Context, req *models.DialogRequest) (*models.Response, error) {
	switch dialog.PhaseOf(req.InvocationSource) {
	case dialog.PhaseValidating:
		return h.validate(req), nil
	default:
		return h.fulfill(ctx, req)
	}
}

func (h *Handler) validate(req *models.DialogRequest) *models.Response {
	slots := req.IntentSlots()

	result := Validate(slots.Get(SlotPetType), slots.Get(SlotSizeType), slots.Get(SlotGenderType))
	if !result.IsValid {
		metrics.SlotViolations.WithLabelValues(result.ViolatedSlot).Inc()
		h.logger.Info("slot rejected", map[string]interface{}{
			"userId":       req.UserID,
			"violatedSlot": result.ViolatedSlot,
		})

		out := slots.Clone()
		if out == nil {
			out = models.Slots{}
		}
		out[result.ViolatedSlot] = nil
		return dialog.ElicitSlot(req.SessionAttributes, req.IntentName(), out, result.ViolatedSlot, result.Message)
	}

	return dialog.Delegate(req.SessionAttributes, slots)
}

func (h *Handler) fulfill(ctx context.Context, req *models.DialogRequest) (*models.Response, error) {
	criteria := BuildCriteria(req.IntentSlots())

	start := time.Now()
	pet, err := h.directory.FindRandomPet(ctx, criteria)
	if err != nil {
		metrics.PetfinderLookupDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		h.logger.Error("pet lookup failed", map[string]interface{}{
			"userId":   req.UserID,
			"criteria": criteria,
			"error":    err.Error(),
		})
		return nil, err
	}
	metrics.PetfinderLookupDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())

	photo := LargestPhoto(pet.Photos, h.config.PhotoMarker)

	h.logger.Info("pet found", map[string]interface{}{
		"userId": req.UserID,
		"petId":  pet.ID,
	})

	h.recordMatch(ctx, req, criteria, pet, photo)

	return dialog.Close(req.SessionAttributes, models.FulfillmentFulfilled, dialog.PlainText(FormatPet(pet, photo))), nil
}

// recordMatch stores and announces a fulfilled lookup. Failures are logged
// and never change the response.
func (h *Handler) recordMatch(ctx context.Context, req *models.DialogRequest, criteria models.SearchCriteria, pet *models.PetRecord, photo string) {
	now := h.now().UTC()

	if h.recorder != nil {
		record := models.MatchRecord{
			ID:        uuid.NewString(),
			UserID:    req.UserID,
			Criteria:  criteria,
			PetID:     pet.ID,
			PetName:   pet.Name,
			PhotoURL:  photo,
			MatchedAt: now,
		}
		if err := h.recorder.Record(ctx, record); err != nil {
			h.logger.Warn("failed to record match", map[string]interface{}{
				"userId": req.UserID,
				"error":  err.Error(),
			})
		}
	}

	if h.publisher != nil {
		event := models.MatchEvent{
			EventID:    uuid.NewString(),
			IntentName: req.IntentName(),
			UserID:     req.UserID,
			BotAlias:   req.Bot.Alias,
			Criteria:   criteria,
			Pet:        *pet,
			PhotoURL:   photo,
			OccurredAt: now,
		}
		if err := h.publisher.Publish(ctx, event); err != nil {
			h.logger.Warn("failed to publish match event", map[string]interface{}{
				"userId": req.UserID,
				"error":  err.Error(),
			})
		}
	}
}

// Describe lists the FindPet slots and their vocabularies.
func (h *Handler) Describe() registry.Intent {
	return registry.Intent{
		Name:        IntentName,
		Description: "Find a random adoptable pet matching type, size, gender and city",
		Slots: []registry.Slot{
			{Name: SlotPetType, Validated: true, Values: PetTypes},
			{Name: SlotSizeType, Validated: true, Values: SizeTypes},
			{Name: SlotGenderType, Validated: true, Values: GenderTypes},
			{Name: SlotCity},
		},
		ErrorCodes: []string{"EXTERNAL_LOOKUP_FAILED", "EXTERNAL_LOOKUP_TIMEOUT"},
		Tags:       []string{"petfinder"},
	}
}
