// internal/dialog/dispatcher.go
package dialog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"petfinder-bot/internal/common/errors"
	"petfinder-bot/internal/common/logger"
	"petfinder-bot/internal/common/metrics"
	"petfinder-bot/internal/common/observability"
	"petfinder-bot/internal/common/validation"
	"petfinder-bot/internal/models"
	"petfinder-bot/pkg/registry"
)

// IntentHandler serves one intent.
type IntentHandler interface {
	Handle(ctx context.Context, req *models.DialogRequest) (*models.Response, error)
}

// HandlerFunc adapts a function to IntentHandler.
type HandlerFunc func(ctx context.Context, req *models.DialogRequest) (*models.Response, error)

func (f HandlerFunc) Handle(ctx context.Context, req *models.DialogRequest) (*models.Response, error) {
	return f(ctx, req)
}

// Describer is implemented by handlers that publish their slot vocabulary.
type Describer interface {
	Describe() registry.Intent
}

type Config struct {
	ExpectedBotName string
	Version         string
}

type Dispatcher struct {
	config     *Config
	handlers   map[string]IntentHandler
	logger     logger.Logger
	errHandler *errors.ErrorHandler
	obs        *observability.Observability
}

type Option func(*Dispatcher)

// WithObservability records invocation counts and durations on obs.
func WithObservability(obs *observability.Observability) Option {
	return func(d *Dispatcher) {
		d.obs = obs
	}
}

func NewDispatcher(config *Config, log logger.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		config:     config,
		handlers:   make(map[string]IntentHandler),
		logger:     log.WithFields(map[string]interface{}{"component": "dispatcher"}),
		errHandler: errors.NewErrorHandler(log),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register binds an intent name to its handler. A later registration for
// the same name replaces the earlier one.
func (d *Dispatcher) Register(intentName string, h IntentHandler) {
	d.handlers[intentName] = h
}

// Intents returns the registered intent names in sorted order.
func (d *Dispatcher) Intents() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registry describes the registered intents.
func (d *Dispatcher) Registry() *registry.IntentRegistry {
	reg := &registry.IntentRegistry{
		Version: d.config.Version,
		Bot:     d.config.ExpectedBotName,
	}
	for _, name := range d.Intents() {
		intent := registry.Intent{Name: name}
		if desc, ok := d.handlers[name].(Describer); ok {
			intent = desc.Describe()
		}
		reg.Intents = append(reg.Intents, intent)
	}
	return reg
}

// CheckBot rejects events that were not sent by the expected bot.
func (d *Dispatcher) CheckBot(req *models.DialogRequest) error {
	if d.config.ExpectedBotName == "" {
		return nil
	}
	if req.Bot.Name != d.config.ExpectedBotName {
		return errors.NewInvalidBotNameError(req.Bot.Name)
	}
	return nil
}

// Dispatch routes the request to the handler registered for its intent.
func (d *Dispatcher) Dispatch(ctx context.Context, req *models.DialogRequest) (*models.Response, error) {
	intentName := req.IntentName()

	d.logger.Info("dispatch", map[string]interface{}{
		"userId":     req.UserID,
		"intentName": intentName,
		"requestId":  RequestIDFrom(ctx),
	})

	h, ok := d.handlers[intentName]
	if !ok {
		return nil, errors.NewUnsupportedIntentError(intentName)
	}
	return h.Handle(ctx, req)
}

// HandleRequest is the entry point for a decoded event: bot guard, then
// dispatch. Failures are logged and counted before being returned.
func (d *Dispatcher) HandleRequest(ctx context.Context, req *models.DialogRequest) (*models.Response, error) {
	if req == nil {
		return nil, d.fail(ctx, "", time.Now(), errors.NewInvalidRequestError("empty event"), nil)
	}

	start := time.Now()
	intentName := req.IntentName()
	metrics.Invocations.WithLabelValues(intentName, string(req.InvocationSource)).Inc()

	fields := map[string]interface{}{
		"userId":           req.UserID,
		"botName":          req.Bot.Name,
		"intentName":       intentName,
		"invocationSource": string(req.InvocationSource),
		"requestId":        RequestIDFrom(ctx),
	}

	if err := d.CheckBot(req); err != nil {
		return nil, d.fail(ctx, intentName, start, err, fields)
	}

	resp, err := d.Dispatch(ctx, req)
	if err != nil {
		return nil, d.fail(ctx, intentName, start, err, fields)
	}

	metrics.DialogActions.WithLabelValues(string(resp.DialogAction.Type)).Inc()
	d.obs.RecordInvocation(ctx, intentName, "success")
	d.obs.RecordDuration(ctx, time.Since(start), "success")

	d.logger.Debug("invocation completed", map[string]interface{}{
		"intentName":   intentName,
		"dialogAction": string(resp.DialogAction.Type),
		"durationMs":   time.Since(start).Milliseconds(),
	})

	return resp, nil
}

// HandleEvent validates and decodes a raw JSON event before handling it.
func (d *Dispatcher) HandleEvent(ctx context.Context, raw []byte) (*models.Response, error) {
	if result := validation.ValidateEvent(raw); !result.Valid {
		return nil, d.fail(ctx, "", time.Now(), errors.NewInvalidRequestError(result.Summary()), nil)
	}

	var req models.DialogRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, d.fail(ctx, "", time.Now(), errors.NewInvalidRequestError(fmt.Sprintf("decode event: %v", err)), nil)
	}

	return d.HandleRequest(ctx, &req)
}

func (d *Dispatcher) fail(ctx context.Context, intentName string, start time.Time, err error, fields map[string]interface{}) error {
	d.errHandler.HandleInvocationError(err, fields)
	d.obs.RecordInvocation(ctx, intentName, "error")
	d.obs.RecordDuration(ctx, time.Since(start), "error")
	return err
}
