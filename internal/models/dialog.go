// internal/models/dialog.go
package models

import "encoding/json"

// InvocationSource tells which code hook Lex is calling.
type InvocationSource string

const (
	SourceDialogCodeHook      InvocationSource = "DialogCodeHook"
	SourceFulfillmentCodeHook InvocationSource = "FulfillmentCodeHook"
)

// Slots maps slot names to values. A nil value means the slot is unfilled.
type Slots map[string]*string

// Get returns the slot value or nil when the slot is absent or unfilled.
func (s Slots) Get(name string) *string {
	if s == nil {
		return nil
	}
	return s[name]
}

// Clone copies the map. Value pointers are shared; they are never mutated.
func (s Slots) Clone() Slots {
	if s == nil {
		return nil
	}
	out := make(Slots, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

type Bot struct {
	Name    string `json:"name"`
	Alias   string `json:"alias,omitempty"`
	Version string `json:"version,omitempty"`
}

type SlotDetail struct {
	Resolutions   []map[string]string `json:"resolutions,omitempty"`
	OriginalValue *string             `json:"originalValue,omitempty"`
}

type CurrentIntent struct {
	Name                     string                `json:"name"`
	Slots                    Slots                 `json:"slots"`
	SlotDetails              map[string]SlotDetail `json:"slotDetails,omitempty"`
	ConfirmationStatus       string                `json:"confirmationStatus,omitempty"`
	NLUIntentConfidenceScore *float64              `json:"nluIntentConfidenceScore,omitempty"`
}

// DialogRequest is the Lex V1 code hook event.
type DialogRequest struct {
	MessageVersion    string            `json:"messageVersion,omitempty"`
	InvocationSource  InvocationSource  `json:"invocationSource"`
	UserID            string            `json:"userId"`
	InputTranscript   string            `json:"inputTranscript,omitempty"`
	SessionAttributes map[string]string `json:"sessionAttributes"`
	RequestAttributes map[string]string `json:"requestAttributes,omitempty"`
	Bot               Bot               `json:"bot"`
	OutputDialogMode  string            `json:"outputDialogMode,omitempty"`
	CurrentIntent     *CurrentIntent    `json:"currentIntent"`
}

// IntentName returns the current intent name or "" when absent.
func (r *DialogRequest) IntentName() string {
	if r == nil || r.CurrentIntent == nil {
		return ""
	}
	return r.CurrentIntent.Name
}

// IntentSlots returns the current intent slots, possibly nil.
func (r *DialogRequest) IntentSlots() Slots {
	if r == nil || r.CurrentIntent == nil {
		return nil
	}
	return r.CurrentIntent.Slots
}

const ContentTypePlainText = "PlainText"

type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type DialogActionType string

const (
	DialogActionElicitSlot DialogActionType = "ElicitSlot"
	DialogActionDelegate   DialogActionType = "Delegate"
	DialogActionClose      DialogActionType = "Close"
)

type FulfillmentState string

const (
	FulfillmentFulfilled FulfillmentState = "Fulfilled"
	FulfillmentFailed    FulfillmentState = "Failed"
)

type DialogAction struct {
	Type             DialogActionType `json:"type"`
	FulfillmentState FulfillmentState `json:"fulfillmentState,omitempty"`
	Message          *Message         `json:"message,omitempty"`
	IntentName       string           `json:"intentName,omitempty"`
	Slots            Slots            `json:"slots,omitempty"`
	SlotToElicit     string           `json:"slotToElicit,omitempty"`
}

// MarshalJSON always writes slots for Delegate and ElicitSlot, as {} when
// empty. Close carries no slots.
func (a DialogAction) MarshalJSON() ([]byte, error) {
	type wire DialogAction
	if a.Type == DialogActionClose {
		return json.Marshal(wire(a))
	}
	slots := a.Slots
	if slots == nil {
		slots = Slots{}
	}
	return json.Marshal(struct {
		wire
		Slots Slots `json:"slots"`
	}{wire(a), slots})
}

// Response is returned to Lex. SessionAttributes is always serialized.
type Response struct {
	SessionAttributes map[string]string `json:"sessionAttributes"`
	DialogAction      DialogAction      `json:"dialogAction"`
}
