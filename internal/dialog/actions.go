// internal/dialog/actions.go
package dialog

import "petfinder-bot/internal/models"

// PlainText wraps content in a PlainText message.
func PlainText(content string) *models.Message {
	return &models.Message{
		ContentType: models.ContentTypePlainText,
		Content:     content,
	}
}

// ElicitSlot asks the user to supply slotToElicit again.
func ElicitSlot(sessionAttributes map[string]string, intentName string, slots models.Slots, slotToElicit string, message *models.Message) *models.Response {
	return &models.Response{
		SessionAttributes: sessionAttributes,
		DialogAction: models.DialogAction{
			Type:         models.DialogActionElicitSlot,
			IntentName:   intentName,
			Slots:        slots,
			SlotToElicit: slotToElicit,
			Message:      message,
		},
	}
}

// Delegate hands control back to the bot to pick the next dialog step.
// Missing session attributes become an empty map.
func Delegate(sessionAttributes map[string]string, slots models.Slots) *models.Response {
	if sessionAttributes == nil {
		sessionAttributes = map[string]string{}
	}
	return &models.Response{
		SessionAttributes: sessionAttributes,
		DialogAction: models.DialogAction{
			Type:  models.DialogActionDelegate,
			Slots: slots,
		},
	}
}

// Close ends the conversation with a final message.
func Close(sessionAttributes map[string]string, state models.FulfillmentState, message *models.Message) *models.Response {
	return &models.Response{
		SessionAttributes: sessionAttributes,
		DialogAction: models.DialogAction{
			Type:             models.DialogActionClose,
			FulfillmentState: state,
			Message:          message,
		},
	}
}
