package line

// Webhook event types handled by the bot.
const (
	EventTypeMessage  = "message"
	EventTypePostback = "postback"

	MessageTypeText = "text"
)

// WebhookRequest is the body LINE posts to the webhook URL.
type WebhookRequest struct {
	// Destination is the user id of the bot that received the events.
	Destination string `json:"destination"`
	// Events is empty for the verification request sent from the LINE console.
	Events []Event `json:"events"`
}

// Event is a single webhook event.
type Event struct {
	Type            string           `json:"type"`
	Mode            string           `json:"mode"`
	Timestamp       int64            `json:"timestamp"`
	WebhookEventID  string           `json:"webhookEventId"`
	ReplyToken      string           `json:"replyToken"`
	Source          Source           `json:"source"`
	DeliveryContext DeliveryContext  `json:"deliveryContext"`
	Message         *EventMessage    `json:"message,omitempty"`
	Postback        *PostbackContent `json:"postback,omitempty"`
}

// Source identifies who sent an event.
type Source struct {
	Type    string `json:"type"`
	UserID  string `json:"userId,omitempty"`
	GroupID string `json:"groupId,omitempty"`
	RoomID  string `json:"roomId,omitempty"`
}

// ID returns the most specific id of the source.
func (s Source) ID() string {
	switch {
	case s.UserID != "":
		return s.UserID
	case s.GroupID != "":
		return s.GroupID
	default:
		return s.RoomID
	}
}

// DeliveryContext tells whether LINE is resending an event.
type DeliveryContext struct {
	IsRedelivery bool `json:"isRedelivery"`
}

// EventMessage is the message of a message event. Only text messages carry Text.
type EventMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// PostbackContent carries the data of the pressed postback action.
type PostbackContent struct {
	Data string `json:"data"`
}

// Message is an outbound message.
type Message interface {
	messageType() string
}

// TextMessage is a plain text message.
type TextMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (TextMessage) messageType() string { return "text" }

// NewTextMessage creates a text message.
func NewTextMessage(text string) TextMessage {
	return TextMessage{Type: "text", Text: text}
}

// TemplateMessage is a message rendered from a template.
type TemplateMessage struct {
	Type     string          `json:"type"`
	AltText  string          `json:"altText"`
	Template ConfirmTemplate `json:"template"`
}

func (TemplateMessage) messageType() string { return "template" }

// ConfirmTemplate shows text with exactly two buttons.
type ConfirmTemplate struct {
	Type    string           `json:"type"`
	Text    string           `json:"text"`
	Actions []PostbackAction `json:"actions"`
}

// PostbackAction returns Data to the webhook when pressed and shows DisplayText
// in the chat as the user's message.
type PostbackAction struct {
	Type        string `json:"type"`
	Label       string `json:"label"`
	Data        string `json:"data"`
	DisplayText string `json:"displayText,omitempty"`
}

// NewPostbackAction creates a postback action.
func NewPostbackAction(label, displayText, data string) PostbackAction {
	return PostbackAction{Type: "postback", Label: label, DisplayText: displayText, Data: data}
}

// NewConfirmMessage creates a confirm template message with yes and no buttons.
func NewConfirmMessage(altText, text string, yes, no PostbackAction) TemplateMessage {
	return TemplateMessage{
		Type:    "template",
		AltText: altText,
		Template: ConfirmTemplate{
			Type:    "confirm",
			Text:    text,
			Actions: []PostbackAction{yes, no},
		},
	}
}

// ReplyRequest is the body of the reply endpoint.
type ReplyRequest struct {
	ReplyToken string    `json:"replyToken"`
	Messages   []Message `json:"messages"`
}
