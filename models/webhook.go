package models

// WhatsApp Cloud API webhook payload, trimmed to the fields the intake consumes.

type WebhookPayload struct {
	Object string         `json:"object"` // expected "whatsapp_business_account"
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	Metadata WebhookMetadata  `json:"metadata"`
	Messages []WebhookMessage `json:"messages"`
}

type WebhookMetadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type WebhookMessage struct {
	ID          string              `json:"id"`
	From        string              `json:"from"`
	Type        string              `json:"type"` // text, image, document, audio, voice, video, interactive
	Text        *WebhookText        `json:"text,omitempty"`
	Image       *WebhookMedia       `json:"image,omitempty"`
	Document    *WebhookMedia       `json:"document,omitempty"`
	Audio       *WebhookMedia       `json:"audio,omitempty"`
	Voice       *WebhookMedia       `json:"voice,omitempty"`
	Video       *WebhookMedia       `json:"video,omitempty"`
	Interactive *WebhookInteractive `json:"interactive,omitempty"`
}

type WebhookText struct {
	Body string `json:"body"`
}

type WebhookMedia struct {
	ID      string `json:"id"`
	Caption string `json:"caption,omitempty"`
}

type WebhookInteractive struct {
	Type        string        `json:"type"` // button_reply or list_reply
	ButtonReply *WebhookReply `json:"button_reply,omitempty"`
	ListReply   *WebhookReply `json:"list_reply,omitempty"`
}

type WebhookReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// InboundMessage is the normalized form handed to the conversation engine.
type InboundMessage struct {
	CompanyID   string `json:"companyId"`
	From        string `json:"from"`
	MessageID   string `json:"messageId"`
	MessageType string `json:"messageType"`
	MessageText string `json:"messageText,omitempty"`
	MediaID     string `json:"mediaId,omitempty"`
	ButtonID    string `json:"buttonId,omitempty"`
}
