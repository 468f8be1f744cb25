package whatsapp

type SendMessageInput struct {
	PhoneNumber  string   // Ej: "573001234567"
	TemplateName string   // Ej: "bienvenida_bienestar"
	Parameters   []string // Ej: []string{"Ana María", "https://.../bienestarytecnologia?ref=abc"}
}

type SendMessageResponse struct {
	MessageID string `json:"messages"`
	Contacts  []struct {
		Input string `json:"input"`
		WaID  string `json:"wa_id"`
	} `json:"contacts"`
	Error *ErrorResponse `json:"error"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}
