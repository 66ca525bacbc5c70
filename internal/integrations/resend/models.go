package resend

// sendEmailRequest тело запроса POST /emails
type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// sendEmailResponse ответ Resend API на успешную отправку
type sendEmailResponse struct {
	ID string `json:"id"`
}

// errorResponse модель ошибки Resend API
type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
