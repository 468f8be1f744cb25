package mail

type LeadAlertData struct {
	Name  string
	Phone string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	// To es el buzón del equipo de campaña.
	To string
}
