package mail

type ConversionEmailData struct {
	LeadName   string
	Contact    string
	EventTitle string
	EventType  string
	StartDate  string
	EndDate    string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	// NotifyTo é o email da equipe que recebe os avisos de conversão.
	NotifyTo string
}
