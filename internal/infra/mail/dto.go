package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type ReceiptEmailData struct {
	Name        string
	Description string
	Amount      string
	Date        string
}
