package domain

// Recipient representa um destinatário do relatório diário
type Recipient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GreetingName retorna o nome usado na saudação do e-mail
func (r Recipient) GreetingName() string {
	if r.Name == "" {
		return "There"
	}
	return r.Name
}
