package domain

type TelegramSettings struct {
	BotToken string
	ChatID   string
}

func (s *TelegramSettings) IsConfigured() bool {
	return s != nil && s.BotToken != "" && s.ChatID != ""
}
