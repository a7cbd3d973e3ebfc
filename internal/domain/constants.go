package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultChatbotFallback is the bot reply when no predefined question matches.
const DefaultChatbotFallback = "I'm sorry, I don't have an answer for that question. Please contact our shop for more information."
