package memory

import "github.com/jsamuelsen/quotes-service/internal/domain"

// SeedQuotes returns the quotes a fresh deployment starts with.
func SeedQuotes() []domain.Quote {
	return []domain.Quote{
		{
			ID:     8721,
			Text:   "We must accept finite disappointment, but we must never lose infinite hope.",
			Author: "Martin Luther King",
		},
		{
			ID:     5779,
			Text:   "Use what you’ve been through as fuel, believe in yourself and be unstoppable!",
			Author: "Yvonne Pierre",
		},
		{
			ID: 3406,
			Text: "To succeed, you have to do something and be very bad at it for a while. " +
				"You have to look bad before you can look really good.",
			Author: "Barbara DeAngelis",
		},
	}
}
