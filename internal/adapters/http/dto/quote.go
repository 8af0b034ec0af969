package dto

import "github.com/jsamuelsen/quotes-service/internal/domain"

// QuoteRequest is the body of create and update requests.
type QuoteRequest struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// ToDraft converts the request to its domain form.
func (r QuoteRequest) ToDraft() domain.Draft {
	return domain.Draft{Text: r.Quote, Author: r.Author}
}

// QuoteResponse is the wire form of a stored quote.
type QuoteResponse struct {
	ID     int64  `json:"id"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// FromQuote converts a domain quote to its wire form.
func FromQuote(q domain.Quote) QuoteResponse {
	return QuoteResponse{ID: q.ID, Quote: q.Text, Author: q.Author}
}

// FromQuotes converts a list of quotes. The result is never nil so it
// always encodes as a JSON array.
func FromQuotes(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}

	return out
}
