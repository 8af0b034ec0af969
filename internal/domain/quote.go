// Package domain holds the quote model and the errors its operations fail
// with. Adapters translate those errors; nothing here knows about HTTP.
package domain

// Quote is a quotation attributed to an author.
// ID is assigned by the repository and never changes afterwards.
type Quote struct {
	ID     int64
	Text   string
	Author string
}

// Draft holds the caller-supplied content of a quote that has no ID yet.
// It is also the payload of an update, which overwrites both fields.
type Draft struct {
	Text   string
	Author string
}

// Validate reports a ValidationError unless both text and author are present.
func (d Draft) Validate() error {
	var missing []string
	if d.Text == "" {
		missing = append(missing, "quote")
	}

	if d.Author == "" {
		missing = append(missing, "author")
	}

	if len(missing) > 0 {
		return NewValidationError("required", missing...)
	}

	return nil
}

// Apply overwrites the content of q with the draft, keeping the ID.
func (d Draft) Apply(q Quote) Quote {
	q.Text = d.Text
	q.Author = d.Author

	return q
}
