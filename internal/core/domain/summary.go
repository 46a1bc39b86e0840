package domain

// PreviewLength is the maximum length, in characters, of excerpts and body previews.
const PreviewLength = 200

// DocumentSummary is the normalised, plain-text representation of one
// retrieved documentation item. All fields are free of markup.
type DocumentSummary struct {
	// Title is the item heading.
	Title string

	// Excerpt is a short description, at most PreviewLength characters.
	Excerpt string

	// Link is an absolute URL.
	Link string

	// BodyPreview is the start of the body text, at most PreviewLength characters.
	BodyPreview string

	// Reference holds code reference details when the item came from a
	// function, hook or class reference page.
	Reference *ReferenceDetails
}

// ReferenceDetails are the optional sections of a code reference page.
type ReferenceDetails struct {
	// Syntax is the signature or code sample.
	Syntax string

	// Parameters are listed in page order.
	Parameters []Parameter

	// Returns describes the return value.
	Returns string
}

// Parameter describes one function parameter.
type Parameter struct {
	Name        string
	Type        string
	Description string
}

// IsEmpty returns true if no section was extracted.
func (r *ReferenceDetails) IsEmpty() bool {
	return r == nil || (r.Syntax == "" && len(r.Parameters) == 0 && r.Returns == "")
}
