package services

import "fmt"

// ContextResolver turns the caller's background input into a plain-text
// candidate context string.
type ContextResolver interface {
	// Resolve takes a saved resume path and/or a free-text description.
	// At least one must be present. A resume wins over the description:
	// its text is extracted page by page and whitespace-normalized. The
	// description path is a verbatim pass-through.
	Resolve(resumePath, description string) (string, error)
}

type contextResolver struct {
	pdfParser PDFParserService
}

func NewContextResolver(pdfParser PDFParserService) ContextResolver {
	return &contextResolver{pdfParser: pdfParser}
}

func (r *contextResolver) Resolve(resumePath, description string) (string, error) {
	if resumePath != "" {
		text, err := r.pdfParser.ExtractText(resumePath)
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	}

	if description != "" {
		return description, nil
	}

	return "", fmt.Errorf("%w: must provide either resume or description", ErrInvalidRequest)
}
