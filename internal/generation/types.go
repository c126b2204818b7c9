package generation

// Source names the request field the content was resolved from.
type Source string

const (
	SourceDesc  Source = "desc"
	SourcePDF   Source = "pdf"
	SourceSheet Source = "sheet"
)

// SheetTemplate wraps a spreadsheet reference into a sentence for the model.
const SheetTemplate = "The following spreadsheet describes the project: %s"

// GenerateInput carries the raw request fields. At least one source must be usable.
type GenerateInput struct {
	RawText         string
	PDF             []byte
	SheetReference  string
	ContextDeadline string
}

// PromptEnvelope is the pair of messages sent to the model.
type PromptEnvelope struct {
	SystemInstruction string
	UserContent       string
}

// GenerateOutput is the result handed back to the caller.
// Tasks is either a JSON array string or the raw model reply.
type GenerateOutput struct {
	Tasks      string
	Extracted  bool
	Source     Source
	DraftCount int
}
