package usecase

import (
	"context"
	"fmt"
	"strings"

	"taskextreme-ai/internal/generation"
	"taskextreme-ai/pkg/gsheets"
)

// resolveContent picks the first usable source: desc, then pdf, then sheet.
// A source that yields only whitespace falls through to the next one.
func (uc *implUseCase) resolveContent(ctx context.Context, input generation.GenerateInput) (string, generation.Source, error) {
	if desc := strings.TrimSpace(input.RawText); desc != "" {
		return desc, generation.SourceDesc, nil
	}

	if len(input.PDF) > 0 {
		text, err := uc.pdfText(ctx, input.PDF)
		if err != nil {
			return "", "", fmt.Errorf("failed to extract pdf text: %w", err)
		}
		if strings.TrimSpace(text) != "" {
			return text, generation.SourcePDF, nil
		}
		uc.l.Warnf(ctx, "resolveContent: pdf of %d bytes has no text, trying sheet", len(input.PDF))
	}

	if ref := strings.TrimSpace(input.SheetReference); ref != "" {
		content := fmt.Sprintf(generation.SheetTemplate, ref)
		if rows := uc.readSheet(ctx, ref); rows != "" {
			content += "\n\n" + rows
		}
		return content, generation.SourceSheet, nil
	}

	return "", "", generation.ErrInvalidInput
}

// readSheet returns the referenced sheet's cells as tab-separated rows.
// Any failure yields "" so the template sentence is used alone.
func (uc *implUseCase) readSheet(ctx context.Context, ref string) string {
	if uc.sheets == nil {
		return ""
	}

	id, err := gsheets.ParseSpreadsheetID(ref)
	if err != nil {
		return ""
	}

	rows, err := uc.sheets.ReadRows(ctx, gsheets.ReadRequest{SpreadsheetID: id})
	if err != nil {
		uc.l.Warnf(ctx, "readSheet: spreadsheet %s not readable, using reference only: %v", id, err)
		return ""
	}

	return gsheets.FormatRows(rows)
}
