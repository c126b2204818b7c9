package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskextreme-ai/internal/generation"
	"taskextreme-ai/pkg/inference"
)

func TestGenerate_DinnerExample(t *testing.T) {
	llm := &mockLLM{reply: `{"tasks":[{"id":"ai_1","title":"Dinner","timeStart":"19:00","timeEnd":"20:30","date":"2024-05-01","repeat":null,"dueDate":null,"completed":false}]}`}
	uc, _ := newTestUseCase(t, llm, nil)

	out, err := uc.Generate(context.Background(), generation.GenerateInput{RawText: "  Dinner tonight at 7pm  "})
	require.NoError(t, err)

	assert.Equal(t, 1, llm.calls)
	assert.Equal(t, "Dinner tonight at 7pm", llm.user)
	assert.Contains(t, llm.system, `- "Dinner tonight at 7pm" → date: 2024-05-01, time: 19:00-20:30`)
	assert.Contains(t, llm.system, "Project deadline: None")

	assert.True(t, out.Extracted)
	assert.Equal(t, generation.SourceDesc, out.Source)
	assert.Equal(t, 1, out.DraftCount)
	assert.Equal(t, `[{"id":"ai_1","title":"Dinner","timeStart":"19:00","timeEnd":"20:30","date":"2024-05-01","repeat":null,"dueDate":null,"completed":false}]`, out.Tasks)
}

func TestGenerate_DeadlineInPrompt(t *testing.T) {
	llm := &mockLLM{reply: "[]"}
	uc, _ := newTestUseCase(t, llm, nil)

	_, err := uc.Generate(context.Background(), generation.GenerateInput{RawText: "Ship v2", ContextDeadline: "next friday"})
	require.NoError(t, err)
	assert.Contains(t, llm.system, "Project deadline: 2024-05-03")
}

func TestGenerate_RawFallback(t *testing.T) {
	llm := &mockLLM{reply: "I need more detail about the project."}
	uc, logs := newTestUseCase(t, llm, nil)

	out, err := uc.Generate(context.Background(), generation.GenerateInput{RawText: "stuff"})
	require.NoError(t, err)
	assert.False(t, out.Extracted)
	assert.Equal(t, "I need more detail about the project.", out.Tasks)
	assert.NotEmpty(t, logs.FilterMessageSnippet("no JSON array").All())
}

func TestGenerate_SchemaViolationIsAdvisory(t *testing.T) {
	llm := &mockLLM{reply: `[{"title":"Plan"}]`}
	uc, logs := newTestUseCase(t, llm, nil)

	out, err := uc.Generate(context.Background(), generation.GenerateInput{RawText: "plan"})
	require.NoError(t, err)
	assert.True(t, out.Extracted)
	assert.Equal(t, `[{"title":"Plan"}]`, out.Tasks)
	assert.NotEmpty(t, logs.FilterMessageSnippet("schema violations").All())
}

func TestGenerate_InvalidInput(t *testing.T) {
	llm := &mockLLM{}
	uc, _ := newTestUseCase(t, llm, nil)

	_, err := uc.Generate(context.Background(), generation.GenerateInput{RawText: "   ", SheetReference: "\t"})
	assert.ErrorIs(t, err, generation.ErrInvalidInput)
	assert.Zero(t, llm.calls)
}

func TestGenerate_UpstreamError(t *testing.T) {
	llm := &mockLLM{err: &inference.UpstreamError{StatusCode: http.StatusUnauthorized, Message: "Bad credentials"}}
	uc, _ := newTestUseCase(t, llm, nil)

	_, err := uc.Generate(context.Background(), generation.GenerateInput{RawText: "x"})
	require.Error(t, err)

	var upErr *inference.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, "Bad credentials", upErr.Message)
	assert.Equal(t, 1, llm.calls)
}

func TestResolveContent(t *testing.T) {
	uc, _ := newTestUseCase(t, &mockLLM{}, nil)
	ctx := context.Background()

	t.Run("desc trimmed", func(t *testing.T) {
		got, src, err := uc.resolveContent(ctx, generation.GenerateInput{RawText: "\n Build a login page \t"})
		require.NoError(t, err)
		assert.Equal(t, "Build a login page", got)
		assert.Equal(t, generation.SourceDesc, src)
	})

	t.Run("desc preferred over pdf", func(t *testing.T) {
		got, src, err := uc.resolveContent(ctx, generation.GenerateInput{RawText: "desc", PDF: []byte("pdf text")})
		require.NoError(t, err)
		assert.Equal(t, "desc", got)
		assert.Equal(t, generation.SourceDesc, src)
	})

	t.Run("pdf when desc blank", func(t *testing.T) {
		got, src, err := uc.resolveContent(ctx, generation.GenerateInput{RawText: "  ", PDF: []byte("page one"), SheetReference: "ref"})
		require.NoError(t, err)
		assert.Equal(t, "page one\n", got)
		assert.Equal(t, generation.SourcePDF, src)
	})

	t.Run("sheet template", func(t *testing.T) {
		got, src, err := uc.resolveContent(ctx, generation.GenerateInput{SheetReference: " Q3 roadmap "})
		require.NoError(t, err)
		assert.Equal(t, "The following spreadsheet describes the project: Q3 roadmap", got)
		assert.Equal(t, generation.SourceSheet, src)
	})

	t.Run("nothing usable", func(t *testing.T) {
		_, _, err := uc.resolveContent(ctx, generation.GenerateInput{})
		assert.ErrorIs(t, err, generation.ErrInvalidInput)
	})
}

func TestResolveContent_PDF(t *testing.T) {
	ctx := context.Background()

	t.Run("textless pdf falls through to sheet", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &mockLLM{}, nil)
		uc.pdfText = func(ctx context.Context, data []byte) (string, error) { return "\n\n", nil }

		got, src, err := uc.resolveContent(ctx, generation.GenerateInput{PDF: []byte("%PDF"), SheetReference: "plan"})
		require.NoError(t, err)
		assert.Equal(t, generation.SourceSheet, src)
		assert.Contains(t, got, "plan")
	})

	t.Run("textless pdf alone is invalid", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &mockLLM{}, nil)
		uc.pdfText = func(ctx context.Context, data []byte) (string, error) { return " ", nil }

		_, _, err := uc.resolveContent(ctx, generation.GenerateInput{PDF: []byte("%PDF")})
		assert.ErrorIs(t, err, generation.ErrInvalidInput)
	})

	t.Run("extraction failure is internal", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &mockLLM{}, nil)
		uc.pdfText = func(ctx context.Context, data []byte) (string, error) { return "", errors.New("corrupt xref") }

		_, _, err := uc.resolveContent(ctx, generation.GenerateInput{PDF: []byte("junk")})
		require.Error(t, err)
		assert.NotErrorIs(t, err, generation.ErrInvalidInput)
		assert.Contains(t, err.Error(), "corrupt xref")
	})
}

func TestResolveContent_SheetEnrichment(t *testing.T) {
	ctx := context.Background()
	const url = "https://docs.google.com/spreadsheets/d/1AbCdEfGhIjKlMnOpQrStUvWxYz0123456789/edit"

	t.Run("rows appended", func(t *testing.T) {
		sheets := &mockSheets{rows: [][]string{{"Task", "Days"}, {"Design", "3"}}}
		uc, _ := newTestUseCase(t, &mockLLM{}, sheets)

		got, _, err := uc.resolveContent(ctx, generation.GenerateInput{SheetReference: url})
		require.NoError(t, err)
		assert.Equal(t, "The following spreadsheet describes the project: "+url+"\n\nTask\tDays\nDesign\t3", got)
		assert.Equal(t, "1AbCdEfGhIjKlMnOpQrStUvWxYz0123456789", sheets.req.SpreadsheetID)
	})

	t.Run("read failure ignored", func(t *testing.T) {
		sheets := &mockSheets{err: errors.New("403 forbidden")}
		uc, logs := newTestUseCase(t, &mockLLM{}, sheets)

		got, _, err := uc.resolveContent(ctx, generation.GenerateInput{SheetReference: url})
		require.NoError(t, err)
		assert.Equal(t, "The following spreadsheet describes the project: "+url, got)
		assert.NotEmpty(t, logs.FilterMessageSnippet("not readable").All())
	})

	t.Run("non-sheet reference not fetched", func(t *testing.T) {
		sheets := &mockSheets{rows: [][]string{{"x"}}}
		uc, _ := newTestUseCase(t, &mockLLM{}, sheets)

		got, _, err := uc.resolveContent(ctx, generation.GenerateInput{SheetReference: "budget.xlsx"})
		require.NoError(t, err)
		assert.Equal(t, "The following spreadsheet describes the project: budget.xlsx", got)
		assert.Empty(t, sheets.req.SpreadsheetID)
	})
}
