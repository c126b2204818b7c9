package usecase

import (
	"context"
	"time"

	"taskextreme-ai/internal/generation"
	"taskextreme-ai/pkg/gsheets"
	"taskextreme-ai/pkg/inference"
	pkgLog "taskextreme-ai/pkg/log"
	"taskextreme-ai/pkg/pdftext"
	"taskextreme-ai/pkg/taskprompt"
)

// SheetReader reads cell values from a spreadsheet. *gsheets.Client satisfies it.
type SheetReader interface {
	ReadRows(ctx context.Context, req gsheets.ReadRequest) ([][]string, error)
}

var _ generation.UseCase = (*implUseCase)(nil)

type implUseCase struct {
	l        pkgLog.Logger
	llm      inference.IClient
	composer *taskprompt.Composer
	sheets   SheetReader // optional
	pdfText  func(ctx context.Context, data []byte) (string, error)
	now      func() time.Time
}

// New creates a new generation UseCase instance. sheets may be nil.
func New(
	l pkgLog.Logger,
	llm inference.IClient,
	composer *taskprompt.Composer,
	sheets SheetReader,
) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		composer: composer,
		sheets:   sheets,
		pdfText:  pdftext.Extract,
		now:      time.Now,
	}
}
