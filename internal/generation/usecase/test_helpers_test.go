package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"taskextreme-ai/pkg/datemath"
	"taskextreme-ai/pkg/gsheets"
	pkgLog "taskextreme-ai/pkg/log"
	"taskextreme-ai/pkg/taskprompt"
)

// Wednesday 2024-05-01.
var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type mockLLM struct {
	reply  string
	err    error
	calls  int
	system string
	user   string
}

func (m *mockLLM) ChatCompletion(ctx context.Context, system, user string) (string, error) {
	m.calls++
	m.system = system
	m.user = user
	return m.reply, m.err
}

func (m *mockLLM) Model() string { return "test-model" }

type mockSheets struct {
	rows [][]string
	err  error
	req  gsheets.ReadRequest
}

func (m *mockSheets) ReadRows(ctx context.Context, req gsheets.ReadRequest) ([][]string, error) {
	m.req = req
	return m.rows, m.err
}

func newTestUseCase(t *testing.T, llm *mockLLM, sheets SheetReader) (*implUseCase, *observer.ObservedLogs) {
	t.Helper()

	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	core, logs := observer.New(zap.DebugLevel)
	uc := New(pkgLog.NewZapAdapter(zap.New(core)), llm, taskprompt.New(parser), sheets)
	uc.now = func() time.Time { return fixedNow }
	uc.pdfText = func(ctx context.Context, data []byte) (string, error) {
		return string(data) + "\n", nil
	}
	return uc, logs
}
