package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/sheet-metrics/pkg/models/domain"
)

type mockWorkbook struct {
	mock.Mock
}

func (m *mockWorkbook) Sheets() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *mockWorkbook) Table(ctx context.Context, sheet string) (*domain.Table, error) {
	args := m.Called(ctx, sheet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *mockWorkbook) Close() error {
	return nil
}

func number(v float64) domain.Cell { return domain.Cell{Kind: domain.CellNumber, Number: v} }
func text(s string) domain.Cell    { return domain.Cell{Kind: domain.CellText, Text: s} }

func salesTable() *domain.Table {
	return &domain.Table{
		Columns: []string{"Product", "Units"},
		Rows: [][]domain.Cell{
			{text("widget"), number(10)},
			{text("gadget"), number(20)},
			{text("trinket"), number(30)},
		},
	}
}

func TestAnalyze_ComputesSheetStatistics(t *testing.T) {
	wb := new(mockWorkbook)
	wb.On("Sheets").Return([]string{"Sales"})
	wb.On("Table", mock.Anything, "Sales").Return(salesTable(), nil)

	analysis, err := New().Analyze(context.Background(), wb)
	require.NoError(t, err)

	assert.Equal(t, []domain.SheetOutcome{{Sheet: "Sales"}}, analysis.Outcomes)
	require.Contains(t, analysis.Summary, "Sales")

	units := analysis.Summary["Sales"]["Units"]
	assert.InDelta(t, 20, units.Mean, 1e-9)
	assert.InDelta(t, 20, units.Median, 1e-9)
	assert.InDelta(t, 10, units.Std, 1e-9)
	assert.InDelta(t, 10, units.Min, 1e-9)
	assert.InDelta(t, 30, units.Max, 1e-9)
	assert.Equal(t, 3, units.Count)

	assert.NotContains(t, analysis.Summary["Sales"], "Product")
	assert.Contains(t, analysis.Tables, "Sales")
	wb.AssertExpectations(t)
}

func TestAnalyze_SheetErrorDoesNotAbortOthers(t *testing.T) {
	wb := new(mockWorkbook)
	wb.On("Sheets").Return([]string{"Good", "Bad", "Also"})
	wb.On("Table", mock.Anything, "Good").Return(salesTable(), nil)
	wb.On("Table", mock.Anything, "Bad").Return(nil, errors.New("corrupt rows"))
	wb.On("Table", mock.Anything, "Also").Return(salesTable(), nil)

	analysis, err := New().Analyze(context.Background(), wb)
	require.NoError(t, err)

	assert.Equal(t, []domain.SheetOutcome{
		{Sheet: "Good"},
		{Sheet: "Bad", Err: "corrupt rows"},
		{Sheet: "Also"},
	}, analysis.Outcomes)

	assert.Contains(t, analysis.Summary, "Good")
	assert.Contains(t, analysis.Summary, "Also")
	assert.NotContains(t, analysis.Summary, "Bad")
	assert.NotContains(t, analysis.Tables, "Bad")
	wb.AssertExpectations(t)
}

func TestAnalyze_NoNumericColumnsStillSucceeds(t *testing.T) {
	wb := new(mockWorkbook)
	wb.On("Sheets").Return([]string{"Notes"})
	wb.On("Table", mock.Anything, "Notes").Return(&domain.Table{
		Columns: []string{"Comment"},
		Rows:    [][]domain.Cell{{text("hello")}},
	}, nil)

	analysis, err := New().Analyze(context.Background(), wb)
	require.NoError(t, err)

	assert.Equal(t, []domain.SheetOutcome{{Sheet: "Notes"}}, analysis.Outcomes)
	assert.Empty(t, analysis.Summary)
	assert.Contains(t, analysis.Tables, "Notes")
}

func TestAnalyze_AllMissingColumnProducesNoStats(t *testing.T) {
	wb := new(mockWorkbook)
	wb.On("Sheets").Return([]string{"Sparse"})
	wb.On("Table", mock.Anything, "Sparse").Return(&domain.Table{
		Columns: []string{"Empty"},
		Rows:    [][]domain.Cell{{{Kind: domain.CellMissing}}, {{Kind: domain.CellMissing}}},
	}, nil)

	analysis, err := New().Analyze(context.Background(), wb)
	require.NoError(t, err)

	assert.Equal(t, []domain.SheetOutcome{{Sheet: "Sparse"}}, analysis.Outcomes)
	assert.Empty(t, analysis.Summary)
}

func TestAnalyze_SingleValueColumn(t *testing.T) {
	wb := new(mockWorkbook)
	wb.On("Sheets").Return([]string{"One"})
	wb.On("Table", mock.Anything, "One").Return(&domain.Table{
		Columns: []string{"Value"},
		Rows:    [][]domain.Cell{{number(7)}},
	}, nil)

	analysis, err := New().Analyze(context.Background(), wb)
	require.NoError(t, err)

	st := analysis.Summary["One"]["Value"]
	assert.Zero(t, st.Std)
	assert.Equal(t, 1, st.Count)
}

func TestAnalyze_CanceledContext(t *testing.T) {
	wb := new(mockWorkbook)
	wb.On("Sheets").Return([]string{"Sales"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Analyze(ctx, wb)
	assert.ErrorIs(t, err, context.Canceled)
}
