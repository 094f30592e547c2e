package google

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	domain "github.com/luckybarber/booking-api/internal/domain/booking"
)

// Rango completo del ledger, columnas A..K.
const ledgerRange = "A:K"

type SheetLedger struct {
	svc     *sheets.Service
	sheetID string
}

func NewSheetLedger(
	ctx context.Context,
	client *http.Client,
	sheetID string,
) (*SheetLedger, error) {

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, err
	}

	return &SheetLedger{
		svc:     svc,
		sheetID: sheetID,
	}, nil
}

func (l *SheetLedger) Append(
	ctx context.Context,
	cells []string,
) error {

	row := make([]interface{}, len(cells))
	for i, c := range cells {
		row[i] = c
	}

	_, err := l.svc.Spreadsheets.Values.Append(
		l.sheetID,
		"A1",
		&sheets.ValueRange{Values: [][]interface{}{row}},
	).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()

	return err
}

func (l *SheetLedger) Rows(
	ctx context.Context,
) ([][]string, error) {

	resp, err := l.svc.Spreadsheets.Values.Get(l.sheetID, ledgerRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			if s, ok := cell.(string); ok {
				row[i] = s
			} else {
				row[i] = fmt.Sprint(cell)
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (l *SheetLedger) UpdateTrailing(
	ctx context.Context,
	rowNum int,
	status string,
	originAddress string,
	cancelledAt string,
	reason string,
) error {

	rangeSpec := fmt.Sprintf("H%d:K%d", rowNum, rowNum)

	_, err := l.svc.Spreadsheets.Values.Update(
		l.sheetID,
		rangeSpec,
		&sheets.ValueRange{Values: [][]interface{}{
			{status, originAddress, cancelledAt, reason},
		}},
	).
		ValueInputOption("RAW").
		Context(ctx).
		Do()

	return err
}

// Compile-time check
var _ domain.Ledger = (*SheetLedger)(nil)
