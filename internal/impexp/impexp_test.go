package impexp

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamaro-labs/centime/internal/model"
)

func TestExportFileName(t *testing.T) {
	today := time.Date(2026, time.August, 29, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "centime-export-2026-08-29.json", ExportFileName(today))
}

func TestExportImportRoundTrip(t *testing.T) {
	created := time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)
	records := []model.Record{
		{
			ID:          "r1",
			Description: "morning coffee",
			Amount:      2.5,
			Category:    "Food",
			Date:        "2026-08-25",
			Type:        model.Expense,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:          "r2",
			Description: "salary",
			Amount:      1200,
			Date:        "2026-08-27",
			Type:        model.Income,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, records))

	// Pretty-printed array ending in a newline.
	assert.True(t, strings.HasPrefix(buf.String(), "[\n"))
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))

	got, err := Import(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestExportNilRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestImportEmptyArray(t *testing.T) {
	got, err := Import(strings.NewReader("[]"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestImportRejectsBadFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: "not json at all"},
		{name: "empty input", input: ""},
		{name: "null literal", input: "null"},
		{name: "null with leading whitespace", input: "  \n null"},
		{name: "object instead of array", input: `{"id": "a", "amount": 1}`},
		{name: "first element missing id", input: `[{"amount": 5}]`},
		{name: "first element empty id", input: `[{"id": "", "amount": 5}]`},
		{name: "amount as string", input: `[{"id": "a", "amount": "5"}]`},
		{name: "array of scalars", input: `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadFormat)
		})
	}
}

func TestImportShallowCheckOnly(t *testing.T) {
	// Only the first element is probed; a later element without an id
	// still passes the structural check.
	input := `[
  {"id": "a", "amount": 5, "description": "ok", "date": "2026-08-25", "type": "expense"},
  {"amount": 7, "description": "no id", "date": "2026-08-26", "type": "expense"}
]`
	got, err := Import(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Empty(t, got[1].ID)
}

func TestPreprocessOFX(t *testing.T) {
	input := "\r\n\n  <SEVERITY>info</SEVERITY>\n<TRNAMT\n"
	got := preprocessOFX(input)
	assert.Contains(t, got, "<SEVERITY>INFO</SEVERITY>")
	assert.Contains(t, got, "<TRNAMT>")
	assert.False(t, strings.HasPrefix(got, "\r"))
}

const sampleOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20260827120000
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>0000001
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20260801000000
<DTEND>20260827000000
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260825120000
<TRNAMT>-2.50
<FITID>txn-1
<NAME>COFFEE SHOP
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20260827090000
<TRNAMT>1200.00
<FITID>txn-2
<NAME>PAYROLL
<MEMO>PAYROLL   AUGUST DEPOSIT
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1197.50
<DTASOF>20260827120000
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>
`

func TestImportOFX(t *testing.T) {
	got, err := ImportOFX(strings.NewReader(sampleOFX))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "COFFEE SHOP", got[0].Description)
	assert.Equal(t, 2.5, got[0].Amount)
	assert.Equal(t, "2026-08-25", got[0].Date)
	assert.Equal(t, model.Expense, got[0].Type)

	// The memo is longer than the name, so it wins, with whitespace
	// collapsed.
	assert.Equal(t, "PAYROLL AUGUST DEPOSIT", got[1].Description)
	assert.Equal(t, 1200.0, got[1].Amount)
	assert.Equal(t, model.Income, got[1].Type)
}

func TestImportOFXRejectsGarbage(t *testing.T) {
	_, err := ImportOFX(strings.NewReader("this is not an OFX file"))
	assert.Error(t, err)
}
