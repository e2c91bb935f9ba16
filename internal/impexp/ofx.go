package impexp

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/kamaro-labs/centime/internal/model"
)

// OFXTransaction is one bank statement line converted to this
// application's terms. It still needs to pass form validation before it
// becomes a Record, so the importer keeps it as raw input.
type OFXTransaction struct {
	Description string
	Amount      float64
	Date        string
	Type        model.TransactionType
}

var (
	severityRe   = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagRe    = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// preprocessOFX fixes common formatting issues in bank-exported OFX files:
// leading blank lines, mixed-case SEVERITY values, and SGML-style tags
// missing their closing bracket.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRe.ReplaceAllStringFunc(content, strings.ToUpper)
	return openTagRe.ReplaceAllString(content, "$1>")
}

// ImportOFX parses an OFX/QFX statement and converts its bank and credit
// card transactions. Statements that fail to convert are logged and
// skipped rather than failing the whole file.
func ImportOFX(r io.Reader) ([]OFXTransaction, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var out []OFXTransaction
	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		for _, tx := range stmt.BankTranList.Transactions {
			out = append(out, convertOFX(tx))
		}
	}
	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		for _, tx := range stmt.BankTranList.Transactions {
			out = append(out, convertOFX(tx))
		}
	}

	slog.Info("parsed OFX file", "transactions", len(out))
	return out, nil
}

// convertOFX maps one OFX transaction: negative amounts are expenses,
// positive ones income, and the description is cleaned up enough to pass
// form validation.
func convertOFX(tx ofxgo.Transaction) OFXTransaction {
	amount, _ := tx.TrnAmt.Float64()
	txType := model.Income
	if amount < 0 {
		txType = model.Expense
		amount = -amount
	}

	description := strings.TrimSpace(string(tx.Name))
	if memo := strings.TrimSpace(string(tx.Memo)); memo != "" && len(memo) > len(description) {
		description = memo
	}
	description = whitespaceRe.ReplaceAllString(description, " ")

	return OFXTransaction{
		Description: description,
		Amount:      amount,
		Date:        tx.DtPosted.Time.Format(model.DateFormat),
		Type:        txType,
	}
}
