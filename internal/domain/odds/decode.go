package odds

import (
	"strings"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var (
	ErrMalformedDocument = crerr.New("malformed odds document")
	ErrInvalidPrice      = crerr.New("invalid decimal price")
)

var documentValidator = validator.New()

// Decode parses one raw odds payload and checks the top-level keys needed to
// label result rows. Any failure is marked with ErrMalformedDocument.
func Decode(raw []byte) (Document, error) {
	var doc Document
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return Document{}, crerr.Mark(crerr.Wrap(err, "decode odds document"), ErrMalformedDocument)
	}
	doc = doc.trimmed()
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Validate requires the team names used for the game label. Blank names
// count as missing.
func (d Document) Validate() error {
	if err := documentValidator.StructPartial(d.trimmed(), "HomeTeam", "AwayTeam"); err != nil {
		return crerr.Mark(crerr.Wrap(err, "validate odds document"), ErrMalformedDocument)
	}
	return nil
}

// ValidateForImport additionally requires the event id and commence time that
// key stored per-game projections.
func (d Document) ValidateForImport() error {
	if err := documentValidator.Struct(d.trimmed()); err != nil {
		return crerr.Mark(crerr.Wrapf(err, "validate odds document %q for import", d.ID), ErrMalformedDocument)
	}
	return nil
}

func (d Document) trimmed() Document {
	d.ID = strings.TrimSpace(d.ID)
	d.CommenceTime = strings.TrimSpace(d.CommenceTime)
	d.HomeTeam = strings.TrimSpace(d.HomeTeam)
	d.AwayTeam = strings.TrimSpace(d.AwayTeam)
	return d
}
