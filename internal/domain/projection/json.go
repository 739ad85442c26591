package projection

import (
	"bytes"
	"strconv"

	"github.com/bytedance/sonic"
)

// MarshalJSON renders the dashboard row shape:
//
//	{"name": ..., "stats": [game, stat...], "expected_score": number | {profile: number}}
//
// Imputed stats are strings carrying ImputedMarker. A single profile renders
// expected_score as a bare number; several render an object in profile order.
func (r ResultRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"name":`)
	if err := writeString(&buf, r.Name); err != nil {
		return nil, err
	}

	buf.WriteString(`,"stats":[`)
	if err := writeString(&buf, r.Game); err != nil {
		return nil, err
	}
	for _, stat := range r.Stats {
		buf.WriteByte(',')
		if stat.Imputed {
			if err := writeString(&buf, stat.Display()); err != nil {
				return nil, err
			}
			continue
		}
		buf.WriteString(formatNumber(stat.Value))
	}
	buf.WriteByte(']')

	buf.WriteString(`,"expected_score":`)
	switch len(r.Scores) {
	case 0:
		buf.WriteString("null")
	case 1:
		buf.WriteString(formatNumber(r.Scores[0].Points))
	default:
		buf.WriteByte('{')
		for i, score := range r.Scores {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(&buf, score.Profile); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			buf.WriteString(formatNumber(score.Points))
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeString(buf *bytes.Buffer, s string) error {
	raw, err := sonic.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(raw)
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
