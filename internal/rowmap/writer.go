package rowmap

import (
	"fmt"
	"io"
	"iter"

	"github.com/goccy/go-json"
)

// WriteJSONLines writes one JSON object per line and returns the number of
// records written.
func WriteJSONLines(w io.Writer, rows iter.Seq2[*Record, error]) (int, error) {
	n := 0

	for rec, err := range rows {
		if err != nil {
			return n, err
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return n, fmt.Errorf("encoding record %d: %w", n+1, err)
		}

		data = append(data, '\n')
		if _, err := w.Write(data); err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}

// WriteJSONArray writes all records as a single JSON array followed by a
// newline and returns the number of records written.
func WriteJSONArray(w io.Writer, rows iter.Seq2[*Record, error]) (int, error) {
	records, err := Collect(rows)
	if err != nil {
		return 0, err
	}

	if records == nil {
		records = []*Record{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return 0, fmt.Errorf("encoding records: %w", err)
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return 0, err
	}

	return len(records), nil
}
