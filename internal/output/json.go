package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter outputs diagnostics as a JSON array.
type JSONFormatter struct{}

type jsonFix struct {
	Replacement string `json:"replacement"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
}

type jsonDiagnostic struct {
	File  string   `json:"file"`
	Rule  string   `json:"rule"`
	Name  string   `json:"name"`
	Start int      `json:"start"`
	End   int      `json:"end"`
	Fix   *jsonFix `json:"fix,omitempty"`
}

// Format writes diagnostics as a pretty-printed JSON array.
// An empty slice of diagnostics produces [].
func (f *JSONFormatter) Format(w io.Writer, rep FileReport) error {
	items := make([]jsonDiagnostic, 0, len(rep.Diagnostics))
	for _, d := range rep.Diagnostics {
		item := jsonDiagnostic{
			File:  rep.File,
			Rule:  d.Kind.Code(),
			Name:  d.Kind.Name(),
			Start: d.Range.Start(),
			End:   d.Range.End(),
		}
		if d.Fix != nil {
			item.Fix = &jsonFix{
				Replacement: d.Fix.Replacement,
				Start:       d.Fix.Range.Start(),
				End:         d.Fix.Range.End(),
			}
		}
		items = append(items, item)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
