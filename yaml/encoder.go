// Package yaml writes reports as YAML with gopkg.in/yaml.v3.
package yaml

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/pagegrade"
	"gopkg.in/yaml.v3"
)

// Ensure Encoder implements pagegrade.ReportEncoder at compile time.
var _ pagegrade.ReportEncoder = (*Encoder)(nil)

// Encoder writes reports as block-style YAML.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodeReport writes r to w.
func (e *Encoder) EncodeReport(w io.Writer, r *pagegrade.Report) error {
	if r == nil {
		return pagegrade.Errorf(pagegrade.EINVALID, "report required")
	}
	return Encode(w, r)
}

// Encode writes v to w as YAML. Keys follow v's JSON field names and order,
// so the YAML and JSON outputs describe the same document.
func Encode(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return pagegrade.Errorf(pagegrade.EINTERNAL, "marshal: %v", err)
	}

	// JSON is a subset of YAML; decoding into a node keeps key order.
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return pagegrade.Errorf(pagegrade.EINTERNAL, "decode: %v", err)
	}
	resetStyle(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return pagegrade.Errorf(pagegrade.EINTERNAL, "encode yaml: %v", err)
	}
	return enc.Close()
}

// resetStyle clears the flow and quoting styles carried over from JSON.
// The encoder quotes any string that would otherwise read as another type.
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		resetStyle(c)
	}
}
