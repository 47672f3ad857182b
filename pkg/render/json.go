package render

import (
	"encoding/json"

	"github.com/dkoosis/convert/pkg/convert"
)

// JSON renders results as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version    string              `json:"version"`
	Conversion *convert.Conversion `json:"conversion,omitempty"`
	Comparison *convert.Comparison `json:"comparison,omitempty"`
}

// RenderConversion formats a conversion as JSON.
func (j *JSON) RenderConversion(c convert.Conversion) string {
	return j.marshal(jsonOutput{Version: "1", Conversion: &c})
}

// RenderComparison formats a comparison as JSON.
func (j *JSON) RenderComparison(c convert.Comparison) string {
	return j.marshal(jsonOutput{Version: "1", Comparison: &c})
}

func (j *JSON) marshal(out jsonOutput) string {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
