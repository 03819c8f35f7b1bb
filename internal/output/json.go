package output

import (
	"encoding/json"

	"github.com/firecalc/firecalc/internal/domain"
)

// JSONFormatter emits the full comparison as indented JSON, suitable for
// piping into other tools.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(results *domain.Comparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
