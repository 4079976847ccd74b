package kumiko

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// loadLicense reads the "<imagePath>.license" sidecar, if present, and
// parses it as an opaque JSON object (spec.md §6 License sidecar). Returns
// nil, nil when no sidecar file exists. A sidecar that exists but fails to
// parse as JSON is a fatal configuration error (ErrInvalidLicense,
// wrapped).
func loadLicense(imagePath string) (json.RawMessage, error) {
	path := imagePath + ".license"

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "kumiko: reading license sidecar %q", path)
	}

	var probe interface{}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrapf(ErrInvalidLicense, "%s: %s", path, err)
	}

	return json.RawMessage(data), nil
}
