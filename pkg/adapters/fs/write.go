package fs

import (
	"fmt"

	"github.com/aretw0/taskpaper/pkg/core"
)

// WriteDocument renders doc and writes it atomically to path. It is a
// convenience for callers operating on a single file outside a Repository.
func WriteDocument(path string, doc *core.Document) error {
	if err := writeFileAtomic(path, []byte(doc.String()), 0644); err != nil {
		return fmt.Errorf("write document %s: %w", path, err)
	}
	return nil
}
