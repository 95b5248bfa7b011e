package content

import (
	"github.com/marogo-civils/marogo-web/internal/media"
)

// MapForm is a Form backed by plain maps. The web layer fills it from the
// multipart request, tests fill it directly.
type MapForm struct {
	Fields  map[string][]string
	Uploads map[string][]*media.Upload
}

// Value returns the first submitted value of a text field.
func (f *MapForm) Value(name string) string {
	if vs := f.Fields[name]; len(vs) > 0 {
		return vs[0]
	}

	return ""
}

// Values returns all submitted values of a text field.
func (f *MapForm) Values(name string) []string {
	return f.Fields[name]
}

// File returns the upload of a single file field, nil when absent.
func (f *MapForm) File(name string) *media.Upload {
	if ups := f.Uploads[name]; len(ups) > 0 {
		return ups[0]
	}

	return nil
}

// Files returns all uploads of a multi file field.
func (f *MapForm) Files(name string) []*media.Upload {
	return f.Uploads[name]
}
