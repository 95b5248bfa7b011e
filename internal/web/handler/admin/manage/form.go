package manage

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/marogo-civils/marogo-web/internal/content"
	"github.com/marogo-civils/marogo-web/internal/media"
)

// formFromRequest copies the submitted fields and uploads into a
// content.Form. The content layer never touches the request after this, so
// uploads are read fully here.
func formFromRequest(c *fiber.Ctx) content.Form {
	form := &content.MapForm{
		Fields:  make(map[string][]string),
		Uploads: make(map[string][]*media.Upload),
	}

	mp, err := c.MultipartForm()
	if err != nil {
		// plain form post without any file fields
		c.Request().PostArgs().VisitAll(func(key, value []byte) {
			name := string(key)
			form.Fields[name] = append(form.Fields[name], string(value))
		})

		return form
	}

	for name, values := range mp.Value {
		form.Fields[name] = append(form.Fields[name], values...)
	}

	for name, headers := range mp.File {
		for _, header := range headers {
			up, err := readUpload(header)
			if err != nil {
				log.Warn().Err(err).Str("field", name).Msg("failed to read upload")

				continue
			}

			if up != nil {
				form.Uploads[name] = append(form.Uploads[name], up)
			}
		}
	}

	return form
}

// readUpload drains one uploaded file into memory. Empty file inputs are
// submitted by browsers as headers without a filename and yield nil.
func readUpload(header *multipart.FileHeader) (*media.Upload, error) {
	if header == nil || header.Filename == "" {
		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &media.Upload{Filename: header.Filename, Data: data}, nil
}
