package media

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/marogo-civils/marogo-web/internal/tinify"
)

// Compressor is the remote optimization call used by the Optimizer.
// *tinify.Client implements it.
type Compressor interface {
	Compress(ctx context.Context, data []byte, opts tinify.Options) ([]byte, error)
}

// Upload carries one submitted file.
type Upload struct {
	Filename string
	Data     []byte
}

// Bounds are the maximum pixel dimensions for one image field.
// A single dimension scales proportionally, width and height fit within the
// box, zero bounds only compress.
type Bounds struct {
	Width  int
	Height int
}

func (b Bounds) options() tinify.Options {
	opts := tinify.Options{Convert: tinify.ConvertWebP}

	switch {
	case b.Width > 0 && b.Height > 0:
		opts.Method = tinify.MethodFit
		opts.Width = b.Width
		opts.Height = b.Height
	case b.Width > 0:
		opts.Method = tinify.MethodScale
		opts.Width = b.Width
	case b.Height > 0:
		opts.Method = tinify.MethodScale
		opts.Height = b.Height
	}

	return opts
}

// Result describes the outcome of one optimization.
type Result struct {
	// Filename is the stored file name.
	Filename string
	// Fallback is true when the original bytes were stored unmodified
	// because the remote service failed or is disabled.
	Fallback bool
	// RemoteErr holds the service failure that caused the fallback.
	RemoteErr error
}

// Optimizer runs uploads through the remote optimization service and stores
// the outcome. A nil client means the service is disabled and every upload
// is stored as-is.
type Optimizer struct {
	client Compressor
	store  *Store
}

// NewOptimizer creates an Optimizer writing into store. client may be nil.
func NewOptimizer(client Compressor, store *Store) *Optimizer {
	return &Optimizer{client: client, store: store}
}

// Store exposes the underlying upload store.
func (o *Optimizer) Store() *Store {
	return o.store
}

// Optimize compresses, resizes and converts one upload to WebP and stores
// it. When the remote service fails the original upload is stored under its
// sanitized name instead and the Result is flagged as a fallback. Any local
// failure returns an error and stores nothing usable.
func (o *Optimizer) Optimize(ctx context.Context, up *Upload, bounds Bounds) (*Result, error) {
	if up == nil || up.Filename == "" || len(up.Data) == 0 {
		return nil, ErrEmptyUpload
	}

	base := SanitizeFilename(up.Filename)

	if o.client == nil {
		return o.fallback(base, up.Data, ErrServiceDisabled)
	}

	out, err := o.client.Compress(ctx, up.Data, bounds.options())
	if err != nil {
		return o.fallback(base, up.Data, err)
	}

	name := webpName(base)
	if err := o.store.Save(name, out); err != nil {
		return nil, errors.Wrap(err, "failed to store optimized image")
	}

	return &Result{Filename: name}, nil
}

// fallback stores the untouched original bytes under the sanitized name.
func (o *Optimizer) fallback(name string, data []byte, cause error) (*Result, error) {
	log.Warn().Err(cause).Str("file", name).Msg("image optimization failed, storing original")

	if err := o.store.Save(name, data); err != nil {
		return nil, errors.Wrap(err, "failed to store original image")
	}

	return &Result{Filename: name, Fallback: true, RemoteErr: cause}, nil
}
