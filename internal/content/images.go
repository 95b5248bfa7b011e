package content

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/marogo-civils/marogo-web/internal/media"
)

// storeRequiredImage stores a mandatory upload for a create. A storage
// failure aborts the create so no half-initialized record is inserted.
func storeRequiredImage(ctx context.Context, opt *media.Optimizer, out *Outcome, form Form, field string, bounds media.Bounds) (string, error) {
	up, err := requiredImage(form, field)
	if err != nil {
		return "", err
	}

	res, err := opt.Optimize(ctx, up, bounds)
	if err != nil {
		log.Error().Err(err).Str("field", field).Msg("failed to store upload")

		return "", errors.Wrap(ErrImageProcessingFailed, field)
	}

	out.warnFallback(res)

	return res.Filename, nil
}

// storeOptionalImage stores an optional upload for a create. When the field
// is empty or storage fails the field stays unset, a failure only leaves a
// warning.
func storeOptionalImage(ctx context.Context, opt *media.Optimizer, out *Outcome, form Form, field string, bounds media.Bounds) string {
	up := optionalImage(form, field)
	if up == nil {
		return ""
	}

	res, err := opt.Optimize(ctx, up, bounds)
	if err != nil {
		log.Error().Err(err).Str("field", field).Msg("failed to store upload")
		out.warn("The uploaded image could not be stored and was skipped.")

		return ""
	}

	out.warnFallback(res)

	return res.Filename
}

// replaceImage swaps a freshly submitted upload into a single image field
// and removes the previously stored file. A storage failure keeps the old
// image so the rest of the update still goes through.
func replaceImage(ctx context.Context, opt *media.Optimizer, out *Outcome, up *media.Upload, bounds media.Bounds, current *string) {
	res, err := opt.Optimize(ctx, up, bounds)
	if err != nil {
		log.Error().Err(err).Str("file", up.Filename).Msg("failed to store upload")
		out.warn("The uploaded image could not be stored, the previous one was kept.")

		return
	}

	out.warnFallback(res)

	if old := *current; old != "" && old != res.Filename {
		opt.Store().Remove(old)
	}

	*current = res.Filename
}
