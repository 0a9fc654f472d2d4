// Package metaerr attaches structured key/value metadata to errors, so
// failure context can travel to the logger without being flattened into
// the error message.
package metaerr

import "errors"

type metaError struct {
	err  error
	meta []any
}

// WithMetadata annotates err with alternating key/value pairs, as accepted
// by log/slog. Returns nil if err is nil.
func WithMetadata(err error, kv ...any) error {
	if err == nil {
		return nil
	}
	return &metaError{err: err, meta: kv}
}

func (e *metaError) Error() string { return e.err.Error() }

func (e *metaError) Unwrap() error { return e.err }

// GetMetadata collects the metadata attached anywhere in err's chain,
// outermost first.
func GetMetadata(err error) []any {
	var meta []any
	for err != nil {
		var me *metaError
		if errors.As(err, &me) {
			meta = append(meta, me.meta...)
			err = me.err
			continue
		}
		err = errors.Unwrap(err)
	}
	return meta
}
