package alloc

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Traced wraps a Resource and logs every reservation and release at debug
// level. Failed reservations are logged as warnings.
type Traced struct {
	inner Resource
	log   *zap.Logger
}

// Trace wraps r with logging to log. A nil log selects zap.NewNop().
func Trace(r Resource, log *zap.Logger) *Traced {
	if log == nil {
		log = zap.NewNop()
	}
	return &Traced{
		inner: r,
		log:   log.With(zap.Stringer("resource", r.ID())),
	}
}

// ID implements Resource.
func (t *Traced) ID() uuid.UUID { return t.inner.ID() }

// Limit implements Resource.
func (t *Traced) Limit() int { return t.inner.Limit() }

// Reserve implements Resource.
func (t *Traced) Reserve(bytes int) error {
	if err := t.inner.Reserve(bytes); err != nil {
		t.log.Warn("reserve failed", zap.Int("bytes", bytes), zap.Error(err))
		return err
	}
	t.log.Debug("reserve", zap.Int("bytes", bytes))
	return nil
}

// Release implements Resource.
func (t *Traced) Release(bytes int) {
	t.inner.Release(bytes)
	t.log.Debug("release", zap.Int("bytes", bytes))
}

// Unwrap returns the wrapped resource.
func (t *Traced) Unwrap() Resource { return t.inner }
