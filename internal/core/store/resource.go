package store

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/ports"
	"github.com/commutersec/admin-dashboard/internal/metrics"
)

// Resource is a Collection that also writes: create and update refresh the
// whole list from the server, delete removes the record locally once the
// server confirms it. P is the write payload type.
type Resource[T domain.Keyed, P any] struct {
	*Collection[T]
}

func NewResource[T domain.Keyed, P any](cfg Config, api ports.Requester, notify ports.ChangeNotifier, logger zerolog.Logger) *Resource[T, P] {
	return &Resource[T, P]{Collection: NewCollection[T](cfg, api, notify, logger)}
}

func (r *Resource[T, P]) Create(ctx context.Context, data P) Result[T] {
	var env domain.Envelope[T]
	if err := r.api.Do(ctx, http.MethodPost, r.cfg.Path, data, &env); err != nil {
		return r.record("create", failed[T](err, "Failed to create "+r.cfg.Singular))
	}
	if !env.Success {
		return r.record("create", failed[T](unsuccessful(env.Message, "Failed to create "+r.cfg.Singular), ""))
	}

	r.FetchAll(ctx)
	return r.record("create", succeeded(env.Data))
}

func (r *Resource[T, P]) Update(ctx context.Context, id int64, data P) Result[T] {
	var env domain.Envelope[T]
	if err := r.api.Do(ctx, http.MethodPut, r.cfg.itemPath(id), data, &env); err != nil {
		return r.record("update", failed[T](err, "Failed to update "+r.cfg.Singular))
	}
	if !env.Success {
		return r.record("update", failed[T](unsuccessful(env.Message, "Failed to update "+r.cfg.Singular), ""))
	}

	r.FetchAll(ctx)
	return r.record("update", succeeded(env.Data))
}

// Delete removes id on the server and then from the local list. Data holds
// the deleted id on success.
func (r *Resource[T, P]) Delete(ctx context.Context, id int64) Result[int64] {
	var env domain.Envelope[json.RawMessage]
	res := succeeded(id)
	if err := r.api.Do(ctx, http.MethodDelete, r.cfg.itemPath(id), nil, &env); err != nil {
		res = failed[int64](err, "Failed to delete "+r.cfg.Singular)
	} else if !env.Success {
		res = failed[int64](unsuccessful(env.Message, "Failed to delete "+r.cfg.Singular), "")
	} else {
		r.remove(id)
	}
	recordMutation(r.logger, r.cfg.Name, "delete", res.Success, res.Err)
	return res
}

func (r *Resource[T, P]) record(op string, res Result[T]) Result[T] {
	recordMutation(r.logger, r.cfg.Name, op, res.Success, res.Err)
	return res
}

func recordMutation(logger zerolog.Logger, name, op string, ok bool, err error) {
	result := "ok"
	if !ok {
		result = "failed"
		logger.Warn().Err(err).Str("op", op).Msg("mutation failed")
	}
	metrics.StoreMutationsTotal.WithLabelValues(name, op, result).Inc()
}
