package checklist

import (
	"context"

	"go.uber.org/zap"

	"github.com/idilsaglam/packup/internal/api"
	"github.com/idilsaglam/packup/internal/model"
)

// LeaveResult is the outcome of one leaving action.
type LeaveResult struct {
	// Missing are the unpacked items the warning rule flagged, in
	// list order. Empty means everything important is packed.
	Missing []model.PredictedItem
	// SyncErr is the checklist upload failure, if any. Informational:
	// the warning above is valid regardless.
	SyncErr error
}

// Evaluator runs the leaving workflow: upload the checklist state,
// then decide whether to warn.
type Evaluator struct {
	client *api.Client
	log    *zap.Logger
}

// NewEvaluator builds an evaluator over the given client.
func NewEvaluator(client *api.Client, log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{client: client, log: log}
}

// Leave syncs the snapshot to the backend and computes the warning
// set. The sync outcome is awaited first so the result is surfaced in
// order, but a failed sync only gets logged: the warning must reflect
// the locally observed packing state even when the network is down.
func (e *Evaluator) Leave(ctx context.Context, snap Snapshot) LeaveResult {
	syncErr := e.client.UpdateChecklist(ctx, snap.Statuses())
	if syncErr != nil {
		e.log.Warn("checklist sync failed", zap.Error(syncErr))
	}
	return LeaveResult{Missing: snap.MissingImportant(), SyncErr: syncErr}
}
