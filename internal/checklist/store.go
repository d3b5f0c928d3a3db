// Package checklist holds the client-side packing state and the
// leaving-time decision rule. The Store is the single source of truth
// for the dashboard checklist; nothing here renders anything.
package checklist

import (
	"context"

	"github.com/idilsaglam/packup/internal/api"
	"github.com/idilsaglam/packup/internal/model"
)

// NeedThreshold is the policy cutoff: an unpacked item whose need
// probability strictly exceeds this triggers the leaving warning.
const NeedThreshold = 0.6

// Store holds the current predictions and the per-item packed flags
// for one dashboard session. It is owned by the view controller and
// must only be mutated from the TUI update loop.
type Store struct {
	client  *api.Client
	items   []model.PredictedItem
	packed  map[int64]bool
	loadErr error
}

// NewStore builds an empty store bound to a backend client.
func NewStore(client *api.Client) *Store {
	return &Store{client: client, packed: map[int64]bool{}}
}

// Load fetches today's predictions and applies them. Convenience for
// callers that can block; the TUI fetches on a command goroutine and
// calls Apply from its update loop instead, so all mutation stays on
// one goroutine.
func (s *Store) Load(ctx context.Context) error {
	items, err := s.client.PredictToday(ctx)
	s.Apply(items, err)
	return err
}

// Apply replaces the item list and resets every packed flag to false,
// discarding prior flags. On a failed load the list is emptied rather
// than left stale, so the presenter can show a distinct failed state.
func (s *Store) Apply(items []model.PredictedItem, err error) {
	if err != nil {
		s.items = nil
		s.packed = map[int64]bool{}
		s.loadErr = err
		return
	}
	s.items = items
	s.loadErr = nil
	s.packed = make(map[int64]bool, len(items))
	for _, it := range items {
		s.packed[it.ItemID] = false
	}
}

// SetPacked records a user toggle. Ids not present from the last load
// are ignored; toggles originate from rendered rows, so an unknown id
// would mean the row and the store disagree.
func (s *Store) SetPacked(id int64, v bool) {
	if _, ok := s.packed[id]; !ok {
		return
	}
	s.packed[id] = v
}

// Packed reports the flag for one item.
func (s *Store) Packed(id int64) bool { return s.packed[id] }

// Items returns the current prediction list in backend order.
func (s *Store) Items() []model.PredictedItem { return s.items }

// LoadFailed reports whether the last Load returned an error.
func (s *Store) LoadFailed() bool { return s.loadErr != nil }

// Snapshot returns a read view of the current list and packed flags.
// The map is copied so the view stays stable while a background sync
// uses it.
func (s *Store) Snapshot() Snapshot {
	packed := make(map[int64]bool, len(s.packed))
	for id, v := range s.packed {
		packed[id] = v
	}
	return Snapshot{Items: s.items, Packed: packed}
}

// Snapshot is a point-in-time read view of the store.
type Snapshot struct {
	Items  []model.PredictedItem
	Packed map[int64]bool
}

// Statuses builds the sync payload: one record per item, packed flag
// from the snapshot, needed_label constant true (the client assumes
// every predicted item was in fact needed).
func (sn Snapshot) Statuses() []model.ChecklistStatus {
	out := make([]model.ChecklistStatus, 0, len(sn.Items))
	for _, it := range sn.Items {
		out = append(out, model.ChecklistStatus{
			ItemID:      it.ItemID,
			Packed:      sn.Packed[it.ItemID],
			NeededLabel: true,
		})
	}
	return out
}

// MissingImportant returns, in list order, the items that are not
// packed and whose need probability strictly exceeds NeedThreshold.
func (sn Snapshot) MissingImportant() []model.PredictedItem {
	var out []model.PredictedItem
	for _, it := range sn.Items {
		if !sn.Packed[it.ItemID] && it.NeedProbability > NeedThreshold {
			out = append(out, it)
		}
	}
	return out
}
