// Package store implements the reactive data store that owns the four domain
// collections. All reads and writes of domain data go through it: mutations
// normalize their input, publish a fresh collection snapshot to subscribers and
// persist the result best-effort.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
	"github.com/pedrocontreras2007/floricoop/internal/repository"
	"github.com/pedrocontreras2007/floricoop/internal/repository/remote"
)

const (
	persistTimeout = 5 * time.Second
	remoteTimeout  = 15 * time.Second
)

// Store is the single source of truth for harvests, inventory, losses and
// reminders. It is constructed once at startup and passed by reference to every
// consumer. Mutations are serialized; subscribers must treat received snapshots
// as immutable.
type Store struct {
	mu sync.Mutex

	harvests  *Stream[[]models.Harvest]
	inventory *Stream[[]models.InventoryItem]
	losses    *Stream[[]models.Loss]
	reminders *Stream[[]models.Reminder]

	persist repository.Adapter
	remote  *remote.Client
	logger  *zap.Logger

	wg sync.WaitGroup
}

// New builds a store backed by the given persistence adapter. When remoteClient
// is non-nil the entity collections live on the remote collection API: they
// start empty, are fetched asynchronously and re-fetched after every mutation.
// Reminders stay on the local adapter in every deployment.
func New(ctx context.Context, persist repository.Adapter, remoteClient *remote.Client, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if persist == nil {
		persist = repository.NewMemoryAdapter()
	}

	s := &Store{persist: persist, remote: remoteClient, logger: logger}

	reminders := restoreCollection[models.Reminder](ctx, persist, repository.KeyReminders, logger, nil)
	sortReminders(reminders)
	s.reminders = NewStream(reminders)

	if remoteClient != nil {
		s.harvests = NewStream([]models.Harvest{})
		s.inventory = NewStream([]models.InventoryItem{})
		s.losses = NewStream([]models.Loss{})
		s.refreshAsync(refreshHarvests, refreshInventory, refreshLosses)
		return s
	}

	now := time.Now()
	harvests := restoreCollection(ctx, persist, repository.KeyHarvests, logger, func() []models.Harvest {
		return seedHarvests(now)
	})
	inventory := restoreCollection(ctx, persist, repository.KeyInventory, logger, func() []models.InventoryItem {
		return seedInventory()
	})
	losses := restoreCollection[models.Loss](ctx, persist, repository.KeyLosses, logger, nil)
	sortLosses(losses)

	s.harvests = NewStream(harvests)
	s.inventory = NewStream(inventory)
	s.losses = NewStream(losses)
	return s
}

// Close waits for in-flight remote synchronizations to finish.
func (s *Store) Close() {
	s.wg.Wait()
}

// Harvests returns the current harvest snapshot.
func (s *Store) Harvests() []models.Harvest { return s.harvests.Value() }

// Inventory returns the current inventory snapshot.
func (s *Store) Inventory() []models.InventoryItem { return s.inventory.Value() }

// Losses returns the current loss snapshot, ordered newest first.
func (s *Store) Losses() []models.Loss { return s.losses.Value() }

// Reminders returns the current reminder snapshot, ordered by schedule.
func (s *Store) Reminders() []models.Reminder { return s.reminders.Value() }

// SubscribeHarvests streams harvest snapshots, starting with the current one.
func (s *Store) SubscribeHarvests() (<-chan []models.Harvest, func()) { return s.harvests.Subscribe() }

// SubscribeInventory streams inventory snapshots, starting with the current one.
func (s *Store) SubscribeInventory() (<-chan []models.InventoryItem, func()) {
	return s.inventory.Subscribe()
}

// SubscribeLosses streams loss snapshots, starting with the current one.
func (s *Store) SubscribeLosses() (<-chan []models.Loss, func()) { return s.losses.Subscribe() }

// SubscribeReminders streams reminder snapshots, starting with the current one.
func (s *Store) SubscribeReminders() (<-chan []models.Reminder, func()) {
	return s.reminders.Subscribe()
}

// AddHarvest records a new harvest lot at the head of the collection.
func (s *Store) AddHarvest(input models.HarvestInput) models.Harvest {
	s.mu.Lock()
	harvest := input.Materialize(uuid.NewString())
	if harvest.Date.IsZero() {
		harvest.Date = time.Now()
	}

	current := s.harvests.Value()
	next := make([]models.Harvest, 0, len(current)+1)
	next = append(next, harvest)
	next = append(next, current...)
	s.harvests.Publish(next)
	s.mu.Unlock()

	s.persistHarvests(next)
	s.dispatchRemote("create harvest", func(ctx context.Context) error {
		return s.remote.CreateHarvest(ctx, harvest)
	}, refreshHarvests, refreshInventory)
	return harvest
}

// UpdateHarvest replaces the harvest with the given id, re-normalizing the
// input the same way AddHarvest does. Unknown ids are a silent no-op.
func (s *Store) UpdateHarvest(id string, input models.HarvestInput) (models.Harvest, bool) {
	s.mu.Lock()
	current := s.harvests.Value()
	idx := -1
	for i, harvest := range current {
		if harvest.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.Harvest{}, false
	}

	updated := input.Materialize(id)
	if updated.Date.IsZero() {
		updated.Date = current[idx].Date
	}

	next := make([]models.Harvest, len(current))
	copy(next, current)
	next[idx] = updated
	s.harvests.Publish(next)
	s.mu.Unlock()

	s.persistHarvests(next)
	s.dispatchRemote("update harvest", func(ctx context.Context) error {
		return s.remote.UpdateHarvest(ctx, updated)
	}, refreshHarvests, refreshInventory)
	return updated, true
}

// UpdateHarvestQuantity sets the stock count and attribution of a harvest lot
// without touching any other field. Unknown ids are a silent no-op.
func (s *Store) UpdateHarvestQuantity(id string, quantity int, recordedBy models.UserRole, partnerName string) bool {
	if quantity < 0 {
		quantity = 0
	}

	s.mu.Lock()
	current := s.harvests.Value()
	idx := -1
	for i, harvest := range current {
		if harvest.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}

	updated := current[idx]
	updated.Quantity = quantity
	updated.RecordedBy = recordedBy
	updated.PartnerName = models.NormalizePartnerName(recordedBy, partnerName)

	next := make([]models.Harvest, len(current))
	copy(next, current)
	next[idx] = updated
	s.harvests.Publish(next)
	s.mu.Unlock()

	s.persistHarvests(next)
	s.dispatchRemote("update harvest quantity", func(ctx context.Context) error {
		return s.remote.UpdateHarvest(ctx, updated)
	}, refreshHarvests, refreshInventory)
	return true
}

// RemoveHarvest deletes the harvest with the given id. Unknown ids are a
// silent no-op.
func (s *Store) RemoveHarvest(id string) bool {
	s.mu.Lock()
	current := s.harvests.Value()
	next := make([]models.Harvest, 0, len(current))
	for _, harvest := range current {
		if harvest.ID != id {
			next = append(next, harvest)
		}
	}
	if len(next) == len(current) {
		s.mu.Unlock()
		return false
	}
	s.harvests.Publish(next)
	s.mu.Unlock()

	s.persistHarvests(next)
	s.dispatchRemote("delete harvest", func(ctx context.Context) error {
		return s.remote.DeleteHarvest(ctx, id)
	}, refreshHarvests, refreshInventory)
	return true
}

// AddInventoryItem records a new supply at the head of the collection.
func (s *Store) AddInventoryItem(input models.InventoryItemInput) models.InventoryItem {
	s.mu.Lock()
	item := input.Materialize(uuid.NewString())

	current := s.inventory.Value()
	next := make([]models.InventoryItem, 0, len(current)+1)
	next = append(next, item)
	next = append(next, current...)
	s.inventory.Publish(next)
	s.mu.Unlock()

	s.persistInventory(next)
	s.dispatchRemote("create inventory item", func(ctx context.Context) error {
		return s.remote.CreateInventoryItem(ctx, item)
	}, refreshInventory)
	return item
}

// UpdateInventoryItem replaces the item with the given id, re-normalizing the
// input the same way AddInventoryItem does. Unknown ids are a silent no-op.
func (s *Store) UpdateInventoryItem(id string, input models.InventoryItemInput) (models.InventoryItem, bool) {
	s.mu.Lock()
	current := s.inventory.Value()
	idx := -1
	for i, item := range current {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.InventoryItem{}, false
	}

	updated := input.Materialize(id)

	next := make([]models.InventoryItem, len(current))
	copy(next, current)
	next[idx] = updated
	s.inventory.Publish(next)
	s.mu.Unlock()

	s.persistInventory(next)
	s.dispatchRemote("update inventory item", func(ctx context.Context) error {
		return s.remote.UpdateInventoryItem(ctx, updated)
	}, refreshInventory)
	return updated, true
}

// UpdateInventoryQuantity sets the stock count and attribution of an item
// without touching any other field. Unknown ids are a silent no-op.
func (s *Store) UpdateInventoryQuantity(id string, quantity int, recordedBy models.UserRole, partnerName string) bool {
	if quantity < 0 {
		quantity = 0
	}

	s.mu.Lock()
	current := s.inventory.Value()
	idx := -1
	for i, item := range current {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}

	updated := current[idx]
	updated.Quantity = quantity
	updated.RecordedBy = recordedBy
	updated.PartnerName = models.NormalizePartnerName(recordedBy, partnerName)

	next := make([]models.InventoryItem, len(current))
	copy(next, current)
	next[idx] = updated
	s.inventory.Publish(next)
	s.mu.Unlock()

	s.persistInventory(next)
	s.dispatchRemote("update inventory quantity", func(ctx context.Context) error {
		return s.remote.UpdateInventoryItem(ctx, updated)
	}, refreshInventory)
	return true
}

// RemoveInventoryItem deletes the item with the given id. Unknown ids are a
// silent no-op.
func (s *Store) RemoveInventoryItem(id string) bool {
	s.mu.Lock()
	current := s.inventory.Value()
	next := make([]models.InventoryItem, 0, len(current))
	for _, item := range current {
		if item.ID != id {
			next = append(next, item)
		}
	}
	if len(next) == len(current) {
		s.mu.Unlock()
		return false
	}
	s.inventory.Publish(next)
	s.mu.Unlock()

	s.persistInventory(next)
	s.dispatchRemote("delete inventory item", func(ctx context.Context) error {
		return s.remote.DeleteInventoryItem(ctx, id)
	}, refreshInventory)
	return true
}

// AddLoss records a merma. When the loss names a depletion source, the
// referenced inventory item or harvest lot is decremented in the same mutation,
// clamped at zero stock. The loss collection stays ordered newest first.
func (s *Store) AddLoss(input models.LossInput) models.Loss {
	s.mu.Lock()
	loss := input.Materialize(uuid.NewString())
	if loss.Date.IsZero() {
		loss.Date = time.Now()
	}

	var depletedInventory []models.InventoryItem
	var depletedHarvests []models.Harvest

	switch loss.SourceType {
	case models.LossSourceInventory:
		current := s.inventory.Value()
		for i, item := range current {
			if item.ID != loss.SourceID {
				continue
			}
			next := make([]models.InventoryItem, len(current))
			copy(next, current)
			next[i].Quantity = max(item.Quantity-loss.Quantity, 0)
			s.inventory.Publish(next)
			depletedInventory = next
			break
		}
	case models.LossSourceHarvest:
		current := s.harvests.Value()
		for i, harvest := range current {
			if harvest.ID != loss.SourceID {
				continue
			}
			next := make([]models.Harvest, len(current))
			copy(next, current)
			next[i].Quantity = max(harvest.Quantity-loss.Quantity, 0)
			s.harvests.Publish(next)
			depletedHarvests = next
			break
		}
	}

	currentLosses := s.losses.Value()
	nextLosses := make([]models.Loss, 0, len(currentLosses)+1)
	nextLosses = append(nextLosses, currentLosses...)
	nextLosses = append(nextLosses, loss)
	sortLosses(nextLosses)
	s.losses.Publish(nextLosses)
	s.mu.Unlock()

	s.persistLosses(nextLosses)
	if depletedInventory != nil {
		s.persistInventory(depletedInventory)
	}
	if depletedHarvests != nil {
		s.persistHarvests(depletedHarvests)
	}
	s.dispatchRemote("create loss", func(ctx context.Context) error {
		return s.remote.CreateLoss(ctx, loss)
	}, refreshLosses, refreshInventory, refreshHarvests)
	return loss
}

// RemoveLoss deletes the loss with the given id. Unknown ids are a silent
// no-op. Stock depleted by the loss is not restored; the record is history.
func (s *Store) RemoveLoss(id string) bool {
	s.mu.Lock()
	current := s.losses.Value()
	next := make([]models.Loss, 0, len(current))
	for _, loss := range current {
		if loss.ID != id {
			next = append(next, loss)
		}
	}
	if len(next) == len(current) {
		s.mu.Unlock()
		return false
	}
	s.losses.Publish(next)
	s.mu.Unlock()

	s.persistLosses(next)
	s.dispatchRemote("delete loss", func(ctx context.Context) error {
		return s.remote.DeleteLoss(ctx, id)
	}, refreshLosses)
	return true
}

// AddReminder schedules a reminder, keeping the collection ordered by schedule.
func (s *Store) AddReminder(input models.ReminderInput) models.Reminder {
	s.mu.Lock()
	reminder := input.Materialize(uuid.NewString())

	current := s.reminders.Value()
	next := make([]models.Reminder, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, reminder)
	sortReminders(next)
	s.reminders.Publish(next)
	s.mu.Unlock()

	s.persistReminders(next)
	return reminder
}

// UpdateReminder replaces the reminder with the given id and re-sorts the
// collection. Unknown ids are a silent no-op.
func (s *Store) UpdateReminder(id string, input models.ReminderInput) (models.Reminder, bool) {
	s.mu.Lock()
	current := s.reminders.Value()
	idx := -1
	for i, reminder := range current {
		if reminder.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.Reminder{}, false
	}

	updated := input.Materialize(id)

	next := make([]models.Reminder, len(current))
	copy(next, current)
	next[idx] = updated
	sortReminders(next)
	s.reminders.Publish(next)
	s.mu.Unlock()

	s.persistReminders(next)
	return updated, true
}

// RemoveReminder deletes the reminder with the given id. Unknown ids are a
// silent no-op.
func (s *Store) RemoveReminder(id string) bool {
	s.mu.Lock()
	current := s.reminders.Value()
	next := make([]models.Reminder, 0, len(current))
	for _, reminder := range current {
		if reminder.ID != id {
			next = append(next, reminder)
		}
	}
	if len(next) == len(current) {
		s.mu.Unlock()
		return false
	}
	s.reminders.Publish(next)
	s.mu.Unlock()

	s.persistReminders(next)
	return true
}

func sortReminders(reminders []models.Reminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].ScheduledAt.Before(reminders[j].ScheduledAt)
	})
}

func sortLosses(losses []models.Loss) {
	sort.SliceStable(losses, func(i, j int) bool {
		return losses[i].Date.After(losses[j].Date)
	})
}

func restoreCollection[T any](ctx context.Context, persist repository.Adapter, key string, logger *zap.Logger, seed func() []T) []T {
	fallback := func() []T {
		if seed != nil {
			return seed()
		}
		return []T{}
	}

	blob, ok := persist.Read(ctx, key)
	if !ok {
		return fallback()
	}

	items, err := repository.DecodeCollection[T](blob)
	if err != nil {
		logger.Warn("discarding malformed persisted collection", zap.String("key", key), zap.Error(err))
		return fallback()
	}
	return items
}

// Persistence is best-effort: failures are logged and the in-memory state
// stays authoritative for the session. In the backend-backed deployment the
// entity collections are not written locally, only reminders are.

func (s *Store) persistHarvests(items []models.Harvest) {
	if s.remote != nil {
		return
	}
	persistCollection(s, repository.KeyHarvests, items)
}

func (s *Store) persistInventory(items []models.InventoryItem) {
	if s.remote != nil {
		return
	}
	persistCollection(s, repository.KeyInventory, items)
}

func (s *Store) persistLosses(items []models.Loss) {
	if s.remote != nil {
		return
	}
	persistCollection(s, repository.KeyLosses, items)
}

func (s *Store) persistReminders(items []models.Reminder) {
	persistCollection(s, repository.KeyReminders, items)
}

func persistCollection[T any](s *Store, key string, items []T) {
	blob, err := repository.EncodeCollection(items)
	if err != nil {
		s.logger.Warn("encode collection failed", zap.String("key", key), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.persist.Write(ctx, key, blob); err != nil {
		s.logger.Warn("persist collection failed", zap.String("key", key), zap.Error(err))
	}
}

type refreshKind int

const (
	refreshHarvests refreshKind = iota
	refreshInventory
	refreshLosses
)

// dispatchRemote fires the remote mutation without blocking the caller and,
// once the backend accepts it, re-fetches the authoritative collections. The
// backend may apply side effects of its own (recording a harvest adjusts
// inventory server-side), hence the extra refreshes. Failures leave the last
// published snapshot in place.
func (s *Store) dispatchRemote(op string, call func(context.Context) error, kinds ...refreshKind) {
	if s.remote == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
		defer cancel()

		if err := call(ctx); err != nil {
			s.logger.Warn("remote mutation failed, keeping local state", zap.String("op", op), zap.Error(err))
			return
		}
		s.refresh(ctx, kinds...)
	}()
}

func (s *Store) refreshAsync(kinds ...refreshKind) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
		defer cancel()
		s.refresh(ctx, kinds...)
	}()
}

func (s *Store) refresh(ctx context.Context, kinds ...refreshKind) {
	for _, kind := range kinds {
		switch kind {
		case refreshHarvests:
			items, err := s.remote.ListHarvests(ctx)
			if err != nil {
				s.logger.Warn("refresh harvests failed", zap.Error(err))
				continue
			}
			if items == nil {
				items = []models.Harvest{}
			}
			s.mu.Lock()
			s.harvests.Publish(items)
			s.mu.Unlock()
		case refreshInventory:
			items, err := s.remote.ListInventory(ctx)
			if err != nil {
				s.logger.Warn("refresh inventory failed", zap.Error(err))
				continue
			}
			if items == nil {
				items = []models.InventoryItem{}
			}
			s.mu.Lock()
			s.inventory.Publish(items)
			s.mu.Unlock()
		case refreshLosses:
			items, err := s.remote.ListLosses(ctx)
			if err != nil {
				s.logger.Warn("refresh losses failed", zap.Error(err))
				continue
			}
			if items == nil {
				items = []models.Loss{}
			}
			sortLosses(items)
			s.mu.Lock()
			s.losses.Publish(items)
			s.mu.Unlock()
		}
	}
}
