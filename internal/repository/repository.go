package repository

import "context"

// Keys under which the store persists each collection snapshot.
const (
	KeyHarvests  = "cooperativa-harvests"
	KeyInventory = "cooperativa-inventory"
	KeyLosses    = "cooperativa-losses"
	KeyReminders = "cooperativa-reminders"
)

// Adapter is the key-value blob persistence contract. Read never fails past the
// adapter boundary: any error reads as "absent". Write returns its error so the
// caller can log it, but writes are best-effort and must never be treated as
// fatal by callers.
type Adapter interface {
	Read(ctx context.Context, key string) ([]byte, bool)
	Write(ctx context.Context, key string, blob []byte) error
}
