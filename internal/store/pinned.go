package store

import (
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	"rotorhub/internal/database"
	"rotorhub/internal/schema"
)

const (
	pinnedNamespace = "pinned flights"
	// Pins outlive the day they were captured on so a late-night pin is still
	// there next morning; filtering, not expiry, hides stale entries.
	pinnedExpiry = 48 * time.Hour
)

// PinnedStore persists each owner's pinned flight set as one blob. Owners are
// opaque device or user keys; sets replace each other wholesale.
type PinnedStore struct {
	repo database.RedisRepository
}

func NewPinnedStore(repo database.RedisRepository) *PinnedStore {
	return &PinnedStore{repo: repo}
}

// Load returns the owner's pins captured today. A missing or unreadable blob
// is an empty set, never an error: pins are a convenience, not a record.
func (ps *PinnedStore) Load(owner string) []*schema.CommonFlight {
	blob, found := ps.repo.FetchBlob(pinnedNamespace, owner)
	if !found {
		return []*schema.CommonFlight{}
	}
	var pinned []*schema.CommonFlight
	if err := json.Unmarshal(blob, &pinned); err != nil {
		log.Warnf("Discarding unreadable pinned set for owner %s: %v", owner, err)
		return []*schema.CommonFlight{}
	}
	return FilterCurrent(pinned)
}

// Save replaces the owner's pinned set.
func (ps *PinnedStore) Save(owner string, flights []*schema.CommonFlight) error {
	blob, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return ps.repo.StoreBlob(pinnedNamespace, owner, blob, pinnedExpiry)
}

// FilterCurrent keeps only the flights captured on the current calendar day.
func FilterCurrent(flights []*schema.CommonFlight) []*schema.CommonFlight {
	current := make([]*schema.CommonFlight, 0, len(flights))
	for _, flight := range flights {
		if flight.IsToday() {
			current = append(current, flight)
		}
	}
	return current
}
