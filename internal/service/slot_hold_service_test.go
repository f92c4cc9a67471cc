package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testSlotHoldService() *SlotHoldService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &SlotHoldService{log: log, stopChan: make(chan struct{})}
}

func TestSlotKeyFormat(t *testing.T) {
	s := testSlotHoldService()
	doctorID := uuid.New()
	date := time.Date(2025, 3, 10, 15, 42, 0, 0, time.UTC)

	key := s.slotKey(doctorID, date, 7)
	assert.Equal(t, fmt.Sprintf("slot:hold:%s:2025-03-10:7", doctorID), key)

	// Time of day never leaks into the key: two claims on the same
	// calendar date collide regardless of clock.
	assert.Equal(t, key, s.slotKey(doctorID, date.Add(3*time.Hour), 7))
}

func TestCalculateTTL(t *testing.T) {
	s := testSlotHoldService()

	future := time.Now().AddDate(0, 0, 7)
	ttl := s.calculateTTL(future)
	assert.Greater(t, ttl, 7*24*time.Hour)
	assert.LessOrEqual(t, ttl, 8*24*time.Hour)

	// Past dates fall back to a short TTL so stale keys drain quickly.
	assert.Equal(t, time.Minute, s.calculateTTL(time.Now().AddDate(0, 0, -3)))
}

func TestGetSlotMutexReusesInstance(t *testing.T) {
	s := testSlotHoldService()

	first := s.getSlotMutex("slot:hold:a:2025-03-10:1")
	second := s.getSlotMutex("slot:hold:a:2025-03-10:1")
	other := s.getSlotMutex("slot:hold:a:2025-03-10:2")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}

func TestCleanupStaleMutexes(t *testing.T) {
	s := testSlotHoldService()

	stale := s.getSlotMutex("slot:hold:stale")
	stale.lastUsed.Store(time.Now().Add(-2 * mutexStaleThreshold).Unix())
	s.getSlotMutex("slot:hold:fresh")

	s.cleanupStaleMutexes()

	_, staleExists := s.slotMu.Load("slot:hold:stale")
	_, freshExists := s.slotMu.Load("slot:hold:fresh")
	assert.False(t, staleExists)
	assert.True(t, freshExists)

	// A mutex held by an in-flight claim is never reaped.
	held := s.getSlotMutex("slot:hold:held")
	held.lastUsed.Store(time.Now().Add(-2 * mutexStaleThreshold).Unix())
	held.mu.Lock()
	s.cleanupStaleMutexes()
	held.mu.Unlock()

	_, heldExists := s.slotMu.Load("slot:hold:held")
	assert.True(t, heldExists)
}
