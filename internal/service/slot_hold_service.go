package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSlotHeld is returned when another submission already claimed the
// (doctor, date, slot) triple.
var ErrSlotHeld = errors.New("slot is already held by another booking")

// claimSlotScript atomically claims a slot key for one appointment.
// SET NX and EXPIRE run as a single Redis operation: either the claim
// lands with its TTL or the caller learns the slot is taken. Redis Go
// client switches to EVALSHA after the first call.
var claimSlotScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 1 then
		return 0
	end
	redis.call('SET', KEYS[1], ARGV[1], 'EX', ARGV[2])
	return 1
`)

const (
	// Redis key prefix for per-triple booking claims
	RedisSlotHoldKeyPrefix = "slot:hold:"

	// Interval for cleaning up stale mutexes
	mutexCleanupInterval = 10 * time.Minute

	// How long a mutex must be unused before cleanup
	mutexStaleThreshold = 10 * time.Minute
)

// SlotHoldService serializes concurrent booking submissions on the single
// contended resource of the system: the (doctor_id, appointment_date,
// time_slot_id) triple.
//
// Two guard layers:
//   - a Redis claim key per triple (this service) resolves races between
//     concurrent submissions before they reach the database;
//   - the partial unique index on appointments is the durable invariant
//     should Redis be flushed mid-flight.
//
// Lock ordering: acquire the per-triple in-process mutex first, then talk
// to Redis.
type SlotHoldService struct {
	redisClient *redis.Client
	log         *logrus.Logger

	// Per-triple mutex for concurrent safety within one process
	slotMu sync.Map // map[string]*mutexWithTimestamp

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// mutexWithTimestamp tracks mutex usage for cleanup
type mutexWithTimestamp struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // Unix timestamp
}

// NewSlotHoldService creates a new SlotHoldService.
// Starts background goroutine for mutex cleanup.
// Call Stop() during graceful shutdown.
func NewSlotHoldService(redisClient *redis.Client, log *logrus.Logger) *SlotHoldService {
	svc := &SlotHoldService{
		redisClient: redisClient,
		log:         log,
		stopChan:    make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.cleanupMutexMapLoop()

	return svc
}

// Stop gracefully shuts down the service.
// Safe to call multiple times.
func (s *SlotHoldService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("SlotHoldService stopped")
	}
}

// Claim reserves the triple for one appointment. Returns ErrSlotHeld when
// a concurrent submission got there first. The claim expires on its own
// 24 hours after the appointment date, so abandoned claims cannot block a
// slot forever.
func (s *SlotHoldService) Claim(ctx context.Context, doctorID uuid.UUID, date time.Time, timeSlotID int, appointmentID uuid.UUID) error {
	key := s.slotKey(doctorID, date, timeSlotID)

	mt := s.getSlotMutex(key)
	mt.mu.Lock()
	defer mt.mu.Unlock()

	ttl := s.calculateTTL(date)
	result, err := claimSlotScript.Run(ctx, s.redisClient, []string{key},
		appointmentID.String(), int(ttl.Seconds())).Int()
	if err != nil {
		s.log.Warnf("Failed Lua slot claim for %s: %+v", key, err)
		return fmt.Errorf("lua slot claim for %s: %w", key, err)
	}

	if result == 0 {
		return ErrSlotHeld
	}

	s.log.Debugf("Claimed slot %s for appointment %s", key, appointmentID)
	return nil
}

// Release frees the triple again. Called when the appointment is
// cancelled, and as compensation when the DB insert fails after a claim.
func (s *SlotHoldService) Release(ctx context.Context, doctorID uuid.UUID, date time.Time, timeSlotID int) error {
	key := s.slotKey(doctorID, date, timeSlotID)

	mt := s.getSlotMutex(key)
	mt.mu.Lock()
	defer func() {
		mt.mu.Unlock()
		// The triple is free again, no reason to keep its mutex around.
		s.slotMu.Delete(key)
	}()

	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		s.log.Warnf("Failed to release slot hold %s: %+v", key, err)
		return fmt.Errorf("release slot hold %s: %w", key, err)
	}

	s.log.Debugf("Released slot hold %s", key)
	return nil
}

func (s *SlotHoldService) slotKey(doctorID uuid.UUID, date time.Time, timeSlotID int) string {
	return fmt.Sprintf("%s%s:%s:%d", RedisSlotHoldKeyPrefix, doctorID, date.Format("2006-01-02"), timeSlotID)
}

// getSlotMutex returns the mutex for a specific slot key
func (s *SlotHoldService) getSlotMutex(key string) *mutexWithTimestamp {
	mt, _ := s.slotMu.LoadOrStore(key, &mutexWithTimestamp{})
	result := mt.(*mutexWithTimestamp)
	result.lastUsed.Store(time.Now().Unix())
	return result
}

// cleanupMutexMapLoop runs in background to clean stale mutexes
func (s *SlotHoldService) cleanupMutexMapLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(mutexCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Slot mutex cleanup goroutine stopping")
			return
		case <-ticker.C:
			s.cleanupStaleMutexes()
		}
	}
}

// cleanupStaleMutexes removes unused mutexes using TryLock for safety.
// The lastUsed check happens inside the lock so nobody can refresh the
// timestamp between check and delete.
func (s *SlotHoldService) cleanupStaleMutexes() {
	cutoffTime := time.Now().Add(-mutexStaleThreshold).Unix()
	var cleaned int

	s.slotMu.Range(func(key, value any) bool {
		slotKey, ok := key.(string)
		if !ok {
			return true
		}

		mt, ok := value.(*mutexWithTimestamp)
		if !ok {
			return true
		}

		if mt.mu.TryLock() {
			if mt.lastUsed.Load() < cutoffTime {
				s.slotMu.Delete(slotKey)
				cleaned++
			}
			mt.mu.Unlock()
		}
		return true
	})

	if cleaned > 0 {
		s.log.Debugf("Cleaned up %d stale slot mutexes", cleaned)
	}
}

// calculateTTL returns TTL: 24 hours after the appointment date
func (s *SlotHoldService) calculateTTL(date time.Time) time.Duration {
	expireAt := date.AddDate(0, 0, 1)
	ttl := time.Until(expireAt)

	if ttl <= 0 {
		// Past date - short TTL for cleanup
		return 1 * time.Minute
	}

	return ttl
}
