package view

import (
	"sync"

	"github.com/penwyp/go-log-timeline/internal/core/model"
)

// StateManager manages interaction state in a thread-safe manner
type StateManager struct {
	mu sync.RWMutex

	interactionState model.InteractionState
	lastReload       int64 // unix time of the last successful load
}

// NewStateManager creates a new StateManager with nothing focused
func NewStateManager() *StateManager {
	return &StateManager{
		interactionState: model.InteractionState{Cursor: -1},
	}
}

// GetInteractionState returns current interaction state
func (sm *StateManager) GetInteractionState() model.InteractionState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.interactionState
}

// UpdateInteractionState updates specific fields of interaction state
func (sm *StateManager) UpdateInteractionState(updateFunc func(*model.InteractionState)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	updateFunc(&sm.interactionState)
}

// SetLoadingState updates the loading flag
func (sm *StateManager) SetLoadingState(isLoading bool) {
	sm.UpdateInteractionState(func(s *model.InteractionState) {
		s.IsLoading = isLoading
	})
}

// SetStatus sets the status line message
func (sm *StateManager) SetStatus(message string) {
	sm.UpdateInteractionState(func(s *model.InteractionState) {
		s.StatusMessage = message
	})
}

// ClampCursor keeps the cursor on an existing marker, or clears it when
// there are none.
func (sm *StateManager) ClampCursor(markers int) {
	sm.UpdateInteractionState(func(s *model.InteractionState) {
		switch {
		case markers == 0:
			s.Cursor = -1
		case s.Cursor >= markers:
			s.Cursor = markers - 1
		}
	})
}

// GetLastReload returns the unix time of the last successful load
func (sm *StateManager) GetLastReload() int64 {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.lastReload
}

// SetLastReload records the unix time of a successful load
func (sm *StateManager) SetLastReload(timestamp int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.lastReload = timestamp
}
