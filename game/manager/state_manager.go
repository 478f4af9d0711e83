package manager

// StateManager keeps in-memory statistics for the current session. Nothing
// is written to disk.
type StateManager struct {
	score     int
	highScore int
	resets    int
	ticks     int
	history   []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		history: make([]int, 0),
	}
}

// Tick records one simulation step.
func (sm *StateManager) Tick() {
	sm.ticks++
}

// UpdateScore sets the score of the running snake.
func (sm *StateManager) UpdateScore(score int) {
	sm.score = score
	if score > sm.highScore {
		sm.highScore = score
	}
}

// EndRun closes the current run and starts counting a new one.
func (sm *StateManager) EndRun() {
	sm.history = append(sm.history, sm.score)
	sm.resets++
	sm.score = 0
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetResets() int {
	return sm.resets
}

func (sm *StateManager) GetTicks() int {
	return sm.ticks
}

// GetScoreHistory returns the final scores of finished runs, oldest first.
func (sm *StateManager) GetScoreHistory() []int {
	return sm.history
}
