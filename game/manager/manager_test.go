package manager

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"the-snake/game/entity"
	"the-snake/game/types"
)

var grid = types.Grid{Width: 32, Height: 24}

func testSnake(body ...types.Point) *entity.Snake {
	return &entity.Snake{Body: body, Length: len(body), Direction: types.Right}
}

func TestIsFoodCollision(t *testing.T) {
	cm := NewCollisionManager(grid)
	apple := entity.NewApple()
	apple.Cell = types.Point{X: 3, Y: 3}
	require.True(t, cm.IsFoodCollision(types.Point{X: 3, Y: 3}, apple))
	require.False(t, cm.IsFoodCollision(types.Point{X: 3, Y: 4}, apple))
}

func TestIsSelfCollision(t *testing.T) {
	cm := NewCollisionManager(grid)
	require.False(t, cm.IsSelfCollision(testSnake(types.Point{X: 1, Y: 1}, types.Point{X: 0, Y: 1})))
	require.True(t, cm.IsSelfCollision(testSnake(types.Point{X: 1, Y: 1}, types.Point{X: 0, Y: 1}, types.Point{X: 1, Y: 1})))
}

func TestValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager(grid)
	snake := testSnake(types.Point{X: 1, Y: 1}, types.Point{X: 0, Y: 1})
	require.True(t, cm.ValidateSpawnPosition(types.Point{X: 5, Y: 5}, snake))
	require.False(t, cm.ValidateSpawnPosition(types.Point{X: 0, Y: 1}, snake))
	require.False(t, cm.ValidateSpawnPosition(types.Point{X: 32, Y: 1}, snake))
}

func TestFoodManagerRespawn(t *testing.T) {
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)), NewCollisionManager(grid))
	snake := testSnake(types.Point{X: 1, Y: 1}, types.Point{X: 0, Y: 1}, types.Point{X: 31, Y: 1})
	for i := 0; i < 100; i++ {
		require.NoError(t, fm.Respawn(snake))
		_, onSnake := snake.Occupied()[fm.GetApple().Position()]
		require.False(t, onSnake)
	}

	fm.GetApple().Cell = types.Point{X: 2, Y: 1}
	snake.Body[0] = types.Point{X: 2, Y: 1}
	require.True(t, fm.CheckEaten(snake))
}

// scriptedRand returns its values in order, then keeps returning zero.
type scriptedRand []int

func (r *scriptedRand) Intn(n int) int {
	if len(*r) == 0 {
		return 0
	}
	v := (*r)[0] % n
	*r = (*r)[1:]
	return v
}

func TestFoodManagerRespawnResamplesBodyCells(t *testing.T) {
	// the first two samples hit the body
	rng := &scriptedRand{0, 0, 1, 0, 4, 7}
	fm := NewFoodManager(grid, rng, NewCollisionManager(grid))
	require.NoError(t, fm.Respawn(testSnake(types.Point{X: 0, Y: 0}, types.Point{X: 1, Y: 0})))
	require.Equal(t, types.Point{X: 4, Y: 7}, fm.GetApple().Position())
}

func TestFoodManagerBoardFull(t *testing.T) {
	small := types.Grid{Width: 2, Height: 1}
	fm := NewFoodManager(small, rand.New(rand.NewSource(1)), NewCollisionManager(small))
	err := fm.Respawn(testSnake(types.Point{X: 0, Y: 0}, types.Point{X: 1, Y: 0}))
	require.Error(t, err)
	require.Equal(t, entity.ErrBoardFull, errors.Cause(err))
}

func TestStateManager(t *testing.T) {
	sm := NewStateManager()
	sm.Tick()
	sm.Tick()
	sm.UpdateScore(3)
	sm.EndRun()
	sm.UpdateScore(1)

	require.Equal(t, 2, sm.GetTicks())
	require.Equal(t, 1, sm.GetScore())
	require.Equal(t, 3, sm.GetHighScore())
	require.Equal(t, 1, sm.GetResets())
	require.Equal(t, []int{3}, sm.GetScoreHistory())
}
