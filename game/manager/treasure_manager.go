package manager

import (
	"github.com/golang/glog"
	"golang.org/x/exp/rand"

	"snake-term/game/entity"
	"snake-term/game/types"
)

type TreasureManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewTreasureManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *TreasureManager {
	return &TreasureManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Generate draws uniformly random cells until one is not covered by the
// snake. It returns false without drawing when the snake fills the grid,
// since no free cell exists.
func (tm *TreasureManager) Generate(snake *entity.Snake) (types.Point, bool) {
	if snake.Len() >= tm.grid.Area() {
		return types.Point{}, false
	}
	attempts := 0
	for {
		attempts++
		treasure := types.Point{
			X: tm.rng.Intn(tm.grid.Width),
			Y: tm.rng.Intn(tm.grid.Height),
		}
		if tm.collisionMgr.ValidateSpawnPosition(treasure, snake) {
			glog.V(2).Infof("New treasure: %v after %d draws", treasure, attempts)
			return treasure, true
		}
	}
}
