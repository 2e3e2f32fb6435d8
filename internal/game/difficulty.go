package game

import "fmt"

// Difficulty selects how many swap fields are free at the start.
// The zero value is the most restrictive tier.
type Difficulty int

// Difficulty tiers.
const (
	Expert Difficulty = iota // 1 free swap
	Hard                     // 2 free swaps
	Normal                   // 3 free swaps
	Easy                     // 4 free swaps
)

// Difficulties lists all tiers from easiest to hardest.
var Difficulties = []Difficulty{Easy, Normal, Hard, Expert}

// FreeSwaps returns the number of swap fields unlocked at the start.
func (d Difficulty) FreeSwaps() int {
	switch d {
	case Easy:
		return 4
	case Normal:
		return 3
	case Hard:
		return 2
	default:
		return 1
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}
