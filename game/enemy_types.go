package game

import "fmt"

// Behavior defines how an enemy moves each frame
type Behavior int

const (
	BehaviorChase   Behavior = iota // Moves straight at the player
	BehaviorFlanker                 // Sidesteps perpendicular to the chase line
	BehaviorRandom                  // Wanders along a heading that occasionally changes
)

var behaviorNames = map[Behavior]string{
	BehaviorChase:   "chase",
	BehaviorFlanker: "flanker",
	BehaviorRandom:  "random",
}

// String returns the profile name of the behaviour
func (b Behavior) String() string {
	if name, ok := behaviorNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Behavior(%d)", int(b))
}

// ParseBehavior converts a profile behaviour tag
func ParseBehavior(s string) (Behavior, error) {
	for b, name := range behaviorNames {
		if name == s {
			return b, nil
		}
	}
	return BehaviorChase, fmt.Errorf("unknown enemy behavior %q", s)
}
