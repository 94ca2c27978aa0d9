package neurolink

// Cue is a named trigger for an audio effect.
// The simulation only names cues; playing them is up to the platform.
type Cue string

const (
	CueShoot     Cue = "shoot"
	CueHit       Cue = "hit"
	CueExplosion Cue = "explosion"
	CueGameOver  Cue = "game_over"
	CuePowerUp   Cue = "powerup"
	CueLevelUp   Cue = "level_up"
)

// AllCues lists every cue the simulation can emit.
var AllCues = []Cue{CueShoot, CueHit, CueExplosion, CueGameOver, CuePowerUp, CueLevelUp}

// emit buffers a cue until the end of the current step.
func (s *State) emit(c Cue) {
	s.cues = append(s.cues, c)
}

// DrainCues returns the cues emitted since the last drain, in order, and clears the buffer.
func (s *State) DrainCues() []string {
	if len(s.cues) == 0 {
		return nil
	}
	out := make([]string, len(s.cues))
	for i, c := range s.cues {
		out[i] = string(c)
	}
	s.cues = s.cues[:0]
	return out
}
