package harness

import (
	"encoding/gob"
	"os"
)

// Checkpoint holds state for resuming a long fuzz/bench run, the same
// shape as the teacher's result.Checkpoint: what's been found so far,
// and how far through the planned trials the run got.
type Checkpoint struct {
	Findings        []Finding
	CompletedTrials int
	TotalTrials     int
}

// SaveCheckpoint writes harness state to a file.
func SaveCheckpoint(path string, ckpt *Checkpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(ckpt)
}

// LoadCheckpoint loads harness state from a file.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ckpt Checkpoint
	if err := gob.NewDecoder(f).Decode(&ckpt); err != nil {
		return nil, err
	}
	return &ckpt, nil
}
