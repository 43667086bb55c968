package record

import (
	"errors"
	"fmt"
	"io"
	"os"

	"tictactoe/game"

	"gopkg.in/yaml.v3"
)

// ErrCorrupt is returned when saved statistics cannot be decoded.
var ErrCorrupt = errors.New("corrupt record")

// Record holds the cross-game results of one side.
type Record struct {
	Win  int `yaml:"win"`
	Loss int `yaml:"loss"`
	Draw int `yaml:"draw"`
}

// Update counts a finished game from self's point of view.
func (r *Record) Update(board game.Board, self game.Mark) {
	switch board.Winner() {
	case self:
		r.Win++
	case self.Opponent():
		r.Loss++
	default:
		r.Draw++
	}
}

func (r Record) Games() int {
	return r.Win + r.Loss + r.Draw
}

// WinRate excludes draws. It is 0 before any decisive game.
func (r Record) WinRate() float64 {
	if r.Win+r.Loss == 0 {
		return 0
	}
	return float64(r.Win) / float64(r.Win+r.Loss)
}

func (r Record) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	return nil
}

func Decode(r io.Reader) (Record, error) {
	var rec Record
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if rec.Win < 0 || rec.Loss < 0 || rec.Draw < 0 {
		return Record{}, fmt.Errorf("%w: negative count in %+v", ErrCorrupt, rec)
	}
	return rec, nil
}

func (r Record) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create record file: %w", err)
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close record file: %w", err)
	}
	return nil
}

// Load reads a record saved by Save. A missing file matches fs.ErrNotExist.
func Load(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to open record file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
