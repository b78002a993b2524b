package board

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// A boardFile is the on-disk YAML representation of a board:
//
//	rows:
//	  - CAT
//	  - XXX
//	  - XXX
type boardFile struct {
	Rows []string `yaml:"rows"`
}

// Load reads a YAML board description.
func Load(r io.Reader) (*Board, error) {
	var bf boardFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&bf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding board: %w", err)
	}
	return New(bf.Rows)
}

// LoadFile reads a YAML board description from path.
func LoadFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("dim", b.Dim()).Msg("loaded-board")
	return b, nil
}

// Save writes b in the format Load reads.
func (b *Board) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(boardFile{Rows: b.Rows()}); err != nil {
		return err
	}
	return enc.Close()
}
