package repository

import (
	"os"
	"strconv"
	"strings"

	domainRepo "github.com/xyspace-git/GeekYard-RAPP/internal/domain/repository"
)

type sequenceRepository struct {
	path string
}

// NewSequenceRepository creates a sequence repository backed by a plain
// text file holding the next receipt number as a decimal integer.
func NewSequenceRepository(path string) domainRepo.SequenceRepository {
	return &sequenceRepository{path: path}
}

func (r *sequenceRepository) Next() int {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 1
	}
	return n
}

func (r *sequenceRepository) Set(n int) error {
	return os.WriteFile(r.path, []byte(strconv.Itoa(n)), 0644)
}
