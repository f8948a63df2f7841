package extract

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
)

// CommandTableSource shells out to an external table extractor:
//
//	<command> [args...] <pdf-path> <page>
//
// The command prints a JSON array of tables, each a row-major array of
// string cells, on stdout. An empty array means no tables on the page.
type CommandTableSource struct {
	Command string
	Args    []string
}

// NewLatticeSource builds the primary (ruled-line) extraction strategy.
func NewLatticeSource(command string) *CommandTableSource {
	return &CommandTableSource{Command: command, Args: []string{"--flavor", "lattice"}}
}

// NewStreamSource builds the secondary strategy with looser row and edge
// tolerances, for sheets whose table rules did not render.
func NewStreamSource(command string) *CommandTableSource {
	return &CommandTableSource{
		Command: command,
		Args:    []string{"--flavor", "stream", "--row-tol", "10", "--edge-tol", "50"},
	}
}

func (s *CommandTableSource) Tables(path string, page int) ([]Table, error) {
	args := append(append([]string{}, s.Args...), path, strconv.Itoa(page))
	out, err := exec.Command(s.Command, args...).Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return nil, fmt.Errorf("table extractor %s: %w: %s", s.Command, err, ee.Stderr)
		}
		return nil, fmt.Errorf("table extractor %s: %w", s.Command, err)
	}

	var tables []Table
	if err := json.Unmarshal(out, &tables); err != nil {
		return nil, fmt.Errorf("table extractor %s: bad output: %w", s.Command, err)
	}
	return tables, nil
}
