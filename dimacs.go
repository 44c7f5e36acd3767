package cdclsat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseDIMACS parses text in the DIMACS CNF format into a CNF, adapted
// from cespare-saturday's ParseDIMACS. As there, comments ('c' lines) may
// appear anywhere rather than only in the preamble, the problem line is
// optional, and a trailer introduced by a lone '%' line ends the clause
// section. Unlike the teacher, a clause count that disagrees with the
// problem line's C is not a hard parse error: spec.md §6/§7 treats a
// malformed clause count as the formula containing an implicit empty
// clause, so ParseDIMACS appends one and lets the solver report
// Unsatisfiable rather than rejecting the file outright. A variable
// referenced outside the declared [1, V] range is still a hard error,
// since that is a genuine syntax problem rather than a count
// discrepancy.
func ParseDIMACS(r io.Reader) (CNF, error) {
	var header struct {
		vars    int
		clauses int
		seen    bool
	}
	var clauses [][]int
	var clause []int

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return CNF{}, errors.Wrap(ErrMalformedDIMACS, "problem line appears after clauses")
			}
			if header.seen {
				return CNF{}, errors.Wrap(ErrMalformedDIMACS, "multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return CNF{}, errors.Wrapf(ErrMalformedDIMACS, "malformed problem line %q", line)
			}
			if fields[1] != "cnf" {
				return CNF{}, errors.Wrapf(ErrMalformedDIMACS, "only cnf supported, got %q", fields[1])
			}
			var err error
			header.vars, err = strconv.Atoi(fields[2])
			if err != nil {
				return CNF{}, errors.Wrap(ErrMalformedDIMACS, "malformed #vars in problem line")
			}
			header.clauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return CNF{}, errors.Wrap(ErrMalformedDIMACS, "malformed #clauses in problem line")
			}
			if header.vars < 0 || header.clauses < 0 {
				return CNF{}, errors.Wrap(ErrMalformedDIMACS, "negative count in problem line")
			}
			header.seen = true
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return CNF{}, errors.Wrapf(ErrMalformedDIMACS, "invalid literal %q", field)
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return CNF{}, err
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}

	numVars := header.vars
	if !header.seen {
		for _, cl := range clauses {
			for _, n := range cl {
				if n < 0 {
					n = -n
				}
				if n > numVars {
					numVars = n
				}
			}
		}
	} else {
		for _, cl := range clauses {
			for _, n := range cl {
				v := n
				if v < 0 {
					v = -v
				}
				if v > header.vars {
					return CNF{}, errors.Wrapf(ErrVariableOutOfRange,
						"formula references var %d, problem line declares %d vars", v, header.vars)
				}
			}
		}
		if len(clauses) != header.clauses {
			clauses = append(clauses, nil)
		}
	}

	return CNF{NumVars: numVars, Clauses: clauses}, nil
}

// WriteDIMACS renders cnf in DIMACS CNF format, in the teacher's terse
// io.Writer style (cespare-saturday has no writer of its own; this
// follows the same field layout ParseDIMACS reads).
func WriteDIMACS(w io.Writer, cnf CNF) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", cnf.NumVars, len(cnf.Clauses)); err != nil {
		return err
	}
	for _, cl := range cnf.Clauses {
		fields := make([]string, 0, len(cl)+1)
		for _, n := range cl {
			fields = append(fields, strconv.Itoa(n))
		}
		fields = append(fields, "0")
		if _, err := fmt.Fprintln(bw, strings.Join(fields, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}
