package cdclsat

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestParseDIMACS(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
		want CNF
	}{
		{
			name: "no vars or clauses",
			text: "c No vars or clauses\np cnf 0 0\n",
			want: CNF{NumVars: 0, Clauses: nil},
		},
		{
			name: "one var one clause",
			text: "c 1 var, 1 clause\np cnf 1 1\n1 0\n",
			want: CNF{NumVars: 1, Clauses: [][]int{{1}}},
		},
		{
			name: "empty clauses preserved",
			text: "c Empty clauses\np cnf 3 5\n1 3 0 0 -3 0\n0 -2 -1\n",
			want: CNF{NumVars: 3, Clauses: [][]int{{1, 3}, {}, {-3}, {}, {-2, -1}}},
		},
		{
			name: "DIMACS example file",
			text: "c DIMACS example file\nc\np cnf 4 3\n1 3 -4 0\n4 0 2\n-3\n",
			want: CNF{NumVars: 4, Clauses: [][]int{{1, 3, -4}, {4}, {2, -3}}},
		},
		{
			name: "percent trailer",
			text: "c percent sign\np cnf 2 2\n1 2 0\n-1 2 0\n%\n1 2 3\nx y z\n",
			want: CNF{NumVars: 2, Clauses: [][]int{{1, 2}, {-1, 2}}},
		},
		{
			name: "no problem line, var count inferred",
			text: "3 0\n-1 2\n",
			want: CNF{NumVars: 3, Clauses: [][]int{{3}, {-1, 2}}},
		},
		{
			name: "clause count mismatch yields an empty sentinel clause",
			text: "p cnf 1 2\n1 0\n",
			want: CNF{NumVars: 1, Clauses: [][]int{{1}, nil}},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDIMACS(strings.NewReader(tt.text))
			require.NoError(t, err)
			if diff := cmp.Diff(got, tt.want, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("ParseDIMACS (-got, +want):\n%s", diff)
			}
		})
	}
}

func TestParseDIMACSVarOutOfRangeErrors(t *testing.T) {
	_, err := ParseDIMACS(strings.NewReader("p cnf 1 1\n2 0\n"))
	require.Error(t, err, "a literal outside the declared variable range should be an error")
}

func TestParseDIMACSMalformedProblemLine(t *testing.T) {
	_, err := ParseDIMACS(strings.NewReader("p cnf 1\n1 0\n"))
	require.Error(t, err, "a problem line with too few fields should be an error")
}

func TestWriteDIMACSRoundtrip(t *testing.T) {
	cnf := CNF{NumVars: 3, Clauses: [][]int{{1, 3, -2}, {-3}}}
	var b strings.Builder
	require.NoError(t, WriteDIMACS(&b, cnf))
	got, err := ParseDIMACS(strings.NewReader(b.String()))
	require.NoError(t, err)
	if diff := cmp.Diff(got, cnf, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("roundtrip (-got, +want):\n%s", diff)
	}
}
