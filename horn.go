package cdclsat

// solveHorn decides a Horn formula (every clause has at most one positive
// literal) in time linear in the formula's size by computing its unique
// minimal model: start every variable false, and repeatedly fire any
// clause whose negated variables have all been forced true (so all its
// negative literals are false), forcing that clause's positive literal
// (if any) true. A fired clause with no positive literal is a violated
// constraint: UNSAT. This is original_source/src/khorn.rs's linear_solve,
// expressed with a fire queue instead of the Rust version's score-bucket
// pool (behaviorally identical: both process each clause at most once,
// when its count of negated variables not yet forced true reaches zero).
func solveHorn(cnf CNF) Result {
	n := cnf.NumVars
	type hornClause struct {
		positive *Var
		negVars  []Var
	}

	clauses := make([]hornClause, len(cnf.Clauses))
	negVarClauses := make([][]int, n)
	score := make([]int, len(cnf.Clauses))

	for i, cl := range cnf.Clauses {
		var hc hornClause
		for _, lit := range cl {
			if lit > 0 {
				v := Var(lit - 1)
				hc.positive = &v
			} else {
				v := Var(-lit - 1)
				hc.negVars = append(hc.negVars, v)
				negVarClauses[v] = append(negVarClauses[v], i)
			}
		}
		clauses[i] = hc
		score[i] = len(hc.negVars)
	}

	done := make([]bool, len(clauses))
	assignedTrue := make([]bool, n)
	model := make(Model, n)

	var queue []int
	for i, s := range score {
		if s == 0 {
			queue = append(queue, i)
		}
	}

	for len(queue) > 0 {
		i := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if done[i] {
			continue
		}
		done[i] = true

		if clauses[i].positive == nil {
			return Result{Verdict: Unsatisfiable, Stats: Stats{Engine: "horn"}}
		}
		v := *clauses[i].positive
		if assignedTrue[v] {
			continue
		}
		assignedTrue[v] = true
		model[v] = true

		for _, j := range negVarClauses[v] {
			if done[j] {
				continue
			}
			score[j]--
			if score[j] == 0 {
				queue = append(queue, j)
			}
		}
	}

	return Result{Verdict: Satisfiable, Model: model, Stats: Stats{Engine: "horn"}}
}
