package sqlbuilder

import (
	"strings"

	"jobly/internal/domain/entity"
)

// JobsOrderBy is applied to every listing regardless of the active criteria.
// id breaks ties between equal titles.
const JobsOrderBy = "ORDER BY title, id"

// predicate contributes at most one condition for a single criterion.
// ok is false when the criterion is absent.
type predicate func(f entity.JobFilter, a *args) (cond string, ok bool)

// jobPredicates fixes the order of conditions and parameters:
// title, then salary, then equity.
var jobPredicates = []predicate{
	titlePredicate,
	minSalaryPredicate,
	hasEquityPredicate,
}

func titlePredicate(f entity.JobFilter, a *args) (string, bool) {
	if f.Title == nil {
		return "", false
	}
	return "title ILIKE " + a.bind("%"+escapeLike(*f.Title)+"%"), true
}

func minSalaryPredicate(f entity.JobFilter, a *args) (string, bool) {
	if f.MinSalary == nil {
		return "", false
	}
	return "salary >= " + a.bind(*f.MinSalary), true
}

// hasEquityPredicate filters only on true. false means "do not filter".
func hasEquityPredicate(f entity.JobFilter, _ *args) (string, bool) {
	if f.HasEquity == nil || !*f.HasEquity {
		return "", false
	}
	return "equity > 0", true
}

// CompileJobFilter turns the optional criteria into a WHERE / ORDER BY tail
// for a jobs SELECT and the parameters it references, in placeholder order.
// With no active criteria the tail is just the ordering.
func CompileJobFilter(f entity.JobFilter) (string, []any) {
	var (
		a     args
		conds []string
	)
	for _, p := range jobPredicates {
		if cond, ok := p(f, &a); ok {
			conds = append(conds, cond)
		}
	}

	if len(conds) == 0 {
		return JobsOrderBy, nil
	}
	return "WHERE " + strings.Join(conds, " AND ") + " " + JobsOrderBy, a.values
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes the fragment match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
