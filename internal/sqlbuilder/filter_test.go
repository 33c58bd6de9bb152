package sqlbuilder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobly/internal/domain/entity"
	"jobly/internal/sqlbuilder"
)

func strPtr(s string) *string { return &s }
func int64Ptr(n int64) *int64 { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestCompileJobFilter_AllCombinations(t *testing.T) {
	titles := []*string{nil, strPtr("eng")}
	salaries := []*int64{nil, int64Ptr(80000)}
	equities := []*bool{nil, boolPtr(false), boolPtr(true)}

	for _, title := range titles {
		for _, salary := range salaries {
			for _, equity := range equities {
				f := entity.JobFilter{Title: title, MinSalary: salary, HasEquity: equity}
				name := fmt.Sprintf("title=%t/minSalary=%t/hasEquity=%v", title != nil, salary != nil, describeBool(equity))

				t.Run(name, func(t *testing.T) {
					var (
						conds []string
						want  []any
					)
					if title != nil {
						want = append(want, "%eng%")
						conds = append(conds, fmt.Sprintf("title ILIKE $%d", len(want)))
					}
					if salary != nil {
						want = append(want, int64(80000))
						conds = append(conds, fmt.Sprintf("salary >= $%d", len(want)))
					}
					if equity != nil && *equity {
						conds = append(conds, "equity > 0")
					}

					wantClause := "ORDER BY title, id"
					if len(conds) > 0 {
						wantClause = "WHERE " + join(conds) + " ORDER BY title, id"
					}

					clause, args := sqlbuilder.CompileJobFilter(f)
					assert.Equal(t, wantClause, clause)
					assert.Equal(t, want, args)
				})
			}
		}
	}
}

func TestCompileJobFilter_NoCriteria(t *testing.T) {
	clause, args := sqlbuilder.CompileJobFilter(entity.JobFilter{})
	assert.Equal(t, "ORDER BY title, id", clause)
	assert.Empty(t, args)
}

func TestCompileJobFilter_FalseEquityIsAbsent(t *testing.T) {
	base := entity.JobFilter{Title: strPtr("dev"), MinSalary: int64Ptr(1)}
	withFalse := base
	withFalse.HasEquity = boolPtr(false)

	absentClause, absentArgs := sqlbuilder.CompileJobFilter(base)
	falseClause, falseArgs := sqlbuilder.CompileJobFilter(withFalse)

	assert.Equal(t, absentClause, falseClause)
	assert.Equal(t, absentArgs, falseArgs)
	assert.NotContains(t, falseClause, "equity")
}

func TestCompileJobFilter_EquityOnlyHasNoParams(t *testing.T) {
	clause, args := sqlbuilder.CompileJobFilter(entity.JobFilter{HasEquity: boolPtr(true)})
	assert.Equal(t, "WHERE equity > 0 ORDER BY title, id", clause)
	assert.Empty(t, args)
}

func TestCompileJobFilter_Idempotent(t *testing.T) {
	f := entity.JobFilter{Title: strPtr("engineer"), MinSalary: int64Ptr(80000), HasEquity: boolPtr(true)}

	clause1, args1 := sqlbuilder.CompileJobFilter(f)
	clause2, args2 := sqlbuilder.CompileJobFilter(f)

	assert.Equal(t, clause1, clause2)
	assert.Equal(t, args1, args2)
	assert.Equal(t, "WHERE title ILIKE $1 AND salary >= $2 AND equity > 0 ORDER BY title, id", clause1)
	assert.Equal(t, []any{"%engineer%", int64(80000)}, args1)
}

func TestCompileJobFilter_EscapesLikeWildcards(t *testing.T) {
	_, args := sqlbuilder.CompileJobFilter(entity.JobFilter{Title: strPtr(`100%_c\d`)})
	assert.Equal(t, []any{`%100\%\_c\\d%`}, args)
}

func TestCompileJobFilter_TitleNeverInClause(t *testing.T) {
	clause, _ := sqlbuilder.CompileJobFilter(entity.JobFilter{Title: strPtr("'; DROP TABLE jobs; --")})
	assert.Equal(t, "WHERE title ILIKE $1 ORDER BY title, id", clause)
}

func describeBool(b *bool) string {
	if b == nil {
		return "absent"
	}
	return fmt.Sprint(*b)
}

func join(conds []string) string {
	out := conds[0]
	for _, c := range conds[1:] {
		out += " AND " + c
	}
	return out
}
