package chooser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grouptopo/grouptopo/chooser"
	"github.com/grouptopo/grouptopo/constraint"
	"github.com/grouptopo/grouptopo/target"
)

func TestMinimumHoistsNeededApprox_SingleClauseSatisfied(t *testing.T) {
	universe := []target.TargetName{"a", "b"}
	f := constraint.NewFastHN(universe)
	f.Flatten(constraint.All(constraint.Any(constraint.Single("a"), constraint.Single("b"))))

	chosen := chooser.MinimumHoistsNeededApprox(f)
	require := assert.New(t)
	require.Len(chosen, 1)

	chosenSet := map[target.TargetName]struct{}{}
	for _, idx := range chosen {
		chosenSet[f.NameOf(idx)] = struct{}{}
	}
	h := constraint.All(constraint.Any(constraint.Single("a"), constraint.Single("b")))
	assert.True(t, h.Satisfies(chosenSet))
}

func TestMinimumHoistsNeededApprox_FrequentNodeChosenFirst(t *testing.T) {
	// "a" appears in two clauses, so the greedy phase should pick it and
	// thereby satisfy both without needing "b" or "c".
	universe := []target.TargetName{"a", "b", "c"}
	f := constraint.NewFastHN(universe)
	f.Flatten(constraint.All(
		constraint.Any(constraint.Single("a"), constraint.Single("b")),
		constraint.Any(constraint.Single("a"), constraint.Single("c")),
	))

	chosen := chooser.MinimumHoistsNeededApprox(f)
	assert.Len(t, chosen, 1)
	assert.Equal(t, target.TargetName("a"), f.NameOf(chosen[0]))
}

func TestMinimumHoistsNeededApprox_EmptyFastHN(t *testing.T) {
	universe := []target.TargetName{"a"}
	f := constraint.NewFastHN(universe)

	chosen := chooser.MinimumHoistsNeededApprox(f)
	assert.Empty(t, chosen)
}

// TestMinimumHoistsNeededApprox_MultiNodeAlternativeNotPartiallyDischarged
// mirrors constraint_test.go's TestFastHN_FlattenConjunctionAlternative
// shape: one clause's first alternative is a genuine two-node conjunction
// sharing a node ("s") with two other clauses that are satisfied by "s"
// alone. Picking "s" must not discharge the conjunction clause too, since
// its alternative also needs "m".
func TestMinimumHoistsNeededApprox_MultiNodeAlternativeNotPartiallyDischarged(t *testing.T) {
	universe := []target.TargetName{"m", "s", "z", "w", "v"}
	f := constraint.NewFastHN(universe)

	h := constraint.All(
		constraint.Any(constraint.All(constraint.Single("m"), constraint.Single("s")), constraint.Single("z")),
		constraint.Any(constraint.Single("s"), constraint.Single("w")),
		constraint.Any(constraint.Single("s"), constraint.Single("v")),
	)
	f.Flatten(h)

	chosen := chooser.MinimumHoistsNeededApprox(f)

	chosenSet := map[target.TargetName]struct{}{}
	for _, idx := range chosen {
		chosenSet[f.NameOf(idx)] = struct{}{}
	}
	assert.True(t, h.Satisfies(chosenSet), "chosen set %v must satisfy every clause, including the multi-node alternative", chosenSet)
}
