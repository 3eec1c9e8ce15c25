package reasoner

import (
	"github.com/vehicle-kg/vehicles-rw-owl/ontology"
)

// satisfies evaluates a class expression against an individual. Complement is
// negation as failure over the asserted-plus-inferred facts, which is sound
// for the closed dataset this tool populates.
func (c *Classifier) satisfies(expr *ontology.Expression, ind *ontology.Individual) bool {
	switch expr.Kind {
	case ontology.KindNamed:
		return ind.HasType(expr.Class)

	case ontology.KindIntersection:
		for _, op := range expr.Operands {
			if !c.satisfies(op, ind) {
				return false
			}
		}
		return len(expr.Operands) > 0

	case ontology.KindUnion:
		for _, op := range expr.Operands {
			if c.satisfies(op, ind) {
				return true
			}
		}
		return false

	case ontology.KindComplement:
		return len(expr.Operands) == 1 && !c.satisfies(expr.Operands[0], ind)

	case ontology.KindOneOf:
		for _, id := range expr.Individuals {
			if id == ind.ID {
				return true
			}
		}
		return false

	case ontology.KindObjectHasValue:
		for _, target := range ind.Objects[expr.Property] {
			if target == expr.Value {
				return true
			}
		}
		return false

	case ontology.KindObjectSomeValues:
		if expr.Filler == nil {
			return false
		}
		for _, targetID := range ind.Objects[expr.Property] {
			// oneOf fillers match on the identifier alone, so a dangling
			// target can still satisfy them.
			if expr.Filler.Kind == ontology.KindOneOf && c.satisfies(expr.Filler, &ontology.Individual{ID: targetID}) {
				return true
			}
			target, ok := c.onto.Individual(targetID)
			if ok && c.satisfies(expr.Filler, target) {
				return true
			}
		}
		return false

	case ontology.KindDataHasValue:
		if expr.Literal == nil {
			return false
		}
		for _, lit := range ind.Data[expr.Property] {
			if lit.Equal(*expr.Literal) {
				return true
			}
		}
		return false

	case ontology.KindDataSomeValues:
		for _, lit := range ind.Data[expr.Property] {
			value, ok := lit.Float()
			if !ok {
				continue
			}
			if facetsHold(expr.Facets, value) {
				return true
			}
		}
		return false
	}

	return false
}

func facetsHold(facets []ontology.Facet, value float64) bool {
	for _, f := range facets {
		switch f.Name {
		case "minInclusive":
			if value < f.Value {
				return false
			}
		case "maxInclusive":
			if value > f.Value {
				return false
			}
		case "minExclusive":
			if value <= f.Value {
				return false
			}
		case "maxExclusive":
			if value >= f.Value {
				return false
			}
		default:
			return false
		}
	}
	return len(facets) > 0
}
