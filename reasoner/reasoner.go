// Package reasoner infers taxonomic class membership for the individuals of
// a populated ontology. It covers the fragment of OWL the vehicle ontology
// actually uses: named classes, intersections, unions, complements,
// individual enumerations, object/data value restrictions and numeric range
// facets, plus rdfs:subClassOf propagation and owl:inverseOf materialisation.
package reasoner

import (
	logger "github.com/Financial-Times/go-logger/v2"

	"github.com/vehicle-kg/vehicles-rw-owl/ontology"
)

// Classifier evaluates class axioms against individuals.
type Classifier struct {
	onto      *ontology.Ontology
	log       *logger.UPPLogger
	ancestors map[string][]string
}

func NewClassifier(onto *ontology.Ontology, log *logger.UPPLogger) *Classifier {
	c := &Classifier{onto: onto, log: log, ancestors: make(map[string][]string)}
	for _, class := range onto.Classes() {
		c.ancestors[class.ID] = onto.Superclasses(class.ID)
	}
	return c
}

// Classify runs the classification to fixpoint: membership derived in one
// pass can satisfy expressions evaluated in the next, so axioms that
// reference other defined classes settle regardless of declaration order.
// Returns the number of inferred type assertions and the number of passes.
func (c *Classifier) Classify() (int, int) {
	individuals := c.onto.Individuals()
	inferred := 0

	// Seed with the subclass closure of the asserted types. The asserted
	// type itself is already present, so only the ancestors count as new.
	for _, ind := range individuals {
		for _, t := range ind.Types {
			inferred += c.addWithAncestors(ind, t)
		}
	}

	defined := definedClasses(c.onto)
	passes := 0
	for {
		passes++
		changed := false
		for _, class := range defined {
			for _, ind := range individuals {
				if ind.HasType(class.ID) {
					continue
				}
				if !c.satisfiesAny(class.Equivalent, ind) {
					continue
				}
				added := c.addWithAncestors(ind, class.ID)
				if added > 0 {
					inferred += added
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	c.log.Infof("Classification settled after %d passes, %d inferred type assertions", passes, inferred)
	return inferred, passes
}

// addWithAncestors asserts classID and its subclass closure as inferred
// types, returning how many assertions were new.
func (c *Classifier) addWithAncestors(ind *ontology.Individual, classID string) int {
	added := 0
	if ind.AddInferred(classID) {
		added++
	}
	for _, ancestor := range c.ancestors[classID] {
		if ind.AddInferred(ancestor) {
			added++
		}
	}
	return added
}

func (c *Classifier) satisfiesAny(exprs []*ontology.Expression, ind *ontology.Individual) bool {
	for _, expr := range exprs {
		if c.satisfies(expr, ind) {
			return true
		}
	}
	return false
}

// MaterialiseInverses adds the inverse edge for every asserted object
// property triple whose declaration carries owl:inverseOf. Returns the
// number of edges added.
func (c *Classifier) MaterialiseInverses() int {
	added := 0
	for _, prop := range c.onto.ObjectProperties() {
		if prop.InverseOf == "" {
			continue
		}
		for _, ind := range c.onto.Individuals() {
			for _, targetID := range ind.Objects[prop.ID] {
				target, ok := c.onto.Individual(targetID)
				if !ok {
					c.log.WithFields(map[string]interface{}{"individual": ind.ID, "property": prop.ID, "target": targetID}).
						Warn("Dangling object property target, skipping inverse")
					continue
				}
				before := len(target.Objects[prop.InverseOf])
				c.onto.AddObject(target, prop.InverseOf, ind.ID)
				if len(target.Objects[prop.InverseOf]) > before {
					added++
				}
			}
		}
	}
	if added > 0 {
		c.log.Infof("Materialised %d inverse property values", added)
	}
	return added
}

func definedClasses(onto *ontology.Ontology) []*ontology.Class {
	var out []*ontology.Class
	for _, class := range onto.Classes() {
		if len(class.Equivalent) > 0 {
			out = append(out, class)
		}
	}
	return out
}
