package ontology

import (
	"strconv"
	"strings"
)

// ExpressionKind discriminates the class expression variants the classifier
// understands.
type ExpressionKind int

const (
	KindNamed ExpressionKind = iota
	KindIntersection
	KindUnion
	KindComplement
	KindOneOf
	KindObjectHasValue
	KindObjectSomeValues
	KindDataHasValue
	KindDataSomeValues
)

// Facet is a single xsd range restriction on a data someValuesFrom filler.
type Facet struct {
	Name  string // minInclusive, maxInclusive, minExclusive, maxExclusive
	Value float64
}

// Expression is a class expression node. Which fields are meaningful depends
// on Kind.
type Expression struct {
	Kind        ExpressionKind
	Class       string        // KindNamed
	Operands    []*Expression // KindIntersection, KindUnion, KindComplement (single operand)
	Individuals []string      // KindOneOf
	Property    string        // restriction kinds
	Value       string        // KindObjectHasValue: target individual
	Filler      *Expression   // KindObjectSomeValues
	Literal     *Literal      // KindDataHasValue
	Facets      []Facet       // KindDataSomeValues
}

// Class is an ontology class with its asserted axioms.
type Class struct {
	ID         string
	SubClassOf []string
	Equivalent []*Expression
}

// ObjectProperty declaration.
type ObjectProperty struct {
	ID         string
	InverseOf  string
	Functional bool
}

// DataProperty declaration.
type DataProperty struct {
	ID         string
	Range      string
	Functional bool
}

// Literal is a typed literal value kept in its lexical form.
type Literal struct {
	Value    string
	Datatype string
}

func StringLiteral(v string) Literal {
	return Literal{Value: v, Datatype: XSDString}
}

func IntLiteral(v int) Literal {
	return Literal{Value: strconv.Itoa(v), Datatype: XSDInteger}
}

func FloatLiteral(v float64) Literal {
	return Literal{Value: strconv.FormatFloat(v, 'f', -1, 64), Datatype: XSDFloat}
}

func BoolLiteral(v bool) Literal {
	return Literal{Value: strconv.FormatBool(v), Datatype: XSDBoolean}
}

// Float returns the numeric value for integer or floating point literals.
func (l Literal) Float() (float64, bool) {
	switch l.Datatype {
	case XSDInteger, XSDFloat, XSDDouble, "":
		f, err := strconv.ParseFloat(strings.TrimSpace(l.Value), 64)
		return f, err == nil
	}
	return 0, false
}

// Bool returns the boolean value of an xsd:boolean literal.
func (l Literal) Bool() (bool, bool) {
	if l.Datatype != XSDBoolean {
		return false, false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(l.Value))
	return b, err == nil
}

// Equal compares literals, numerically when both sides are numeric so that
// "4" and "4.0" coming from different columns still match.
func (l Literal) Equal(other Literal) bool {
	if lf, ok := l.Float(); ok {
		if of, ok := other.Float(); ok {
			return lf == of
		}
	}
	return l.Value == other.Value && l.Datatype == other.Datatype
}

// Individual is a named individual with asserted and inferred types.
type Individual struct {
	ID       string
	Types    []string
	Inferred []string
	Objects  map[string][]string
	Data     map[string][]Literal
}

// HasType reports asserted or inferred membership of the named class.
func (ind *Individual) HasType(classID string) bool {
	for _, t := range ind.Types {
		if t == classID {
			return true
		}
	}
	for _, t := range ind.Inferred {
		if t == classID {
			return true
		}
	}
	return false
}

// AddInferred records an inferred type; returns false if already present.
func (ind *Individual) AddInferred(classID string) bool {
	if ind.HasType(classID) {
		return false
	}
	ind.Inferred = append(ind.Inferred, classID)
	return true
}

// Object returns the single value of a functional object property.
func (ind *Individual) Object(prop string) (string, bool) {
	vals := ind.Objects[prop]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// DataValue returns the single value of a functional data property.
func (ind *Individual) DataValue(prop string) (Literal, bool) {
	vals := ind.Data[prop]
	if len(vals) == 0 {
		return Literal{}, false
	}
	return vals[0], true
}

// Ontology is the in-process ontology: schema plus individuals. Declaration
// order is preserved so saves and reports are deterministic.
type Ontology struct {
	Base string

	classes     map[string]*Class
	classOrder  []string
	objectProps map[string]*ObjectProperty
	objectOrder []string
	dataProps   map[string]*DataProperty
	dataOrder   []string
	individuals map[string]*Individual
	indivOrder  []string
}

func New(base string) *Ontology {
	if base == "" {
		base = DefaultBase
	}
	return &Ontology{
		Base:        base,
		classes:     make(map[string]*Class),
		objectProps: make(map[string]*ObjectProperty),
		dataProps:   make(map[string]*DataProperty),
		individuals: make(map[string]*Individual),
	}
}

// Class returns the class with the given local name, if declared.
func (o *Ontology) Class(id string) (*Class, bool) {
	c, ok := o.classes[id]
	return c, ok
}

// AddClass declares a class; an existing declaration is returned unchanged.
func (o *Ontology) AddClass(c *Class) *Class {
	if existing, ok := o.classes[c.ID]; ok {
		return existing
	}
	o.classes[c.ID] = c
	o.classOrder = append(o.classOrder, c.ID)
	return c
}

// Classes returns all classes in declaration order.
func (o *Ontology) Classes() []*Class {
	out := make([]*Class, 0, len(o.classOrder))
	for _, id := range o.classOrder {
		out = append(out, o.classes[id])
	}
	return out
}

func (o *Ontology) ObjectProperty(id string) (*ObjectProperty, bool) {
	p, ok := o.objectProps[id]
	return p, ok
}

func (o *Ontology) AddObjectProperty(p *ObjectProperty) *ObjectProperty {
	if existing, ok := o.objectProps[p.ID]; ok {
		return existing
	}
	o.objectProps[p.ID] = p
	o.objectOrder = append(o.objectOrder, p.ID)
	return p
}

func (o *Ontology) ObjectProperties() []*ObjectProperty {
	out := make([]*ObjectProperty, 0, len(o.objectOrder))
	for _, id := range o.objectOrder {
		out = append(out, o.objectProps[id])
	}
	return out
}

func (o *Ontology) DataProperty(id string) (*DataProperty, bool) {
	p, ok := o.dataProps[id]
	return p, ok
}

func (o *Ontology) AddDataProperty(p *DataProperty) *DataProperty {
	if existing, ok := o.dataProps[p.ID]; ok {
		return existing
	}
	o.dataProps[p.ID] = p
	o.dataOrder = append(o.dataOrder, p.ID)
	return p
}

func (o *Ontology) DataProperties() []*DataProperty {
	out := make([]*DataProperty, 0, len(o.dataOrder))
	for _, id := range o.dataOrder {
		out = append(out, o.dataProps[id])
	}
	return out
}

// Individual returns the individual with the given local name, if present.
func (o *Ontology) Individual(id string) (*Individual, bool) {
	ind, ok := o.individuals[id]
	return ind, ok
}

// NewIndividual creates an individual asserted into classID, or returns the
// existing one with the type added. Creating the same name twice yields the
// same individual, matching the create-or-get behaviour of the original
// population flow.
func (o *Ontology) NewIndividual(classID, id string) *Individual {
	ind, ok := o.individuals[id]
	if !ok {
		ind = &Individual{
			ID:      id,
			Objects: make(map[string][]string),
			Data:    make(map[string][]Literal),
		}
		o.individuals[id] = ind
		o.indivOrder = append(o.indivOrder, id)
	}
	if classID != "" && !ind.HasType(classID) {
		ind.Types = append(ind.Types, classID)
	}
	return ind
}

// Individuals returns every individual in creation order.
func (o *Ontology) Individuals() []*Individual {
	out := make([]*Individual, 0, len(o.indivOrder))
	for _, id := range o.indivOrder {
		out = append(out, o.individuals[id])
	}
	return out
}

// SetObject sets the single value of a functional object property.
func (o *Ontology) SetObject(ind *Individual, prop, target string) {
	ind.Objects[prop] = []string{target}
}

// AddObject appends a value to a non-functional object property, skipping
// duplicates.
func (o *Ontology) AddObject(ind *Individual, prop, target string) {
	for _, v := range ind.Objects[prop] {
		if v == target {
			return
		}
	}
	ind.Objects[prop] = append(ind.Objects[prop], target)
}

// SetData sets the single value of a functional data property.
func (o *Ontology) SetData(ind *Individual, prop string, lit Literal) {
	ind.Data[prop] = []Literal{lit}
}

// InstancesOf returns the individuals asserted or inferred to be members of
// the named class, in creation order.
func (o *Ontology) InstancesOf(classID string) []*Individual {
	var out []*Individual
	for _, id := range o.indivOrder {
		if o.individuals[id].HasType(classID) {
			out = append(out, o.individuals[id])
		}
	}
	return out
}

// Superclasses returns the transitive rdfs:subClassOf ancestors of classID.
func (o *Ontology) Superclasses(classID string) []string {
	var out []string
	seen := map[string]bool{classID: true}
	queue := []string{classID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		c, ok := o.classes[current]
		if !ok {
			continue
		}
		for _, parent := range c.SubClassOf {
			if seen[parent] {
				continue
			}
			seen[parent] = true
			out = append(out, parent)
			queue = append(queue, parent)
		}
	}
	return out
}
