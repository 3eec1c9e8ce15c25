package ontology

import (
	"encoding/xml"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// The decoder targets the RDF/XML serialisation produced by Protege and
// owlready2: owl:Class / owl:ObjectProperty / owl:DatatypeProperty /
// owl:NamedIndividual top-level elements, with class axioms expressed through
// owl:equivalentClass, owl:Restriction and rdf:parseType="Collection" lists.

type xDocument struct {
	XMLName     xml.Name      `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# RDF"`
	Ontology    *xAbout       `xml:"http://www.w3.org/2002/07/owl# Ontology"`
	Classes     []xClassDecl  `xml:"http://www.w3.org/2002/07/owl# Class"`
	ObjectProps []xPropDecl   `xml:"http://www.w3.org/2002/07/owl# ObjectProperty"`
	DataProps   []xPropDecl   `xml:"http://www.w3.org/2002/07/owl# DatatypeProperty"`
	Individuals []xIndividual `xml:"http://www.w3.org/2002/07/owl# NamedIndividual"`
	Describes   []xIndividual `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# Description"`
}

type xAbout struct {
	About string `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# about,attr"`
}

type xResource struct {
	Resource string `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# resource,attr"`
}

type xClassDecl struct {
	About      string        `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# about,attr"`
	SubClassOf []xExprHolder `xml:"http://www.w3.org/2000/01/rdf-schema# subClassOf"`
	Equivalent []xExprHolder `xml:"http://www.w3.org/2002/07/owl# equivalentClass"`
}

type xPropDecl struct {
	About     string      `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# about,attr"`
	Types     []xResource `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# type"`
	InverseOf *xResource  `xml:"http://www.w3.org/2002/07/owl# inverseOf"`
	Range     *xResource  `xml:"http://www.w3.org/2000/01/rdf-schema# range"`
}

// xExprHolder carries a class expression in any of its serialised positions:
// a bare rdf:resource reference, a nested owl:Class or a nested
// owl:Restriction.
type xExprHolder struct {
	Resource    string        `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# resource,attr"`
	Class       *xExprNode    `xml:"http://www.w3.org/2002/07/owl# Class"`
	Restriction *xRestriction `xml:"http://www.w3.org/2002/07/owl# Restriction"`
}

type xExprNode struct {
	About          string       `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# about,attr"`
	IntersectionOf *xCollection `xml:"http://www.w3.org/2002/07/owl# intersectionOf"`
	UnionOf        *xCollection `xml:"http://www.w3.org/2002/07/owl# unionOf"`
	ComplementOf   *xExprHolder `xml:"http://www.w3.org/2002/07/owl# complementOf"`
	OneOf          *xCollection `xml:"http://www.w3.org/2002/07/owl# oneOf"`
}

type xRestriction struct {
	OnProperty     *xResource `xml:"http://www.w3.org/2002/07/owl# onProperty"`
	HasValue       *xValue    `xml:"http://www.w3.org/2002/07/owl# hasValue"`
	SomeValuesFrom *xSome     `xml:"http://www.w3.org/2002/07/owl# someValuesFrom"`
}

type xCollection struct {
	Descriptions []xAbout       `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# Description"`
	Classes      []xExprNode    `xml:"http://www.w3.org/2002/07/owl# Class"`
	Restrictions []xRestriction `xml:"http://www.w3.org/2002/07/owl# Restriction"`
}

type xValue struct {
	Resource string `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# resource,attr"`
	Datatype string `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# datatype,attr"`
	Text     string `xml:",chardata"`
}

type xSome struct {
	Resource    string        `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# resource,attr"`
	Class       *xExprNode    `xml:"http://www.w3.org/2002/07/owl# Class"`
	Restriction *xRestriction `xml:"http://www.w3.org/2002/07/owl# Restriction"`
	Datatype    *xDatatype    `xml:"http://www.w3.org/2000/01/rdf-schema# Datatype"`
}

type xDatatype struct {
	OnDatatype       *xResource        `xml:"http://www.w3.org/2002/07/owl# onDatatype"`
	WithRestrictions *xWithRestriction `xml:"http://www.w3.org/2002/07/owl# withRestrictions"`
}

type xWithRestriction struct {
	Descriptions []xFacetSet `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# Description"`
}

type xFacetSet struct {
	Facets []xFacet `xml:",any"`
}

type xFacet struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

type xIndividual struct {
	About string      `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# about,attr"`
	Types []xResource `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# type"`
	Props []xProperty `xml:",any"`
}

type xProperty struct {
	XMLName  xml.Name
	Resource string `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# resource,attr"`
	Datatype string `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# datatype,attr"`
	Text     string `xml:",chardata"`
}

// localName reduces an IRI to its fragment (or final path segment) so the
// model can key everything by local name.
func localName(iri string) string {
	if i := strings.LastIndex(iri, "#"); i >= 0 {
		return iri[i+1:]
	}
	if i := strings.LastIndex(iri, "/"); i >= 0 {
		return iri[i+1:]
	}
	return iri
}

// Load reads an RDF/XML ontology document from path.
func Load(path string) (*Ontology, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read ontology file %s", path)
	}
	return Decode(data)
}

// Decode parses an RDF/XML ontology document.
func Decode(data []byte) (*Ontology, error) {
	var doc xDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "cannot parse RDF/XML ontology document")
	}

	base := ""
	if doc.Ontology != nil {
		base = strings.TrimSuffix(doc.Ontology.About, "#")
	}
	onto := New(base)

	for i := range doc.Classes {
		decl := &doc.Classes[i]
		c := onto.AddClass(&Class{ID: localName(decl.About)})
		for _, sub := range decl.SubClassOf {
			// Only named parents participate in subclass propagation;
			// restriction-shaped subClassOf axioms state necessary
			// conditions and carry no instance-level inference.
			if sub.Resource != "" {
				c.SubClassOf = append(c.SubClassOf, localName(sub.Resource))
			}
		}
		for i := range decl.Equivalent {
			expr := exprFromHolder(&decl.Equivalent[i])
			if expr != nil {
				c.Equivalent = append(c.Equivalent, expr)
			}
		}
	}

	for i := range doc.ObjectProps {
		decl := &doc.ObjectProps[i]
		p := &ObjectProperty{ID: localName(decl.About)}
		if decl.InverseOf != nil {
			p.InverseOf = localName(decl.InverseOf.Resource)
		}
		p.Functional = hasFunctionalType(decl.Types)
		onto.AddObjectProperty(p)
	}

	for i := range doc.DataProps {
		decl := &doc.DataProps[i]
		p := &DataProperty{ID: localName(decl.About)}
		if decl.Range != nil {
			p.Range = decl.Range.Resource
		}
		p.Functional = hasFunctionalType(decl.Types)
		onto.AddDataProperty(p)
	}

	for i := range doc.Individuals {
		decodeIndividual(onto, &doc.Individuals[i])
	}
	for i := range doc.Describes {
		if len(doc.Describes[i].Types) > 0 {
			decodeIndividual(onto, &doc.Describes[i])
		}
	}

	return onto, nil
}

func hasFunctionalType(types []xResource) bool {
	for _, t := range types {
		if localName(t.Resource) == "FunctionalProperty" {
			return true
		}
	}
	return false
}

func decodeIndividual(onto *Ontology, x *xIndividual) {
	ind := onto.NewIndividual("", localName(x.About))
	for _, t := range x.Types {
		name := localName(t.Resource)
		if name == "NamedIndividual" {
			continue
		}
		if !ind.HasType(name) {
			ind.Types = append(ind.Types, name)
		}
	}
	for _, p := range x.Props {
		prop := p.XMLName.Local
		if p.Resource != "" {
			onto.AddObject(ind, prop, localName(p.Resource))
			continue
		}
		value := strings.TrimSpace(p.Text)
		if value == "" {
			continue
		}
		datatype := p.Datatype
		if datatype == "" {
			datatype = XSDString
		}
		ind.Data[prop] = append(ind.Data[prop], Literal{Value: value, Datatype: datatype})
	}
}

func exprFromHolder(h *xExprHolder) *Expression {
	switch {
	case h == nil:
		return nil
	case h.Resource != "":
		return &Expression{Kind: KindNamed, Class: localName(h.Resource)}
	case h.Class != nil:
		return exprFromNode(h.Class)
	case h.Restriction != nil:
		return exprFromRestriction(h.Restriction)
	}
	return nil
}

func exprFromNode(n *xExprNode) *Expression {
	switch {
	case n.About != "":
		return &Expression{Kind: KindNamed, Class: localName(n.About)}
	case n.IntersectionOf != nil:
		return &Expression{Kind: KindIntersection, Operands: exprsFromCollection(n.IntersectionOf)}
	case n.UnionOf != nil:
		return &Expression{Kind: KindUnion, Operands: exprsFromCollection(n.UnionOf)}
	case n.ComplementOf != nil:
		operand := exprFromHolder(n.ComplementOf)
		if operand == nil {
			return nil
		}
		return &Expression{Kind: KindComplement, Operands: []*Expression{operand}}
	case n.OneOf != nil:
		expr := &Expression{Kind: KindOneOf}
		for _, d := range n.OneOf.Descriptions {
			expr.Individuals = append(expr.Individuals, localName(d.About))
		}
		return expr
	}
	return nil
}

func exprsFromCollection(c *xCollection) []*Expression {
	var out []*Expression
	for _, d := range c.Descriptions {
		out = append(out, &Expression{Kind: KindNamed, Class: localName(d.About)})
	}
	for i := range c.Classes {
		if expr := exprFromNode(&c.Classes[i]); expr != nil {
			out = append(out, expr)
		}
	}
	for i := range c.Restrictions {
		if expr := exprFromRestriction(&c.Restrictions[i]); expr != nil {
			out = append(out, expr)
		}
	}
	return out
}

func exprFromRestriction(r *xRestriction) *Expression {
	if r.OnProperty == nil {
		return nil
	}
	prop := localName(r.OnProperty.Resource)

	if r.HasValue != nil {
		if r.HasValue.Resource != "" {
			return &Expression{
				Kind:     KindObjectHasValue,
				Property: prop,
				Value:    localName(r.HasValue.Resource),
			}
		}
		datatype := r.HasValue.Datatype
		if datatype == "" {
			datatype = XSDString
		}
		return &Expression{
			Kind:     KindDataHasValue,
			Property: prop,
			Literal:  &Literal{Value: strings.TrimSpace(r.HasValue.Text), Datatype: datatype},
		}
	}

	if r.SomeValuesFrom != nil {
		some := r.SomeValuesFrom
		switch {
		case some.Datatype != nil:
			return &Expression{
				Kind:     KindDataSomeValues,
				Property: prop,
				Facets:   facetsFromDatatype(some.Datatype),
			}
		case some.Resource != "":
			return &Expression{
				Kind:     KindObjectSomeValues,
				Property: prop,
				Filler:   &Expression{Kind: KindNamed, Class: localName(some.Resource)},
			}
		case some.Class != nil:
			return &Expression{
				Kind:     KindObjectSomeValues,
				Property: prop,
				Filler:   exprFromNode(some.Class),
			}
		case some.Restriction != nil:
			return &Expression{
				Kind:     KindObjectSomeValues,
				Property: prop,
				Filler:   exprFromRestriction(some.Restriction),
			}
		}
	}

	return nil
}

func facetsFromDatatype(dt *xDatatype) []Facet {
	var out []Facet
	if dt.WithRestrictions == nil {
		return out
	}
	for _, set := range dt.WithRestrictions.Descriptions {
		for _, f := range set.Facets {
			value, err := strconv.ParseFloat(strings.TrimSpace(f.Text), 64)
			if err != nil {
				continue
			}
			out = append(out, Facet{Name: f.XMLName.Local, Value: value})
		}
	}
	return out
}
