package ontology

import (
	"bytes"
	"encoding/xml"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// The writer re-serialises the full ontology (schema declarations plus every
// individual) so the populated document stands alone.

type wDocument struct {
	XMLName   xml.Name `xml:"rdf:RDF"`
	XmlnsRDF  string   `xml:"xmlns:rdf,attr"`
	XmlnsRDFS string   `xml:"xmlns:rdfs,attr"`
	XmlnsOWL  string   `xml:"xmlns:owl,attr"`
	XmlnsXSD  string   `xml:"xmlns:xsd,attr"`
	XmlBase   string   `xml:"xml:base,attr"`

	Ontology    wAbout        `xml:"owl:Ontology"`
	ObjectProps []wPropDecl   `xml:"owl:ObjectProperty"`
	DataProps   []wPropDecl   `xml:"owl:DatatypeProperty"`
	Classes     []wClassDecl  `xml:"owl:Class"`
	Individuals []wIndividual `xml:"owl:NamedIndividual"`
}

type wAbout struct {
	About string `xml:"rdf:about,attr"`
}

type wResource struct {
	Resource string `xml:"rdf:resource,attr"`
}

type wPropDecl struct {
	About     string      `xml:"rdf:about,attr"`
	Types     []wResource `xml:"rdf:type"`
	InverseOf *wResource  `xml:"owl:inverseOf"`
	Range     *wResource  `xml:"rdfs:range"`
}

type wClassDecl struct {
	About      string        `xml:"rdf:about,attr"`
	SubClassOf []wResource   `xml:"rdfs:subClassOf"`
	Equivalent []wExprHolder `xml:"owl:equivalentClass"`
}

type wExprHolder struct {
	Resource    string        `xml:"rdf:resource,attr,omitempty"`
	Class       *wClassNode   `xml:"owl:Class"`
	Restriction *wRestriction `xml:"owl:Restriction"`
}

type wClassNode struct {
	IntersectionOf *wCollection `xml:"owl:intersectionOf"`
	UnionOf        *wCollection `xml:"owl:unionOf"`
	ComplementOf   *wExprHolder `xml:"owl:complementOf"`
	OneOf          *wCollection `xml:"owl:oneOf"`
}

type wCollection struct {
	ParseType    string         `xml:"rdf:parseType,attr"`
	Descriptions []wAbout       `xml:"rdf:Description"`
	Classes      []wClassNode   `xml:"owl:Class"`
	Restrictions []wRestriction `xml:"owl:Restriction"`
}

type wRestriction struct {
	OnProperty     wResource `xml:"owl:onProperty"`
	HasValue       *wValue   `xml:"owl:hasValue"`
	SomeValuesFrom *wSome    `xml:"owl:someValuesFrom"`
}

type wValue struct {
	Resource string `xml:"rdf:resource,attr,omitempty"`
	Datatype string `xml:"rdf:datatype,attr,omitempty"`
	Text     string `xml:",chardata"`
}

type wSome struct {
	Resource    string        `xml:"rdf:resource,attr,omitempty"`
	Class       *wClassNode   `xml:"owl:Class"`
	Restriction *wRestriction `xml:"owl:Restriction"`
	Datatype    *wDatatype    `xml:"rdfs:Datatype"`
}

type wDatatype struct {
	OnDatatype       wResource         `xml:"owl:onDatatype"`
	WithRestrictions wWithRestrictions `xml:"owl:withRestrictions"`
}

type wWithRestrictions struct {
	ParseType    string      `xml:"rdf:parseType,attr"`
	Descriptions []wFacetSet `xml:"rdf:Description"`
}

type wFacetSet struct {
	Facets []wFacet
}

type wFacet struct {
	XMLName  xml.Name
	Datatype string `xml:"rdf:datatype,attr"`
	Text     string `xml:",chardata"`
}

type wIndividual struct {
	About string      `xml:"rdf:about,attr"`
	Types []wResource `xml:"rdf:type"`
	Props []wProperty
}

type wProperty struct {
	XMLName  xml.Name
	Resource string `xml:"rdf:resource,attr,omitempty"`
	Datatype string `xml:"rdf:datatype,attr,omitempty"`
	Text     string `xml:",chardata"`
}

// Save writes the ontology as RDF/XML to path, creating the parent directory
// when needed.
func Save(onto *Ontology, path string) error {
	data, err := Encode(onto)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "cannot create output directory %s", dir)
		}
	}
	if err := ioutil.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "cannot write ontology file %s", path)
	}
	return nil
}

// Encode serialises the ontology as an RDF/XML document.
func Encode(onto *Ontology) ([]byte, error) {
	doc := wDocument{
		XmlnsRDF:  RDFNamespace,
		XmlnsRDFS: RDFSNamespace,
		XmlnsOWL:  OWLNamespace,
		XmlnsXSD:  XSDNamespace,
		XmlBase:   onto.Base,
		Ontology:  wAbout{About: onto.Base},
	}

	for _, p := range onto.ObjectProperties() {
		decl := wPropDecl{About: ref(p.ID)}
		if p.Functional {
			decl.Types = append(decl.Types, wResource{Resource: OWLNamespace + "FunctionalProperty"})
		}
		if p.InverseOf != "" {
			decl.InverseOf = &wResource{Resource: ref(p.InverseOf)}
		}
		doc.ObjectProps = append(doc.ObjectProps, decl)
	}

	for _, p := range onto.DataProperties() {
		decl := wPropDecl{About: ref(p.ID)}
		if p.Functional {
			decl.Types = append(decl.Types, wResource{Resource: OWLNamespace + "FunctionalProperty"})
		}
		if p.Range != "" {
			decl.Range = &wResource{Resource: p.Range}
		}
		doc.DataProps = append(doc.DataProps, decl)
	}

	for _, c := range onto.Classes() {
		decl := wClassDecl{About: ref(c.ID)}
		for _, parent := range c.SubClassOf {
			decl.SubClassOf = append(decl.SubClassOf, wResource{Resource: ref(parent)})
		}
		for _, expr := range c.Equivalent {
			decl.Equivalent = append(decl.Equivalent, exprToHolder(expr))
		}
		doc.Classes = append(doc.Classes, decl)
	}

	for _, ind := range onto.Individuals() {
		w := wIndividual{About: ref(ind.ID)}
		for _, t := range ind.Types {
			w.Types = append(w.Types, wResource{Resource: ref(t)})
		}
		for _, prop := range sortedKeys(ind.Objects) {
			for _, target := range ind.Objects[prop] {
				w.Props = append(w.Props, wProperty{
					XMLName:  xml.Name{Local: prop},
					Resource: ref(target),
				})
			}
		}
		for _, prop := range sortedKeysLiterals(ind.Data) {
			for _, lit := range ind.Data[prop] {
				w.Props = append(w.Props, wProperty{
					XMLName:  xml.Name{Local: prop},
					Datatype: lit.Datatype,
					Text:     lit.Value,
				})
			}
		}
		doc.Individuals = append(doc.Individuals, w)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "cannot encode ontology as RDF/XML")
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func ref(localID string) string {
	return "#" + localID
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeysLiterals(m map[string][]Literal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func exprToHolder(expr *Expression) wExprHolder {
	switch expr.Kind {
	case KindNamed:
		return wExprHolder{Resource: ref(expr.Class)}
	case KindObjectHasValue, KindObjectSomeValues, KindDataHasValue, KindDataSomeValues:
		r := exprToRestriction(expr)
		return wExprHolder{Restriction: &r}
	default:
		return wExprHolder{Class: exprToClassNode(expr)}
	}
}

func exprToClassNode(expr *Expression) *wClassNode {
	switch expr.Kind {
	case KindIntersection:
		return &wClassNode{IntersectionOf: exprsToCollection(expr.Operands)}
	case KindUnion:
		return &wClassNode{UnionOf: exprsToCollection(expr.Operands)}
	case KindComplement:
		holder := exprToHolder(expr.Operands[0])
		return &wClassNode{ComplementOf: &holder}
	case KindOneOf:
		coll := &wCollection{ParseType: "Collection"}
		for _, id := range expr.Individuals {
			coll.Descriptions = append(coll.Descriptions, wAbout{About: ref(id)})
		}
		return &wClassNode{OneOf: coll}
	}
	return &wClassNode{}
}

func exprsToCollection(operands []*Expression) *wCollection {
	coll := &wCollection{ParseType: "Collection"}
	for _, op := range operands {
		switch op.Kind {
		case KindNamed:
			coll.Descriptions = append(coll.Descriptions, wAbout{About: ref(op.Class)})
		case KindObjectHasValue, KindObjectSomeValues, KindDataHasValue, KindDataSomeValues:
			coll.Restrictions = append(coll.Restrictions, exprToRestriction(op))
		default:
			coll.Classes = append(coll.Classes, *exprToClassNode(op))
		}
	}
	return coll
}

func exprToRestriction(expr *Expression) wRestriction {
	r := wRestriction{OnProperty: wResource{Resource: ref(expr.Property)}}
	switch expr.Kind {
	case KindObjectHasValue:
		r.HasValue = &wValue{Resource: ref(expr.Value)}
	case KindDataHasValue:
		r.HasValue = &wValue{Datatype: expr.Literal.Datatype, Text: expr.Literal.Value}
	case KindObjectSomeValues:
		filler := expr.Filler
		if filler.Kind == KindNamed {
			r.SomeValuesFrom = &wSome{Resource: ref(filler.Class)}
		} else {
			r.SomeValuesFrom = &wSome{Class: exprToClassNode(filler)}
		}
	case KindDataSomeValues:
		dt := &wDatatype{
			OnDatatype:       wResource{Resource: XSDFloat},
			WithRestrictions: wWithRestrictions{ParseType: "Collection"},
		}
		set := wFacetSet{}
		for _, facet := range expr.Facets {
			set.Facets = append(set.Facets, wFacet{
				XMLName:  xml.Name{Local: "xsd:" + facet.Name},
				Datatype: XSDFloat,
				Text:     FloatLiteral(facet.Value).Value,
			})
		}
		dt.WithRestrictions.Descriptions = append(dt.WithRestrictions.Descriptions, set)
		r.SomeValuesFrom = &wSome{Datatype: dt}
	}
	return r
}
