package graphing

import (
	"fmt"
	"strings"
	"unicode"

	logger "github.com/Financial-Times/go-logger/v2"
	"github.com/Financial-Times/neo-utils-go/neoutils"
	"github.com/jmcvetta/neoism"
	"github.com/pkg/errors"

	"github.com/vehicle-kg/vehicles-rw-owl/ontology"
)

// GraphService exports a populated ontology into a graph database.
type GraphService interface {
	Initialise() error
	WriteOntology(onto *ontology.Ontology) error
}

// Neo4J writes individuals as nodes and object property triples as
// relationships, using Cypher MERGE batches.
type Neo4J struct {
	conn neoutils.NeoConnection
	log  *logger.UPPLogger
}

// NewNeo4JService connects to neo4j at neoURL.
func NewNeo4JService(neoURL string, batchSize int, log *logger.UPPLogger) (GraphService, error) {
	conf := neoutils.DefaultConnectionConfig()
	conf.BatchSize = batchSize
	db, err := neoutils.Connect(neoURL, conf)
	if err != nil {
		return nil, errors.Wrap(err, "error connecting to Neo4j")
	}
	return &Neo4J{conn: db, log: log}, nil
}

// Initialise ensures the Resource iri constraint exists.
func (s *Neo4J) Initialise() error {
	return s.conn.EnsureConstraints(map[string]string{"Resource": "iri"})
}

// WriteOntology exports every individual and object property triple. Nodes
// are created before relationships so MERGE never races a missing endpoint.
func (s *Neo4J) WriteOntology(onto *ontology.Ontology) error {
	var queries []*neoism.CypherQuery
	for _, ind := range onto.Individuals() {
		queries = append(queries, buildNodeQuery(ind))
	}
	for _, ind := range onto.Individuals() {
		queries = append(queries, buildRelationshipQueries(ind)...)
	}

	s.log.Infof("Exporting %d individuals to Neo4j in %d statements", len(onto.Individuals()), len(queries))
	return s.conn.CypherBatch(queries)
}

func buildNodeQuery(ind *ontology.Individual) *neoism.CypherQuery {
	props := neoism.Props{"iri": ind.ID}
	for prop, literals := range ind.Data {
		if len(literals) == 0 {
			continue
		}
		props[prop] = literalValue(literals[0])
	}

	labels := ""
	for _, t := range append(append([]string{}, ind.Types...), ind.Inferred...) {
		labels += fmt.Sprintf(":`%s`", t)
	}

	return &neoism.CypherQuery{
		Statement: fmt.Sprintf(`MERGE (n:Resource {iri: {iri}})
				SET n += {allprops}
				SET n%s`, labels),
		Parameters: neoism.Props{
			"iri":      ind.ID,
			"allprops": props,
		},
	}
}

func buildRelationshipQueries(ind *ontology.Individual) []*neoism.CypherQuery {
	var queries []*neoism.CypherQuery
	for prop, targets := range ind.Objects {
		for _, target := range targets {
			queries = append(queries, &neoism.CypherQuery{
				Statement: fmt.Sprintf(`MATCH (a:Resource {iri: {from}})
						MATCH (b:Resource {iri: {to}})
						MERGE (a)-[:%s]->(b)`, relationshipName(prop)),
				Parameters: neoism.Props{
					"from": ind.ID,
					"to":   target,
				},
			})
		}
	}
	return queries
}

// literalValue converts a typed literal to the natural neo4j property type.
func literalValue(lit ontology.Literal) interface{} {
	if b, ok := lit.Bool(); ok {
		return b
	}
	if lit.Datatype != ontology.XSDString {
		if f, ok := lit.Float(); ok {
			return f
		}
	}
	return lit.Value
}

// relationshipName maps a camelCase property to the Cypher relationship
// convention, e.g. hasFuelType -> HAS_FUEL_TYPE.
func relationshipName(prop string) string {
	var b strings.Builder
	for i, r := range prop {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
