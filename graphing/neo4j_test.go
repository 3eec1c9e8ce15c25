package graphing

import (
	"testing"

	"github.com/jmcvetta/neoism"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vehicle-kg/vehicles-rw-owl/ontology"
)

func TestBuildNodeQuery(t *testing.T) {
	assert := assert.New(t)
	onto := ontology.New("")
	vehicle := onto.NewIndividual(ontology.ClassVehicle, "Audi_A4_2020_00001")
	vehicle.AddInferred("GasolineVehicle")
	onto.SetData(vehicle, ontology.PropMake, ontology.StringLiteral("Audi"))
	onto.SetData(vehicle, ontology.PropSavings, ontology.FloatLiteral(-2500))
	onto.SetData(vehicle, ontology.PropHasElectricity, ontology.BoolLiteral(false))

	query := buildNodeQuery(vehicle)

	assert.Contains(query.Statement, "MERGE (n:Resource {iri: {iri}})")
	assert.Contains(query.Statement, ":`Vehicle`")
	assert.Contains(query.Statement, ":`GasolineVehicle`")
	assert.Equal("Audi_A4_2020_00001", query.Parameters["iri"])

	props, ok := query.Parameters["allprops"].(neoism.Props)
	require.True(t, ok)
	assert.Equal("Audi_A4_2020_00001", props["iri"])
	assert.Equal("Audi", props[ontology.PropMake])
	assert.Equal(-2500.0, props[ontology.PropSavings])
	assert.Equal(false, props[ontology.PropHasElectricity])
}

func TestBuildRelationshipQueries(t *testing.T) {
	assert := assert.New(t)
	onto := ontology.New("")
	vehicle := onto.NewIndividual(ontology.ClassVehicle, "Audi_A4_2020_00001")
	onto.SetObject(vehicle, ontology.PropHasFuelType, "Premium")

	queries := buildRelationshipQueries(vehicle)
	require.Len(t, queries, 1)

	assert.Contains(queries[0].Statement, "MERGE (a)-[:HAS_FUEL_TYPE]->(b)")
	assert.Equal("Audi_A4_2020_00001", queries[0].Parameters["from"])
	assert.Equal("Premium", queries[0].Parameters["to"])
}

func TestLiteralValue(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(true, literalValue(ontology.BoolLiteral(true)))
	assert.Equal(4.0, literalValue(ontology.IntLiteral(4)))
	assert.Equal(-2500.5, literalValue(ontology.FloatLiteral(-2500.5)))
	assert.Equal("Audi", literalValue(ontology.StringLiteral("Audi")))
}

func TestRelationshipName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("HAS_FUEL_TYPE", relationshipName("hasFuelType"))
	assert.Equal("HAS_MARKET_SEGMENT", relationshipName("hasMarketSegment"))
	assert.Equal("MANUFACTURES", relationshipName("manufactures"))
}
