package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOntologyRDF = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#"
         xmlns:xsd="http://www.w3.org/2001/XMLSchema#"
         xml:base="http://example.org/vehicles">
    <owl:Ontology rdf:about="http://example.org/vehicles"/>

    <owl:ObjectProperty rdf:about="#hasFuelType">
        <rdf:type rdf:resource="http://www.w3.org/2002/07/owl#FunctionalProperty"/>
        <owl:inverseOf rdf:resource="#isFuelTypeOf"/>
    </owl:ObjectProperty>
    <owl:ObjectProperty rdf:about="#isFuelTypeOf"/>

    <owl:DatatypeProperty rdf:about="#savings">
        <rdfs:range rdf:resource="http://www.w3.org/2001/XMLSchema#float"/>
    </owl:DatatypeProperty>

    <owl:Class rdf:about="#Vehicle"/>
    <owl:Class rdf:about="#FuelType"/>
    <owl:Class rdf:about="#DieselVehicle">
        <rdfs:subClassOf rdf:resource="#Vehicle"/>
        <owl:equivalentClass>
            <owl:Class>
                <owl:intersectionOf rdf:parseType="Collection">
                    <rdf:Description rdf:about="#Vehicle"/>
                    <owl:Restriction>
                        <owl:onProperty rdf:resource="#hasFuelType"/>
                        <owl:hasValue rdf:resource="#Diesel"/>
                    </owl:Restriction>
                </owl:intersectionOf>
            </owl:Class>
        </owl:equivalentClass>
    </owl:Class>
    <owl:Class rdf:about="#PremiumMarketVehicle">
        <rdfs:subClassOf rdf:resource="#Vehicle"/>
        <owl:equivalentClass>
            <owl:Restriction>
                <owl:onProperty rdf:resource="#savings"/>
                <owl:someValuesFrom>
                    <rdfs:Datatype>
                        <owl:onDatatype rdf:resource="http://www.w3.org/2001/XMLSchema#float"/>
                        <owl:withRestrictions rdf:parseType="Collection">
                            <rdf:Description>
                                <xsd:maxExclusive rdf:datatype="http://www.w3.org/2001/XMLSchema#float">-10000.0</xsd:maxExclusive>
                            </rdf:Description>
                        </owl:withRestrictions>
                    </rdfs:Datatype>
                </owl:someValuesFrom>
            </owl:Restriction>
        </owl:equivalentClass>
    </owl:Class>
    <owl:Class rdf:about="#ConventionalFuel">
        <owl:equivalentClass>
            <owl:Class>
                <owl:oneOf rdf:parseType="Collection">
                    <rdf:Description rdf:about="#Regular"/>
                    <rdf:Description rdf:about="#Diesel"/>
                </owl:oneOf>
            </owl:Class>
        </owl:equivalentClass>
    </owl:Class>
    <owl:Class rdf:about="#ConventionalFuelVehicle">
        <rdfs:subClassOf rdf:resource="#Vehicle"/>
        <owl:equivalentClass>
            <owl:Restriction>
                <owl:onProperty rdf:resource="#hasFuelType"/>
                <owl:someValuesFrom rdf:resource="#ConventionalFuel"/>
            </owl:Restriction>
        </owl:equivalentClass>
    </owl:Class>

    <owl:NamedIndividual rdf:about="#Diesel">
        <rdf:type rdf:resource="http://www.w3.org/2002/07/owl#NamedIndividual"/>
        <rdf:type rdf:resource="#FuelType"/>
    </owl:NamedIndividual>
    <owl:NamedIndividual rdf:about="#VW_Golf_2019_00001">
        <rdf:type rdf:resource="#Vehicle"/>
        <hasFuelType xmlns="http://example.org/vehicles#" rdf:resource="#Diesel"/>
        <make xmlns="http://example.org/vehicles#" rdf:datatype="http://www.w3.org/2001/XMLSchema#string">VW</make>
        <savings xmlns="http://example.org/vehicles#" rdf:datatype="http://www.w3.org/2001/XMLSchema#float">-11000.0</savings>
    </owl:NamedIndividual>
</rdf:RDF>
`

func TestDecodeSchema(t *testing.T) {
	assert := assert.New(t)
	onto, err := Decode([]byte(testOntologyRDF))
	require.NoError(t, err)

	assert.Equal("http://example.org/vehicles", onto.Base)

	diesel, ok := onto.Class("DieselVehicle")
	require.True(t, ok)
	assert.Equal([]string{"Vehicle"}, diesel.SubClassOf)
	require.Len(t, diesel.Equivalent, 1)

	expr := diesel.Equivalent[0]
	assert.Equal(KindIntersection, expr.Kind)
	require.Len(t, expr.Operands, 2)
	assert.Equal(KindNamed, expr.Operands[0].Kind)
	assert.Equal("Vehicle", expr.Operands[0].Class)
	assert.Equal(KindObjectHasValue, expr.Operands[1].Kind)
	assert.Equal("hasFuelType", expr.Operands[1].Property)
	assert.Equal("Diesel", expr.Operands[1].Value)

	fuelType, ok := onto.ObjectProperty("hasFuelType")
	require.True(t, ok)
	assert.True(fuelType.Functional)
	assert.Equal("isFuelTypeOf", fuelType.InverseOf)

	savings, ok := onto.DataProperty("savings")
	require.True(t, ok)
	assert.Equal(XSDFloat, savings.Range)
}

func TestDecodeFacetRestriction(t *testing.T) {
	assert := assert.New(t)
	onto, err := Decode([]byte(testOntologyRDF))
	require.NoError(t, err)

	premium, ok := onto.Class("PremiumMarketVehicle")
	require.True(t, ok)
	require.Len(t, premium.Equivalent, 1)

	expr := premium.Equivalent[0]
	assert.Equal(KindDataSomeValues, expr.Kind)
	assert.Equal("savings", expr.Property)
	require.Len(t, expr.Facets, 1)
	assert.Equal("maxExclusive", expr.Facets[0].Name)
	assert.Equal(-10000.0, expr.Facets[0].Value)
}

func TestDecodeOneOf(t *testing.T) {
	assert := assert.New(t)
	onto, err := Decode([]byte(testOntologyRDF))
	require.NoError(t, err)

	conventional, ok := onto.Class("ConventionalFuel")
	require.True(t, ok)
	require.Len(t, conventional.Equivalent, 1)

	expr := conventional.Equivalent[0]
	assert.Equal(KindOneOf, expr.Kind)
	assert.Equal([]string{"Regular", "Diesel"}, expr.Individuals)
}

func TestDecodeSomeValuesFromNamedClass(t *testing.T) {
	assert := assert.New(t)
	onto, err := Decode([]byte(testOntologyRDF))
	require.NoError(t, err)

	conventional, ok := onto.Class("ConventionalFuelVehicle")
	require.True(t, ok)
	require.Len(t, conventional.Equivalent, 1)

	expr := conventional.Equivalent[0]
	assert.Equal(KindObjectSomeValues, expr.Kind)
	assert.Equal("hasFuelType", expr.Property)
	require.NotNil(t, expr.Filler)
	assert.Equal(KindNamed, expr.Filler.Kind)
	assert.Equal("ConventionalFuel", expr.Filler.Class)
}

func TestDecodeIndividuals(t *testing.T) {
	assert := assert.New(t)
	onto, err := Decode([]byte(testOntologyRDF))
	require.NoError(t, err)

	diesel, ok := onto.Individual("Diesel")
	require.True(t, ok)
	assert.Equal([]string{"FuelType"}, diesel.Types, "The NamedIndividual meta type should be dropped")

	golf, ok := onto.Individual("VW_Golf_2019_00001")
	require.True(t, ok)
	target, ok := golf.Object("hasFuelType")
	assert.True(ok)
	assert.Equal("Diesel", target)

	makeLit, ok := golf.DataValue("make")
	require.True(t, ok)
	assert.Equal("VW", makeLit.Value)
	assert.Equal(XSDString, makeLit.Datatype)

	savings, ok := golf.DataValue("savings")
	require.True(t, ok)
	f, ok := savings.Float()
	assert.True(ok)
	assert.Equal(-11000.0, f)
}

func TestEncodeRoundTrip(t *testing.T) {
	assert := assert.New(t)
	onto, err := Decode([]byte(testOntologyRDF))
	require.NoError(t, err)

	vehicle := onto.NewIndividual("Vehicle", "Audi_A4_2020_00002")
	onto.SetObject(vehicle, "hasFuelType", "Regular")
	onto.SetData(vehicle, "make", StringLiteral("Audi"))
	onto.SetData(vehicle, "savings", FloatLiteral(-2500))

	data, err := Encode(onto)
	require.NoError(t, err)

	reloaded, err := Decode(data)
	require.NoError(t, err)

	assert.Len(reloaded.Individuals(), len(onto.Individuals()))

	diesel, ok := reloaded.Class("DieselVehicle")
	require.True(t, ok)
	require.Len(t, diesel.Equivalent, 1)
	assert.Equal(KindIntersection, diesel.Equivalent[0].Kind)
	assert.Len(diesel.Equivalent[0].Operands, 2)

	premium, ok := reloaded.Class("PremiumMarketVehicle")
	require.True(t, ok)
	require.Len(t, premium.Equivalent, 1)
	require.Len(t, premium.Equivalent[0].Facets, 1)
	assert.Equal(-10000.0, premium.Equivalent[0].Facets[0].Value)

	conventional, ok := reloaded.Class("ConventionalFuelVehicle")
	require.True(t, ok)
	require.Len(t, conventional.Equivalent, 1)
	assert.Equal(KindObjectSomeValues, conventional.Equivalent[0].Kind)
	require.NotNil(t, conventional.Equivalent[0].Filler)
	assert.Equal("ConventionalFuel", conventional.Equivalent[0].Filler.Class)

	audi, ok := reloaded.Individual("Audi_A4_2020_00002")
	require.True(t, ok)
	target, ok := audi.Object("hasFuelType")
	assert.True(ok)
	assert.Equal("Regular", target)
	savings, ok := audi.DataValue("savings")
	require.True(t, ok)
	f, ok := savings.Float()
	assert.True(ok)
	assert.Equal(-2500.0, f)
}
