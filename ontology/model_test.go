package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIndividualIsCreateOrGet(t *testing.T) {
	assert := assert.New(t)
	onto := New("")

	first := onto.NewIndividual(ClassManufacturer, "Audi")
	second := onto.NewIndividual(ClassManufacturer, "Audi")

	assert.True(first == second, "Creating the same name twice should return the existing individual")
	assert.Equal([]string{ClassManufacturer}, first.Types)
	assert.Len(onto.Individuals(), 1)
}

func TestNewIndividualAddsSecondType(t *testing.T) {
	assert := assert.New(t)
	onto := New("")

	onto.NewIndividual(ClassFuelType, "Diesel")
	ind := onto.NewIndividual("Thing", "Diesel")

	assert.ElementsMatch([]string{ClassFuelType, "Thing"}, ind.Types)
}

func TestSetObjectReplacesFunctionalValue(t *testing.T) {
	assert := assert.New(t)
	onto := New("")

	vehicle := onto.NewIndividual(ClassVehicle, "Audi_A4_2020_00001")
	onto.SetObject(vehicle, PropHasFuelType, "Regular")
	onto.SetObject(vehicle, PropHasFuelType, "Premium")

	value, ok := vehicle.Object(PropHasFuelType)
	assert.True(ok)
	assert.Equal("Premium", value)
	assert.Len(vehicle.Objects[PropHasFuelType], 1, "Functional property should hold a single value")
}

func TestAddObjectSkipsDuplicates(t *testing.T) {
	assert := assert.New(t)
	onto := New("")

	manufacturer := onto.NewIndividual(ClassManufacturer, "Audi")
	onto.AddObject(manufacturer, "manufactures", "Audi_A4_2020_00001")
	onto.AddObject(manufacturer, "manufactures", "Audi_A4_2020_00001")

	assert.Len(manufacturer.Objects["manufactures"], 1)
}

func TestInstancesOfIncludesInferredTypes(t *testing.T) {
	assert := assert.New(t)
	onto := New("")
	onto.AddClass(&Class{ID: "DieselVehicle"})

	vehicle := onto.NewIndividual(ClassVehicle, "VW_Golf_2019_00002")
	assert.Empty(onto.InstancesOf("DieselVehicle"))

	vehicle.AddInferred("DieselVehicle")
	instances := onto.InstancesOf("DieselVehicle")
	assert.Len(instances, 1)
	assert.Equal("VW_Golf_2019_00002", instances[0].ID)
}

func TestSuperclassesAreTransitive(t *testing.T) {
	assert := assert.New(t)
	onto := New("")
	onto.AddClass(&Class{ID: "CompactDiesel", SubClassOf: []string{"DieselVehicle"}})
	onto.AddClass(&Class{ID: "DieselVehicle", SubClassOf: []string{"PropulsionVehicle"}})
	onto.AddClass(&Class{ID: "PropulsionVehicle", SubClassOf: []string{ClassVehicle}})
	onto.AddClass(&Class{ID: ClassVehicle})

	ancestors := onto.Superclasses("CompactDiesel")
	assert.ElementsMatch([]string{"DieselVehicle", "PropulsionVehicle", ClassVehicle}, ancestors)
}

func TestLiteralEqualComparesNumerically(t *testing.T) {
	assert := assert.New(t)

	assert.True(FloatLiteral(4).Equal(IntLiteral(4)))
	assert.True(Literal{Value: "4.0", Datatype: XSDFloat}.Equal(IntLiteral(4)))
	assert.False(FloatLiteral(4).Equal(IntLiteral(5)))
	assert.True(BoolLiteral(true).Equal(Literal{Value: "true", Datatype: XSDBoolean}))
	assert.False(BoolLiteral(true).Equal(StringLiteral("true")))
}

func TestLiteralBool(t *testing.T) {
	assert := assert.New(t)

	b, ok := BoolLiteral(true).Bool()
	assert.True(ok)
	assert.True(b)

	_, ok = StringLiteral("true").Bool()
	assert.False(ok)
}
