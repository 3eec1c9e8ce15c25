package graphing

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vehicle-kg/vehicles-rw-owl/ontology"
)

func taxonomyOntology() *ontology.Ontology {
	onto := ontology.New("")
	onto.AddClass(&ontology.Class{ID: ontology.ClassVehicle})
	onto.AddClass(&ontology.Class{ID: "PropulsionVehicle", SubClassOf: []string{ontology.ClassVehicle}})
	onto.AddClass(&ontology.Class{ID: "DieselVehicle", SubClassOf: []string{"PropulsionVehicle"}})

	vehicle := onto.NewIndividual(ontology.ClassVehicle, "VW_Golf_2019_00001")
	vehicle.AddInferred("PropulsionVehicle")
	vehicle.AddInferred("DieselVehicle")
	return onto
}

func TestCreateDOT(t *testing.T) {
	assert := assert.New(t)
	dot, err := createDOT(taxonomyOntology())
	require.NoError(t, err)

	assert.Contains(dot, "digraph taxonomy")
	assert.Contains(dot, "\"Vehicle\\n1 instances\"")
	assert.Contains(dot, "\"DieselVehicle\\n1 instances\"")
	assert.Contains(dot, "DieselVehicle->PropulsionVehicle")
	assert.Contains(dot, "PropulsionVehicle->Vehicle")
	assert.Contains(dot, "lightyellow", "Populated classes should be filled")
}

func TestCreateDOTSkipsUndeclaredParents(t *testing.T) {
	onto := ontology.New("")
	onto.AddClass(&ontology.Class{ID: "DieselVehicle", SubClassOf: []string{"Missing"}})

	dot, err := createDOT(onto)
	require.NoError(t, err)
	assert.NotContains(t, dot, "Missing")
}

func TestDiagramWritesFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "graphing")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "taxonomy.dot")
	require.NoError(t, Diagram(taxonomyOntology(), path))

	content, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "digraph taxonomy")
}
