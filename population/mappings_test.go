package population

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMappings(t *testing.T) {
	assert := assert.New(t)
	m := Defaults()

	assert.Equal("Regular", m.FuelType["Regular Gas and Electricity"])
	assert.Equal("Premium", m.FuelType["Premium Gas or Electricity"])
	assert.Equal("E85", m.FuelType["Gasoline or E85"])
	assert.Equal("FourWheelDrive", m.DriveType["Part-time 4-Wheel Drive"])
	assert.Equal("FrontWheelDrive", m.DriveType["2-Wheel Drive"])
	assert.Equal("SUVSize", m.SizeClass["Standard Sport Utility Vehicle 4WD"])
	assert.Equal("Sedan", m.BodyStyle["Midsize Cars"])
	assert.Equal("Truck", m.BodyStyle["Standard Pickup Trucks/2wd"])
	assert.Equal("Turbocharger", m.BoostSystem["T"])
	assert.Equal("Supercharger", m.BoostSystem["S"])
}

func TestIsElectricFuel(t *testing.T) {
	assert := assert.New(t)
	m := Defaults()

	assert.True(m.IsElectricFuel("Electricity"))
	assert.True(m.IsElectricFuel("Regular Gas and Electricity"))
	assert.False(m.IsElectricFuel("Diesel"))
}

func TestReadConfigMapMergesOverDefaults(t *testing.T) {
	assert := assert.New(t)
	dir, err := ioutil.TempDir("", "mappings")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.json")
	config := `{
		"fuelTypeMap": {"Hydrogen": "Hydrogen", "Diesel": "BioDiesel"},
		"electricFuelTypes": ["Electricity"]
	}`
	require.NoError(t, ioutil.WriteFile(path, []byte(config), 0644))

	m, err := ReadConfigMap(path)
	require.NoError(t, err)

	assert.Equal("Hydrogen", m.FuelType["Hydrogen"])
	assert.Equal("BioDiesel", m.FuelType["Diesel"], "Config entries should override built-in ones")
	assert.Equal("Regular", m.FuelType["Regular"], "Untouched entries should keep their defaults")
	assert.Equal("FrontWheelDrive", m.DriveType["Front-Wheel Drive"], "Absent maps should keep the defaults")
	assert.Equal([]string{"Electricity"}, m.ElectricFuelTypes)
}

func TestReadConfigMapMissingFile(t *testing.T) {
	_, err := ReadConfigMap("no/such/config.json")
	assert.Error(t, err)
}

func TestReadConfigMapBrokenJSON(t *testing.T) {
	dir, err := ioutil.TempDir("", "mappings")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.json")
	require.NoError(t, ioutil.WriteFile(path, []byte("{not json"), 0644))

	_, err = ReadConfigMap(path)
	assert.Error(t, err)
}
