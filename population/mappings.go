package population

import (
	"encoding/json"
	"io/ioutil"

	"github.com/pkg/errors"
)

// Dataset column labels the populator reads.
const (
	ColumnID               = "ID"
	ColumnMake             = "Make"
	ColumnModel            = "Model"
	ColumnYear             = "Year"
	ColumnCylinders        = "Cylinders"
	ColumnSavings          = "You Save/Spend"
	ColumnTransmission     = "Transmission"
	ColumnCo2FuelType1     = "Co2 Fuel Type1"
	ColumnEngineDescriptor = "Engine descriptor"
	ColumnEpaScore         = "EPA Fuel Economy Score"
	ColumnGhgScore         = "GHG Score"
	ColumnAnnualPetroleum  = "Annual Petroleum Consumption For Fuel Type1"
	ColumnCityGasoline     = "City gasoline consumption"
	ColumnCityElectricity  = "City electricity consumption"
	ColumnMpgData          = "MPG Data"
	ColumnFuelType         = "Fuel Type"
	ColumnDrive            = "Drive"
	ColumnVehicleSizeClass = "Vehicle Size Class"
	ColumnTCharger         = "T Charger"
	ColumnSCharger         = "S Charger"
	ColumnElectricMotor    = "Electric motor"
)

// Mappings carries the dataset-value to classification-individual lookup
// tables. Keys are raw dataset values, values are individual local names in
// the ontology.
type Mappings struct {
	FuelType    map[string]string
	DriveType   map[string]string
	SizeClass   map[string]string
	BodyStyle   map[string]string
	BoostSystem map[string]string

	// ElectricFuelTypes are the fuel type values that imply hasElectricity.
	ElectricFuelTypes []string
}

// Defaults returns the built-in classification tables.
func Defaults() *Mappings {
	return &Mappings{
		FuelType: map[string]string{
			"CNG":             "CNG",
			"Diesel":          "Diesel",
			"Electricity":     "Electricity",
			"Gasoline or E85": "E85",
			"Premium":         "Premium",
			"Regular":         "Regular",
			"Midgrade":        "Midgrade",
			// The combined gas/electric values map onto their gasoline
			// grade; hasElectricity carries the electric half.
			"Premium Gas or Electricity":  "Premium",
			"Premium and Electricity":     "Premium",
			"Regular Gas and Electricity": "Regular",
			"Regular Gas or Electricity":  "Regular",
		},
		DriveType: map[string]string{
			"Front-Wheel Drive":          "FrontWheelDrive",
			"Rear-Wheel Drive":           "RearWheelDrive",
			"All-Wheel Drive":            "AllWheelDrive",
			"4-Wheel Drive":              "FourWheelDrive",
			"4-Wheel or All-Wheel Drive": "FourWheelDrive",
			"Part-time 4-Wheel Drive":    "FourWheelDrive",
			"2-Wheel Drive":              "FrontWheelDrive",
		},
		SizeClass: map[string]string{
			"Compact Cars":                       "CompactSize",
			"Subcompact Cars":                    "SubcompactSize",
			"Midsize Cars":                       "MidsizeSize",
			"Large Cars":                         "LargeSize",
			"Minicompact Cars":                   "MinicompactSize",
			"Small Pickup Trucks":                "PickupSize",
			"Sport Utility Vehicle - 4WD":        "SUVSize",
			"Sport Utility Vehicle - 2WD":        "SUVSize",
			"Small Sport Utility Vehicle 4WD":    "SUVSize",
			"Small Sport Utility Vehicle 2WD":    "SUVSize",
			"Standard Sport Utility Vehicle 4WD": "SUVSize",
			"Standard Sport Utility Vehicle 2WD": "SUVSize",
			"Vans, Passenger Type":               "VanSize",
		},
		BodyStyle: map[string]string{
			"Compact Cars":                       "Sedan",
			"Subcompact Cars":                    "Sedan",
			"Midsize Cars":                       "Sedan",
			"Large Cars":                         "Sedan",
			"Minicompact Cars":                   "Coupe",
			"Two Seaters":                        "Coupe",
			"Small Station Wagons":               "Wagon",
			"Midsize Station Wagons":             "Wagon",
			"Sport Utility Vehicle - 4WD":        "SUV",
			"Sport Utility Vehicle - 2WD":        "SUV",
			"Small Sport Utility Vehicle 4WD":    "SUV",
			"Small Sport Utility Vehicle 2WD":    "SUV",
			"Standard Sport Utility Vehicle 4WD": "SUV",
			"Standard Sport Utility Vehicle 2WD": "SUV",
			"Small Pickup Trucks":                "Truck",
			"Small Pickup Trucks 2WD":            "Truck",
			"Small Pickup Trucks 4WD":            "Truck",
			"Standard Pickup Trucks":             "Truck",
			"Standard Pickup Trucks 2WD":         "Truck",
			"Standard Pickup Trucks 4WD":         "Truck",
			"Standard Pickup Trucks/2wd":         "Truck",
			"Vans":                               "Van",
			"Vans Passenger":                     "Van",
			"Vans, Cargo Type":                   "Van",
			"Vans, Passenger Type":               "Van",
			"Minivan - 2WD":                      "Van",
			"Minivan - 4WD":                      "Van",
		},
		BoostSystem: map[string]string{
			"T": "Turbocharger",
			"S": "Supercharger",
		},
		ElectricFuelTypes: []string{
			"Electricity",
			"Premium Gas or Electricity",
			"Premium and Electricity",
			"Regular Gas and Electricity",
			"Regular Gas or Electricity",
		},
	}
}

// IsElectricFuel reports whether the raw fuel type value implies an electric
// drivetrain component.
func (m *Mappings) IsElectricFuel(fuelType string) bool {
	for _, v := range m.ElectricFuelTypes {
		if v == fuelType {
			return true
		}
	}
	return false
}

// ReadConfigMap loads classification overrides from a JSON config file and
// merges them over the defaults. Absent maps keep their built-in entries.
func ReadConfigMap(jsonPath string) (*Mappings, error) {
	file, err := ioutil.ReadFile(jsonPath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading configuration file")
	}

	type config struct {
		FuelTypeMap       map[string]string `json:"fuelTypeMap"`
		DriveTypeMap      map[string]string `json:"driveTypeMap"`
		SizeClassMap      map[string]string `json:"sizeClassMap"`
		BodyStyleMap      map[string]string `json:"bodyStyleMap"`
		BoostSystemMap    map[string]string `json:"boostSystemMap"`
		ElectricFuelTypes []string          `json:"electricFuelTypes"`
	}
	var c config
	if err = json.Unmarshal(file, &c); err != nil {
		return nil, errors.Wrap(err, "error unmarshalling config file")
	}

	m := Defaults()
	merge(m.FuelType, c.FuelTypeMap)
	merge(m.DriveType, c.DriveTypeMap)
	merge(m.SizeClass, c.SizeClassMap)
	merge(m.BodyStyle, c.BodyStyleMap)
	merge(m.BoostSystem, c.BoostSystemMap)
	if len(c.ElectricFuelTypes) > 0 {
		m.ElectricFuelTypes = c.ElectricFuelTypes
	}
	return m, nil
}

func merge(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
