package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/Financial-Times/go-logger/v2"
	"github.com/pkg/errors"

	"github.com/vehicle-kg/vehicles-rw-owl/ontology"
)

// VehicleCategories are the taxonomy classes whose instance counts the run
// reports after classification.
var VehicleCategories = []string{
	// Top level.
	"PropulsionVehicle",
	"BodyStyleVehicle",
	"DriveTypeVehicle",

	// Propulsion.
	"ConventionalFuelVehicle",
	"AlternativeFuelVehicle",
	"ElectrifiedVehicle",
	"DieselVehicle",
	"GasolineVehicle",
	"RegularGasolineVehicle",
	"PremiumGasolineVehicle",
	"HybridElectricVehicle",
	"PureElectricVehicle",

	// Body style.
	"PassengerVehicle",
	"UtilityVehicle",
	"SedanVehicle",
	"CoupeVehicle",
	"WagonVehicle",
	"HatchbackVehicle",
	"SUVVehicle",
	"TruckVehicle",
	"VanVehicle",

	// Drive type.
	"FrontWheelDriveVehicle",
	"RearWheelDriveVehicle",
	"AllWheelDriveVehicle",
	"FourWheelDriveVehicle",

	// Size-specific propulsion.
	"CompactDiesel",
	"MidsizeDiesel",
	"LargeDiesel",
	"CompactRegular",
	"MidsizeRegular",
	"LargeRegular",
	"CompactHybrid",
	"MidsizeHybrid",
	"LargeHybrid",
	"CompactElectric",
	"MidsizeElectric",
	"LargeElectric",
}

// CategoryCount is one taxonomy class with its instance count.
type CategoryCount struct {
	Category string
	Count    int
}

// Statistics summarises the ontology after classification.
type Statistics struct {
	TotalIndividuals int
	VehicleInstances int
	Categories       []CategoryCount
}

// Collect gathers the post-reasoning statistics.
func Collect(onto *ontology.Ontology) Statistics {
	stats := Statistics{
		TotalIndividuals: len(onto.Individuals()),
		VehicleInstances: len(onto.InstancesOf(ontology.ClassVehicle)),
	}
	for _, category := range VehicleCategories {
		stats.Categories = append(stats.Categories, CategoryCount{
			Category: category,
			Count:    len(onto.InstancesOf(category)),
		})
	}
	return stats
}

// Log prints the statistics, skipping empty categories.
func (s Statistics) Log(log *logger.UPPLogger) {
	log.Info("Ontology population statistics (after reasoning):")
	log.Infof("Total number of individuals: %d", s.TotalIndividuals)
	log.Infof("Vehicle instances: %d", s.VehicleInstances)
	for _, c := range s.Categories {
		if c.Count > 0 {
			log.Infof("  %s: %d instances", c.Category, c.Count)
		}
	}
}

// Write saves the full summary, zero counts included, to
// classification_summary.txt in the artifacts directory.
func (s Statistics) Write(artifactsDir string) error {
	path := filepath.Join(artifactsDir, "classification_summary.txt")
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create summary file %s", path)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "Total individuals: %d\n", s.TotalIndividuals)
	fmt.Fprintf(w, "Vehicle instances: %d\n", s.VehicleInstances)
	fmt.Fprintln(w)
	for _, c := range s.Categories {
		fmt.Fprintf(w, "%s: %d\n", c.Category, c.Count)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "cannot write summary file %s", path)
	}
	return nil
}
