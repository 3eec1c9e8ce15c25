package population

import (
	"strconv"
	"strings"

	logger "github.com/Financial-Times/go-logger/v2"
	metrics "github.com/rcrowley/go-metrics"

	"github.com/pkg/errors"
	"github.com/vehicle-kg/vehicles-rw-owl/dataset"
	"github.com/vehicle-kg/vehicles-rw-owl/ontology"
)

// Processing constants.
const (
	DefaultMaxVehicles = 1000
	BatchSize          = 100
)

// Metric names maintained by the populator.
const (
	MetricProcessed = "vehicles.processed"
	MetricSucceeded = "vehicles.succeeded"
	MetricFailed    = "vehicles.failed"
)

// Service populates the ontology from a dataset frame.
type Service interface {
	EnsureClassifications(frame *dataset.Frame)
	CreateManufacturers(frame *dataset.Frame) int
	CreateModelYears(frame *dataset.Frame) int
	PopulateVehicles(frame *dataset.Frame) (processed int, succeeded int)
}

type ontologyService struct {
	onto        *ontology.Ontology
	mappings    *Mappings
	maxVehicles int
	registry    metrics.Registry
	log         *logger.UPPLogger

	manufacturers map[string]string // raw Make -> individual name
	modelYears    map[string]string // raw Year -> individual name
}

// NewOntologyService builds the populator. maxVehicles <= 0 falls back to the
// default cap of 1000.
func NewOntologyService(onto *ontology.Ontology, mappings *Mappings, maxVehicles int, registry metrics.Registry, log *logger.UPPLogger) Service {
	if maxVehicles <= 0 {
		maxVehicles = DefaultMaxVehicles
	}
	if registry == nil {
		registry = metrics.NewRegistry()
	}
	return &ontologyService{
		onto:          onto,
		mappings:      mappings,
		maxVehicles:   maxVehicles,
		registry:      registry,
		log:           log,
		manufacturers: make(map[string]string),
		modelYears:    make(map[string]string),
	}
}

// EnsureClassifications extends the lookup tables with classification
// individuals for dataset values the built-in maps do not cover, and defaults
// the body style of unmapped size classes to Sedan.
func (s *ontologyService) EnsureClassifications(frame *dataset.Frame) {
	if frame.HasColumn(ColumnFuelType) {
		for _, value := range frame.UniqueValues(ColumnFuelType) {
			if _, ok := s.mappings.FuelType[value]; ok {
				continue
			}
			id := ClassificationID(value, false)
			s.onto.NewIndividual(ontology.ClassFuelType, id)
			s.mappings.FuelType[value] = id
			s.log.WithFields(map[string]interface{}{"value": value, "individual": id}).Info("Added new FuelType")
		}
	}

	if frame.HasColumn(ColumnVehicleSizeClass) {
		for _, value := range frame.UniqueValues(ColumnVehicleSizeClass) {
			if _, ok := s.mappings.SizeClass[value]; !ok {
				id := ClassificationID(value, true)
				s.onto.NewIndividual(ontology.ClassVehicleSizeClass, id)
				s.mappings.SizeClass[value] = id
				s.log.WithFields(map[string]interface{}{"value": value, "individual": id}).Info("Added new VehicleSizeClass")
			}
			if _, ok := s.mappings.BodyStyle[value]; !ok {
				s.mappings.BodyStyle[value] = ontology.IndividualSedan
				s.log.WithFields(map[string]interface{}{"value": value}).Info("Added default body style mapping to Sedan")
			}
		}
	}

	if frame.HasColumn(ColumnDrive) {
		for _, value := range frame.UniqueValues(ColumnDrive) {
			if _, ok := s.mappings.DriveType[value]; ok {
				continue
			}
			id := ClassificationID(value, false)
			s.onto.NewIndividual(ontology.ClassDriveType, id)
			s.mappings.DriveType[value] = id
			s.log.WithFields(map[string]interface{}{"value": value, "individual": id}).Info("Added new DriveType")
		}
	}
}

// CreateManufacturers creates one Manufacturer individual per distinct Make.
func (s *ontologyService) CreateManufacturers(frame *dataset.Frame) int {
	if !frame.HasColumn(ColumnMake) {
		return 0
	}
	for _, rawMake := range frame.UniqueValues(ColumnMake) {
		id := ValidID(rawMake)
		s.onto.NewIndividual(ontology.ClassManufacturer, id)
		s.manufacturers[rawMake] = id
		if len(s.manufacturers)%20 == 0 {
			s.log.Infof("Created %d manufacturers...", len(s.manufacturers))
		}
	}
	s.log.Infof("Created all %d manufacturers", len(s.manufacturers))
	return len(s.manufacturers)
}

// CreateModelYears creates one ModelYear individual per distinct Year.
func (s *ontologyService) CreateModelYears(frame *dataset.Frame) int {
	if !frame.HasColumn(ColumnYear) {
		return 0
	}
	for _, year := range frame.UniqueValues(ColumnYear) {
		value, ok := SafeNumeric(year)
		if !ok {
			s.log.WithFields(map[string]interface{}{"value": year}).Warn("Could not convert year value")
			continue
		}
		id := "Year_" + strconv.Itoa(int(value))
		s.onto.NewIndividual(ontology.ClassModelYear, id)
		s.modelYears[year] = id
	}
	s.log.Infof("Created %d model years", len(s.modelYears))
	return len(s.modelYears)
}

// PopulateVehicles creates a Vehicle individual for each row, up to the
// configured cap. Rows are taken in file order so reruns are reproducible.
// Row failures are logged and skipped.
func (s *ontologyService) PopulateVehicles(frame *dataset.Frame) (int, int) {
	sampleSize := len(frame.Rows)
	if sampleSize > s.maxVehicles {
		sampleSize = s.maxVehicles
		s.log.Infof("Processing %d sample vehicles out of %d total...", sampleSize, len(frame.Rows))
	} else {
		s.log.Infof("Processing all %d vehicles...", sampleSize)
	}

	processedCounter := metrics.GetOrRegisterCounter(MetricProcessed, s.registry)
	succeededCounter := metrics.GetOrRegisterCounter(MetricSucceeded, s.registry)
	failedCounter := metrics.GetOrRegisterCounter(MetricFailed, s.registry)

	processed, succeeded := 0, 0
	totalBatches := (sampleSize + BatchSize - 1) / BatchSize
	for i := 0; i < sampleSize; i++ {
		if processed%BatchSize == 0 {
			s.log.Infof("Processing vehicle batch %d/%d...", processed/BatchSize+1, totalBatches)
		}
		processed++
		processedCounter.Inc(1)

		if err := s.populateVehicle(frame.Rows[i], i); err != nil {
			failedCounter.Inc(1)
			s.log.WithError(err).Errorf("ERROR processing vehicle row %d", i)
			continue
		}
		succeeded++
		succeededCounter.Inc(1)
	}

	s.log.Infof("Vehicle population completed. Successfully processed %d out of %d vehicles.", succeeded, processed)
	return processed, succeeded
}

func (s *ontologyService) populateVehicle(row dataset.Row, index int) error {
	rowID := index
	if raw, ok := row.Value(ColumnID); ok {
		if value, ok := SafeNumeric(raw); ok {
			rowID = int(value)
		}
	}

	vehicleMake := "Unknown"
	if v, ok := row.Value(ColumnMake); ok {
		vehicleMake = v
	}
	model := "Unknown"
	if v, ok := row.Value(ColumnModel); ok {
		model = v
	}
	year := ""
	if raw, ok := row.Value(ColumnYear); ok {
		if value, ok := SafeNumeric(raw); ok {
			year = strconv.Itoa(int(value))
		}
	}

	vehicleID := VehicleID(vehicleMake, model, year, rowID)
	if existing, ok := s.onto.Individual(vehicleID); ok && !existing.HasType(ontology.ClassVehicle) {
		return errors.Errorf("individual %s already exists with types %v", vehicleID, existing.Types)
	}
	vehicle := s.onto.NewIndividual(ontology.ClassVehicle, vehicleID)

	s.setString(vehicle, row, ColumnMake, ontology.PropMake)
	s.setString(vehicle, row, ColumnModel, ontology.PropModel)
	s.setInt(vehicle, row, ColumnYear, ontology.PropYear)
	s.setFloat(vehicle, row, ColumnCylinders, ontology.PropCylinders)
	s.setFloat(vehicle, row, ColumnSavings, ontology.PropSavings)
	s.setString(vehicle, row, ColumnTransmission, ontology.PropTransmission)
	s.setFloat(vehicle, row, ColumnCo2FuelType1, ontology.PropCo2Emissions)
	s.setString(vehicle, row, ColumnEngineDescriptor, ontology.PropEngineDescriptor)
	s.setFloat(vehicle, row, ColumnEpaScore, ontology.PropEpaFuelEconomyScore)
	s.setFloat(vehicle, row, ColumnGhgScore, ontology.PropGhgScore)
	s.setFloat(vehicle, row, ColumnAnnualPetroleum, ontology.PropAnnualPetroleumConsumption)
	s.setFloat(vehicle, row, ColumnCityGasoline, ontology.PropCityGasolineConsumption)
	s.setFloat(vehicle, row, ColumnCityElectricity, ontology.PropCityElectricityConsumption)
	s.setString(vehicle, row, ColumnMpgData, ontology.PropMpgData)

	// The electricity flag feeds the electrified/hybrid class axioms.
	hasElectricity := false
	fuelType, fuelPresent := row.Value(ColumnFuelType)
	if fuelPresent && (s.mappings.IsElectricFuel(fuelType) || containsElectricity(fuelType)) {
		hasElectricity = true
	}
	if motor, ok := row.Value(ColumnElectricMotor); ok {
		hasElectricity = true
		s.onto.SetData(vehicle, ontology.PropElectricMotorSpec, ontology.StringLiteral(motor))
	}
	s.onto.SetData(vehicle, ontology.PropHasElectricity, ontology.BoolLiteral(hasElectricity))

	if fuelPresent {
		if target, ok := s.mappings.FuelType[fuelType]; ok {
			s.linkClassification(vehicle, ontology.PropHasFuelType, target, ontology.ClassFuelType)
		}
	}
	if drive, ok := row.Value(ColumnDrive); ok {
		if target, ok := s.mappings.DriveType[drive]; ok {
			s.linkClassification(vehicle, ontology.PropHasDriveType, target, ontology.ClassDriveType)
		}
	}

	if sizeClass, ok := row.Value(ColumnVehicleSizeClass); ok {
		if target, ok := s.mappings.SizeClass[sizeClass]; ok {
			s.linkClassification(vehicle, ontology.PropHasSizeClass, target, ontology.ClassVehicleSizeClass)
		}
		bodyStyle := ontology.IndividualSedan
		if target, ok := s.mappings.BodyStyle[sizeClass]; ok {
			bodyStyle = target
		}
		s.linkClassification(vehicle, ontology.PropHasBodyStyle, bodyStyle, ontology.ClassBodyStyle)
	}

	if raw, ok := row.Value(ColumnMake); ok {
		if target, ok := s.manufacturers[raw]; ok {
			s.onto.SetObject(vehicle, ontology.PropHasManufacturer, target)
		}
	}
	if raw, ok := row.Value(ColumnYear); ok {
		if target, ok := s.modelYears[raw]; ok {
			s.onto.SetObject(vehicle, ontology.PropHasModelYear, target)
		}
	}

	boost := ontology.IndividualNaturallyAspirated
	if v, ok := row.Value(ColumnTCharger); ok && v == "T" {
		boost = ontology.IndividualTurbocharger
	} else if v, ok := row.Value(ColumnSCharger); ok && v == "S" {
		boost = ontology.IndividualSupercharger
	}
	s.linkClassification(vehicle, ontology.PropHasBoostSystem, boost, ontology.ClassBoostSystem)

	savings, savingsPresent := 0.0, false
	if raw, ok := row.Value(ColumnSavings); ok {
		savings, savingsPresent = SafeNumeric(raw)
	}
	s.linkClassification(vehicle, ontology.PropHasMarketSegment, MarketSegment(savings, savingsPresent), ontology.ClassMarketSegment)

	return nil
}

func containsElectricity(fuelType string) bool {
	return strings.Contains(fuelType, "Electricity")
}

// linkClassification sets a functional object property, creating the target
// classification individual if the base ontology does not declare it.
func (s *ontologyService) linkClassification(vehicle *ontology.Individual, prop, target, targetClass string) {
	if _, ok := s.onto.Individual(target); !ok {
		s.onto.NewIndividual(targetClass, target)
		s.log.WithFields(map[string]interface{}{"individual": target, "class": targetClass}).
			Debug("Classification individual missing from base ontology, created")
	}
	s.onto.SetObject(vehicle, prop, target)
}

func (s *ontologyService) setString(ind *ontology.Individual, row dataset.Row, column, prop string) {
	if v, ok := row.Value(column); ok {
		s.onto.SetData(ind, prop, ontology.StringLiteral(v))
	}
}

func (s *ontologyService) setInt(ind *ontology.Individual, row dataset.Row, column, prop string) {
	raw, ok := row.Value(column)
	if !ok {
		return
	}
	value, ok := SafeNumeric(raw)
	if !ok {
		s.log.Warnf("WARNING: Could not convert value '%s' to a numeric type", raw)
		return
	}
	s.onto.SetData(ind, prop, ontology.IntLiteral(int(value)))
}

func (s *ontologyService) setFloat(ind *ontology.Individual, row dataset.Row, column, prop string) {
	raw, ok := row.Value(column)
	if !ok {
		return
	}
	value, ok := SafeNumeric(raw)
	if !ok {
		s.log.Warnf("WARNING: Could not convert value '%s' to a numeric type", raw)
		return
	}
	s.onto.SetData(ind, prop, ontology.FloatLiteral(value))
}
