package ontology

// DefaultBase is the base IRI of the vehicle ontology document. Terms inside
// the document reference each other through fragment identifiers, so the model
// keys classes, properties and individuals by their local name.
const DefaultBase = "http://www.semanticweb.org/vehicle-ontology"

// Core RDF/OWL IRIs used by the codec.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
)

// XSD datatype IRIs for literals.
const (
	XSDString  = XSDNamespace + "string"
	XSDInteger = XSDNamespace + "integer"
	XSDFloat   = XSDNamespace + "float"
	XSDDouble  = XSDNamespace + "double"
	XSDBoolean = XSDNamespace + "boolean"
)

// Class local names populated by this tool.
const (
	// ClassVehicle is the only class vehicles are asserted into; the
	// taxonomic subclasses are inferred from the class axioms.
	ClassVehicle = "Vehicle"

	ClassManufacturer     = "Manufacturer"
	ClassModelYear        = "ModelYear"
	ClassFuelType         = "FuelType"
	ClassDriveType        = "DriveType"
	ClassVehicleSizeClass = "VehicleSizeClass"
	ClassBodyStyle        = "BodyStyle"
	ClassBoostSystem      = "BoostSystem"
	ClassMarketSegment    = "MarketSegment"
)

// Data property local names.
const (
	PropMake                       = "make"
	PropModel                      = "model"
	PropYear                       = "year"
	PropCylinders                  = "cylinders"
	PropSavings                    = "savings"
	PropTransmission               = "transmission"
	PropCo2Emissions               = "co2Emissions"
	PropEngineDescriptor           = "engineDescriptor"
	PropEpaFuelEconomyScore        = "epaFuelEconomyScore"
	PropGhgScore                   = "ghgScore"
	PropAnnualPetroleumConsumption = "annualPetroleumConsumption"
	PropCityGasolineConsumption    = "cityGasolineConsumption"
	PropCityElectricityConsumption = "cityElectricityConsumption"
	PropMpgData                    = "mpgData"
	PropElectricMotorSpec          = "electricMotorSpec"

	// PropHasElectricity drives the electrified/hybrid/pure-electric
	// class axioms, so it is always set, even when false.
	PropHasElectricity = "hasElectricity"
)

// Object property local names.
const (
	PropHasFuelType      = "hasFuelType"
	PropHasDriveType     = "hasDriveType"
	PropHasSizeClass     = "hasSizeClass"
	PropHasManufacturer  = "hasManufacturer"
	PropHasModelYear     = "hasModelYear"
	PropHasBodyStyle     = "hasBodyStyle"
	PropHasBoostSystem   = "hasBoostSystem"
	PropHasMarketSegment = "hasMarketSegment"
)

// Well-known classification individuals referenced by the mapping tables.
const (
	IndividualSedan              = "Sedan"
	IndividualTurbocharger       = "Turbocharger"
	IndividualSupercharger       = "Supercharger"
	IndividualNaturallyAspirated = "NaturallyAspirated"
	IndividualPremiumMarket      = "PremiumMarket"
	IndividualStandardMarket     = "StandardMarket"
	IndividualEconomyMarket      = "EconomyMarket"
)
