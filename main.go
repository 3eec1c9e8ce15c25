package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	logger "github.com/Financial-Times/go-logger/v2"
	transactionidutils "github.com/Financial-Times/transactionid-utils-go"
	cli "github.com/jawher/mow.cli"
	"github.com/joho/godotenv"
	metrics "github.com/rcrowley/go-metrics"

	"github.com/vehicle-kg/vehicles-rw-owl/dataset"
	"github.com/vehicle-kg/vehicles-rw-owl/graphing"
	"github.com/vehicle-kg/vehicles-rw-owl/ontology"
	"github.com/vehicle-kg/vehicles-rw-owl/population"
	"github.com/vehicle-kg/vehicles-rw-owl/reasoner"
	"github.com/vehicle-kg/vehicles-rw-owl/report"
)

func main() {
	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	app := cli.App("vehicles-rw-owl", "Populates the vehicle ontology with individuals from a tabular dataset and classifies them against its class axioms")
	ontologyPath := app.String(cli.StringOpt{
		Name:   "ontology",
		Value:  "vehicle_ontology.rdf",
		Desc:   "Path to the base ontology document (RDF/XML)",
		EnvVar: "ONTOLOGY_PATH",
	})
	dataPath := app.String(cli.StringOpt{
		Name:   "data",
		Value:  "data.csv",
		Desc:   "Path to the vehicle dataset (CSV, ',' or ';' delimited)",
		EnvVar: "DATA_PATH",
	})
	outputPath := app.String(cli.StringOpt{
		Name:   "output",
		Value:  "vehicle_ontology_populated.rdf",
		Desc:   "Path the populated ontology is written to",
		EnvVar: "OUTPUT_PATH",
	})
	artifactsDir := app.String(cli.StringOpt{
		Name:   "artifactsDir",
		Value:  "artifacts",
		Desc:   "Directory for column profiles, statistics and the taxonomy diagram",
		EnvVar: "ARTIFACTS_DIR",
	})
	mappingConfigPath := app.String(cli.StringOpt{
		Name:   "mappingConfigPath",
		Desc:   "Json config file overriding the built-in classification maps (fuel, drive, size, body style, boost)",
		EnvVar: "MAPPING_CONFIG_PATH",
	})
	maxVehicles := app.Int(cli.IntOpt{
		Name:   "maxVehicles",
		Value:  population.DefaultMaxVehicles,
		Desc:   "Maximum number of vehicle rows to populate",
		EnvVar: "MAX_VEHICLES",
	})
	logLevel := app.String(cli.StringOpt{
		Name:   "logLevel",
		Value:  "INFO",
		Desc:   "Logging level (DEBUG, INFO, WARN, ERROR)",
		EnvVar: "LOG_LEVEL",
	})
	graphExport := app.Bool(cli.BoolOpt{
		Name:   "graphExport",
		Value:  false,
		Desc:   "Export the populated and classified ontology to neo4j",
		EnvVar: "GRAPH_EXPORT",
	})
	neoURL := app.String(cli.StringOpt{
		Name:   "neoUrl",
		Value:  "http://localhost:7474/db/data",
		Desc:   "neo4j endpoint URL",
		EnvVar: "NEO_URL",
	})
	batchSize := app.Int(cli.IntOpt{
		Name:   "batchSize",
		Value:  1024,
		Desc:   "Maximum number of statements to execute per neo4j batch",
		EnvVar: "BATCH_SIZE",
	})
	appName := app.String(cli.StringOpt{
		Name:   "appName",
		Value:  "vehicles-rw-owl",
		Desc:   "Name of the application",
		EnvVar: "APP_NAME",
	})

	app.Action = func() {
		logConf := logger.KeyNamesConfig{KeyTime: "@time"}
		log := logger.NewUPPLogger(*appName, *logLevel, logConf)
		tid := transactionidutils.NewTransactionID()
		log.WithTransactionID(tid).Info("Starting ontology population process")

		log.Info("Loading ontology...")
		onto, err := ontology.Load(*ontologyPath)
		if err != nil {
			log.WithError(err).Fatalf("Ontology must be present as '%s'", *ontologyPath)
		}
		log.Infof("Ontology '%s' loaded successfully", *ontologyPath)

		mappings := readMappings(*mappingConfigPath, log)

		log.Infof("Loading %s...", *dataPath)
		frame, err := dataset.Load(*dataPath)
		if err != nil {
			log.WithError(err).Fatalf("Error loading %s", *dataPath)
		}
		log.Infof("Data loaded successfully with %d rows and %d columns", len(frame.Rows), len(frame.Columns))

		log.Info("Extracting and saving unique values from each column...")
		if _, err = dataset.Profile(frame, *artifactsDir); err != nil {
			log.WithError(err).Error("Error saving column profiles")
		} else {
			log.Infof("Saved column statistics to %s", filepath.Join(*artifactsDir, "column_statistics.csv"))
		}

		registry := metrics.NewRegistry()
		service := population.NewOntologyService(onto, mappings, *maxVehicles, registry, log)

		log.Info("Setting up classification mappings...")
		service.EnsureClassifications(frame)

		log.Info("Creating manufacturer individuals...")
		service.CreateManufacturers(frame)

		log.Info("Creating model year individuals...")
		service.CreateModelYears(frame)

		log.Info("Populating Vehicle instances...")
		processed, succeeded := service.PopulateVehicles(frame)

		log.Infof("Saving populated ontology to %s...", *outputPath)
		if err = ontology.Save(onto, *outputPath); err != nil {
			log.WithError(err).Error("Error saving populated ontology")
		} else {
			log.Infof("Ontology saved to %s", *outputPath)
		}

		log.Info("Running classifier to infer vehicle taxonomy...")
		classifier := reasoner.NewClassifier(onto, log)
		var inferred int
		classifyTimer := metrics.GetOrRegisterTimer("reasoner.classify", registry)
		classifyTimer.Time(func() {
			inferred, _ = classifier.Classify()
		})
		classifier.MaterialiseInverses()
		log.Info("Reasoning completed successfully")

		stats := report.Collect(onto)
		stats.Log(log)
		if err = stats.Write(*artifactsDir); err != nil {
			log.WithError(err).Error("Error writing classification summary")
		}

		diagramPath := filepath.Join(*artifactsDir, "taxonomy.dot")
		if err = graphing.Diagram(onto, diagramPath); err != nil {
			log.WithError(err).Error("Error writing taxonomy diagram")
		} else {
			log.Infof("Saved taxonomy diagram to %s", diagramPath)
		}

		if *graphExport {
			exportToNeo4j(onto, *neoURL, *batchSize, log)
		}

		logMetrics(registry, log)
		log.WithTransactionID(tid).WithFields(map[string]interface{}{
			"processed": processed,
			"succeeded": succeeded,
			"inferred":  inferred,
		}).Info("Ontology population process completed")
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Printf("app could not start: %s", err)
		return
	}
}

// readMappings loads the optional classification overrides; a broken config
// file logs and falls back to the defaults rather than aborting the run.
func readMappings(path string, log *logger.UPPLogger) *population.Mappings {
	if path == "" {
		return population.Defaults()
	}
	mappings, err := population.ReadConfigMap(path)
	if err != nil {
		log.WithError(err).Errorf("Can't read mapping configuration %s, using built-in maps", path)
		return population.Defaults()
	}
	log.Infof("Loaded classification mapping overrides from %s", path)
	return mappings
}

// exportToNeo4j is best-effort: a failed connect or write aborts the export
// only, never the run.
func exportToNeo4j(onto *ontology.Ontology, neoURL string, batchSize int, log *logger.UPPLogger) {
	graphService, err := graphing.NewNeo4JService(neoURL, batchSize, log)
	if err != nil {
		log.WithError(err).Error("Can't initialise graph export, skipping")
		return
	}
	if err = graphService.Initialise(); err != nil {
		log.WithError(err).Error("Can't ensure graph constraints, skipping export")
		return
	}
	if err = graphService.WriteOntology(onto); err != nil {
		log.WithError(err).Error("Error exporting ontology to Neo4j")
		return
	}
	log.Info("Ontology successfully exported to Neo4j")
}

func logMetrics(registry metrics.Registry, log *logger.UPPLogger) {
	registry.Each(func(name string, metric interface{}) {
		switch m := metric.(type) {
		case metrics.Counter:
			log.Infof("metric %s: %d", name, m.Count())
		case metrics.Timer:
			log.Infof("metric %s: count=%d mean=%v", name, m.Count(), time.Duration(int64(m.Mean())))
		}
	})
}
