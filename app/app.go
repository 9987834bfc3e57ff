package main

import (
	"flag"
	"strconv"

	C "mta/config"
	H "mta/handler"
	"mta/metrics"
	mid "mta/middleware"
	"mta/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "")
	port := flag.Int("api_http_port", 8090, "")

	decayRatio := flag.Float64("decay_ratio", 0.5, "Share of credit kept per half life step by time decay.")
	halfLifeDays := flag.Float64("half_life_days", 7, "Half life in days for timestamped time decay.")
	cacheSize := flag.Int("cache_size", 1000, "Number of memoized results. 0 disables caching.")
	dropCycles := flag.Bool("drop_cycles", false, "Drop cycle closing links from path graphs by default.")

	storeType := flag.String("journey_store", "disk", "disk, gcs or s3")
	baseDir := flag.String("base_dir", "/usr/local/var/mta", "Base dir of the disk journey store.")
	bucket := flag.String("bucket_name", "", "Bucket of the gcs or s3 journey store.")
	awsRegion := flag.String("aws_region", "us-east-1", "")

	metricsProjectID := flag.String("metrics_project_id", "", "Project to export metrics to. Empty disables export.")
	metricsLocation := flag.String("metrics_location", "us-west1", "")
	flag.Parse()

	config := &C.Configuration{
		AppName:      "mta_server",
		Env:          *env,
		Port:         *port,
		DecayRatio:   *decayRatio,
		HalfLifeDays: *halfLifeDays,
		CacheSize:    cacheSize,
		DropCycles:   dropCycles,
		JourneyStore: C.JourneyStoreConf{
			Type:    *storeType,
			BaseDir: *baseDir,
			Bucket:  *bucket,
			Region:  *awsRegion,
		},
		MetricsProjectID: *metricsProjectID,
		MetricsLocation:  *metricsLocation,
	}

	err := C.Init(config)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize.")
		return
	}
	config = C.GetConfig()

	exporter := metrics.InitMetrics(config.Env, config.AppName, config.MetricsProjectID, config.MetricsLocation)
	defer metrics.Flush(exporter)

	fileManager, err := service.NewFileManager(config.JourneyStore.Type, config.JourneyStore.BaseDir,
		config.JourneyStore.Bucket, config.JourneyStore.Region)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize journey store.")
		return
	}
	svc, err := service.New(service.Options{
		Attribution: C.GetAttributionConfig(),
		CacheSize:   config.GetCacheSize(),
		FileManager: fileManager,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize service.")
		return
	}

	if !C.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(mid.RequestIdGenerator())
	r.Use(mid.Logger())
	r.Use(mid.Recovery())

	H.InitRoutes(r, H.New(svc, H.Options{DropCycles: config.ShouldDropCycles()}))

	log.WithField("port", config.Port).Info("Starting attribution server.")
	if err := r.Run(":" + strconv.Itoa(config.Port)); err != nil {
		log.WithError(err).Error("Server stopped.")
	}
}
