package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"mta/attribution"
	"mta/dataset"
	"mta/filestore"
	M "mta/model"
	"mta/service"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	storeType    string
	baseDir      string
	bucket       string
	region       string
	file         string
	sample       bool
	out          bool
	verbose      bool
	decayRatio   float64
	halfLifeDays float64

	svc *service.Service
)

var errNoJourneys = errors.New("either --file or --sample is required")

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "run_attribution",
		Short:        "Multi-touch attribution and path analysis over journey files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetFormatter(&log.JSONFormatter{})
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(log.WarnLevel)
			if verbose {
				log.SetLevel(log.DebugLevel)
			}

			var fileManager filestore.FileManager
			if !sample || out {
				fm, err := service.NewFileManager(storeType, baseDir, bucket, region)
				if err != nil {
					return err
				}
				fileManager = fm
			}

			var err error
			svc, err = service.New(service.Options{
				Attribution: attribution.Config{DecayRatio: decayRatio, HalfLifeDays: halfLifeDays},
				FileManager: fileManager,
			})
			return err
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&storeType, "store", filestore.TypeDisk, "journey store: disk, gcs or s3")
	flags.StringVar(&baseDir, "base_dir", "/usr/local/var/mta", "base dir of the disk store")
	flags.StringVar(&bucket, "bucket", "", "bucket of the gcs or s3 store")
	flags.StringVar(&region, "region", "us-east-1", "aws region of the s3 store")
	flags.StringVar(&file, "file", "", "journeys file (.json, .jsonl, .yaml), relative to the store's journeys dir unless it has a dir")
	flags.BoolVar(&sample, "sample", false, "use the built-in sample journeys")
	flags.BoolVar(&out, "out", false, "also write the output as a report to the store")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	flags.Float64Var(&decayRatio, "decay_ratio", attribution.DefaultDecayRatio, "time decay ratio per half life")
	flags.Float64Var(&halfLifeDays, "half_life_days", attribution.DefaultHalfLifeDays, "time decay half life in days")

	root.AddCommand(attributeCmd(), compareCmd(), pathsCmd(), topPathsCmd(), chartCmd())
	return root
}

func loadJourneys() ([]M.Journey, error) {
	if sample {
		return dataset.SampleJourneys(), nil
	}
	if file == "" {
		return nil, errNoJourneys
	}
	dir, fileName := filepath.Split(file)
	return svc.LoadJourneys(dir, fileName)
}

// output prints v as indented json and stores it as a report when --out is set.
func output(cmd *cobra.Command, reportName string, v interface{}) error {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(bytes))

	if !out {
		return nil
	}
	dir, fileName, err := svc.WriteReport(reportName, v)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"dir": dir, "file": fileName}).Info("Report written.")
	return nil
}
