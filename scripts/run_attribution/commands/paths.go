package commands

import (
	"mta/quickchart"

	"github.com/spf13/cobra"
)

func pathsCmd() *cobra.Command {
	var dropCycles bool
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Build the channel transition graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			journeys, err := loadJourneys()
			if err != nil {
				return err
			}
			return output(cmd, "path_graph", svc.PathGraph(journeys, dropCycles))
		},
	}
	cmd.Flags().BoolVar(&dropCycles, "drop_cycles", false, "drop links closing a cycle")
	return cmd
}

func topPathsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "top_paths",
		Short: "List the most travelled channel sequences",
		RunE: func(cmd *cobra.Command, args []string) error {
			journeys, err := loadJourneys()
			if err != nil {
				return err
			}
			return output(cmd, "top_paths", svc.TopPaths(journeys, limit))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of paths, 0 for all")
	return cmd
}

func chartCmd() *cobra.Command {
	var modelList string
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print quickchart urls for the attribution and the path graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := parseModelList(modelList)
			if err != nil {
				return err
			}
			journeys, err := loadJourneys()
			if err != nil {
				return err
			}
			comparison, err := svc.Compare(journeys, models...)
			if err != nil {
				return err
			}

			attributionUrl, err := quickchart.GetChartImageUrlForConfig(quickchart.GetComparisonChartConfig(comparison))
			if err != nil {
				return err
			}
			graph := svc.PathGraph(journeys, true)
			pathGraphUrl, err := quickchart.GetChartImageUrlForConfig(quickchart.GetPathGraphChartConfig(graph))
			if err != nil {
				return err
			}
			return output(cmd, "charts", map[string]string{
				"attribution": attributionUrl,
				"path_graph":  pathGraphUrl,
			})
		},
	}
	cmd.Flags().StringVar(&modelList, "models", "", "comma separated models, all when empty")
	return cmd
}
