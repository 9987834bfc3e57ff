package commands

import (
	M "mta/model"
	U "mta/util"

	"github.com/spf13/cobra"
)

func attributeCmd() *cobra.Command {
	var modelName string
	cmd := &cobra.Command{
		Use:   "attribute",
		Short: "Distribute conversion credit over channels with one model",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := M.ParseAttributionModel(modelName)
			if err != nil {
				return err
			}
			journeys, err := loadJourneys()
			if err != nil {
				return err
			}
			result, err := svc.Attribute(journeys, model)
			if err != nil {
				return err
			}
			return output(cmd, "attribution_"+model.Key(), result)
		},
	}
	cmd.Flags().StringVar(&modelName, "model", M.AttributionModelKeyLinear, "attribution model")
	return cmd
}

func parseModelList(list string) ([]M.AttributionModel, error) {
	names := U.SplitAndTrim(list, ",")
	models := make([]M.AttributionModel, 0, len(names))
	for _, name := range names {
		model, err := M.ParseAttributionModel(name)
		if err != nil {
			return nil, err
		}
		models = append(models, model)
	}
	return models, nil
}

func compareCmd() *cobra.Command {
	var modelList string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the credit of several models side by side",
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
			return output(cmd, "comparison", map[string]interface{}{
				"models":   comparison.Models,
				"channels": comparison.Channels,
				"rows":     comparison.Rows(),
			})
		},
	}
	cmd.Flags().StringVar(&modelList, "models", "", "comma separated models, all when empty")
	return cmd
}
