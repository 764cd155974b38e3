package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	dataCmd := &cobra.Command{Use: "data", Short: "Health data reads"}

	var userId, date, subtype string
	getCmd := &cobra.Command{
		Use:   "get CATEGORY",
		Short: "Fetch a day of health data (physical, sleep, body)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if userId == "" || date == "" {
				return fmt.Errorf("--user and --date required")
			}
			var url string
			if subtype == "" {
				url = fmt.Sprintf("%s/v1/data/%s/%s/summary?date=%s", apiFlag, args[0], userId, date)
			} else {
				url = fmt.Sprintf("%s/v1/data/%s/%s/events/%s?date=%s", apiFlag, args[0], userId, subtype, date)
			}
			data, err := doGet(url)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	getCmd.Flags().StringVarP(&userId, "user", "u", "", "User ID (required)")
	getCmd.Flags().StringVarP(&date, "date", "d", "", "Day to read (YYYY-MM-DD, required)")
	getCmd.Flags().StringVarP(&subtype, "subtype", "s", "", "Event subtype, e.g. steps; omit for the daily summary")
	_ = getCmd.MarkFlagRequired("user")
	_ = getCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(dataCmd)
	dataCmd.AddCommand(getCmd)
}
