package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	profileCmd := &cobra.Command{Use: "profile", Short: "User profile operations"}

	// submit
	var userId, sex, dob, tz, offset string
	var height int
	var weight float64
	submitCmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a partial profile update",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userId == "" {
				return fmt.Errorf("--userId required")
			}
			payload := map[string]interface{}{"userId": userId}
			if sex != "" {
				payload["sex"] = sex
			}
			if dob != "" {
				payload["dateOfBirth"] = dob
			}
			if height > 0 {
				payload["heightCm"] = height
			}
			if weight > 0 {
				payload["weightKg"] = weight
			}
			url := fmt.Sprintf("%s/v1/user/profile", apiFlag)
			data, err := doPostJSON(url, payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	submitCmd.Flags().StringVarP(&userId, "userId", "u", "", "User ID (required)")
	submitCmd.Flags().StringVar(&sex, "sex", "", "Sex (male, female, other)")
	submitCmd.Flags().StringVar(&dob, "dob", "", "Date of birth (YYYY-MM-DD)")
	submitCmd.Flags().IntVar(&height, "height", 0, "Height in cm")
	submitCmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	_ = submitCmd.MarkFlagRequired("userId")
	profileCmd.AddCommand(submitCmd)

	// timezone
	tzCmd := &cobra.Command{
		Use:   "timezone USER_ID",
		Short: "Set a user's time zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tz == "" {
				return fmt.Errorf("--tz required")
			}
			payload := map[string]interface{}{"timeZone": tz}
			if offset != "" {
				payload["utcOffset"] = offset
			}
			url := fmt.Sprintf("%s/v1/user/%s/timezone", apiFlag, args[0])
			data, err := doPutJSON(url, payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	tzCmd.Flags().StringVarP(&tz, "tz", "t", "", "IANA time zone name (required)")
	tzCmd.Flags().StringVar(&offset, "offset", "", "UTC offset, e.g. -06:00")
	profileCmd.AddCommand(tzCmd)

	// get
	var date string
	getCmd := &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get a user's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := fmt.Sprintf("%s/v1/user/%s/profile", apiFlag, args[0])
			if date != "" {
				url += "?date=" + date
			}
			data, err := doGet(url)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	getCmd.Flags().StringVarP(&date, "date", "d", "", "Scope the read to a day (YYYY-MM-DD)")
	profileCmd.AddCommand(getCmd)

	rootCmd.AddCommand(profileCmd)
}
