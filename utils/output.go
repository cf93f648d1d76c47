package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
)

// WriteOutput will write the CSV and/or stdout data based on the viper configuration
func WriteOutput(csvData, stdOutData [][]string, csvFileName string) {

	// Get the output format
	outFormat := viper.GetString("output_format")
	if outFormat == "" {
		outFormat = "csv"
	}

	// Write stdout if output format dictates it
	if (outFormat == "stdout" || outFormat == "both") && len(stdOutData) > 0 {
		if len(stdOutData) < viper.GetInt("max_entries_for_stdout") {
			writeTable(os.Stdout, stdOutData)
		} else {
			fmt.Printf("[INFO] - Data set exceeds stdout limit. To see table in stdout, increase max_entries_for_stdout in vmm.yaml\r\n")
		}
	}

	// Write CSV data if output format dictates it
	if outFormat == "csv" || outFormat == "both" {

		// Create CSV
		outFile, err := os.Create(csvFileName)
		if err != nil {
			LogError(fmt.Sprintf("creating CSV - %s", err))
		}
		defer outFile.Close()

		// Write CSV data
		if err := writeCSV(outFile, csvData); err != nil {
			LogError(fmt.Sprintf("writing CSV - %s", err))
		}

		// Log
		fmt.Printf("\r\n[INFO] - Output file: %s\r\n", outFile.Name())
		LogInfo(fmt.Sprintf("created %s", outFile.Name()), false)
	}
}

// WriteRecords writes a report built as a header row followed by one row per
// item. A report with only the header is logged and not written.
func WriteRecords(data [][]string, commandName, outputFileName string) {
	if len(data) <= 1 {
		LogInfo(fmt.Sprintf("%s found no records.", commandName), true)
		return
	}
	WriteOutput(data, data, OutputFileName(commandName, outputFileName))
	LogInfo(fmt.Sprintf("%d records exported", len(data)-1), true)
}

// OutputFileName returns override or a timestamped file name for the command.
func OutputFileName(commandName, override string) string {
	if override != "" {
		return override
	}
	return fmt.Sprintf("vmmtool-%s-%s.csv", commandName, time.Now().Format("20060102_150405"))
}

func writeCSV(w io.Writer, data [][]string) error {
	writer := csv.NewWriter(w)
	writer.WriteAll(data)
	return writer.Error()
}

func writeTable(w io.Writer, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(data[0])
	for i := 1; i <= len(data)-1; i++ {
		table.Append(data[i])
	}
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetRowLine(true)
	table.Render()
}
