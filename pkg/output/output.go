package output

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"

	"github.com/sathishrouthu/blog-cli/pkg/config"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
	FormatText  OutputFormat = "text"
)

// GetOutputFormat returns the configured output format
func GetOutputFormat() OutputFormat {
	switch config.GetString("output.format") {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// ValidateOutputFormat checks if format is valid
func ValidateOutputFormat(format string) bool {
	return format == "json" || format == "table" || format == "text"
}

// Print outputs data in the configured format
func Print(title string, data interface{}) error {
	if GetOutputFormat() == FormatJSON {
		return printJSON(data)
	}
	return printText(title, data)
}

// PrintList outputs rows in the configured format. For table and text
// output, rows should be [][]string with headers; JSON output prints
// the raw items instead so callers pass both.
func PrintList(title string, items interface{}, headers []string, rows [][]string) error {
	switch GetOutputFormat() {
	case FormatJSON:
		return printJSON(items)
	case FormatTable:
		printTable(headers, rows)
		return nil
	default:
		if title != "" {
			color.New(color.Bold).Println(title)
		}
		printTable(headers, rows)
		return nil
	}
}

// PrintRecord outputs a single record as key-value pairs
func PrintRecord(title string, keys []string, record map[string]interface{}) error {
	if GetOutputFormat() == FormatJSON {
		return printJSON(record)
	}
	if title != "" {
		color.New(color.Bold).Println(title)
	}
	bold := color.New(color.Bold)
	for _, key := range keys {
		bold.Print(key + ": ")
		fmt.Printf("%v\n", record[key])
	}
	return nil
}

// PrintSuccess prints a success message
func PrintSuccess(msg string, args ...interface{}) {
	color.New(color.FgGreen).Printf(msg+"\n", args...)
}

// PrintError prints an error message
func PrintError(msg string, args ...interface{}) {
	color.New(color.FgRed).Printf("Error: "+msg+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(msg string, args ...interface{}) {
	color.New(color.FgCyan).Printf(msg+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(msg string, args ...interface{}) {
	color.New(color.FgYellow).Printf("Warning: "+msg+"\n", args...)
}

func printJSON(data interface{}) error {
	pretty, err := FormatAsPrettyJSON(data)
	if err != nil {
		return err
	}
	fmt.Fprintln(color.Output, pretty)
	return nil
}

func printText(title string, data interface{}) error {
	if title != "" {
		color.New(color.Bold).Printf("%s:\n", title)
	}
	pretty, err := FormatAsPrettyJSON(data)
	if err != nil {
		return err
	}
	fmt.Println(pretty)
	return nil
}

func printTable(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(color.Output, 0, 0, 2, ' ', 0)
	bold := color.New(color.Bold)

	for i, h := range headers {
		bold.Fprint(w, h)
		if i < len(headers)-1 {
			fmt.Fprint(w, "\t")
		}
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprint(w, cell)
			if i < len(row)-1 {
				fmt.Fprint(w, "\t")
			}
		}
		fmt.Fprintln(w)
	}

	w.Flush()
}

// FormatAsJSON converts data to a compact JSON string
func FormatAsJSON(data interface{}) (string, error) {
	jsonData, err := jsoniter.ConfigDefault.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

// FormatAsPrettyJSON converts data to an indented JSON string
func FormatAsPrettyJSON(data interface{}) (string, error) {
	jsonData, err := jsoniter.ConfigDefault.Marshal(data)
	if err != nil {
		return "", err
	}

	var obj interface{}
	if err := json.Unmarshal(jsonData, &obj); err != nil {
		return "", err
	}

	pretty, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return "", err
	}
	return string(pretty), nil
}
