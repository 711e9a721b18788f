package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/ckan-client/internal/constants"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
	"github.com/fivetwenty-io/ckan-client/pkg/ckanclient"
)

// column maps a table header to a gjson path relative to one result row.
type column struct {
	Header string
	Path   string
}

// CreateClient builds a client from the url, token and verbose settings
// resolved by viper (flags, CKAN_* environment, config file).
func CreateClient() (ckan.Client, error) {
	baseURL := strings.TrimSpace(viper.GetString("url"))
	if baseURL == "" {
		return nil, constants.ErrNoBaseURL
	}

	config := &ckan.Config{
		BaseURL:     baseURL,
		Token:       viper.GetString("token"),
		HTTPTimeout: constants.DefaultHTTPTimeout,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewLogger(stderrWriter(), true)
	}

	client, err := ckanclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func stderrWriter() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	return os.Stderr
}

// commandContext returns a context bounded by timeout.
func commandContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func outputFormat() (string, error) {
	output := strings.ToLower(viper.GetString("output"))

	switch output {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return output, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutputType, output)
	}
}

// checkSuccess turns a success:false reply into an error.
func checkSuccess(resp *ckan.Response) error {
	err := resp.Err()
	if err != nil {
		return fmt.Errorf("%w: %w", constants.ErrActionFailed, err)
	}

	return nil
}

// printResponse writes the reply in the selected format. JSON and YAML print
// the whole document; the table format prints rows of the "result" member.
func printResponse(out io.Writer, resp *ckan.Response, columns []column) error {
	return printResponseAt(out, resp, constants.FieldResult, columns)
}

// printResponseAt is printResponse with the table built from path instead of
// "result".
func printResponseAt(out io.Writer, resp *ckan.Response, path string, columns []column) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	err = checkSuccess(resp)
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		return writeJSON(out, resp.Get("@pretty").Raw)
	case constants.FormatYAML:
		return writeYAML(out, resp.Value().Value())
	default:
		return renderResult(out, resp.Get(path), columns)
	}
}

func writeJSON(out io.Writer, pretty string) error {
	_, err := io.WriteString(out, pretty)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func writeYAML(out io.Writer, value any) error {
	encoder := yaml.NewEncoder(out)
	defer func() {
		_ = encoder.Close()
	}()

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// renderResult picks a table layout for result. Lists of objects become one
// row per object, lists of scalars one "Value" column, objects a
// property/value listing.
func renderResult(out io.Writer, result gjson.Result, columns []column) error {
	switch {
	case result.IsArray():
		items := result.Array()
		if len(items) > 0 && !items[0].IsObject() {
			return renderScalars(out, items)
		}

		if columns == nil && len(items) > 0 {
			columns = inferColumns(items[0])
		}

		return renderRows(out, items, columns)
	case result.IsObject():
		return renderProperties(out, result, columns)
	default:
		_, err := fmt.Fprintln(out, result.String())
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}

		return nil
	}
}

func renderScalars(out io.Writer, items []gjson.Result) error {
	table := tablewriter.NewWriter(out)
	table.Header("Value")

	for _, item := range items {
		_ = table.Append([]string{item.String()})
	}

	return renderTable(table)
}

func renderRows(out io.Writer, items []gjson.Result, columns []column) error {
	table := tablewriter.NewWriter(out)

	headers := make([]any, 0, len(columns))
	for _, col := range columns {
		headers = append(headers, col.Header)
	}

	table.Header(headers...)

	for _, item := range items {
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			row = append(row, cell(item.Get(col.Path)))
		}

		_ = table.Append(row)
	}

	return renderTable(table)
}

func renderProperties(out io.Writer, obj gjson.Result, columns []column) error {
	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	if columns == nil {
		obj.ForEach(func(key, value gjson.Result) bool {
			_ = table.Append([]string{key.String(), cell(value)})

			return true
		})
	} else {
		for _, col := range columns {
			_ = table.Append([]string{col.Header, cell(obj.Get(col.Path))})
		}
	}

	return renderTable(table)
}

func renderTable(table *tablewriter.Table) error {
	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// inferColumns uses the scalar members of the first row.
func inferColumns(first gjson.Result) []column {
	var columns []column

	first.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() && !value.IsArray() {
			columns = append(columns, column{Header: key.String(), Path: escapePath(key.String())})
		}

		return true
	})

	return columns
}

var pathEscaper = strings.NewReplacer(
	`\`, `\\`, ".", `\.`, "*", `\*`, "?", `\?`, "|", `\|`, "#", `\#`, "@", `\@`,
)

// escapePath quotes gjson metacharacters in a literal member name.
func escapePath(name string) string {
	return pathEscaper.Replace(name)
}

func cell(value gjson.Result) string {
	switch {
	case !value.Exists() || value.Type == gjson.Null:
		return constants.NotAvailable
	case value.IsArray():
		parts := make([]string, 0, len(value.Array()))
		for _, item := range value.Array() {
			parts = append(parts, item.String())
		}

		return truncate(strings.Join(parts, ", "), constants.StringTruncationLimit)
	default:
		return truncate(value.String(), constants.StringTruncationLimit)
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit-3]) + "..."
}

// parseKeyValue splits a key=value flag value.
func parseKeyValue(raw string) (string, string, error) {
	parts := strings.SplitN(raw, "=", constants.MinimumKeyValueParts)
	if len(parts) < constants.MinimumKeyValueParts || parts[0] == "" {
		return "", "", fmt.Errorf("%w, got %q", constants.ErrInvalidKeyValue, raw)
	}

	return parts[0], parts[1], nil
}

// checkUploadPath fails early when path is not a readable regular file.
func checkUploadPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to access upload file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", constants.ErrNotRegularFile, path)
	}

	return nil
}
