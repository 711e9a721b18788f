package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/fivetwenty-io/ckan-client/internal/constants"
)

// callOptions holds the body-building flags of the call command.
type callOptions struct {
	data    string
	sets    []string
	setJSON []string
	upload  string
}

// NewCallCommand creates the call command.
func NewCallCommand() *cobra.Command {
	opts := &callOptions{}

	cmd := &cobra.Command{
		Use:   "call ACTION",
		Short: "Call any action",
		Long: `Call an arbitrary CKAN action by name and print the reply.

The request body starts from --data (a JSON object, default {}) and is then
edited by --set path=value (string values) and --set-json path=json. Paths use
dots for nesting; escape a literal dot with a backslash, e.g.
--set-json 'facet\.limit=5'. With --upload the body is sent as multipart form
fields with the file in the "upload" part.`,
		Example: `  ckan call package_search --set q=water --set-json rows=5
  ckan call resource_patch --set id=abc --upload ./levels.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCallCommand(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "request body as a JSON object")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "set path=value as a string, may be repeated")
	cmd.Flags().StringArrayVar(&opts.setJSON, "set-json", nil, "set path=json as raw JSON, may be repeated")
	cmd.Flags().StringVar(&opts.upload, "upload", "", "local file to send in the upload part")

	return cmd
}

func runCallCommand(cmd *cobra.Command, action string, opts *callOptions) error {
	body, err := buildCallBody(opts)
	if err != nil {
		return err
	}

	if opts.upload != "" {
		err = checkUploadPath(opts.upload)
		if err != nil {
			return err
		}
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	fields, _ := gjson.Parse(body).Value().(map[string]interface{})

	if opts.upload != "" {
		resp, err := client.CallWithUpload(cmd.Context(), action, fields, opts.upload)
		if err != nil {
			return fmt.Errorf("failed to call %s: %w", action, err)
		}

		return printResponse(cmd.OutOrStdout(), resp, nil)
	}

	ctx, cancel := commandContext(constants.DefaultHTTPTimeout)
	defer cancel()

	resp, err := client.Call(ctx, action, fields)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", action, err)
	}

	return printResponse(cmd.OutOrStdout(), resp, nil)
}

// buildCallBody assembles the JSON object sent by the call command.
func buildCallBody(opts *callOptions) (string, error) {
	body := "{}"

	if strings.TrimSpace(opts.data) != "" {
		if !gjson.Valid(opts.data) || !gjson.Parse(opts.data).IsObject() {
			return "", constants.ErrInvalidJSONData
		}

		body = opts.data
	}

	var err error

	for _, raw := range opts.sets {
		path, value, perr := parseKeyValue(raw)
		if perr != nil {
			return "", perr
		}

		body, err = sjson.Set(body, path, value)
		if err != nil {
			return "", fmt.Errorf("failed to set %s: %w", path, err)
		}
	}

	for _, raw := range opts.setJSON {
		path, value, perr := parseKeyValue(raw)
		if perr != nil {
			return "", perr
		}

		if !gjson.Valid(value) {
			return "", fmt.Errorf("%w: %s", constants.ErrInvalidJSONSet, path)
		}

		body, err = sjson.SetRaw(body, path, value)
		if err != nil {
			return "", fmt.Errorf("failed to set %s: %w", path, err)
		}
	}

	return body, nil
}
