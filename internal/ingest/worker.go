package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Worker invokes the external spreadsheet-processing command, preserving its
// black-box contract: the command receives the uploaded file path, the store
// location and an optional date override as positional arguments, parses the
// file and persists the rows itself, then emits a single JSON object on
// stdout.  Failures carry whatever the command wrote to stderr.
type Worker struct {
	Command string // e.g. path to an excel worker script
	DSN     string // store location handed to the command
}

// workerResult is the one JSON object the command must print.  A populated
// error field counts as a failure even on a zero exit status.
type workerResult struct {
	Inserted int    `json:"inserted"`
	Error    string `json:"error"`
}

// Run executes the worker under the request context.  There is no fixed
// deadline: a hung worker blocks this request until the client goes away.
func (w *Worker) Run(ctx context.Context, path, dateOverride string) (Summary, error) {
	args := []string{path, w.DSN}
	if dateOverride != "" {
		args = append(args, dateOverride)
	}

	cmd := exec.CommandContext(ctx, w.Command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return Summary{}, fmt.Errorf("spreadsheet worker failed: %s", detail)
	}

	var res workerResult
	if err := json.Unmarshal(bytes.TrimSpace(stdout.Bytes()), &res); err != nil {
		return Summary{}, errors.New("invalid response from spreadsheet worker")
	}
	if res.Error != "" {
		return Summary{}, fmt.Errorf("spreadsheet worker failed: %s", res.Error)
	}
	return Summary{Inserted: res.Inserted}, nil
}
