package servicenow

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrMissingKey = errors.New("missing key")

// ServiceNow renders sys_created_on without a timezone.
const createdOnLayout = time.DateTime

// Pointer fields tell a missing key apart from an empty value.
type incidentExport struct {
	Records *[]incidentSchema `json:"records"`
}

type incidentSchema struct {
	ShortDescription *string `json:"short_description"`
	AssignmentGroup  *string `json:"assignment_group"`
}

type groupExport struct {
	Result *[]groupSchema `json:"result"`
}

type groupSchema struct {
	SysID        *string    `json:"sys_id"`
	Name         *string    `json:"name"`
	SysCreatedOn *createdOn `json:"sys_created_on"`
}

func (e incidentExport) validate() error {
	if e.Records == nil {
		return missingKey("records")
	}
	for i, record := range *e.Records {
		switch {
		case record.ShortDescription == nil:
			return fmt.Errorf("records[%d]: %w", i, missingKey("short_description"))
		case record.AssignmentGroup == nil:
			return fmt.Errorf("records[%d]: %w", i, missingKey("assignment_group"))
		}
	}
	return nil
}

func (e groupExport) validate() error {
	if e.Result == nil {
		return missingKey("result")
	}
	for i, record := range *e.Result {
		switch {
		case record.SysID == nil:
			return fmt.Errorf("result[%d]: %w", i, missingKey("sys_id"))
		case record.Name == nil:
			return fmt.Errorf("result[%d]: %w", i, missingKey("name"))
		case record.SysCreatedOn == nil:
			return fmt.Errorf("result[%d]: %w", i, missingKey("sys_created_on"))
		}
	}
	return nil
}

func missingKey(key string) error {
	return fmt.Errorf("%w %q", ErrMissingKey, key)
}

type createdOn time.Time

func (c *createdOn) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("sys_created_on: %w", err)
	}

	parsed, err := time.Parse(createdOnLayout, raw)
	if err != nil {
		return fmt.Errorf("sys_created_on %q: %w", raw, err)
	}

	*c = createdOn(parsed)
	return nil
}

type trainingEntrySchema struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
}
