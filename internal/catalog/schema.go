package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/malla/internal/domain"
)

// CourseRecord is the on-disk shape of one course in the catalog source.
type CourseRecord struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Semester      int      `json:"semester" validate:"required,min=1,max=10"`
	Prerequisites []string `json:"prerequisites" validate:"dive,required"`
	Description   string   `json:"description"`
	Category      string   `json:"category" validate:"omitempty,category"`
}

// ToCourse converts the record into an immutable domain course.
func (r CourseRecord) ToCourse() domain.Course {
	prereqs := make([]string, len(r.Prerequisites))
	copy(prereqs, r.Prerequisites)
	return domain.Course{
		ID:            r.ID,
		Name:          r.Name,
		Semester:      r.Semester,
		Prerequisites: prereqs,
		Description:   r.Description,
		Category:      domain.Category(r.Category).OrDefault(),
	}
}

// DecodeRecords parses a JSON array of course records. Each element is
// decoded on its own so that every malformed record is reported.
func DecodeRecords(data []byte) ([]CourseRecord, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DataFormatError{Problems: []string{describeJSONError("catalog", err)}}
	}

	records := make([]CourseRecord, 0, len(raw))
	var problems []string
	for i, msg := range raw {
		var rec CourseRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			problems = append(problems, describeJSONError(fmt.Sprintf("courses[%d]", i), err))
			continue
		}
		records = append(records, rec)
	}
	if len(problems) > 0 {
		return nil, &DataFormatError{Problems: problems}
	}
	return records, nil
}

func describeJSONError(prefix string, err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return fmt.Sprintf("%s: expected %s, got %s", prefix, typeErr.Type, typeErr.Value)
		}
		return fmt.Sprintf("%s.%s: expected %s, got %s", prefix, typeErr.Field, typeErr.Type, typeErr.Value)
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("%s: invalid JSON at offset %d: %v", prefix, syntaxErr.Offset, err)
	}
	return fmt.Sprintf("%s: %v", prefix, err)
}
