package content

import (
	"encoding/json"
	"fmt"
)

// DecodeDocument checks that body is a well-formed document for the
// section and returns the typed value for canonical storage.
func DecodeDocument(sec Section, body []byte) (any, error) {
	switch sec {
	case SectionModules:
		var v []Module
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, err
		}
		return v, nil
	case SectionThesis:
		var v Thesis
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, err
		}
		return v, nil
	case SectionCourseworks:
		var v []Coursework
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, err
		}
		return v, nil
	case SectionPracticals:
		var v []Practical
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, fmt.Errorf("unknown section %q", sec)
}
