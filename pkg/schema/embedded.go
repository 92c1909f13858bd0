package schema

import _ "embed"

//go:embed assessment.yaml
var embeddedAssessment []byte

// Default returns the built-in data-processing assessment questionnaire so
// demos work without any configuration.
func Default() Form {
	form, err := Parse(embeddedAssessment)
	if err != nil {
		// The embedded definition ships with the module; failing to parse it
		// is a build defect, not a runtime condition.
		panic(err)
	}
	return form
}
