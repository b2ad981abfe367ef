package rfidscan

import "fmt"

// Severity selects the dialog kind used to show an outcome.
type Severity int

const (
	// SeverityInformation marks an accepted scan.
	SeverityInformation Severity = iota
	// SeverityWarning marks an input error or a non-success status.
	SeverityWarning
	// SeverityCritical marks a failed call.
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityInformation:
		return "information"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Dialog titles and the input error message.
const (
	TitleInputError    = "Input Error"
	TitleSuccess       = "Success"
	TitleError         = "Error"
	TitleRequestFailed = "Request Failed"

	MessageMissingInput = "Please enter both RFID ID and Device ID."
)

// Outcome is the single dialog produced by one activation of the form.
type Outcome struct {
	Kind    Severity
	Title   string
	Message string
}

// Presenter shows an outcome to the user.
type Presenter interface {
	Present(o Outcome) error
}

func inputErrorOutcome() Outcome {
	return Outcome{Kind: SeverityWarning, Title: TitleInputError, Message: MessageMissingInput}
}

func responseOutcome(resp Response) Outcome {
	if resp.Accepted() {
		return Outcome{
			Kind:    SeverityInformation,
			Title:   TitleSuccess,
			Message: "Response: " + resp.Body,
		}
	}

	return Outcome{
		Kind:    SeverityWarning,
		Title:   TitleError,
		Message: fmt.Sprintf("Error %d: %s", resp.StatusCode, resp.Body),
	}
}

func failureOutcome(err error) Outcome {
	return Outcome{Kind: SeverityCritical, Title: TitleRequestFailed, Message: err.Error()}
}
