package types

import (
	"github.com/go-playground/validator/v10"
)

// JobType describes where the work happens.
type JobType string

// Job type values accepted on the wire.
const (
	JobTypeOnsite JobType = "onsite"
	JobTypeHybrid JobType = "hybrid"
	JobTypeRemote JobType = "remote"
)

// JobLocation is the location requirement attached to a job.
type JobLocation struct {
	City    string  `json:"city"`
	State   string  `json:"state"`
	JobType JobType `json:"jobType" validate:"omitempty,oneof=onsite hybrid remote"`
}

// JobRequirement describes one open position to score candidates against.
// ClientName and ClientFocus are optional: staffing jobs usually carry the end
// client, direct-hire jobs usually do not.
type JobRequirement struct {
	Title       string      `json:"title" validate:"required,min=1"`
	Description string      `json:"description" validate:"required,min=1"`
	ClientName  string      `json:"clientName,omitempty"`
	ClientFocus []string    `json:"clientFocus,omitempty"`
	Location    JobLocation `json:"location"`
}

// Validate validates the JobRequirement using the validator.
func (j *JobRequirement) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// CandidateProfile is the per-candidate input to ranking: identity, location,
// and the structured extraction of the candidate's current resume.
type CandidateProfile struct {
	ID         string           `json:"candidateId" validate:"required"`
	Name       string           `json:"candidateName"`
	City       string           `json:"city"`
	State      string           `json:"state"`
	Extraction ResumeExtraction `json:"extraction"`
}

// Validate validates the CandidateProfile using the validator.
func (c *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
