package engine

import (
	"context"
	"errors"

	"github.com/mihaianh/wedding_backend/models"
	"github.com/mihaianh/wedding_backend/repository"
)

// Submission is one guest's response for one location.
type Submission struct {
	InviteCode string
	Location   models.Location
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	// Attending is a pointer so an absent value is rejected while an
	// explicit false is accepted.
	Attending  *bool
	Attributes models.Attributes
}

// SubmitResult is the outcome of a recorded (or reconfirmed) submission.
type SubmitResult struct {
	Response *models.RSVPResponse
	// Reconfirmed is true when the guest already had attending=true on
	// file and resubmitted attending=true: nothing was written, but the
	// caller should still send a confirmation.
	Reconfirmed bool
}

// Contact is the submitter's contact snapshot, reused for delegated
// group members.
type Contact struct {
	Email string
	Phone string
}

// GroupMemberSubmission is one delegated response inside a group
// submission.
type GroupMemberSubmission struct {
	InviteCode string
	FirstName  string
	LastName   string
	Attending  *bool
}

// GroupResult is the per-member outcome of a group submission, in input
// order.
type GroupResult struct {
	InviteCode string               `json:"invite_id"`
	Success    bool                 `json:"success"`
	Message    string               `json:"message,omitempty"`
	Error      string               `json:"error,omitempty"`
	Response   *models.RSVPResponse `json:"response,omitempty"`
}

// Engine validates submissions, decides create vs. update vs.
// reconfirmation, and writes to the per-location repositories.
type Engine struct {
	resolver *Resolver
	registry *repository.Registry
}

// NewEngine creates an engine over the given resolver and registry.
func NewEngine(resolver *Resolver, registry *repository.Registry) *Engine {
	return &Engine{resolver: resolver, registry: registry}
}

// Submit records a guest's own response. Preconditions are checked in
// order, each with its own failure mode: required fields, guest existence,
// location entitlement. The write is a single upsert against the
// location's repository, skipped entirely for reconfirmations.
func (e *Engine) Submit(ctx context.Context, sub Submission) (*SubmitResult, error) {
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}

	guest, err := e.resolver.Resolve(ctx, sub.InviteCode)
	if err != nil {
		return nil, err
	}

	repo, err := e.entitledRepository(guest, sub.Location)
	if err != nil {
		return nil, err
	}

	existing, err := repo.FindByInviteCode(ctx, guest.InviteCode)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, &RepositoryError{Err: err}
	}

	// Reconfirmation: a repeated "yes" must not touch the stored row.
	// Contact fields may have been edited deliberately through the
	// modify flow, and updated_at must keep the original response time.
	if existing != nil && existing.Attending && *sub.Attending {
		return &SubmitResult{Response: existing, Reconfirmed: true}, nil
	}

	resp, err := repo.Upsert(ctx, guest.InviteCode, models.ResponseFields{
		Attending:  *sub.Attending,
		FirstName:  sub.FirstName,
		LastName:   sub.LastName,
		Email:      sub.Email,
		Phone:      sub.Phone,
		Attributes: sub.Attributes,
	})
	if err != nil {
		return nil, &RepositoryError{Err: err}
	}

	return &SubmitResult{Response: resp}, nil
}

// SubmitGroup records delegated responses for the submitter's group
// members. Each member is processed independently: one member's failure
// never aborts the rest, and results keep input order. Members reuse the
// submitter's contact details and are tagged with the submitter's name.
// The caller invokes this only when the submitter attends.
func (e *Engine) SubmitGroup(ctx context.Context, submitterCode string, location models.Location, contact Contact, members []GroupMemberSubmission) ([]GroupResult, error) {
	submitter, err := e.resolver.Resolve(ctx, submitterCode)
	if err != nil {
		return nil, err
	}

	results := make([]GroupResult, 0, len(members))
	for _, member := range members {
		results = append(results, e.submitMember(ctx, submitter, location, contact, member))
	}
	return results, nil
}

// submitMember handles one delegated response, folding any failure into
// the member's result.
func (e *Engine) submitMember(ctx context.Context, submitter *GuestView, location models.Location, contact Contact, member GroupMemberSubmission) GroupResult {
	result := GroupResult{InviteCode: NormalizeCode(member.InviteCode)}

	if err := validateMember(member); err != nil {
		result.Error = err.Error()
		return result
	}

	guest, err := e.resolver.Resolve(ctx, member.InviteCode)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	repo, err := e.entitledRepository(guest, location)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	attrs := models.Attributes{models.AttrOnBehalfOf: submitter.FullName()}
	resp, err := repo.Upsert(ctx, guest.InviteCode, models.ResponseFields{
		Attending:  *member.Attending,
		FirstName:  member.FirstName,
		LastName:   member.LastName,
		Email:      contact.Email,
		Phone:      contact.Phone,
		Attributes: attrs,
	})
	if err != nil {
		result.Error = (&RepositoryError{Err: err}).Error()
		return result
	}

	result.Success = true
	result.Message = "response recorded"
	result.Response = resp
	return result
}

// entitledRepository checks the guest's entitlement and returns the
// location's repository.
func (e *Engine) entitledRepository(guest *GuestView, location models.Location) (repository.RSVPRepository, error) {
	entitled := false
	for _, loc := range guest.Entitlements {
		if loc == location {
			entitled = true
			break
		}
	}
	if !entitled {
		return nil, &ForbiddenError{Location: location}
	}

	repo, ok := e.registry.Get(location)
	if !ok {
		return nil, &RepositoryError{Err: errors.New("no repository registered for " + string(location))}
	}
	return repo, nil
}

func validateSubmission(sub Submission) error {
	switch {
	case NormalizeCode(sub.InviteCode) == "":
		return &ValidationError{Field: "invite_id"}
	case sub.Location == "":
		return &ValidationError{Field: "location"}
	case sub.FirstName == "":
		return &ValidationError{Field: "first_name"}
	case sub.LastName == "":
		return &ValidationError{Field: "last_name"}
	case sub.Email == "":
		return &ValidationError{Field: "email"}
	case sub.Phone == "":
		return &ValidationError{Field: "phone"}
	case sub.Attending == nil:
		return &ValidationError{Field: "attending"}
	}
	return nil
}

func validateMember(member GroupMemberSubmission) error {
	switch {
	case NormalizeCode(member.InviteCode) == "":
		return &ValidationError{Field: "invite_id"}
	case member.FirstName == "":
		return &ValidationError{Field: "first_name"}
	case member.LastName == "":
		return &ValidationError{Field: "last_name"}
	case member.Attending == nil:
		return &ValidationError{Field: "attending"}
	}
	return nil
}
