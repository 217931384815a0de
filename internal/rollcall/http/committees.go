package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quorumhq/rollcall/internal/rollcall/service"
	"github.com/quorumhq/rollcall/pkg/httpx"
	"github.com/quorumhq/rollcall/pkg/rollcallsdk"
	"github.com/quorumhq/rollcall/pkg/slogx"
)

type CommitteesHandler struct {
	CommitteeService  *service.CommitteeService
	MembershipService *service.MembershipService
}

// HandleList godoc
//
//	@Summary		List Committees Endpoint
//	@Description	List all active committees with member and meeting counts.
//	@Tags			Committees
//	@Produce		json
//	@Success		200	{array}		rollcallsdk.CommitteeSummary
//	@Failure		401	{object}	rollcallsdk.APIError	"error, message"
//	@Security		BearerAuth
//	@Router			/committees [get].
func (h *CommitteesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summaries, err := h.CommitteeService.ListActive(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list committees", "err", err)
		rollcallsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCommitteeSummaries(summaries))
}

// HandleListMine godoc
//
//	@Summary		My Committees Endpoint
//	@Description	List the active committees the caller belongs to.
//	@Tags			Committees
//	@Produce		json
//	@Success		200	{array}		rollcallsdk.CommitteeSummary
//	@Failure		401	{object}	rollcallsdk.APIError	"error, message"
//	@Security		BearerAuth
//	@Router			/committees/my [get].
func (h *CommitteesHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := identityFromContext(ctx)
	if !ok {
		rollcallsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	summaries, err := h.CommitteeService.ListForUser(ctx, caller.ID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list caller committees", "err", err)
		rollcallsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCommitteeSummaries(summaries))
}

// HandleGet godoc
//
//	@Summary		Committee Detail Endpoint
//	@Description	Fetch a committee with its active members and ten most recent meetings.
//	@Tags			Committees
//	@Produce		json
//	@Param			id	path		string	true	"Committee ID"
//	@Success		200	{object}	rollcallsdk.CommitteeDetail
//	@Failure		404	{object}	rollcallsdk.APIError	"error, message"
//	@Security		BearerAuth
//	@Router			/committees/{id} [get].
func (h *CommitteesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	detail, err := h.CommitteeService.Get(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrCommitteeNotFound) {
			rollcallsdk.ErrNotFound.WithMessage("committee not found").WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to fetch committee", "err", err)
		rollcallsdk.ErrServerError.WriteError(w)
		return
	}

	members := make([]rollcallsdk.MemberWithUser, 0, len(detail.Members))
	for _, member := range detail.Members {
		members = append(members, rollcallsdk.MemberWithUser{
			CommitteeMember: toMember(member.Membership),
			User:            toUserSummary(member.User),
		})
	}

	meetings := make([]rollcallsdk.Meeting, 0, len(detail.Meetings))
	for _, meeting := range detail.Meetings {
		meetings = append(meetings, toMeeting(meeting.Meeting))
	}

	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.CommitteeDetail{
		Committee: toCommittee(detail.Committee),
		Members:   members,
		Meetings:  meetings,
	})
}

// HandleCreate godoc
//
//	@Summary		Create Committee Endpoint
//	@Description	Create a new committee. Admin only.
//	@Tags			Committees
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.CreateCommitteeRequest	true	"Committee details"
//	@Success		201		{object}	rollcallsdk.CommitteeResponse		"message, committee"
//	@Failure		400		{object}	rollcallsdk.APIError				"error, message"
//	@Failure		403		{object}	rollcallsdk.APIError				"error, message"
//	@Security		BearerAuth
//	@Router			/committees [post].
func (h *CommitteesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req rollcallsdk.CreateCommitteeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rollcallsdk.ErrBadRequest.WithMessage("invalid JSON body").WriteError(w)
		return
	}

	committee, err := h.CommitteeService.Create(ctx, req.Name, req.Description, req.MeetingDay, req.MeetingTime)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCommittee) {
			rollcallsdk.ErrBadRequest.WithMessage("name, meetingDay and meetingTime are required").WriteError(w)
			return
		}
		log.Error("failed to create committee", "err", err)
		rollcallsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, rollcallsdk.CommitteeResponse{
		Message:   "committee created",
		Committee: toCommittee(committee),
	})
}

// HandleAddMember godoc
//
//	@Summary		Add Committee Member Endpoint
//	@Description	Enrol a user into a committee. Reactivates a previously removed membership; a live membership is a conflict. Admin only.
//	@Tags			Committees
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Committee ID"
//	@Param			request	body		rollcallsdk.AddMemberRequest	true	"Member to add"
//	@Success		200		{object}	rollcallsdk.MemberResponse	"membership reactivated"
//	@Success		201		{object}	rollcallsdk.MemberResponse	"membership created"
//	@Failure		404		{object}	rollcallsdk.APIError		"error, message"
//	@Failure		409		{object}	rollcallsdk.APIError		"error, message"
//	@Security		BearerAuth
//	@Router			/committees/{id}/members [post].
func (h *CommitteesHandler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req rollcallsdk.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rollcallsdk.ErrBadRequest.WithMessage("invalid JSON body").WriteError(w)
		return
	}
	if req.UserID == "" {
		rollcallsdk.ErrBadRequest.WithMessage("userId is required").WriteError(w)
		return
	}

	result, err := h.MembershipService.AddMember(ctx, r.PathValue("id"), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommitteeNotFound):
			rollcallsdk.ErrNotFound.WithMessage("committee not found").WriteError(w)
		case errors.Is(err, service.ErrUserNotFound):
			rollcallsdk.ErrNotFound.WithMessage("user not found").WriteError(w)
		case errors.Is(err, service.ErrAlreadyMember):
			rollcallsdk.ErrConflict.WithMessage("user is already an active member").WriteError(w)
		default:
			log.Error("failed to add member", "err", err)
			rollcallsdk.ErrServerError.WriteError(w)
		}
		return
	}

	status := http.StatusCreated
	message := "member added"
	if result.Reactivated {
		status = http.StatusOK
		message = "membership reactivated"
	}

	httpx.WriteJSON(w, status, rollcallsdk.MemberResponse{
		Message: message,
		Member:  toMember(result.Membership),
	})
}

// HandleRemoveMember godoc
//
//	@Summary		Remove Committee Member Endpoint
//	@Description	Soft-delete a membership. The row survives and is reactivated if the user rejoins. Admin only.
//	@Tags			Committees
//	@Produce		json
//	@Param			id		path		string	true	"Committee ID"
//	@Param			userId	path		string	true	"User ID"
//	@Success		200		{object}	rollcallsdk.MessageResponse	"message"
//	@Failure		404		{object}	rollcallsdk.APIError		"error, message"
//	@Security		BearerAuth
//	@Router			/committees/{id}/members/{userId} [delete].
func (h *CommitteesHandler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.MembershipService.RemoveMember(ctx, r.PathValue("id"), r.PathValue("userId"))
	if err != nil {
		if errors.Is(err, service.ErrMembershipMissing) {
			rollcallsdk.ErrNotFound.WithMessage("active membership not found").WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to remove member", "err", err)
		rollcallsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.MessageResponse{Message: "member removed"})
}
