package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
	"github.com/quorumhq/rollcall/internal/rollcall/service"
	"github.com/quorumhq/rollcall/pkg/httpx"
	"github.com/quorumhq/rollcall/pkg/rollcallsdk"
	"github.com/quorumhq/rollcall/pkg/slogx"
)

type AttendanceHandler struct {
	AttendanceService *service.AttendanceService
}

// HandleMark godoc
//
//	@Summary		Mark Attendance Endpoint
//	@Description	Record the caller's attendance for a meeting, or spend the single allowed correction on an existing record.
//	@Description	First writes require the meeting to be ONGOING; the one correction does not.
//	@Tags			Attendance
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.MarkAttendanceRequest	true	"Meeting and status"
//	@Success		200		{object}	rollcallsdk.AttendanceResponse		"record corrected"
//	@Success		201		{object}	rollcallsdk.AttendanceResponse		"record created"
//	@Failure		400		{object}	rollcallsdk.APIError				"error, message"
//	@Failure		403		{object}	rollcallsdk.APIError				"error, message"
//	@Failure		404		{object}	rollcallsdk.APIError				"error, message"
//	@Security		BearerAuth
//	@Router			/attendance/mark [post].
func (h *AttendanceHandler) HandleMark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := identityFromContext(ctx)
	if !ok {
		rollcallsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	var req rollcallsdk.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rollcallsdk.ErrBadRequest.WithMessage("invalid JSON body").WriteError(w)
		return
	}
	if req.MeetingID == "" || req.Status == "" {
		rollcallsdk.ErrBadRequest.WithMessage("meetingId and status are required").WriteError(w)
		return
	}

	result, err := h.AttendanceService.Record(ctx, caller.ID, req.MeetingID, domain.AttendanceStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAttendanceStatus):
			rollcallsdk.ErrBadRequest.WithMessage("status must be PRESENT, LEGAL_LATE, LATE, LEAVE or ABSENT").WriteError(w)
		case errors.Is(err, service.ErrMeetingNotFound):
			rollcallsdk.ErrNotFound.WithMessage("meeting not found").WriteError(w)
		case errors.Is(err, service.ErrNotCommitteeMember):
			rollcallsdk.ErrForbidden.WithMessage("not an active member of this committee").WriteError(w)
		case errors.Is(err, service.ErrMeetingNotOpen):
			rollcallsdk.ErrInvalidState.WithMessage("attendance can only be marked while the meeting is ongoing").WriteError(w)
		case errors.Is(err, service.ErrAttendanceFinalized):
			rollcallsdk.ErrAlreadyFinalized.WriteError(w)
		default:
			log.Error("failed to record attendance", "err", err)
			rollcallsdk.ErrServerError.WriteError(w)
		}
		return
	}

	status := http.StatusOK
	message := "attendance updated"
	if result.Created {
		status = http.StatusCreated
		message = "attendance marked"
	}

	httpx.WriteJSON(w, status, rollcallsdk.AttendanceResponse{
		Message:    message,
		Attendance: toAttendance(result.Attendance),
	})
}

// HandleGetOwn godoc
//
//	@Summary		My Attendance Endpoint
//	@Description	The caller's own attendance row for a meeting, with meeting and committee context.
//	@Tags			Attendance
//	@Produce		json
//	@Param			meetingId	path		string	true	"Meeting ID"
//	@Success		200			{object}	rollcallsdk.AttendanceDetail
//	@Failure		404			{object}	rollcallsdk.APIError	"error, message"
//	@Security		BearerAuth
//	@Router			/attendance/meeting/{meetingId} [get].
func (h *AttendanceHandler) HandleGetOwn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := identityFromContext(ctx)
	if !ok {
		rollcallsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	own, err := h.AttendanceService.GetOwn(ctx, caller.ID, r.PathValue("meetingId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMeetingNotFound):
			rollcallsdk.ErrNotFound.WithMessage("meeting not found").WriteError(w)
		case errors.Is(err, service.ErrAttendanceNotFound):
			rollcallsdk.ErrNotFound.WithMessage("no attendance recorded for this meeting").WriteError(w)
		default:
			slogx.FromContext(ctx).Error("failed to fetch attendance", "err", err)
			rollcallsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.AttendanceDetail{
		Attendance: toAttendance(own.Attendance),
		Meeting:    toMeetingWithCommittee(own.Meeting),
	})
}

// HandleRoster godoc
//
//	@Summary		Meeting Roster Endpoint
//	@Description	Every active member of the meeting's committee paired with their attendance row, null for members who have not marked anything.
//	@Tags			Attendance
//	@Produce		json
//	@Param			meetingId	path		string	true	"Meeting ID"
//	@Success		200			{object}	rollcallsdk.MeetingRosterResponse
//	@Failure		403			{object}	rollcallsdk.APIError	"error, message"
//	@Failure		404			{object}	rollcallsdk.APIError	"error, message"
//	@Security		BearerAuth
//	@Router			/attendance/meeting/{meetingId}/all [get].
func (h *AttendanceHandler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := identityFromContext(ctx)
	if !ok {
		rollcallsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	meeting, entries, err := h.AttendanceService.Roster(ctx, caller.ID, caller.Role, r.PathValue("meetingId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMeetingNotFound):
			rollcallsdk.ErrNotFound.WithMessage("meeting not found").WriteError(w)
		case errors.Is(err, service.ErrNotCommitteeMember):
			rollcallsdk.ErrForbidden.WithMessage("not an active member of this committee").WriteError(w)
		default:
			slogx.FromContext(ctx).Error("failed to build roster", "err", err)
			rollcallsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.MeetingRosterResponse{
		Meeting:          toMeetingWithCommittee(meeting),
		MemberAttendance: toRosterEntries(entries),
	})
}
