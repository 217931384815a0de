package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
	"github.com/quorumhq/rollcall/internal/rollcall/service"
	"github.com/quorumhq/rollcall/pkg/httpx"
	"github.com/quorumhq/rollcall/pkg/rollcallsdk"
	"github.com/quorumhq/rollcall/pkg/slogx"
)

type MeetingsHandler struct {
	MeetingService    *service.MeetingService
	MembershipService *service.MembershipService
	AttendanceService *service.AttendanceService
}

// parseDate accepts RFC 3339 or a plain YYYY-MM-DD calendar day.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// HandleCreate godoc
//
//	@Summary		Create Meeting Endpoint
//	@Description	Schedule a meeting for a committee. Status starts as SCHEDULED. Admin only.
//	@Tags			Meetings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.CreateMeetingRequest	true	"Meeting details"
//	@Success		201		{object}	rollcallsdk.MeetingResponse			"message, meeting"
//	@Failure		400		{object}	rollcallsdk.APIError				"error, message"
//	@Failure		404		{object}	rollcallsdk.APIError				"error, message"
//	@Security		BearerAuth
//	@Router			/meetings [post].
func (h *MeetingsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req rollcallsdk.CreateMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rollcallsdk.ErrBadRequest.WithMessage("invalid JSON body").WriteError(w)
		return
	}
	if req.CommitteeID == "" || req.Date == "" {
		rollcallsdk.ErrBadRequest.WithMessage("committeeId and date are required").WriteError(w)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		rollcallsdk.ErrBadRequest.WithMessage("date must be RFC 3339 or YYYY-MM-DD").WriteError(w)
		return
	}

	meeting, err := h.MeetingService.Create(ctx, req.CommitteeID, req.Notes, date, "")
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMeeting):
			rollcallsdk.ErrBadRequest.WithMessage("committeeId and date are required").WriteError(w)
		case errors.Is(err, service.ErrCommitteeNotFound):
			rollcallsdk.ErrNotFound.WithMessage("committee not found").WriteError(w)
		default:
			log.Error("failed to create meeting", "err", err)
			rollcallsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, rollcallsdk.MeetingResponse{
		Message: "meeting created",
		Meeting: toMeetingWithCommittee(meeting),
	})
}

// HandleUpdateStatus godoc
//
//	@Summary		Update Meeting Status Endpoint
//	@Description	Set a meeting's status to any of SCHEDULED, ONGOING, COMPLETED or CANCELLED. No transition graph is enforced. Admin only.
//	@Tags			Meetings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Meeting ID"
//	@Param			request	body		rollcallsdk.UpdateMeetingStatusRequest	true	"New status"
//	@Success		200		{object}	rollcallsdk.MeetingResponse			"message, meeting"
//	@Failure		400		{object}	rollcallsdk.APIError				"error, message"
//	@Failure		404		{object}	rollcallsdk.APIError				"error, message"
//	@Security		BearerAuth
//	@Router			/meetings/{id}/status [patch].
func (h *MeetingsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req rollcallsdk.UpdateMeetingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rollcallsdk.ErrBadRequest.WithMessage("invalid JSON body").WriteError(w)
		return
	}

	meeting, err := h.MeetingService.UpdateStatus(ctx, r.PathValue("id"), domain.MeetingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMeetingStatus):
			rollcallsdk.ErrBadRequest.WithMessage("status must be SCHEDULED, ONGOING, COMPLETED or CANCELLED").WriteError(w)
		case errors.Is(err, service.ErrMeetingNotFound):
			rollcallsdk.ErrNotFound.WithMessage("meeting not found").WriteError(w)
		default:
			log.Error("failed to update meeting status", "err", err)
			rollcallsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.MeetingResponse{
		Message: "meeting status updated",
		Meeting: toMeetingWithCommittee(meeting),
	})
}

// HandleListForCommittee godoc
//
//	@Summary		Committee Meetings Endpoint
//	@Description	Page through a committee's meetings newest first, optionally filtered by status.
//	@Tags			Meetings
//	@Produce		json
//	@Param			committeeId	path		string	true	"Committee ID"
//	@Param			status		query		string	false	"Status filter"
//	@Param			limit		query		int		false	"Page size (default 20)"
//	@Param			offset		query		int		false	"Page offset"
//	@Success		200			{object}	rollcallsdk.MeetingListResponse
//	@Failure		404			{object}	rollcallsdk.APIError	"error, message"
//	@Security		BearerAuth
//	@Router			/meetings/committee/{committeeId} [get].
func (h *MeetingsHandler) HandleListForCommittee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	status := domain.MeetingStatus(r.URL.Query().Get("status"))

	page, err := h.MeetingService.ListForCommittee(ctx, r.PathValue("committeeId"), status, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMeetingStatus):
			rollcallsdk.ErrBadRequest.WithMessage("unknown status filter").WriteError(w)
		case errors.Is(err, service.ErrCommitteeNotFound):
			rollcallsdk.ErrNotFound.WithMessage("committee not found").WriteError(w)
		default:
			slogx.FromContext(ctx).Error("failed to list meetings", "err", err)
			rollcallsdk.ErrServerError.WriteError(w)
		}
		return
	}

	items := make([]rollcallsdk.MeetingListItem, 0, len(page.Meetings))
	for _, meeting := range page.Meetings {
		items = append(items, rollcallsdk.MeetingListItem{
			Meeting:         toMeeting(meeting.Meeting),
			Committee:       toCommitteeRef(page.Committee),
			AttendanceCount: int64(meeting.AttendanceCount),
		})
	}

	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.MeetingListResponse{
		Meetings: items,
		Pagination: rollcallsdk.Pagination{
			Total:  int64(page.Total),
			Limit:  page.Limit,
			Offset: page.Offset,
		},
	})
}

// HandleUpcoming godoc
//
//	@Summary		My Upcoming Meetings Endpoint
//	@Description	The caller's next meetings across all their committees, soonest first, with their own attendance row when recorded.
//	@Tags			Meetings
//	@Produce		json
//	@Success		200	{array}		rollcallsdk.UpcomingMeeting
//	@Failure		401	{object}	rollcallsdk.APIError	"error, message"
//	@Security		BearerAuth
//	@Router			/meetings/my-upcoming [get].
func (h *MeetingsHandler) HandleUpcoming(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := identityFromContext(ctx)
	if !ok {
		rollcallsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	upcoming, err := h.MeetingService.Upcoming(ctx, caller.ID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list upcoming meetings", "err", err)
		rollcallsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]rollcallsdk.UpcomingMeeting, 0, len(upcoming))
	for _, entry := range upcoming {
		wire := rollcallsdk.UpcomingMeeting{
			Meeting: toMeeting(entry.Meeting.Meeting),
			Committee: rollcallsdk.UpcomingCommitteeRef{
				ID:          entry.Meeting.Committee.ID,
				Name:        entry.Meeting.Committee.Name,
				MeetingDay:  entry.Meeting.Committee.MeetingDay,
				MeetingTime: entry.Meeting.Committee.MeetingTime,
			},
		}
		if entry.Attendance != nil {
			attendance := toAttendance(*entry.Attendance)
			wire.MyAttendance = &attendance
		}
		out = append(out, wire)
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Meeting Detail Endpoint
//	@Description	Full meeting view for committee members and admins, including attendance rows. Non-members get the meeting without attendances.
//	@Tags			Meetings
//	@Produce		json
//	@Param			id	path		string	true	"Meeting ID"
//	@Success		200	{object}	rollcallsdk.MeetingDetail
//	@Failure		404	{object}	rollcallsdk.APIError	"error, message"
//	@Security		BearerAuth
//	@Router			/meetings/{id} [get].
func (h *MeetingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := identityFromContext(ctx)
	if !ok {
		rollcallsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	meeting, err := h.MeetingService.Get(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrMeetingNotFound) {
			rollcallsdk.ErrNotFound.WithMessage("meeting not found").WriteError(w)
			return
		}
		log.Error("failed to fetch meeting", "err", err)
		rollcallsdk.ErrServerError.WriteError(w)
		return
	}

	detail := rollcallsdk.MeetingDetail{
		Meeting:   toMeeting(meeting.Meeting),
		Committee: toCommitteeRef(meeting.Committee),
	}

	member := caller.Role == domain.RoleAdmin
	if !member {
		member, err = h.MembershipService.IsActiveMember(ctx, caller.ID, meeting.CommitteeID)
		if err != nil {
			log.Error("failed to check membership", "err", err)
			rollcallsdk.ErrServerError.WriteError(w)
			return
		}
	}

	if member {
		records, err := h.AttendanceService.ListForMeeting(ctx, meeting.ID)
		if err != nil {
			log.Error("failed to list attendance", "err", err)
			rollcallsdk.ErrServerError.WriteError(w)
			return
		}

		detail.Attendances = make([]rollcallsdk.AttendanceWithUser, 0, len(records))
		for _, record := range records {
			detail.Attendances = append(detail.Attendances, rollcallsdk.AttendanceWithUser{
				Attendance: toAttendance(record.Attendance),
				User:       toUserSummary(record.User),
			})
		}
	}

	httpx.WriteJSON(w, http.StatusOK, detail)
}
